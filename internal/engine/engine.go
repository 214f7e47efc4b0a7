package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/skill-roller/internal/errors"
)

type engine struct {
	roller dice.Roller
}

// Config holds the dependencies for the rules engine
type Config struct {
	// DiceRoller is the entropy source. Defaults to dice.DefaultRoller.
	DiceRoller dice.Roller
}

// Validate fills defaults; there are no required fields
func (cfg *Config) Validate() error {
	if cfg.DiceRoller == nil {
		cfg.DiceRoller = dice.DefaultRoller
	}
	return nil
}

// New creates a rules engine
func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{roller: cfg.DiceRoller}, nil
}

func (e *engine) RollPercentile() (int, error) {
	result, err := e.roller.Roll(PercentileSides)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll percentile die")
	}
	if !InPercentileRange(result) {
		return 0, errors.Internalf("dice roller returned %d for a d%d", result, PercentileSides)
	}
	return result, nil
}

func (e *engine) TensDigit(statValue int) int {
	return TensDigit(statValue)
}

func (e *engine) ComputeAdjustment(dieResult, enteredStat int) int {
	return ComputeAdjustment(dieResult, enteredStat)
}

func (e *engine) ComputeSkillSR(attributeSR, levelBonus, miscBonus int) int {
	return ComputeSkillSR(attributeSR, levelBonus, miscBonus)
}
