// Package engine holds the skill rating rules: the percentile roll, base SR
// derivation, roll adjustment and skill SR composition.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/skill-roller/internal/engine Engine

// Engine provides the rule calculations. Everything except RollPercentile is
// pure; RollPercentile draws from the configured dice roller.
type Engine interface {
	// RollPercentile returns a uniform result in [1,100]
	RollPercentile() (int, error)

	TensDigit(statValue int) int
	ComputeAdjustment(dieResult, enteredStat int) int
	ComputeSkillSR(attributeSR, levelBonus, miscBonus int) int
}
