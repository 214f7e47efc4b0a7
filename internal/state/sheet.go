// Package state owns the character sheet of one session: attribute values,
// their SRs, recorded roll outcomes and saved skills.
package state

import (
	"strings"
	"time"

	"github.com/KirkDiggler/skill-roller/internal/engine"
	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
)

// Sheet applies sheet operations to a session. It is not safe for concurrent
// use; callers serialize access per session.
type Sheet struct {
	session *sheet.Session
	idGen   idgen.Generator
}

// Config holds the dependencies for a Sheet
type Config struct {
	Session     *sheet.Session
	IDGenerator idgen.Generator
}

// Validate checks required fields and fills defaults
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Session == nil {
		vb.RequiredField("Session")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = idgen.NewUUID("")
	}
	return nil
}

// New wraps a session
func New(cfg *Config) (*Sheet, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sheet{session: cfg.Session, idGen: cfg.IDGenerator}, nil
}

// NewSession builds a fresh session with every attribute at the default value
func NewSession(id string, now time.Time) *sheet.Session {
	s := &sheet.Session{
		ID:        id,
		Skills:    []*sheet.Skill{},
		Flow:      sheet.Flow{State: sheet.FlowStateIdle},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, c := range sheet.Categories {
		for _, name := range sheet.AttributesIn(c) {
			s.Attributes = append(s.Attributes, &sheet.Attribute{
				Name:     name,
				Category: c,
				Value:    engine.DefaultStatValue,
				SR:       engine.TensDigit(engine.DefaultStatValue),
			})
		}
	}
	return s
}

// Session returns the wrapped session
func (s *Sheet) Session() *sheet.Session {
	return s.session
}

func (s *Sheet) attribute(name sheet.AttributeName) (*sheet.Attribute, error) {
	attr := s.session.Attribute(name)
	if attr == nil {
		return nil, errors.InvalidArgumentf("unknown attribute %q", name)
	}
	return attr, nil
}

// SetAttributeValue stores a new stat value and recomputes its SR. Values
// outside [1,100] are rejected and leave the sheet untouched.
func (s *Sheet) SetAttributeValue(name sheet.AttributeName, value int) (*sheet.Attribute, error) {
	attr, err := s.attribute(name)
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("value", value, engine.MinPercentile, engine.MaxPercentile, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	attr.Value = value
	attr.SR = engine.TensDigit(value)
	return attr.Clone(), nil
}

// RecordRoll resolves a die result against the attribute's current value.
// Only the named attribute's adjustment and total change; the outcome
// replaces the last outcome.
func (s *Sheet) RecordRoll(name sheet.AttributeName, dieResult int, method sheet.RollMethod, at time.Time) (*sheet.RollOutcome, error) {
	attr, err := s.attribute(name)
	if err != nil {
		return nil, err
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("die_result", dieResult, engine.MinPercentile, engine.MaxPercentile, vb)
	errors.ValidateEnum("method", string(method),
		[]string{string(sheet.RollMethodGenerated), string(sheet.RollMethodManual)}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	adjustment := engine.ComputeAdjustment(dieResult, attr.Value)
	total := attr.SR + adjustment

	attr.Adjustment = &adjustment
	attr.TotalSR = &total

	outcome := &sheet.RollOutcome{
		ID:          s.idGen.Generate(),
		Attribute:   attr.Name,
		EnteredStat: attr.Value,
		SR:          attr.SR,
		DieResult:   dieResult,
		Adjustment:  adjustment,
		TotalSR:     total,
		Method:      method,
		RolledAt:    at,
	}
	s.session.LastOutcome = outcome

	cp := *outcome
	return &cp, nil
}

// AddSkill saves a skill built on the attribute's current SR. The skill's SR
// does not follow later attribute changes.
func (s *Sheet) AddSkill(name string, attribute sheet.AttributeName, level sheet.SkillLevel, miscBonus int, at time.Time) (*sheet.Skill, error) {
	name = strings.TrimSpace(name)

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", name, vb)
	if !sheet.IsKnownAttribute(attribute) {
		vb.InvalidField("attribute", "unknown attribute "+string(attribute))
	}
	bonus, ok := level.Bonus()
	if !ok {
		vb.InvalidField("level", "unknown skill level "+string(level))
	}
	errors.ValidateMin("misc_bonus", miscBonus, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	attr, err := s.attribute(attribute)
	if err != nil {
		return nil, err
	}

	skill := &sheet.Skill{
		ID:            s.idGen.Generate(),
		Name:          name,
		BaseAttribute: attribute,
		Level:         level,
		MiscBonus:     miscBonus,
		ComputedSR:    engine.ComputeSkillSR(attr.SR, bonus, miscBonus),
		CreatedAt:     at,
	}
	s.session.Skills = append(s.session.Skills, skill)

	cp := *skill
	return &cp, nil
}

// Attributes returns a copy of the sheet grouped by category in display order
func (s *Sheet) Attributes() []*sheet.AttributeGroup {
	groups := make([]*sheet.AttributeGroup, 0, len(sheet.Categories))
	for _, c := range sheet.Categories {
		group := &sheet.AttributeGroup{Category: c, Label: c.Label()}
		for _, name := range sheet.AttributesIn(c) {
			if attr := s.session.Attribute(name); attr != nil {
				group.Attributes = append(group.Attributes, attr.Clone())
			}
		}
		groups = append(groups, group)
	}
	return groups
}

// Skills returns a copy of the saved skills in insertion order
func (s *Sheet) Skills() []*sheet.Skill {
	out := make([]*sheet.Skill, len(s.session.Skills))
	for i, sk := range s.session.Skills {
		cp := *sk
		out[i] = &cp
	}
	return out
}

// LastOutcome returns the most recent roll, nil before the first one
func (s *Sheet) LastOutcome() *sheet.RollOutcome {
	if s.session.LastOutcome == nil {
		return nil
	}
	cp := *s.session.LastOutcome
	return &cp
}

// TotalSkillSR is the running total of every saved skill's SR
func (s *Sheet) TotalSkillSR() int {
	total := 0
	for _, sk := range s.session.Skills {
		total += sk.ComputedSR
	}
	return total
}
