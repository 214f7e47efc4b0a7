package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
	"github.com/KirkDiggler/skill-roller/internal/state"
)

type SheetTestSuite struct {
	suite.Suite
	now   time.Time
	sheet *state.Sheet
}

func (s *SheetTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	sh, err := state.New(&state.Config{
		Session:     state.NewSession("sess_1", s.now),
		IDGenerator: idgen.NewSequential("id"),
	})
	s.Require().NoError(err)
	s.sheet = sh
}

func TestSheetSuite(t *testing.T) {
	suite.Run(t, new(SheetTestSuite))
}

func (s *SheetTestSuite) TestNewSessionDefaults() {
	groups := s.sheet.Attributes()
	s.Require().Len(groups, 3)
	s.Equal("Physical Stats", groups[0].Label)
	s.Equal("Mental Stats", groups[1].Label)
	s.Equal("Combat Stats", groups[2].Label)

	count := 0
	for _, g := range groups {
		for _, a := range g.Attributes {
			count++
			s.Equal(50, a.Value)
			s.Equal(5, a.SR)
			s.Nil(a.Adjustment)
			s.Nil(a.TotalSR)
			s.Equal(g.Category, a.Category)
		}
	}
	s.Equal(10, count)
	s.Empty(s.sheet.Skills())
	s.Nil(s.sheet.LastOutcome())
	s.Equal(sheet.FlowStateIdle, s.sheet.Session().Flow.State)
}

func (s *SheetTestSuite) TestSetAttributeValue() {
	testCases := []struct {
		name   string
		value  int
		wantSR int
	}{
		{name: "low single digit", value: 1, wantSR: 0},
		{name: "seventy three", value: 73, wantSR: 7},
		{name: "ninety nine", value: 99, wantSR: 9},
		{name: "hundred wraps to zero", value: 100, wantSR: 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			attr, err := s.sheet.SetAttributeValue(sheet.AttributeStrength, tc.value)
			s.Require().NoError(err)
			s.Equal(tc.value, attr.Value)
			s.Equal(tc.wantSR, attr.SR)
			s.Equal(tc.wantSR, s.sheet.Session().Attribute(sheet.AttributeStrength).SR)
		})
	}
}

func (s *SheetTestSuite) TestSetAttributeValueRejectsOutOfRange() {
	for _, v := range []int{0, -5, 101} {
		_, err := s.sheet.SetAttributeValue(sheet.AttributeAgility, v)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(errors.ValidationFields(err), "value")
	}
	s.Equal(50, s.sheet.Session().Attribute(sheet.AttributeAgility).Value)
}

func (s *SheetTestSuite) TestSetAttributeValueUnknownName() {
	_, err := s.sheet.SetAttributeValue("Luck", 40)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *SheetTestSuite) TestRecordRollTouchesOnlyTarget() {
	outcome, err := s.sheet.RecordRoll(sheet.AttributeStrength, 85, sheet.RollMethodGenerated, s.now)
	s.Require().NoError(err)

	s.Equal("id_1", outcome.ID)
	s.Equal(sheet.AttributeStrength, outcome.Attribute)
	s.Equal(50, outcome.EnteredStat)
	s.Equal(5, outcome.SR)
	s.Equal(85, outcome.DieResult)
	s.Equal(-3, outcome.Adjustment)
	s.Equal(2, outcome.TotalSR)
	s.Equal(sheet.RollMethodGenerated, outcome.Method)
	s.Equal(s.now, outcome.RolledAt)

	str := s.sheet.Session().Attribute(sheet.AttributeStrength)
	s.Require().NotNil(str.Adjustment)
	s.Equal(-3, *str.Adjustment)
	s.Equal(2, *str.TotalSR)

	for _, a := range s.sheet.Session().Attributes {
		if a.Name == sheet.AttributeStrength {
			continue
		}
		s.Nil(a.Adjustment, string(a.Name))
		s.Nil(a.TotalSR, string(a.Name))
	}

	s.Equal(outcome, s.sheet.LastOutcome())
}

func (s *SheetTestSuite) TestRecordRollReplacesLastOutcome() {
	_, err := s.sheet.RecordRoll(sheet.AttributeStrength, 85, sheet.RollMethodGenerated, s.now)
	s.Require().NoError(err)
	second, err := s.sheet.RecordRoll(sheet.AttributeWisdom, 12, sheet.RollMethodManual, s.now)
	s.Require().NoError(err)

	s.Equal(3, second.Adjustment)
	s.Equal(8, second.TotalSR)
	s.Equal(sheet.AttributeWisdom, s.sheet.LastOutcome().Attribute)

	// Str keeps its earlier roll
	s.Equal(2, *s.sheet.Session().Attribute(sheet.AttributeStrength).TotalSR)
}

func (s *SheetTestSuite) TestRecordRollRejectsBadInput() {
	_, err := s.sheet.RecordRoll(sheet.AttributeStrength, 0, sheet.RollMethodGenerated, s.now)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.sheet.RecordRoll(sheet.AttributeStrength, 40, "psychic", s.now)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.sheet.RecordRoll("Luck", 40, sheet.RollMethodGenerated, s.now)
	s.True(errors.IsInvalidArgument(err))

	s.Nil(s.sheet.LastOutcome())
}

func (s *SheetTestSuite) TestAddSkill() {
	skill, err := s.sheet.AddSkill("  Climb ", sheet.AttributeStrength, sheet.SkillLevelExpert, 3, s.now)
	s.Require().NoError(err)

	s.Equal("Climb", skill.Name)
	s.Equal(sheet.AttributeStrength, skill.BaseAttribute)
	s.Equal(sheet.SkillLevelExpert, skill.Level)
	s.Equal(3, skill.MiscBonus)
	s.Equal(12, skill.ComputedSR)
	s.Equal(s.now, skill.CreatedAt)
}

func (s *SheetTestSuite) TestSkillSRIsFrozen() {
	_, err := s.sheet.AddSkill("Climb", sheet.AttributeStrength, sheet.SkillLevelNovice, 0, s.now)
	s.Require().NoError(err)

	_, err = s.sheet.SetAttributeValue(sheet.AttributeStrength, 90)
	s.Require().NoError(err)

	s.Equal(7, s.sheet.Skills()[0].ComputedSR)

	_, err = s.sheet.AddSkill("Lift", sheet.AttributeStrength, sheet.SkillLevelMaster, 1, s.now)
	s.Require().NoError(err)

	skills := s.sheet.Skills()
	s.Require().Len(skills, 2)
	s.Equal("Climb", skills[0].Name)
	s.Equal("Lift", skills[1].Name)
	s.Equal(16, skills[1].ComputedSR)
	s.Equal(23, s.sheet.TotalSkillSR())
}

func (s *SheetTestSuite) TestAddSkillValidation() {
	testCases := []struct {
		name      string
		skill     string
		attribute sheet.AttributeName
		level     sheet.SkillLevel
		misc      int
		field     string
	}{
		{name: "blank name", skill: "   ", attribute: sheet.AttributeStrength, level: sheet.SkillLevelNovice, field: "name"},
		{name: "unknown attribute", skill: "Climb", attribute: "Luck", level: sheet.SkillLevelNovice, field: "attribute"},
		{name: "unknown level", skill: "Climb", attribute: sheet.AttributeStrength, level: "legend", field: "level"},
		{name: "negative misc", skill: "Climb", attribute: sheet.AttributeStrength, level: sheet.SkillLevelNovice, misc: -1, field: "misc_bonus"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.sheet.AddSkill(tc.skill, tc.attribute, tc.level, tc.misc, s.now)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(errors.ValidationFields(err), tc.field)
		})
	}
	s.Empty(s.sheet.Skills())
}

func (s *SheetTestSuite) TestSnapshotsAreCopies() {
	groups := s.sheet.Attributes()
	groups[0].Attributes[0].Value = 1

	_, err := s.sheet.AddSkill("Climb", sheet.AttributeStrength, sheet.SkillLevelNovice, 0, s.now)
	s.Require().NoError(err)
	skills := s.sheet.Skills()
	skills[0].ComputedSR = 99

	s.Equal(50, s.sheet.Session().Attributes[0].Value)
	s.Equal(7, s.sheet.Skills()[0].ComputedSR)
}

func TestNewRequiresSession(t *testing.T) {
	_, err := state.New(&state.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = state.New(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}
