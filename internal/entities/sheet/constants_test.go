package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllAttributesOrder(t *testing.T) {
	assert.Equal(t, []AttributeName{
		AttributeAgility, AttributePerception, AttributeStrength, AttributeToughness,
		AttributeCharisma, AttributeIntelligence, AttributeWillpower, AttributeWisdom,
		AttributeMelee, AttributeRanged,
	}, AllAttributes())
}

func TestCategoryOf(t *testing.T) {
	c, ok := CategoryOf(AttributeWisdom)
	assert.True(t, ok)
	assert.Equal(t, CategoryMental, c)
	assert.Equal(t, "Mental Stats", c.Label())

	_, ok = CategoryOf("Luck")
	assert.False(t, ok)
	assert.False(t, IsKnownAttribute("str"))
}

func TestAttributesInReturnsCopy(t *testing.T) {
	names := AttributesIn(CategoryCombat)
	names[0] = "Luck"
	assert.Equal(t, AttributeMelee, AttributesIn(CategoryCombat)[0])
}

func TestSkillLevelBonus(t *testing.T) {
	for level, want := range map[SkillLevel]int{
		SkillLevelNovice: 2,
		SkillLevelExpert: 4,
		SkillLevelMaster: 6,
	} {
		got, ok := level.Bonus()
		assert.True(t, ok)
		assert.Equal(t, want, got, string(level))
	}

	_, ok := SkillLevel("legend").Bonus()
	assert.False(t, ok)
}

func TestSessionCloneIsDeep(t *testing.T) {
	adj := 1
	manual := 40
	s := &Session{
		ID:          "sess_1",
		Attributes:  []*Attribute{{Name: AttributeStrength, Value: 50, SR: 5, Adjustment: &adj}},
		Skills:      []*Skill{{Name: "Climb", ComputedSR: 9}},
		LastOutcome: &RollOutcome{DieResult: 30},
		Flow:        Flow{State: FlowStateAwaitingConfirmation, ManualValue: &manual},
	}

	c := s.Clone()
	c.Attributes[0].Value = 99
	*c.Attributes[0].Adjustment = 7
	c.Skills[0].ComputedSR = 1
	c.LastOutcome.DieResult = 1
	*c.Flow.ManualValue = 1

	assert.Equal(t, 50, s.Attributes[0].Value)
	assert.Equal(t, 1, *s.Attributes[0].Adjustment)
	assert.Equal(t, 9, s.Skills[0].ComputedSR)
	assert.Equal(t, 30, s.LastOutcome.DieResult)
	assert.Equal(t, 40, *s.Flow.ManualValue)
	assert.Equal(t, "sess_1", c.GetID())
	assert.Equal(t, EntityType, c.GetType())
}
