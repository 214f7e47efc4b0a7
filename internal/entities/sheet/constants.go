// Package sheet holds the skill roller data model. These are data-only
// structs; rule calculations live in the engine package and mutations in the
// state package.
package sheet

// AttributeName identifies one of the fixed stats
type AttributeName string

// Physical stats
const (
	AttributeAgility    AttributeName = "Agi"
	AttributePerception AttributeName = "Per"
	AttributeStrength   AttributeName = "Str"
	AttributeToughness  AttributeName = "Tou"
)

// Mental stats
const (
	AttributeCharisma     AttributeName = "Cha"
	AttributeIntelligence AttributeName = "Int"
	AttributeWillpower    AttributeName = "Wil"
	AttributeWisdom       AttributeName = "Wis"
)

// Combat stats
const (
	AttributeMelee  AttributeName = "Mel"
	AttributeRanged AttributeName = "Ran"
)

// Category groups attributes for display
type Category string

// Attribute categories in display order
const (
	CategoryPhysical Category = "physical"
	CategoryMental   Category = "mental"
	CategoryCombat   Category = "combat"
)

// Label is the heading shown above a category
func (c Category) Label() string {
	switch c {
	case CategoryPhysical:
		return "Physical Stats"
	case CategoryMental:
		return "Mental Stats"
	case CategoryCombat:
		return "Combat Stats"
	default:
		return string(c)
	}
}

// Categories lists the categories in display order
var Categories = []Category{CategoryPhysical, CategoryMental, CategoryCombat}

// attributesByCategory is the canonical ordering of the sheet
var attributesByCategory = map[Category][]AttributeName{
	CategoryPhysical: {AttributeAgility, AttributePerception, AttributeStrength, AttributeToughness},
	CategoryMental:   {AttributeCharisma, AttributeIntelligence, AttributeWillpower, AttributeWisdom},
	CategoryCombat:   {AttributeMelee, AttributeRanged},
}

// AttributesIn returns the attributes of a category in display order
func AttributesIn(c Category) []AttributeName {
	names := attributesByCategory[c]
	out := make([]AttributeName, len(names))
	copy(out, names)
	return out
}

// AllAttributes returns every attribute in display order
func AllAttributes() []AttributeName {
	var out []AttributeName
	for _, c := range Categories {
		out = append(out, attributesByCategory[c]...)
	}
	return out
}

// CategoryOf returns the category of a known attribute
func CategoryOf(name AttributeName) (Category, bool) {
	for _, c := range Categories {
		for _, n := range attributesByCategory[c] {
			if n == name {
				return c, true
			}
		}
	}
	return "", false
}

// IsKnownAttribute reports whether name is one of the fixed stats
func IsKnownAttribute(name AttributeName) bool {
	_, ok := CategoryOf(name)
	return ok
}

// SkillLevel is the training level of a skill
type SkillLevel string

// Skill levels
const (
	SkillLevelNovice SkillLevel = "novice"
	SkillLevelExpert SkillLevel = "expert"
	SkillLevelMaster SkillLevel = "master"
)

// SkillLevels lists levels from lowest to highest
var SkillLevels = []SkillLevel{SkillLevelNovice, SkillLevelExpert, SkillLevelMaster}

// Bonus returns the SR bonus granted by the level, false when unknown
func (l SkillLevel) Bonus() (int, bool) {
	switch l {
	case SkillLevelNovice:
		return 2, true
	case SkillLevelExpert:
		return 4, true
	case SkillLevelMaster:
		return 6, true
	default:
		return 0, false
	}
}

// RollMethod is how the die result of a roll is obtained
type RollMethod string

// Roll methods
const (
	RollMethodGenerated RollMethod = "generated"
	RollMethodManual    RollMethod = "manual"
)

// FlowState is the state of the roll interaction
type FlowState string

// Roll flow states
const (
	FlowStateIdle                 FlowState = "idle"
	FlowStateAwaitingRollMethod   FlowState = "awaiting_roll_method"
	FlowStateAwaitingConfirmation FlowState = "awaiting_confirmation"
	FlowStateResolved             FlowState = "resolved"
)

// EntityType is the core.Entity type reported by a Session
const EntityType = "skillcheck_session"
