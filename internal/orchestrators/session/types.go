package session

import (
	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
)

// CreateSessionInput defines the request for starting a session
type CreateSessionInput struct{}

// CreateSessionOutput defines the response for starting a session.
// Groups is the stored sheet grouped by category.
type CreateSessionOutput struct {
	Session *sheet.Session
	Groups  []*sheet.AttributeGroup
}

// GetAttributesInput defines the request for reading the sheet
type GetAttributesInput struct {
	SessionID string
}

// GetAttributesOutput holds the attributes grouped by category
type GetAttributesOutput struct {
	Groups []*sheet.AttributeGroup
}

// SetAttributeValueInput defines the request for entering a stat value
type SetAttributeValueInput struct {
	SessionID string
	Attribute sheet.AttributeName
	Value     int
}

// SetAttributeValueOutput holds the updated attribute
type SetAttributeValueOutput struct {
	Attribute *sheet.Attribute
}

// BeginRollInput defines the request for selecting an attribute to roll
type BeginRollInput struct {
	SessionID string
	Attribute sheet.AttributeName
}

// BeginRollOutput holds the flow after selection
type BeginRollOutput struct {
	Flow sheet.Flow
}

// ChooseMethodInput defines the request for picking a roll method.
// ManualValue is only read for manual rolls.
type ChooseMethodInput struct {
	SessionID   string
	Attribute   sheet.AttributeName
	Method      sheet.RollMethod
	ManualValue *int
}

// ChooseMethodOutput holds the flow after the choice
type ChooseMethodOutput struct {
	Flow sheet.Flow
}

// ConfirmRollInput defines the request for resolving the active roll
type ConfirmRollInput struct {
	SessionID string
	Attribute sheet.AttributeName
}

// ConfirmRollOutput holds the recorded outcome
type ConfirmRollOutput struct {
	Outcome *sheet.RollOutcome
}

// AddSkillInput defines the request for saving a skill
type AddSkillInput struct {
	SessionID string
	Name      string
	Attribute sheet.AttributeName
	Level     sheet.SkillLevel
	MiscBonus int
}

// AddSkillOutput holds the saved skill
type AddSkillOutput struct {
	Skill *sheet.Skill
}

// ListSkillsInput defines the request for listing saved skills
type ListSkillsInput struct {
	SessionID string
}

// ListSkillsOutput holds the skills in the order they were saved
type ListSkillsOutput struct {
	Skills  []*sheet.Skill
	TotalSR int
}

// GetLastOutcomeInput defines the request for the most recent roll
type GetLastOutcomeInput struct {
	SessionID string
}

// GetLastOutcomeOutput holds the most recent roll
type GetLastOutcomeOutput struct {
	Outcome *sheet.RollOutcome
}

// EndSessionInput defines the request for tearing a session down
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput is empty; a successful teardown returns no data
type EndSessionOutput struct{}
