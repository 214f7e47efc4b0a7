package testutils

import (
	"time"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/testutils/builders"
)

// Session stages for testing
const (
	StageFresh      = "fresh"
	StageRolled     = "rolled"
	StageWithSkills = "with_skills"

	// TestSessionID is the default session ID for test fixtures
	TestSessionID = "sess_test_001"
)

// TestTime is the instant fixtures are stamped with
var TestTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// CreateTestSession creates a fresh session with every attribute at 50
func CreateTestSession(id string) *sheet.Session {
	return builders.NewSessionBuilder().WithID(id).Build()
}

// CreateTestSessionAtStage creates a session at a known point of play
func CreateTestSessionAtStage(id, stage string) *sheet.Session {
	b := builders.NewSessionBuilder().WithID(id)

	switch stage {
	case StageRolled:
		b.WithAttribute(sheet.AttributeStrength, 50).
			WithRoll(sheet.AttributeStrength, 85, sheet.RollMethodGenerated)
	case StageWithSkills:
		b.WithAttribute(sheet.AttributeStrength, 73).
			WithRoll(sheet.AttributeStrength, 20, sheet.RollMethodManual).
			WithSkill("Climb", sheet.AttributeStrength, sheet.SkillLevelExpert, 3).
			WithSkill("Notice", sheet.AttributePerception, sheet.SkillLevelNovice, 0)
	}

	return b.Build()
}
