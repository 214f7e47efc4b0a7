// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
	"github.com/KirkDiggler/skill-roller/internal/state"
)

// SessionBuilder provides a fluent interface for building test sessions.
// Every step goes through state.Sheet so derived values stay consistent.
type SessionBuilder struct {
	session *sheet.Session
	ids     idgen.Generator
	at      time.Time
	err     error
}

// NewSessionBuilder creates a builder with a fresh default session
func NewSessionBuilder() *SessionBuilder {
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return &SessionBuilder{
		session: state.NewSession("sess-test-123", at),
		ids:     idgen.NewSequential("fixture"),
		at:      at,
	}
}

func (b *SessionBuilder) sheet() *state.Sheet {
	sh, err := state.New(&state.Config{
		Session:     b.session,
		IDGenerator: b.ids,
	})
	if err != nil && b.err == nil {
		b.err = err
	}
	return sh
}

func (b *SessionBuilder) record(err error) {
	if err != nil && b.err == nil {
		b.err = err
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithTime stamps the session and everything added afterwards
func (b *SessionBuilder) WithTime(at time.Time) *SessionBuilder {
	b.at = at
	b.session.CreatedAt = at
	b.session.UpdatedAt = at
	return b
}

// WithAttribute sets a stat value
func (b *SessionBuilder) WithAttribute(name sheet.AttributeName, value int) *SessionBuilder {
	_, err := b.sheet().SetAttributeValue(name, value)
	b.record(err)
	return b
}

// WithRoll records a resolved roll and leaves the flow resolved on it
func (b *SessionBuilder) WithRoll(name sheet.AttributeName, dieResult int, method sheet.RollMethod) *SessionBuilder {
	_, err := b.sheet().RecordRoll(name, dieResult, method, b.at)
	b.record(err)
	b.session.Flow = sheet.Flow{
		State:     sheet.FlowStateResolved,
		Attribute: name,
		Method:    method,
	}
	return b
}

// WithSkill saves a skill
func (b *SessionBuilder) WithSkill(name string, attribute sheet.AttributeName, level sheet.SkillLevel, misc int) *SessionBuilder {
	_, err := b.sheet().AddSkill(name, attribute, level, misc, b.at)
	b.record(err)
	return b
}

// WithFlow overrides the roll flow
func (b *SessionBuilder) WithFlow(flow sheet.Flow) *SessionBuilder {
	b.session.Flow = flow
	return b
}

// Build returns the session. It panics when a step was rejected, which
// only happens when a test passes bad fixture data.
func (b *SessionBuilder) Build() *sheet.Session {
	if b.err != nil {
		panic(fmt.Sprintf("invalid session fixture: %v", b.err))
	}
	return b.session.Clone()
}
