// Package session implements the command service behind every client: it
// loads a session snapshot, runs one command through the sheet and the roll
// controller, and saves the result only when the command succeeds.
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/skill-roller/internal/orchestrators/session Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skill-roller/internal/controller"
	"github.com/KirkDiggler/skill-roller/internal/engine"
	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/pkg/clock"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
	"github.com/KirkDiggler/skill-roller/internal/state"
)

// Service defines the command interface of a skill check session
type Service interface {
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Sheet
	GetAttributes(ctx context.Context, input *GetAttributesInput) (*GetAttributesOutput, error)
	SetAttributeValue(ctx context.Context, input *SetAttributeValueInput) (*SetAttributeValueOutput, error)

	// Roll flow
	BeginRoll(ctx context.Context, input *BeginRollInput) (*BeginRollOutput, error)
	ChooseMethod(ctx context.Context, input *ChooseMethodInput) (*ChooseMethodOutput, error)
	ConfirmRoll(ctx context.Context, input *ConfirmRollInput) (*ConfirmRollOutput, error)
	GetLastOutcome(ctx context.Context, input *GetLastOutcomeInput) (*GetLastOutcomeOutput, error)

	// Skills
	AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error)
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)
}

// Config holds the dependencies for the session orchestrator
type Config struct {
	SessionRepo sessionrepo.Repository
	Engine      engine.Engine
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// RecordIDGenerator names roll outcomes and skills. Defaults to IDGenerator.
	RecordIDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	if err := vb.Build(); err != nil {
		return err
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.RecordIDGenerator == nil {
		c.RecordIDGenerator = c.IDGenerator
	}
	return nil
}

type orchestrator struct {
	sessionRepo sessionrepo.Repository
	engine      engine.Engine
	eventBus    events.EventBus
	idGen       idgen.Generator
	recordIDGen idgen.Generator
	clock       clock.Clock
	locks       *keyedMutex
}

// NewOrchestrator creates a new session orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		engine:      cfg.Engine,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		recordIDGen: cfg.RecordIDGenerator,
		clock:       cfg.Clock,
		locks:       newKeyedMutex(),
	}, nil
}

// command is the per-call view of one loaded session
type command struct {
	session    *sheet.Session
	sheet      *state.Sheet
	controller *controller.Controller
}

func (o *orchestrator) load(ctx context.Context, sessionID string) (*command, error) {
	if sessionID == "" {
		return nil, errors.NewValidationBuilder().RequiredField("session_id").Build()
	}

	out, err := o.sessionRepo.Get(ctx, sessionrepo.GetInput{ID: sessionID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load session %s", sessionID)
	}

	sh, err := state.New(&state.Config{
		Session:     out.Session,
		IDGenerator: o.recordIDGen,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sheet")
	}

	ctrl, err := controller.New(&controller.Config{
		Sheet:  sh,
		Engine: o.engine,
		Clock:  o.clock,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create roll controller")
	}

	return &command{session: out.Session, sheet: sh, controller: ctrl}, nil
}

// mutate runs fn against a freshly loaded snapshot under the session lock and
// writes the snapshot back only if fn succeeds
func (o *orchestrator) mutate(ctx context.Context, sessionID string, fn func(c *command) error) (*sheet.Session, error) {
	unlock := o.locks.Lock(sessionID)
	defer unlock()

	c, err := o.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(c); err != nil {
		return nil, err
	}

	c.session.UpdatedAt = o.clock.Now()
	if _, err := o.sessionRepo.Update(ctx, sessionrepo.UpdateInput{Session: c.session}); err != nil {
		return nil, errors.Wrapf(err, "failed to save session %s", sessionID)
	}
	return c.session, nil
}

// view runs fn against a loaded snapshot without saving
func (o *orchestrator) view(ctx context.Context, sessionID string, fn func(c *command) error) error {
	unlock := o.locks.Lock(sessionID)
	defer unlock()

	c, err := o.load(ctx, sessionID)
	if err != nil {
		return err
	}
	return fn(c)
}

func (o *orchestrator) CreateSession(ctx context.Context, _ *CreateSessionInput) (*CreateSessionOutput, error) {
	s := state.NewSession(o.idGen.Generate(), o.clock.Now())

	out, err := o.sessionRepo.Create(ctx, sessionrepo.CreateInput{Session: s})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	sh, err := state.New(&state.Config{Session: out.Session, IDGenerator: o.recordIDGen})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sheet")
	}

	slog.InfoContext(ctx, "session created", "session_id", s.ID)

	return &CreateSessionOutput{Session: out.Session, Groups: sh.Attributes()}, nil
}

func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.NewValidationBuilder().RequiredField("session_id").Build()
	}

	unlock := o.locks.Lock(input.SessionID)
	defer unlock()

	if _, err := o.sessionRepo.Delete(ctx, sessionrepo.DeleteInput{ID: input.SessionID}); err != nil {
		return nil, errors.Wrapf(err, "failed to end session %s", input.SessionID)
	}

	slog.InfoContext(ctx, "session ended", "session_id", input.SessionID)

	return &EndSessionOutput{}, nil
}

func (o *orchestrator) GetAttributes(ctx context.Context, input *GetAttributesInput) (*GetAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var groups []*sheet.AttributeGroup
	err := o.view(ctx, input.SessionID, func(c *command) error {
		groups = c.sheet.Attributes()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetAttributesOutput{Groups: groups}, nil
}

func (o *orchestrator) SetAttributeValue(ctx context.Context, input *SetAttributeValueInput) (*SetAttributeValueOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var attr *sheet.Attribute
	_, err := o.mutate(ctx, input.SessionID, func(c *command) error {
		var err error
		attr, err = c.sheet.SetAttributeValue(input.Attribute, input.Value)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "attribute value set",
		"session_id", input.SessionID,
		"attribute", attr.Name,
		"value", attr.Value,
		"sr", attr.SR)

	return &SetAttributeValueOutput{Attribute: attr}, nil
}

func (o *orchestrator) BeginRoll(ctx context.Context, input *BeginRollInput) (*BeginRollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var flow sheet.Flow
	_, err := o.mutate(ctx, input.SessionID, func(c *command) error {
		var err error
		flow, err = c.controller.SelectAttribute(input.Attribute)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BeginRollOutput{Flow: flow}, nil
}

func (o *orchestrator) ChooseMethod(ctx context.Context, input *ChooseMethodInput) (*ChooseMethodOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var flow sheet.Flow
	_, err := o.mutate(ctx, input.SessionID, func(c *command) error {
		var err error
		flow, err = c.controller.ChooseRollMethod(input.Attribute, input.Method, input.ManualValue)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &ChooseMethodOutput{Flow: flow}, nil
}

func (o *orchestrator) ConfirmRoll(ctx context.Context, input *ConfirmRollInput) (*ConfirmRollOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var outcome *sheet.RollOutcome
	saved, err := o.mutate(ctx, input.SessionID, func(c *command) error {
		var err error
		outcome, err = c.controller.ConfirmRoll(input.Attribute)
		return err
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventRollResolved, saved, EventKeyOutcome, outcome)

	return &ConfirmRollOutput{Outcome: outcome}, nil
}

func (o *orchestrator) GetLastOutcome(ctx context.Context, input *GetLastOutcomeInput) (*GetLastOutcomeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var outcome *sheet.RollOutcome
	err := o.view(ctx, input.SessionID, func(c *command) error {
		outcome = c.sheet.LastOutcome()
		if outcome == nil {
			return errors.NotFound("no roll has been confirmed yet")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &GetLastOutcomeOutput{Outcome: outcome}, nil
}

func (o *orchestrator) AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var skill *sheet.Skill
	saved, err := o.mutate(ctx, input.SessionID, func(c *command) error {
		var err error
		skill, err = c.sheet.AddSkill(input.Name, input.Attribute, input.Level, input.MiscBonus, o.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	o.publish(ctx, EventSkillAdded, saved, EventKeySkill, skill)

	return &AddSkillOutput{Skill: skill}, nil
}

func (o *orchestrator) ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out := &ListSkillsOutput{}
	err := o.view(ctx, input.SessionID, func(c *command) error {
		out.Skills = c.sheet.Skills()
		out.TotalSR = c.sheet.TotalSkillSR()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
