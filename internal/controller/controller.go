// Package controller sequences the roll flow of one session:
// select an attribute, choose how to roll, confirm. Numbers come from the
// engine and every write goes through the state sheet.
package controller

import (
	"github.com/KirkDiggler/skill-roller/internal/engine"
	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/pkg/clock"
	"github.com/KirkDiggler/skill-roller/internal/state"
)

// Controller drives the roll state machine
//
//	Idle → AwaitingRollMethod → AwaitingConfirmation → Resolved
//
// Rejected commands leave both the flow and the sheet untouched.
type Controller struct {
	sheet  *state.Sheet
	engine engine.Engine
	clock  clock.Clock
}

// Config holds the dependencies for a Controller
type Config struct {
	Sheet  *state.Sheet
	Engine engine.Engine
	Clock  clock.Clock
}

// Validate checks required fields and fills defaults
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Sheet == nil {
		vb.RequiredField("Sheet")
	}
	if cfg.Engine == nil {
		vb.RequiredField("Engine")
	}
	if err := vb.Build(); err != nil {
		return err
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// New creates a controller over one sheet
func New(cfg *Config) (*Controller, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		sheet:  cfg.Sheet,
		engine: cfg.Engine,
		clock:  cfg.Clock,
	}, nil
}

func (c *Controller) flow() *sheet.Flow {
	return &c.sheet.Session().Flow
}

// Snapshot returns a copy of the current flow
func (c *Controller) Snapshot() sheet.Flow {
	f := *c.flow()
	if f.ManualValue != nil {
		v := *f.ManualValue
		f.ManualValue = &v
	}
	if f.State == "" {
		f.State = sheet.FlowStateIdle
	}
	return f
}

// SelectAttribute starts a roll for name from any state. An unconfirmed
// flow for another attribute is abandoned.
func (c *Controller) SelectAttribute(name sheet.AttributeName) (sheet.Flow, error) {
	if !sheet.IsKnownAttribute(name) {
		return sheet.Flow{}, errors.InvalidArgumentf("unknown attribute %q", name)
	}

	*c.flow() = sheet.Flow{
		State:     sheet.FlowStateAwaitingRollMethod,
		Attribute: name,
	}
	return c.Snapshot(), nil
}

// ChooseRollMethod picks how the die result is obtained. A manual choice
// without a value is remembered but keeps the flow waiting for one.
func (c *Controller) ChooseRollMethod(name sheet.AttributeName, method sheet.RollMethod, manualValue *int) (sheet.Flow, error) {
	if err := c.requireActive("choose_roll_method", name,
		sheet.FlowStateAwaitingRollMethod, sheet.FlowStateAwaitingConfirmation); err != nil {
		return sheet.Flow{}, err
	}

	f := c.flow()
	switch method {
	case sheet.RollMethodGenerated:
		f.Method = method
		f.ManualValue = nil
		f.State = sheet.FlowStateAwaitingConfirmation
	case sheet.RollMethodManual:
		f.Method = method
		if manualValue == nil {
			f.ManualValue = nil
			f.State = sheet.FlowStateAwaitingRollMethod
			break
		}
		v := engine.ClampPercentile(*manualValue)
		f.ManualValue = &v
		f.State = sheet.FlowStateAwaitingConfirmation
	default:
		return sheet.Flow{}, errors.NewValidationBuilder().
			Fieldf("method", "must be one of: %s, %s", sheet.RollMethodGenerated, sheet.RollMethodManual).
			Build()
	}

	return c.Snapshot(), nil
}

// ConfirmRoll resolves the active roll and records it on the sheet. With no
// method chosen the die is generated.
func (c *Controller) ConfirmRoll(name sheet.AttributeName) (*sheet.RollOutcome, error) {
	if err := c.requireActive("confirm_roll", name,
		sheet.FlowStateAwaitingRollMethod, sheet.FlowStateAwaitingConfirmation); err != nil {
		return nil, err
	}

	f := c.flow()
	method := f.Method
	if method == "" {
		method = sheet.RollMethodGenerated
	}

	var dieResult int
	switch {
	case method == sheet.RollMethodManual && f.ManualValue != nil:
		dieResult = *f.ManualValue
	case method == sheet.RollMethodManual:
		return nil, invalidTransition("confirm_roll", f.State, "manual value has not been entered")
	default:
		result, err := c.engine.RollPercentile()
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll")
		}
		dieResult = result
	}

	outcome, err := c.sheet.RecordRoll(name, dieResult, method, c.clock.Now())
	if err != nil {
		return nil, err
	}

	f.Method = method
	f.State = sheet.FlowStateResolved
	return outcome, nil
}

func (c *Controller) requireActive(command string, name sheet.AttributeName, allowed ...sheet.FlowState) error {
	f := c.Snapshot()

	permitted := false
	for _, st := range allowed {
		if f.State == st {
			permitted = true
			break
		}
	}
	if !permitted {
		return invalidTransition(command, f.State, "no roll in progress")
	}
	if f.Attribute != name {
		return invalidTransition(command, f.State,
			"active roll is for "+string(f.Attribute)+", not "+string(name))
	}
	return nil
}

func invalidTransition(command string, from sheet.FlowState, reason string) error {
	return errors.FailedPreconditionf("cannot %s from %s: %s", command, from, reason).
		WithMeta("command", command).
		WithMeta("state", string(from))
}

// IsInvalidStateTransition reports whether err rejected a command because of
// the current flow state
func IsInvalidStateTransition(err error) bool {
	return errors.IsFailedPrecondition(err)
}
