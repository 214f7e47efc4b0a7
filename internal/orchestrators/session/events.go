package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
)

// Event types published after a command is saved
const (
	EventRollResolved = "skillcheck.roll.resolved"
	EventSkillAdded   = "skillcheck.skill.added"
)

// Keys set on the event context
const (
	EventKeyOutcome = "outcome"
	EventKeySkill   = "skill"
)

func (o *orchestrator) publish(ctx context.Context, eventType string, s *sheet.Session, key string, value any) {
	event := events.NewGameEvent(eventType, s, nil)
	event.Context().Set(key, value)

	// The command is already saved; subscriber errors are only logged.
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish session event",
			"event_type", eventType,
			"session_id", s.ID,
			"error", err)
	}
}

// LogEvents subscribes a structured logger to every session event and
// returns the subscription IDs
func LogEvents(bus events.EventBus, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	onRoll := func(ctx context.Context, e events.Event) error {
		attrs := []any{"session_id", e.Source().GetID()}
		if v, ok := e.Context().Get(EventKeyOutcome); ok {
			if outcome, ok := v.(*sheet.RollOutcome); ok {
				attrs = append(attrs,
					"attribute", outcome.Attribute,
					"die_result", outcome.DieResult,
					"adjustment", outcome.Adjustment,
					"total_sr", outcome.TotalSR,
					"method", outcome.Method)
			}
		}
		logger.InfoContext(ctx, "roll resolved", attrs...)
		return nil
	}

	onSkill := func(ctx context.Context, e events.Event) error {
		attrs := []any{"session_id", e.Source().GetID()}
		if v, ok := e.Context().Get(EventKeySkill); ok {
			if skill, ok := v.(*sheet.Skill); ok {
				attrs = append(attrs,
					"skill", skill.Name,
					"attribute", skill.BaseAttribute,
					"level", skill.Level,
					"computed_sr", skill.ComputedSR)
			}
		}
		logger.InfoContext(ctx, "skill added", attrs...)
		return nil
	}

	return []string{
		bus.SubscribeFunc(EventRollResolved, 0, onRoll),
		bus.SubscribeFunc(EventSkillAdded, 0, onSkill),
	}
}
