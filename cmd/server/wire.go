package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/skill-roller/internal/engine"
	"github.com/KirkDiggler/skill-roller/internal/orchestrators/session"
	"github.com/KirkDiggler/skill-roller/internal/pkg/clock"
	"github.com/KirkDiggler/skill-roller/internal/pkg/idgen"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
)

// serviceDeps are the parts of the session service that differ between the
// server, the local REPL and tests
type serviceDeps struct {
	repo   sessionrepo.Repository
	roller dice.Roller
	logger *slog.Logger
}

// newSessionService builds the session orchestrator and subscribes the event
// logger to its bus
func newSessionService(deps serviceDeps) (session.Service, error) {
	eng, err := engine.New(&engine.Config{DiceRoller: deps.roller})
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	session.LogEvents(bus, deps.logger)

	clk := clock.New()
	return session.NewOrchestrator(&session.Config{
		SessionRepo:       deps.repo,
		Engine:            eng,
		EventBus:          bus,
		IDGenerator:       idgen.NewUUID("sess"),
		RecordIDGenerator: idgen.NewULID("", clk),
		Clock:             clk,
	})
}
