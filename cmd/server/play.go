package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/cmd/server/render"
	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
	"github.com/KirkDiggler/skill-roller/internal/orchestrators/session"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
)

const playHelp = `commands:
  attrs                          show the sheet
  set <attr> <value>             enter a stat value (1-100)
  roll <attr>                    start a roll for an attribute
  method generated               roll the die on confirm
  method manual <value>          use your own d100 result
  confirm                        resolve the active roll
  skill <name> <attr> <level> <misc>
                                 save a skill (level: novice, expert, master)
  skills                         list saved skills
  last                           show the last roll
  help                           show this text
  quit                           end the session`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run a local interactive session",
	Long:  "Run one skill check session in this process, backed by memory.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc, err := newSessionService(serviceDeps{
			repo:   sessionrepo.NewInMemory(),
			logger: logger,
		})
		if err != nil {
			return err
		}

		prompt := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		return runPlay(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), svc, prompt)
	},
}

// player drives one session from line commands
type player struct {
	svc       session.Service
	out       io.Writer
	sessionID string
	active    sheet.AttributeName
}

func runPlay(ctx context.Context, in io.Reader, out io.Writer, svc session.Service, prompt bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	created, err := svc.CreateSession(ctx, &session.CreateSessionInput{})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	p := &player{svc: svc, out: out, sessionID: created.Session.ID}
	fmt.Fprintf(out, "session %s started, type help for commands\n", p.sessionID)

	scanner := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			break
		}

		if err := p.exec(ctx, fields); err != nil {
			fmt.Fprintf(out, "error: %s\n", describe(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	_, err = svc.EndSession(ctx, &session.EndSessionInput{SessionID: p.sessionID})
	return err
}

func (p *player) exec(ctx context.Context, fields []string) error {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		fmt.Fprintln(p.out, playHelp)
		return nil
	case "attrs":
		return p.attrs(ctx)
	case "set":
		return p.set(ctx, args)
	case "roll":
		return p.roll(ctx, args)
	case "method":
		return p.method(ctx, args)
	case "confirm":
		return p.confirm(ctx)
	case "skill":
		return p.skill(ctx, args)
	case "skills":
		return p.skills(ctx)
	case "last":
		return p.last(ctx)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (p *player) attrs(ctx context.Context) error {
	out, err := p.svc.GetAttributes(ctx, &session.GetAttributesInput{SessionID: p.sessionID})
	if err != nil {
		return err
	}
	render.Groups(p.out, out.Groups)
	return nil
}

func (p *player) set(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: set <attr> <value>")
	}
	value, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("value must be a number")
	}

	out, err := p.svc.SetAttributeValue(ctx, &session.SetAttributeValueInput{
		SessionID: p.sessionID,
		Attribute: render.AttributeName(args[0]),
		Value:     value,
	})
	if err != nil {
		return err
	}
	render.Attribute(p.out, out.Attribute)
	return nil
}

func (p *player) roll(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: roll <attr>")
	}

	out, err := p.svc.BeginRoll(ctx, &session.BeginRollInput{
		SessionID: p.sessionID,
		Attribute: render.AttributeName(args[0]),
	})
	if err != nil {
		return err
	}
	p.active = out.Flow.Attribute
	render.Flow(p.out, out.Flow)
	return nil
}

func (p *player) method(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("usage: method generated | method manual <value>")
	}

	input := &session.ChooseMethodInput{
		SessionID: p.sessionID,
		Attribute: p.active,
		Method:    sheet.RollMethod(strings.ToLower(args[0])),
	}
	if len(args) == 2 {
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("manual value must be a number")
		}
		input.ManualValue = &value
	}

	out, err := p.svc.ChooseMethod(ctx, input)
	if err != nil {
		return err
	}
	render.Flow(p.out, out.Flow)
	return nil
}

func (p *player) confirm(ctx context.Context) error {
	out, err := p.svc.ConfirmRoll(ctx, &session.ConfirmRollInput{
		SessionID: p.sessionID,
		Attribute: p.active,
	})
	if err != nil {
		return err
	}
	render.Outcome(p.out, out.Outcome, time.Now())
	return nil
}

func (p *player) skill(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: skill <name> <attr> <level> <misc>")
	}
	misc, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("misc bonus must be a number")
	}

	out, err := p.svc.AddSkill(ctx, &session.AddSkillInput{
		SessionID: p.sessionID,
		Name:      args[0],
		Attribute: render.AttributeName(args[1]),
		Level:     sheet.SkillLevel(strings.ToLower(args[2])),
		MiscBonus: misc,
	})
	if err != nil {
		return err
	}
	render.Skill(p.out, out.Skill)
	return nil
}

func (p *player) skills(ctx context.Context) error {
	out, err := p.svc.ListSkills(ctx, &session.ListSkillsInput{SessionID: p.sessionID})
	if err != nil {
		return err
	}
	render.Skills(p.out, out.Skills, out.TotalSR)
	return nil
}

func (p *player) last(ctx context.Context) error {
	out, err := p.svc.GetLastOutcome(ctx, &session.GetLastOutcomeInput{SessionID: p.sessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			fmt.Fprintln(p.out, "nothing rolled yet")
			return nil
		}
		return err
	}
	render.Outcome(p.out, out.Outcome, time.Now())
	return nil
}

// describe turns service errors into a single line for the prompt
func describe(err error) string {
	var e *errors.Error
	if !errors.As(err, &e) {
		return err.Error()
	}

	fields := errors.ValidationFields(err)
	if len(fields) == 0 {
		return e.Message
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(e.Message)
	for _, name := range names {
		fmt.Fprintf(&b, "; %s: %s", name, strings.Join(fields[name], ", "))
	}
	return b.String()
}
