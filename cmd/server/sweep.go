package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/internal/platform/config"
	"github.com/KirkDiggler/skill-roller/internal/redis"
	sessionrepo "github.com/KirkDiggler/skill-roller/internal/repositories/session"
)

var sweepYes bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Find and delete session snapshots that no longer load",
	Long: `Scan every stored session in Redis and report snapshots that fail to decode.
With --yes, or after confirming at a terminal, the broken sessions are deleted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadServer()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()

		client, err := redis.Connect(ctx, redis.Topology{
			Addrs:      cfg.RedisAddrs,
			MasterName: cfg.RedisMasterName,
		}, nil)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer func() { _ = client.Close() }()

		sweeper, err := sessionrepo.NewSweeper(client)
		if err != nil {
			return err
		}

		interactive := isatty.IsTerminal(os.Stdin.Fd())
		return runSweep(ctx, sweeper, cmd.InOrStdin(), cmd.OutOrStdout(), sweepYes, interactive)
	},
}

func init() {
	sweepCmd.Flags().BoolVar(&sweepYes, "yes", false, "Delete broken sessions without asking")
	rootCmd.AddCommand(sweepCmd)
}

// sessionSweeper is the part of the sweeper the command drives
type sessionSweeper interface {
	Scan(ctx context.Context) (*sessionrepo.ScanOutput, error)
	Purge(ctx context.Context, ids []string) (int, error)
}

func runSweep(ctx context.Context, sweeper sessionSweeper, in io.Reader, out io.Writer, confirmed, interactive bool) error {
	report, err := sweeper.Scan(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Checked %d sessions, found %d broken\n", report.Checked, len(report.Corrupt))
	if len(report.Corrupt) == 0 {
		return nil
	}

	ids := make([]string, 0, len(report.Corrupt))
	for id := range report.Corrupt {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(out, "  - %s: %s\n", id, report.Corrupt[id])
	}

	if !confirmed && interactive {
		fmt.Fprint(out, "Delete these sessions? (yes/no): ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		confirmed = strings.TrimSpace(answer) == "yes"
	}
	if !confirmed {
		fmt.Fprintln(out, "No changes made")
		return nil
	}

	deleted, err := sweeper.Purge(ctx, ids)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d sessions\n", deleted)
	return nil
}
