package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/cmd/server/render"
	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
)

var createSessionCmd = &cobra.Command{
	Use:   "create-session",
	Short: "Start a new session",
	Long:  `Start a session with every attribute at 50 and print its ID.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.CreateSession(ctx)
			if err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Session ID: %s\n\n", resp.SessionID)
			render.Groups(out, resp.Groups)
			return nil
		})
	},
}

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "End a session and discard its sheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			if err := client.EndSession(ctx, sessionID); err != nil {
				return fmt.Errorf("failed to end session: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Session %s ended\n", sessionID)
			return nil
		})
	},
}

func init() {
	requireSessionFlag(endSessionCmd)
}
