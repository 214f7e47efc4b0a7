package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/cmd/server/render"
	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
)

var (
	method      string
	manualValue int
)

var beginRollCmd = &cobra.Command{
	Use:   "begin-roll",
	Short: "Select an attribute to roll",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.BeginRoll(ctx, rollRequest())
			if err != nil {
				return fmt.Errorf("failed to begin roll: %w", err)
			}
			render.Flow(cmd.OutOrStdout(), resp.Flow)
			return nil
		})
	},
}

var chooseMethodCmd = &cobra.Command{
	Use:   "choose-method",
	Short: "Pick generated or manual for the active roll",
	Long: `Pick how the die result is obtained. A manual roll takes --manual-value;
values outside 1-100 are clamped.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		req := &v1alpha1.ChooseMethodRequest{
			SessionID: sessionID,
			Attribute: string(render.AttributeName(attribute)),
			Method:    method,
		}
		if cmd.Flags().Changed("manual-value") {
			req.ManualValue = &manualValue
		}

		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ChooseMethod(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to choose method: %w", err)
			}
			render.Flow(cmd.OutOrStdout(), resp.Flow)
			return nil
		})
	},
}

var confirmRollCmd = &cobra.Command{
	Use:   "confirm-roll",
	Short: "Resolve the active roll",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ConfirmRoll(ctx, rollRequest())
			if err != nil {
				return fmt.Errorf("failed to confirm roll: %w", err)
			}
			render.Outcome(cmd.OutOrStdout(), resp.Outcome, time.Now())
			return nil
		})
	},
}

var lastOutcomeCmd = &cobra.Command{
	Use:   "last-outcome",
	Short: "Show the most recent roll",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.GetLastOutcome(ctx, sessionID)
			if err != nil {
				return fmt.Errorf("failed to get last outcome: %w", err)
			}
			render.Outcome(cmd.OutOrStdout(), resp.Outcome, time.Now())
			return nil
		})
	},
}

func rollRequest() *v1alpha1.RollRequest {
	return &v1alpha1.RollRequest{
		SessionID: sessionID,
		Attribute: string(render.AttributeName(attribute)),
	}
}

func init() {
	for _, cmd := range []*cobra.Command{beginRollCmd, chooseMethodCmd, confirmRollCmd} {
		requireSessionFlag(cmd)
		cmd.Flags().StringVar(&attribute, "attribute", "", "Attribute being rolled (required)")
		_ = cmd.MarkFlagRequired("attribute") // nolint:errcheck // safe to ignore in init
	}

	chooseMethodCmd.Flags().StringVar(&method, "method", "generated", "Roll method: generated or manual")
	chooseMethodCmd.Flags().IntVar(&manualValue, "manual-value", 0, "Your own d100 result for a manual roll")

	requireSessionFlag(lastOutcomeCmd)
}
