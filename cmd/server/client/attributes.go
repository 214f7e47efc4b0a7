package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/cmd/server/render"
	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
)

var (
	attribute      string
	attributeValue int
)

var getAttributesCmd = &cobra.Command{
	Use:   "get-attributes",
	Short: "Show the sheet grouped by category",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.GetAttributes(ctx, sessionID)
			if err != nil {
				return fmt.Errorf("failed to get attributes: %w", err)
			}
			render.Groups(cmd.OutOrStdout(), resp.Groups)
			return nil
		})
	},
}

var setAttributeCmd = &cobra.Command{
	Use:   "set-attribute",
	Short: "Enter a stat value",
	Long:  `Set an attribute to a value between 1 and 100. The SR is recomputed from the tens digit.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.SetAttributeValue(ctx, &v1alpha1.SetAttributeValueRequest{
				SessionID: sessionID,
				Attribute: string(render.AttributeName(attribute)),
				Value:     attributeValue,
			})
			if err != nil {
				return fmt.Errorf("failed to set attribute: %w", err)
			}
			render.Attribute(cmd.OutOrStdout(), resp.Attribute)
			return nil
		})
	},
}

func init() {
	requireSessionFlag(getAttributesCmd)

	requireSessionFlag(setAttributeCmd)
	setAttributeCmd.Flags().StringVar(&attribute, "attribute", "", "Attribute name, e.g. Str (required)")
	setAttributeCmd.Flags().IntVar(&attributeValue, "value", 0, "Stat value 1-100 (required)")
	_ = setAttributeCmd.MarkFlagRequired("attribute") // nolint:errcheck // safe to ignore in init
	_ = setAttributeCmd.MarkFlagRequired("value")     // nolint:errcheck // safe to ignore in init
}
