package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/cmd/server/render"
	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
)

var (
	skillName  string
	skillLevel string
	miscBonus  int
)

var addSkillCmd = &cobra.Command{
	Use:   "add-skill",
	Short: "Save a skill built on an attribute",
	Long: `Save a skill. Its SR is the attribute's current SR plus the level bonus
(novice 2, expert 4, master 6) plus the misc bonus, frozen at save time.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.AddSkill(ctx, &v1alpha1.AddSkillRequest{
				SessionID: sessionID,
				Name:      skillName,
				Attribute: string(render.AttributeName(attribute)),
				Level:     skillLevel,
				MiscBonus: miscBonus,
			})
			if err != nil {
				return fmt.Errorf("failed to add skill: %w", err)
			}
			render.Skill(cmd.OutOrStdout(), resp.Skill)
			return nil
		})
	},
}

var listSkillsCmd = &cobra.Command{
	Use:   "list-skills",
	Short: "List saved skills and their total SR",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withClient(func(ctx context.Context, client *v1alpha1.Client) error {
			resp, err := client.ListSkills(ctx, sessionID)
			if err != nil {
				return fmt.Errorf("failed to list skills: %w", err)
			}
			render.Skills(cmd.OutOrStdout(), resp.Skills, resp.TotalSR)
			return nil
		})
	},
}

func init() {
	requireSessionFlag(addSkillCmd)
	addSkillCmd.Flags().StringVar(&skillName, "name", "", "Skill name (required)")
	addSkillCmd.Flags().StringVar(&attribute, "attribute", "", "Base attribute (required)")
	addSkillCmd.Flags().StringVar(&skillLevel, "level", "novice", "novice, expert or master")
	addSkillCmd.Flags().IntVar(&miscBonus, "misc", 0, "Misc bonus")
	_ = addSkillCmd.MarkFlagRequired("name")      // nolint:errcheck // safe to ignore in init
	_ = addSkillCmd.MarkFlagRequired("attribute") // nolint:errcheck // safe to ignore in init

	requireSessionFlag(listSkillsCmd)
}
