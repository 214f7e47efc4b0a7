// Package main is the entry point for the skill check server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/skill-roller/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "skill-roller",
	Short: "Skill Rating roller",
	Long: `Skill Rating roller resolves percentile skill checks: enter stat values,
roll or enter a d100, and track the resulting SR adjustments and skills.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
