// Package client provides commands that call a running skill check server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/skill-roller/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	// sessionID is shared by every command that works on an existing session
	sessionID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call the skill check service",
	Long:  `Client commands drive a session on a running server with real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Session lifecycle
	ClientCmd.AddCommand(createSessionCmd)
	ClientCmd.AddCommand(endSessionCmd)

	// Sheet
	ClientCmd.AddCommand(getAttributesCmd)
	ClientCmd.AddCommand(setAttributeCmd)

	// Roll flow
	ClientCmd.AddCommand(beginRollCmd)
	ClientCmd.AddCommand(chooseMethodCmd)
	ClientCmd.AddCommand(confirmRollCmd)
	ClientCmd.AddCommand(lastOutcomeCmd)

	// Skills
	ClientCmd.AddCommand(addSkillCmd)
	ClientCmd.AddCommand(listSkillsCmd)
}

// requireSessionFlag registers --session-id on a command
func requireSessionFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID (required)")
	_ = cmd.MarkFlagRequired("session-id") // nolint:errcheck // safe to ignore in init
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// withClient opens a connection, runs fn under the request timeout and
// closes the connection
func withClient(fn func(ctx context.Context, client *v1alpha1.Client) error) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, v1alpha1.NewClient(conn))
}
