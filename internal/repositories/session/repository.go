// Package session stores skill check session snapshots
package session

import (
	"context"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/skill-roller/internal/repositories/session Repository

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Session *sheet.Session
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *sheet.Session
}

// GetInput contains parameters for loading a session
type GetInput struct {
	ID string
}

// GetOutput contains the loaded session
type GetOutput struct {
	Session *sheet.Session
}

// UpdateInput contains the full session snapshot to write
type UpdateInput struct {
	Session *sheet.Session
}

// UpdateOutput contains the written session
type UpdateOutput struct {
	Session *sheet.Session
}

// DeleteInput contains parameters for removing a session
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; a successful delete returns no data
type DeleteOutput struct{}

// Repository defines session storage. Sessions are whole snapshots: Update
// replaces everything stored under the ID.
type Repository interface {
	// Create stores a new session; AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get loads a session; NotFound once it is deleted or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session; NotFound if it is gone
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a session; NotFound if it is gone
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errSessionNil   = "session cannot be nil"
	errSessionIDNil = "session ID cannot be empty"
)
