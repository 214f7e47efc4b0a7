package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/skill-roller/internal/entities/sheet"
	"github.com/KirkDiggler/skill-roller/internal/errors"
)

// InMemoryRepository implements Repository in process memory. Sessions are
// kept as JSON so callers never share pointers with the store.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.AlreadyExists("session already exists").WithMeta("session_id", input.Session.ID)
	}
	r.store[input.Session.ID] = data

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}

	var s sheet.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal session")
	}
	return &GetOutput{Session: &s}, nil
}

// Update replaces an existing session
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSession(input.Session); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.Session.ID)
	}
	r.store[input.Session.ID] = data

	return &UpdateOutput{Session: input.Session}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("session %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}
