// Package idgen provides ID generation utilities
package idgen

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/KirkDiggler/skill-roller/internal/pkg/clock"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/skill-roller/internal/pkg/idgen Generator

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// SequentialGenerator generates sequential IDs for testing and local play
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// ULIDGenerator generates lexically sortable IDs, so records created later
// sort after earlier ones
type ULIDGenerator struct {
	prefix  string
	clock   clock.Clock
	mu      sync.Mutex
	entropy io.Reader
}

// NewULID creates a ULID generator stamped from c. A nil clock uses real time.
func NewULID(prefix string, c clock.Clock) *ULIDGenerator {
	if c == nil {
		c = clock.New()
	}
	return &ULIDGenerator{
		prefix:  prefix,
		clock:   c,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Generate creates a new ULID-based ID
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	id := ulid.MustNew(ulid.Timestamp(g.clock.Now()), g.entropy).String()
	g.mu.Unlock()

	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}
