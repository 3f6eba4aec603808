package stamp

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces raw identifier values, before prefix and suffix are
// applied. Implementations must be safe for concurrent use: with run-wide
// uniqueness scope, batch workers share one Assigner.
//
// Design decision: We model generation as a single-method interface rather
// than a func type because named implementations document their guarantees
// (randomness vs. determinism) and can carry state such as a counter.
type Generator interface {
	// Generate returns the next raw identifier value.
	Generate() string
}

// UUIDGenerator produces random version 4 UUIDs in their canonical hyphenated
// textual form, e.g. "9f1c6f2e-55a4-4a0b-8d2e-6d1f6a3c9b10". This is the
// default strategy: collisions within a run are astronomically unlikely, so
// the registry check is a correctness backstop rather than the primary
// uniqueness mechanism.
type UUIDGenerator struct{}

// Generate returns a new random UUID string.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// SequentialGenerator produces "prefix1", "prefix2", ... using an atomic
// counter. It exists for deterministic output: reproducible stamping runs and
// tests that need predictable identifiers.
type SequentialGenerator struct {
	// Prefix is prepended to the counter value. May be empty.
	Prefix string

	next atomic.Uint64
}

// NewSequentialGenerator creates a SequentialGenerator whose first emitted
// value is prefix + "1".
func NewSequentialGenerator(prefix string) *SequentialGenerator {
	return &SequentialGenerator{Prefix: prefix}
}

// Generate returns the next counter value as a string.
func (g *SequentialGenerator) Generate() string {
	return g.Prefix + strconv.FormatUint(g.next.Add(1), 10)
}
