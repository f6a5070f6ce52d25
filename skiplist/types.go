// Package skiplist implements an ordered index over opaque payloads with
// logarithmic expected search and insertion cost. Balance comes from
// randomized promotion rather than rotations: every element is stored as one
// contiguous block of per-level records inside an arena, so moving one level
// down while staying on the same element is a constant-offset index step.
//
// The package is single-threaded by contract. Callers needing concurrent
// access must serialize externally.
package skiplist

import (
	randv2 "math/rand/v2"

	"github.com/pkg/errors"
)

// Comparator is the caller-supplied three-way ordering over key handles.
// It must return a negative value when a < b, zero when a == b, and a
// positive value when a > b. Only the sign is ever inspected. The function
// must describe a consistent total ordering for the list invariants to hold.
type Comparator[K any] func(a, b K) int

// Errors reported by the list. Mutating operations leave the structure
// unchanged when they fail.
var (
	// ErrNilComparator is returned by New when no comparator is supplied.
	ErrNilComparator = errors.New("skiplist: nil comparator")
	// ErrNilElement is returned by Insert when the element is nil.
	ErrNilElement = errors.New("skiplist: nil element")
	// ErrArenaFull is returned by Insert when the arena's configured
	// capacity is exhausted.
	ErrArenaFull = errors.New("skiplist: arena capacity exhausted")
	// ErrBadConfig is returned by New for out-of-range configuration.
	ErrBadConfig = errors.New("skiplist: invalid configuration")
	// ErrCorrupted signals a broken structural invariant discovered during
	// traversal. It is raised by panic: corruption is a programming error,
	// not a recoverable runtime condition.
	ErrCorrupted = errors.New("skiplist: structural corruption detected")
)

// Config holds construction parameters for a List.
type Config struct {
	// levels is the fixed number of stacked lists, chosen at construction.
	levels int

	// probability is the chance a single promotion roll succeeds.
	probability float64

	// capacity bounds the number of live elements; zero means unbounded.
	capacity int

	// src drives promotion rolls. Injected so tests can be deterministic.
	src randv2.Source
}

// Option mutates a Config before validation.
type Option func(*Config)

// NewConfig creates a Config with default values: four levels, a promotion
// probability of one half, an unbounded arena, and a randomly seeded PCG
// source.
func NewConfig() Config {
	return Config{
		levels:      4,
		probability: 0.5,
	}
}

// WithLevels sets the fixed number of levels. Must be at least 1.
func WithLevels(levels int) Option {
	return func(c *Config) { c.levels = levels }
}

// WithProbability sets the promotion probability. Must be in (0, 1).
func WithProbability(p float64) Option {
	return func(c *Config) { c.probability = p }
}

// WithCapacity caps the number of live elements the arena will hold.
// Zero disables the cap.
func WithCapacity(n int) Option {
	return func(c *Config) { c.capacity = n }
}

// WithRandSource injects the random source used for promotion rolls.
func WithRandSource(src randv2.Source) Option {
	return func(c *Config) { c.src = src }
}

func (c Config) validate() error {
	if c.levels < 1 {
		return errors.Wrapf(ErrBadConfig, "levels %d, want >= 1", c.levels)
	}
	if c.probability <= 0 || c.probability >= 1 {
		return errors.Wrapf(ErrBadConfig, "probability %v, want in (0, 1)", c.probability)
	}
	if c.capacity < 0 {
		return errors.Wrapf(ErrBadConfig, "capacity %d, want >= 0", c.capacity)
	}
	return nil
}
