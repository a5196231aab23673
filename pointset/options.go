// SPDX-License-Identifier: MIT
// Package: tspcompare/pointset
//
// options.go - functional options and the resolved generator configuration.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • newConfig applies options in order; later options override earlier ones.
//   • A nil rng after option resolution means "seed from the wall clock".

package pointset

import (
	"fmt"
	"math/rand"
	"time"
)

// Bounds is an inclusive rectangular domain for generated coordinates.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// DefaultBounds is the domain used when WithBounds is not supplied.
var DefaultBounds = Bounds{MinX: 50, MaxX: 800, MinY: 50, MaxY: 600}

// Contains reports whether p lies inside b (inclusive on every side).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Validate reports ErrInvalidBounds unless b is a non-empty domain with
// non-negative corners.
func (b Bounds) Validate() error {
	if b.MinX < 0 || b.MinY < 0 || b.MinX > b.MaxX || b.MinY > b.MaxY {
		return fmt.Errorf("Bounds.Validate: x=[%d,%d] y=[%d,%d]: %w", b.MinX, b.MaxX, b.MinY, b.MaxY, ErrInvalidBounds)
	}

	return nil
}

// config aggregates the knobs of Generate. Passed by value.
type config struct {
	rng    *rand.Rand
	bounds Bounds
}

// Option customizes Generate.
type Option func(*config)

// WithRand supplies an explicit RNG. The caller owns the stream; *rand.Rand is
// not goroutine-safe. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("pointset: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a deterministic RNG from seed. Use it in tests and examples.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds overrides the coordinate domain. Panics on an empty or negative domain.
func WithBounds(b Bounds) Option {
	if err := b.Validate(); err != nil {
		panic("pointset: WithBounds: " + err.Error())
	}
	return func(c *config) {
		c.bounds = b
	}
}

// newConfig resolves opts over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{bounds: DefaultBounds}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = NewClockRand()
	}

	return cfg
}

// NewClockRand returns a source seeded from the current wall-clock time.
// Call it once per process and share the result through WithRand when several
// generations should come from the same stream.
func NewClockRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
