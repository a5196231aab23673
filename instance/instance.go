// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/pointset"
	"github.com/katalvlaran/tspcompare/tsp"
)

// Instance is one TSP instance: labeled points and their distance matrix.
type Instance struct {
	Points []pointset.Point
	Dist   *matrix.Dense

	rng    *rand.Rand
	bounds pointset.Bounds
}

// config holds the resolved options of New.
type config struct {
	rng    *rand.Rand
	bounds pointset.Bounds
}

// Option customizes New.
type Option func(*config)

// WithRand makes the instance draw from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds the instance's source deterministically. A zero seed is
// taken literally; use no option at all for a wall-clock seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the coordinate domain. Panics when b.Validate fails.
func WithBounds(b pointset.Bounds) Option {
	if err := b.Validate(); err != nil {
		panic("instance: WithBounds: " + err.Error())
	}
	return func(c *config) {
		c.bounds = b
	}
}

// New generates n points and their distance matrix.
//
// Errors: pointset.ErrTooFewVertices for n < 1, wrapped with "instance.New".
//
// Complexity: O(n²) time and space (matrix construction dominates).
func New(n int, opts ...Option) (*Instance, error) {
	cfg := config{bounds: pointset.DefaultBounds}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = pointset.NewClockRand()
	}

	return build(n, cfg.rng, cfg.bounds)
}

// build generates the instance from an already resolved source and domain.
func build(n int, rng *rand.Rand, bounds pointset.Bounds) (*Instance, error) {
	pts, err := pointset.Generate(n, pointset.WithRand(rng), pointset.WithBounds(bounds))
	if err != nil {
		return nil, fmt.Errorf("instance.New: %w", err)
	}
	dist, err := matrix.Euclidean(pts)
	if err != nil {
		return nil, fmt.Errorf("instance.New: %w", err)
	}

	return &Instance{Points: pts, Dist: dist, rng: rng, bounds: bounds}, nil
}

// Regenerate returns a new Instance with n fresh points drawn from the same
// random stream and domain. The receiver is left untouched.
func (in *Instance) Regenerate(n int) (*Instance, error) {
	return build(n, in.rng, in.bounds)
}

// Len returns the number of vertices.
func (in *Instance) Len() int {
	return len(in.Points)
}

// Rand exposes the instance's random source so that solvers needing a
// random start draw from the same per-process stream.
func (in *Instance) Rand() *rand.Rand {
	return in.rng
}

// Solve runs algo on the instance. opts.Algo is overwritten with algo and,
// when opts.Rand is nil, the instance's source is used for random starts.
func (in *Instance) Solve(algo tsp.Algorithm, opts tsp.Options) (tsp.Result, error) {
	opts.Algo = algo
	if opts.Rand == nil {
		opts.Rand = in.rng
	}

	return tsp.Solve(in.Dist, opts)
}
