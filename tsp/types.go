// Package tsp - shared types, options and sentinel errors.
//
// Error policy:
//   - Solvers return only the sentinels below, wrapped with "<Solver>: ..." via %w.
//   - Callers branch with errors.Is; messages are not part of the contract.
//   - No solver panics on user input.
package tsp

import (
	"errors"
	"io"
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/tspcompare/timing"
)

var (
	// ErrTooFewVertices is returned when the instance is smaller than the
	// algorithm needs (empty for any solver, singleton for nearest insertion).
	ErrTooFewVertices = errors.New("tsp: too few vertices")

	// ErrIntractable is returned by BruteForce when n exceeds the configured
	// limit and the caller did not set Options.AllowIntractable.
	ErrIntractable = errors.New("tsp: instance too large for exhaustive search")

	// ErrNilMatrix is returned for a nil distance matrix.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrAsymmetric is returned when D[i][j] != D[j][i] beyond symTol.
	ErrAsymmetric = errors.New("tsp: distance matrix is not symmetric")

	// ErrNonZeroDiagonal is returned when some D[i][i] differs from zero.
	ErrNonZeroDiagonal = errors.New("tsp: non-zero self distance")

	// ErrInvalidWeight is returned for NaN, ±Inf or negative distances.
	ErrInvalidWeight = errors.New("tsp: invalid distance value")

	// ErrStartOutOfRange is returned when Options.StartVertex is outside [0,n)
	// and is not RandomStart.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrUnsupportedAlgorithm is returned by Solve for an unknown Algorithm.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrDimensionMismatch is returned by tour/edge validators when a tour does
	// not describe a Hamiltonian cycle over n vertices.
	ErrDimensionMismatch = errors.New("tsp: tour does not match instance")
)

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// AlgoNearestNeighbor is the greedy nearest-unvisited tour builder.
	AlgoNearestNeighbor Algorithm = iota + 1
	// AlgoNearestInsertion grows a cycle by cheapest insertion of the nearest vertex.
	AlgoNearestInsertion
	// AlgoBruteForce enumerates all (n-1)! fixed-start permutations.
	AlgoBruteForce
)

// String returns the human-readable algorithm name used in reports.
func (a Algorithm) String() string {
	switch a {
	case AlgoNearestNeighbor:
		return "Nearest Neighbor"
	case AlgoNearestInsertion:
		return "Nearest Insertion"
	case AlgoBruteForce:
		return "Brute Force"
	default:
		return "Unknown"
	}
}

// RandomStart asks NearestNeighbor to pick its start vertex uniformly at random.
const RandomStart = -1

// DefaultBruteForceLimit is the largest n BruteForce accepts without
// Options.AllowIntractable. 10! ≈ 3.6M tours is still interactive; each extra
// vertex multiplies the work by n-1.
const DefaultBruteForceLimit = 11

// Options configures the solvers. Obtain defaults from DefaultOptions.
type Options struct {
	// Algo selects the solver in Solve. Ignored by direct solver calls.
	Algo Algorithm

	// StartVertex fixes the nearest-neighbor start; RandomStart draws it.
	StartVertex int

	// Rand is the random source for RandomStart. When nil a source derived from
	// Seed is used. *rand.Rand is not goroutine-safe.
	Rand *rand.Rand

	// Seed feeds the fallback source when Rand is nil. A non-zero Seed makes
	// RandomStart reproducible; 0 seeds from the wall clock on every call.
	Seed int64

	// BruteForceLimit caps BruteForce; values ≤ 0 mean DefaultBruteForceLimit.
	BruteForceLimit int

	// AllowIntractable acknowledges that BruteForce may run for (n-1)! steps.
	AllowIntractable bool

	// Logger receives advisory warnings. nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns options for a random-start nearest-neighbor run with
// the default brute-force limit.
func DefaultOptions() Options {
	return Options{
		Algo:            AlgoNearestNeighbor,
		StartVertex:     RandomStart,
		BruteForceLimit: DefaultBruteForceLimit,
	}
}

// Edge is a directed cycle edge From → To.
type Edge struct {
	From, To int
}

// Result is the outcome of one solver run.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm

	// Tour is the closed vertex sequence; len(Tour) == n+1 and Tour[0] == Tour[n].
	Tour []int

	// Edges lists the n directed cycle edges in traversal order, so
	// Edges[k].To == Edges[k+1].From and Edges[n-1].To == Edges[0].From.
	Edges []Edge

	// Cost is the total cycle weight including the closing edge.
	Cost float64

	// Timing brackets the solver's core loop only.
	Timing timing.Measurement
}

// logger resolves opts.Logger, discarding output when unset.
func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bruteForceLimit resolves the effective brute-force limit.
func (o Options) bruteForceLimit() int {
	if o.BruteForceLimit <= 0 {
		return DefaultBruteForceLimit
	}

	return o.BruteForceLimit
}
