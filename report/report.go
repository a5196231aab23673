// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/tspcompare/matrix"
	"github.com/katalvlaran/tspcompare/pointset"
	"github.com/katalvlaran/tspcompare/tsp"
)

// ErrMismatch indicates that a point set and a distance matrix disagree on n.
var ErrMismatch = errors.New("report: points and matrix size mismatch")

// Printer writes reports using a locale-aware number printer.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a Printer formatting numbers for tag.
func NewPrinter(tag language.Tag) *Printer {
	return &Printer{p: message.NewPrinter(tag)}
}

var std = NewPrinter(language.English)

// WriteGraph writes the instance with the English printer (see Printer.WriteGraph).
func WriteGraph(w io.Writer, pts []pointset.Point, dist *matrix.Dense) error {
	return std.WriteGraph(w, pts, dist)
}

// WriteResult writes res with the English printer (see Printer.WriteResult).
func WriteResult(w io.Writer, res tsp.Result) error {
	return std.WriteResult(w, res)
}

// WriteGraph lists every vertex with its coordinates, then every undirected
// edge with its weight in row-major upper-triangle order:
//
//	Vertex 0 (x, y)
//	...
//	Edge (0, 1) - Weight: 123.45
//
// Errors: ErrMismatch when len(pts) differs from the matrix order,
// matrix.ErrNilMatrix for a nil matrix, or the first write error.
func (pr *Printer) WriteGraph(w io.Writer, pts []pointset.Point, dist *matrix.Dense) error {
	if err := matrix.ValidateNotNil(dist); err != nil {
		return fmt.Errorf("WriteGraph: %w", err)
	}
	if dist.Rows() != len(pts) {
		return fmt.Errorf("WriteGraph: %d points, %d×%d matrix: %w", len(pts), dist.Rows(), dist.Cols(), ErrMismatch)
	}
	edges, err := dist.Edges()
	if err != nil {
		return fmt.Errorf("WriteGraph: %w", err)
	}

	ew := &errWriter{w: w, p: pr.p}
	ew.printf("\nGraph with vertices and edges (with weights):\n")
	for i, pt := range pts {
		ew.printf("Vertex %d (%d, %d)\n", i, pt.X, pt.Y)
	}
	ew.printf("\nEdges and their weights:\n")
	for _, e := range edges {
		ew.printf("Edge (%d, %d) - Weight: %.2f\n", e.U, e.V, e.Weight)
	}

	return ew.err
}

// WriteResult writes the algorithm title, the closed vertex sequence, the
// total weight and the elapsed time. Nearest-insertion results additionally
// list their cycle edges, since that solver builds the tour as edges.
func (pr *Printer) WriteResult(w io.Writer, res tsp.Result) error {
	ew := &errWriter{w: w, p: pr.p}
	ew.printf("\n%s Algorithm Result:\n", res.Algorithm)

	if res.Algorithm == tsp.AlgoNearestInsertion && len(res.Edges) > 0 {
		for _, e := range res.Edges {
			ew.printf("Vertex %d -> Vertex %d ", e.From, e.To)
		}
		ew.printf("\n")
	}
	for _, v := range res.Tour {
		ew.printf("Vertex %d ", v)
	}
	ew.printf("\nTotal Weight: %.2f\n", res.Cost)
	ew.printf("Execution Time: %.6f seconds (%s)\n", res.Timing.Seconds(), res.Timing.Source())

	return ew.err
}

// errWriter keeps the first error and turns later writes into no-ops.
type errWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = ew.p.Fprintf(ew.w, format, args...)
}
