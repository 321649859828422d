// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/steinercore/core"
)

const (
	methodGrid  = "Grid"
	methodHanan = "HananGrid"
	minGridDim  = 1
)

// Grid appends a rows×cols 4-neighbourhood grid in row-major order: cell
// (r,c) is node b + r*cols + c. For every cell the right edge is emitted
// before the bottom one.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		b := g.AddNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := b + r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Point is a terminal location of a rectilinear instance.
type Point struct{ X, Y float64 }

// HananGrid appends the Hanan grid of pts: one node per crossing of the
// distinct x and y coordinates, edges between neighbouring crossings
// priced by their rectilinear distance. The nodes at pts become
// terminals, the first point is the root and the graph type is RSMT.
// Edge costs ignore the builder's WeightFn.
func HananGrid(pts []Point) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(pts) < 2 {
			return fmt.Errorf("%s: %d points: %w", methodHanan, len(pts), ErrTooFewVertices)
		}
		xs, ys := distinct(pts, func(p Point) float64 { return p.X }), distinct(pts, func(p Point) float64 { return p.Y })
		cols := len(xs)
		b := g.AddNodes(len(xs) * len(ys))
		at := func(r, c int) int { return b + r*cols + c }

		for r := range ys {
			for c := range xs {
				if c+1 < cols {
					w := xs[c+1] - xs[c]
					if _, err := g.AddEdge(at(r, c), at(r, c+1), w, w); err != nil {
						return fmt.Errorf("%s: %w", methodHanan, err)
					}
				}
				if r+1 < len(ys) {
					w := ys[r+1] - ys[r]
					if _, err := g.AddEdge(at(r, c), at(r+1, c), w, w); err != nil {
						return fmt.Errorf("%s: %w", methodHanan, err)
					}
				}
			}
		}

		for i, p := range pts {
			k := at(sort.SearchFloat64s(ys, p.Y), sort.SearchFloat64s(xs, p.X))
			if i == 0 {
				if err := g.SetRoot(k); err != nil {
					return fmt.Errorf("%s: %w", methodHanan, err)
				}
				continue
			}
			g.SetTerm(k, core.Terminal)
		}
		g.SetType(core.RSMT)

		return nil
	}
}

// distinct returns the sorted distinct coordinates of pts.
func distinct(pts []Point, coord func(Point) float64) []float64 {
	out := make([]float64, 0, len(pts))
	for _, p := range pts {
		out = append(out, coord(p))
	}
	sort.Float64s(out)
	n := 0
	for i, v := range out {
		if i == 0 || v != out[n-1] {
			out[n] = v
			n++
		}
	}

	return out[:n]
}
