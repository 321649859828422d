// SPDX-License-Identifier: MIT
package reduce

import "errors"

// ErrInfeasible indicates that the reduced instance cannot connect its
// terminals.
var ErrInfeasible = errors.New("reduce: instance is infeasible")

// ErrNoRoot indicates a graph without root.
var ErrNoRoot = errors.New("reduce: graph has no root")

// Stats counts what a reduction pass changed.
type Stats struct {
	Deleted    int     // nodes removed
	Contracted int     // degree-2 nodes replaced by an edge
	Fixed      int     // edges fixed into every solution
	Offset     float64 // cost of the fixed edges
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Deleted += o.Deleted
	s.Contracted += o.Contracted
	s.Fixed += o.Fixed
	s.Offset += o.Offset
}

// Changed reports whether anything was reduced.
func (s Stats) Changed() bool {
	return s.Deleted+s.Contracted+s.Fixed > 0
}
