// github.com/fenwick-labs/raster - a 2D vector rasterizer
// Copyright (C) 2026  The raster Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster

import "github.com/fenwick-labs/raster/geom"

// Path accumulates MoveTo/LineTo/CurveTo/ClosePath commands into a flat list
// of edges, flattening curves as they arrive. It carries a sticky status:
// once a call fails, every subsequent call is a no-op until Reset.
type Path struct {
	edges   []geom.Edge
	current geom.Point
	start   geom.Point
	open    bool // true once a MoveTo has established a current point
	err     error
}

// NewPath returns an empty path ready to accept commands.
func NewPath() *Path {
	return &Path{}
}

// Err returns the path's sticky error, or nil if no command has failed.
func (p *Path) Err() error {
	return p.err
}

// Edges returns the edges accumulated so far. The slice aliases the path's
// internal buffer and is invalidated by the next mutating call.
func (p *Path) Edges() []geom.Edge {
	return p.edges
}

// Reset clears the path back to its zero state, including its sticky
// status, so the same Path value can be reused for the next fill without
// reallocating its edge buffer.
func (p *Path) Reset() {
	p.edges = p.edges[:0]
	p.current = geom.Point{}
	p.start = geom.Point{}
	p.open = false
	p.err = nil
}

func (p *Path) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// addEdge appends the directed edge (from, to) unless it is degenerate
// (zero length), which contributes nothing to either winding rule.
func (p *Path) addEdge(from, to geom.Point) {
	if from == to {
		return
	}
	p.edges = append(p.edges, geom.NewEdge(from, to))
}

// MoveTo starts a new subpath at (x, y). It closes no sub-path implicitly:
// any edges still needed to close the previous figure must come from an
// explicit ClosePath call.
func (p *Path) MoveTo(x, y float32) *Path {
	if p.err != nil {
		return p
	}
	pt := geom.Point{X: x, Y: y}
	p.current = pt
	p.start = pt
	p.open = true
	return p
}

// LineTo appends a straight edge from the current point to (x, y). It fails
// with ErrInvalidPath if no MoveTo has established a current point.
func (p *Path) LineTo(x, y float32) *Path {
	if p.err != nil {
		return p
	}
	if !p.open {
		p.fail(ErrInvalidPath)
		return p
	}
	to := geom.Point{X: x, Y: y}
	p.addEdge(p.current, to)
	p.current = to
	return p
}

// CurveTo appends a cubic Bezier from the current point through control
// points (x1,y1), (x2,y2) to endpoint (x3,y3), flattened into line edges.
// It fails with ErrInvalidPath if no MoveTo has established a current
// point.
func (p *Path) CurveTo(x1, y1, x2, y2, x3, y3 float32) *Path {
	if p.err != nil {
		return p
	}
	if !p.open {
		p.fail(ErrInvalidPath)
		return p
	}
	a := p.current
	b := geom.Point{X: x1, Y: y1}
	c := geom.Point{X: x2, Y: y2}
	d := geom.Point{X: x3, Y: y3}

	from := a
	FlattenCubic(a, b, c, d, defaultFlatness, func(to geom.Point) {
		p.addEdge(from, to)
		from = to
	})
	p.current = d
	return p
}

// ClosePath adds an edge back to the subpath's starting point, if the
// current point has moved away from it, and marks the subpath closed.
func (p *Path) ClosePath() *Path {
	if p.err != nil {
		return p
	}
	if !p.open {
		p.fail(ErrInvalidPath)
		return p
	}
	p.closeCurrent()
	return p
}

func (p *Path) closeCurrent() {
	p.addEdge(p.current, p.start)
	p.current = p.start
	p.open = false
}

// defaultFlatness is the chordal error tolerance used when a path's curves
// are flattened without an explicit caller-supplied tolerance.
const defaultFlatness = 0.25
