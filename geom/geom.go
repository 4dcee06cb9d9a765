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

// Package geom defines the immutable geometric primitives the rasterizer
// pipeline is built from: points, line segments, and the directed edges the
// sweep line consumes.
package geom

import "math"

// Point is a location in device space. Coordinates are IEEE-754 32-bit
// floats, matching the precision the original Cairus implementation used
// for its geometry.
type Point struct {
	X, Y float32
}

// Lerp returns the point a fraction t of the way from a to b.
func Lerp(a, b Point, t float32) Point {
	return Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// Mid returns the midpoint of a and b.
func Mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Sub returns p - q as a displacement vector (represented as a Point).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q, treating both as vectors from the
// origin.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared returns |p|^2, treating p as a vector from the origin.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// LineSegment is an ordered pair of endpoints. Equality is defined set-wise
// on endpoints: two segments are equal if they share the same two points,
// regardless of which is first.
type LineSegment struct {
	P1, P2 Point
}

// NewLineSegment builds a LineSegment from coordinates.
func NewLineSegment(x1, y1, x2, y2 float32) LineSegment {
	return LineSegment{P1: Point{x1, y1}, P2: Point{x2, y2}}
}

// Equal reports whether l and other have the same two endpoints, in either
// order.
func (l LineSegment) Equal(other LineSegment) bool {
	return (l.P1 == other.P1 && l.P2 == other.P2) ||
		(l.P1 == other.P2 && l.P2 == other.P1)
}

// Slope returns (P2.Y-P1.Y)/(P2.X-P1.X). A vertical segment returns
// +Inf or -Inf depending on direction; a degenerate (zero-length) segment
// returns NaN.
func (l LineSegment) Slope() float32 {
	dx := l.P2.X - l.P1.X
	dy := l.P2.Y - l.P1.Y
	return dy / dx
}

// Highest returns the endpoint with the smaller Y (device Y grows
// downward, so "highest" on screen means smallest Y).
func (l LineSegment) Highest() Point {
	if l.P1.Y <= l.P2.Y {
		return l.P1
	}
	return l.P2
}

// Lowest returns the endpoint with the larger Y.
func (l LineSegment) Lowest() Point {
	if l.P1.Y >= l.P2.Y {
		return l.P1
	}
	return l.P2
}

// Leftmost returns the endpoint with the smaller X.
func (l LineSegment) Leftmost() Point {
	if l.P1.X <= l.P2.X {
		return l.P1
	}
	return l.P2
}

// Rightmost returns the endpoint with the larger X.
func (l LineSegment) Rightmost() Point {
	if l.P1.X >= l.P2.X {
		return l.P1
	}
	return l.P2
}

// Direction classifies the sign of dy for a directed segment, used by the
// non-zero winding rule. +1 means the segment was drawn downward (in device
// space, increasing Y), -1 upward, 0 horizontal.
type Direction int8

const (
	DirUp   Direction = -1
	DirFlat Direction = 0
	DirDown Direction = 1
)

// Edge is a LineSegment annotated with the data the sweep needs: its
// vertical extent and winding direction.
type Edge struct {
	Line      LineSegment
	Top       float32 // min(P1.Y, P2.Y)
	Bottom    float32 // max(P1.Y, P2.Y)
	Direction Direction
}

// NewEdge builds an Edge from an ordered pair of points (from, to), the
// order in which the path traversed them. Direction is derived from the
// sign of to.Y - from.Y.
func NewEdge(from, to Point) Edge {
	line := LineSegment{P1: from, P2: to}
	top, bottom := from.Y, to.Y
	if top > bottom {
		top, bottom = bottom, top
	}

	dir := DirFlat
	switch {
	case to.Y > from.Y:
		dir = DirDown
	case to.Y < from.Y:
		dir = DirUp
	}

	return Edge{Line: line, Top: top, Bottom: bottom, Direction: dir}
}

// IsHorizontal reports whether the edge has zero vertical extent.
func (e Edge) IsHorizontal() bool {
	return e.Direction == DirFlat
}

// XAt returns the x coordinate at which e crosses the horizontal line y,
// computed by linear interpolation between the edge's endpoints. The
// result is undefined (and should not be relied on) for horizontal edges.
func (e Edge) XAt(y float32) float32 {
	p1, p2 := e.Line.P1, e.Line.P2
	if p1.Y == p2.Y {
		return p1.X
	}
	t := (y - p1.Y) / (p2.Y - p1.Y)
	return p1.X + t*(p2.X-p1.X)
}

// Finite reports whether both coordinates of p are finite.
func Finite(p Point) bool {
	return !math.IsNaN(float64(p.X)) && !math.IsInf(float64(p.X), 0) &&
		!math.IsNaN(float64(p.Y)) && !math.IsInf(float64(p.Y), 0)
}
