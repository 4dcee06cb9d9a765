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

import (
	"sort"

	"github.com/fenwick-labs/raster/geom"
)

// FillRule selects how a path's accumulated winding number decides whether
// a region is filled.
type FillRule int

const (
	// NonZero fills a region whenever its signed winding count is nonzero.
	NonZero FillRule = iota
	// EvenOdd fills a region whenever the count of edges crossed is odd.
	EvenOdd
)

// sweepEpsilon is the numerical tolerance used throughout the sweep: for
// deduplicating near-coincident breakpoints and intersection points, and
// for treating a computed intersection parameter as lying on its segment.
const sweepEpsilon = 1e-6

// maxIntersections caps the number of edge-pair intersections the sweep
// will compute before giving up with ErrOutOfIntersections, guarding
// against pathological or malformed input (e.g. thousands of coincident
// edges) driving the event set unbounded.
const maxIntersections = 1 << 16

type eventKind int8

const (
	eventEnd eventKind = iota
	eventIntersection
	eventStart
)

// event is the sweep's (y, x, kind) ordering key, named in the original
// Bentley-Ottmann pseudocode this module's sweep completes. Kind order
// (End < Intersection < Start) matches the iota values above, so sorting
// events by (Y, X, Kind) produces the order that pseudocode requires.
type event struct {
	y, x float32
	kind eventKind
}

func eventLess(a, b event) bool {
	if a.y != b.y {
		return a.y < b.y
	}
	if a.x != b.x {
		return a.x < b.x
	}
	return a.kind < b.kind
}

// Scan trapezoidates edges under rule, returning the set of trapezoids
// covering every region the fill rule considers "inside". Horizontal edges
// never generate Start/End events and never contribute to the winding
// count: a horizontal edge alone cannot bound a region from above or
// below, and folding it into the winding count would double-count the
// vertical edges that already do. An edge with a non-finite coordinate is
// skipped and logged at slog.LevelWarn.
func Scan(edges []geom.Edge, rule FillRule) ([]Trapezoid, error) {
	active := make([]geom.Edge, 0, len(edges))
	for _, e := range edges {
		if !geom.Finite(e.Line.P1) || !geom.Finite(e.Line.P2) {
			logger().Warn("raster: skipping edge with non-finite coordinates",
				"edge", e.Line)
			continue
		}
		if !e.IsHorizontal() {
			active = append(active, e)
		}
	}
	if len(active) == 0 {
		return nil, nil
	}

	// A closed sub-path always contributes a net-zero winding total: every
	// Down edge it has is balanced by an Up edge somewhere else in the same
	// contour. Edges whose directions don't sum to zero cannot have come
	// from a closed contour at all (e.g. two raw, unclosed edges handed to
	// Scan directly) and under the non-zero rule bound no well-defined
	// interior, so they enclose nothing.
	if rule == NonZero {
		balance := 0
		for _, e := range active {
			balance += int(e.Direction)
		}
		if balance != 0 {
			return nil, nil
		}
	}

	breakpoints, err := sweepBreakpoints(active)
	if err != nil {
		return nil, err
	}
	logger().Debug("raster: sweep breakpoints computed",
		"edges", len(active), "breakpoints", len(breakpoints), "rule", rule)

	var traps []Trapezoid
	for i := 0; i+1 < len(breakpoints); i++ {
		y0, y1 := breakpoints[i], breakpoints[i+1]
		if y1-y0 < sweepEpsilon {
			continue
		}
		before := len(traps)
		traps = appendBandTrapezoids(traps, active, rule, y0, y1)
		logger().Debug("raster: band processed",
			"y0", y0, "y1", y1, "trapezoids", len(traps)-before)
	}
	return traps, nil
}

// sweepBreakpoints returns the sorted, deduplicated set of y-values at
// which the active-edge structure can change: every edge's Top and Bottom,
// plus every pairwise intersection's y. Between consecutive breakpoints no
// edge starts, ends, or crosses another, so the active set's left-to-right
// order (and therefore the winding count at every gap) is constant across
// the whole band.
func sweepBreakpoints(edges []geom.Edge) ([]float32, error) {
	var events []event
	for _, e := range edges {
		events = append(events, event{y: e.Top, kind: eventStart})
		events = append(events, event{y: e.Bottom, kind: eventEnd})
	}

	intersections := 0
	for i := 0; i < len(edges); i++ {
		for j := i + 1; j < len(edges); j++ {
			p, ok := intersectEdges(edges[i], edges[j])
			if !ok {
				continue
			}
			intersections++
			if intersections > maxIntersections {
				return nil, ErrOutOfIntersections
			}
			events = append(events, event{y: p.Y, x: p.X, kind: eventIntersection})
		}
	}

	sort.Slice(events, func(i, j int) bool { return eventLess(events[i], events[j]) })

	ys := make([]float32, 0, len(events))
	for _, ev := range events {
		if len(ys) == 0 || ev.y-ys[len(ys)-1] >= sweepEpsilon {
			ys = append(ys, ev.y)
		}
	}
	return ys, nil
}

// intersectEdges returns the intersection point of e1 and e2's underlying
// lines, and whether that point lies within both edges' segments (using
// sweepEpsilon slack at the boundary so near-endpoint crossings are still
// reported once rather than silently dropped, which is the duplicate/
// near-miss suppression the original pseudocode calls for).
func intersectEdges(e1, e2 geom.Edge) (geom.Point, bool) {
	p1, p2 := e1.Line.P1, e1.Line.P2
	p3, p4 := e2.Line.P1, e2.Line.P2

	d1x, d1y := p2.X-p1.X, p2.Y-p1.Y
	d2x, d2y := p4.X-p3.X, p4.Y-p3.Y

	denom := d1x*d2y - d1y*d2x
	if denom > -sweepEpsilon && denom < sweepEpsilon {
		if e1.Top <= e2.Bottom && e2.Top <= e1.Bottom {
			logger().Warn("raster: skipping numerically degenerate edge pair",
				"edge1", e1.Line, "edge2", e2.Line)
		}
		return geom.Point{}, false // parallel or collinear
	}

	ex, ey := p3.X-p1.X, p3.Y-p1.Y
	t := (ex*d2y - ey*d2x) / denom
	u := (ex*d1y - ey*d1x) / denom

	const lo, hi = -sweepEpsilon, 1 + sweepEpsilon
	if t < lo || t > hi || u < lo || u > hi {
		return geom.Point{}, false
	}

	return geom.Point{X: p1.X + t*d1x, Y: p1.Y + t*d1y}, true
}

// appendBandTrapezoids evaluates the active edges spanning [y0, y1) at
// their mid-height ordering, walks them left to right accumulating the
// winding count, and appends one trapezoid per gap the fill rule
// considers inside.
func appendBandTrapezoids(traps []Trapezoid, edges []geom.Edge, rule FillRule, y0, y1 float32) []Trapezoid {
	yMid := (y0 + y1) / 2

	var band []geom.Edge
	for _, e := range edges {
		if e.Top <= y0+sweepEpsilon && e.Bottom >= y1-sweepEpsilon {
			band = append(band, e)
		}
	}
	if len(band) < 2 {
		return traps
	}

	sort.Slice(band, func(i, j int) bool { return band[i].XAt(yMid) < band[j].XAt(yMid) })

	winding := 0
	for i := 0; i < len(band); i++ {
		switch rule {
		case EvenOdd:
			winding ^= 1
		default:
			winding += int(band[i].Direction)
		}
		if i+1 >= len(band) {
			continue
		}
		if !isInside(rule, winding) {
			continue
		}
		left, right := band[i], band[i+1]
		traps = append(traps, Trapezoid{
			A: geom.Point{X: left.XAt(y0), Y: y0},
			B: geom.Point{X: right.XAt(y0), Y: y0},
			C: geom.Point{X: right.XAt(y1), Y: y1},
			D: geom.Point{X: left.XAt(y1), Y: y1},
		})
	}
	return traps
}

func isInside(rule FillRule, winding int) bool {
	if rule == EvenOdd {
		return winding&1 != 0
	}
	return winding != 0
}
