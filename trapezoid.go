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
	"math"
	"sort"

	"github.com/fenwick-labs/raster/geom"
)

// Trapezoid is the rasterizer's intermediate shape: four corners bounding a
// region between two (possibly sloped) base edges. The sweep emits these
// directly, but a Trapezoid can also be built by hand from its four
// corners, which is why Sides/ContainsPoint derive the bounding lines
// generically rather than assuming a fixed top/bottom/left/right layout.
type Trapezoid struct {
	A, B, C, D geom.Point
}

const slopeEpsilon = 1e-6

// bases finds the two opposite sides of t that are parallel: among the six
// line segments connecting its four corners pairwise, the pair with equal
// slope (and no shared endpoint) are the trapezoid's top and bottom bases.
func (t Trapezoid) bases() (geom.LineSegment, geom.LineSegment) {
	pts := [4]geom.Point{t.A, t.B, t.C, t.D}
	sort.Slice(pts[:], func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	var segs []geom.LineSegment
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			segs = append(segs, geom.LineSegment{P1: pts[i], P2: pts[j]})
		}
	}

	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if sharesEndpoint(segs[i], segs[j]) {
				continue
			}
			if slopesEqual(segs[i].Slope(), segs[j].Slope()) {
				return segs[i], segs[j]
			}
		}
	}

	// No parallel pair exists for a degenerate quad; fall back to the
	// corners in construction order so Sides still returns something.
	return geom.LineSegment{P1: t.A, P2: t.B}, geom.LineSegment{P1: t.C, P2: t.D}
}

func sharesEndpoint(a, b geom.LineSegment) bool {
	return a.P1 == b.P1 || a.P1 == b.P2 || a.P2 == b.P1 || a.P2 == b.P2
}

func slopesEqual(a, b float32) bool {
	aInf := math.IsInf(float64(a), 0)
	bInf := math.IsInf(float64(b), 0)
	if aInf || bInf {
		return aInf && bInf
	}
	if math.IsNaN(float64(a)) || math.IsNaN(float64(b)) {
		return false
	}
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < slopeEpsilon
}

// Sides returns the trapezoid's four bounding line segments: the two bases
// first, followed by the two legs connecting them. When the bases are
// vertical, legs pair the bases' Highest/Lowest endpoints; otherwise they
// pair Leftmost/Rightmost, matching the original trapezoid decomposition's
// vertical-base vs. sloped-base cases.
func (t Trapezoid) Sides() [4]geom.LineSegment {
	base1, base2 := t.bases()

	var left, right geom.LineSegment
	if math.IsInf(float64(base1.Slope()), 0) {
		left = geom.LineSegment{P1: base1.Highest(), P2: base2.Highest()}
		right = geom.LineSegment{P1: base1.Lowest(), P2: base2.Lowest()}
	} else {
		left = geom.LineSegment{P1: base1.Leftmost(), P2: base2.Leftmost()}
		right = geom.LineSegment{P1: base1.Rightmost(), P2: base2.Rightmost()}
	}

	return [4]geom.LineSegment{base1, base2, left, right}
}

// ContainsPoint reports whether p lies within t, using a ray cast along +x
// against t's four sides. A point equal to one of a side's endpoints (the
// whole point, not just its y) counts as crossing that side, matching the
// original rasterizer's on-vertex handling. Points lying on a side are not
// uniformly reported as inside: a point on the right leg is reported outside.
func (t Trapezoid) ContainsPoint(p geom.Point) bool {
	crossings := 0
	for _, side := range t.Sides() {
		if rayCrosses(p, side) {
			crossings++
		}
	}
	return crossings%2 == 1
}

func rayCrosses(p geom.Point, seg geom.LineSegment) bool {
	if p == seg.P1 || p == seg.P2 {
		return true
	}

	y1, y2 := seg.P1.Y, seg.P2.Y
	if (y1 > p.Y) == (y2 > p.Y) {
		return false
	}

	t := (p.Y - y1) / (y2 - y1)
	xIntercept := seg.P1.X + t*(seg.P2.X-seg.P1.X)
	return xIntercept > p.X
}
