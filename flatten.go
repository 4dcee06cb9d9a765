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

// maxFlattenDepth bounds de Casteljau recursion so a pathological tolerance
// (or a curve with huge, cancelling control-point excursions) cannot recurse
// forever. 32 levels of subdivision produce more than 4 billion segments in
// the worst case, far beyond anything a flatness tolerance would ever need.
const maxFlattenDepth = 32

// flattenEpsilon is substituted for a non-positive tolerance so the
// termination test in errorSquared always has a chance to succeed.
const flattenEpsilon = 1e-6

// FlattenCubic approximates the cubic Bezier curve (a, b, c, d) with a
// polyline whose chordal error never exceeds tolerance, using recursive de
// Casteljau subdivision. emit is called once per vertex of the resulting
// polyline, in traversal order from a to d; the starting point a is never
// emitted, since the caller already holds it as the current point. The
// final call to emit always passes d.
func FlattenCubic(a, b, c, d geom.Point, tolerance float32, emit func(p geom.Point)) {
	if tolerance <= 0 {
		tolerance = flattenEpsilon
	}

	// Straight-line shortcut: both tangents collapse to zero length, so the
	// curve is indistinguishable from the segment a->d.
	if a == b && c == d {
		emit(d)
		return
	}

	flattenRecursive(a, b, c, d, tolerance*tolerance, 0, emit)
}

func flattenRecursive(a, b, c, d geom.Point, tol2 float32, depth int, emit func(p geom.Point)) {
	if depth >= maxFlattenDepth || errorSquared(a, b, c, d) < tol2 {
		emit(d)
		return
	}

	// de Casteljau subdivision at t=1/2.
	ab := geom.Mid(a, b)
	bc := geom.Mid(b, c)
	cd := geom.Mid(c, d)
	abbc := geom.Mid(ab, bc)
	bccd := geom.Mid(bc, cd)
	m := geom.Mid(abbc, bccd)

	flattenRecursive(a, ab, abbc, m, tol2, depth+1, emit)
	flattenRecursive(m, bccd, cd, d, tol2, depth+1, emit)
}

// errorSquared computes the upper-bound squared chordal error for knots
// (a, b, c, d): the control vectors ab and ac (from a) are projected onto
// ad, clamped to the segment, and the larger of the two resulting squared
// perpendicular distances is returned. When a == d, the projection step is
// skipped and |ab|^2 / |ac|^2 are used directly.
func errorSquared(a, b, c, d geom.Point) float32 {
	bd := b.Sub(a)
	cd := c.Sub(a)

	if a != d {
		ad := d.Sub(a)
		v := ad.LengthSquared()

		u := bd.Dot(ad)
		switch {
		case u <= 0:
			// projects before a: distance is already |ab|
		case u >= v:
			bd = bd.Sub(ad)
		default:
			t := u / v
			bd = geom.Point{X: bd.X - t*ad.X, Y: bd.Y - t*ad.Y}
		}

		z := cd.Dot(ad)
		switch {
		case z <= 0:
		case z >= v:
			cd = cd.Sub(ad)
		default:
			t := z / v
			cd = geom.Point{X: cd.X - t*ad.X, Y: cd.Y - t*ad.Y}
		}
	}

	berr := bd.LengthSquared()
	cerr := cd.LengthSquared()
	if berr > cerr {
		return berr
	}
	return cerr
}
