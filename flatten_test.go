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
	"testing"

	"github.com/fenwick-labs/raster/geom"
)

func TestFlattenCubicStraightLineShortcut(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	d := geom.Point{X: 10, Y: 0}

	var pts []geom.Point
	FlattenCubic(a, a, d, d, 0.25, func(p geom.Point) { pts = append(pts, p) })

	if len(pts) != 1 {
		t.Fatalf("len(pts) = %d, want 1 for a straight-line curve", len(pts))
	}
	if pts[0] != d {
		t.Fatalf("pts[0] = %v, want %v", pts[0], d)
	}
}

func TestFlattenCubicEndsExactlyAtD(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 10}
	c := geom.Point{X: 7, Y: -10}
	d := geom.Point{X: 10, Y: 0}

	var pts []geom.Point
	FlattenCubic(a, b, c, d, 0.1, func(p geom.Point) { pts = append(pts, p) })

	if len(pts) == 0 {
		t.Fatalf("expected at least one emitted point")
	}
	if pts[len(pts)-1] != d {
		t.Fatalf("last point = %v, want curve endpoint %v", pts[len(pts)-1], d)
	}
}

func TestFlattenCubicStaysWithinControlPolygonBounds(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 20}
	c := geom.Point{X: 7, Y: -20}
	d := geom.Point{X: 10, Y: 0}

	minY, maxY := float32(0), float32(0)
	for _, p := range []geom.Point{a, b, c, d} {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	FlattenCubic(a, b, c, d, 0.05, func(p geom.Point) {
		if p.X < a.X || p.X > d.X {
			t.Fatalf("emitted point %v has x outside [%v,%v]", p, a.X, d.X)
		}
		if p.Y < minY || p.Y > maxY {
			t.Fatalf("emitted point %v has y outside control polygon range [%v,%v]", p, minY, maxY)
		}
	})
}

func TestFlattenCubicTighterToleranceEmitsMorePoints(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 20}
	c := geom.Point{X: 7, Y: -20}
	d := geom.Point{X: 10, Y: 0}

	count := func(tol float32) int {
		n := 0
		FlattenCubic(a, b, c, d, tol, func(geom.Point) { n++ })
		return n
	}

	coarse := count(5)
	fine := count(0.01)
	if fine < coarse {
		t.Fatalf("finer tolerance produced fewer points (%d) than coarser (%d)", fine, coarse)
	}
}

func TestErrorSquaredZeroForCollinearControlPoints(t *testing.T) {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 3}
	c := geom.Point{X: 6, Y: 6}
	d := geom.Point{X: 10, Y: 10}

	if got := errorSquared(a, b, c, d); got > 1e-9 {
		t.Fatalf("errorSquared for collinear knots = %v, want ~0", got)
	}
}
