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

	"github.com/fenwick-labs/raster/geom"
)

// The supersample grid fixed by the original trapezoid rasterizer: 17
// samples across each pixel's width and 15 down its height, offset from
// the pixel's top-left corner by (1/18, 1/16) so no sample falls exactly
// on a pixel boundary.
const (
	sampleXCount = 17
	sampleYCount = 15
	sampleXStep  = float32(1) / 18
	sampleYStep  = float32(1) / 16

	totalSamples = sampleXCount * sampleYCount // 255
)

var sampleOffsets [totalSamples]geom.Point

func init() {
	idx := 0
	x := sampleXStep
	for i := 0; i < sampleXCount; i++ {
		y := sampleYStep
		for j := 0; j < sampleYCount; j++ {
			sampleOffsets[idx] = geom.Point{X: x, Y: y}
			idx++
			y += sampleYStep
		}
		x += sampleXStep
	}
}

// RasterizeTrapezoid accumulates t's fractional pixel coverage into mask,
// testing totalSamples (255) supersample points per pixel against t and
// scoring coverage as hits/255. Pixels outside mask's bounds are skipped.
// Coverage from overlapping trapezoids accumulates via max, matching
// Mask.Accumulate.
func RasterizeTrapezoid(t Trapezoid, mask *Mask) {
	minX, minY, maxX, maxY := t.boundingBox()
	if minX > maxX || minY > maxY {
		return
	}

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			hits := 0
			base := geom.Point{X: float32(px), Y: float32(py)}
			for _, off := range sampleOffsets {
				p := geom.Point{X: base.X + off.X, Y: base.Y + off.Y}
				if t.ContainsPoint(p) {
					hits++
				}
			}
			if hits == 0 {
				continue
			}
			coverage := float32(hits) / float32(totalSamples)
			mask.Accumulate(px, py, coverage)
		}
	}
}

// boundingBox returns the integer pixel range (inclusive) that can possibly
// overlap t, derived from the floor/ceil of its four corners' extent.
func (t Trapezoid) boundingBox() (minX, minY, maxX, maxY int) {
	pts := [4]geom.Point{t.A, t.B, t.C, t.D}
	minXf, minYf := pts[0].X, pts[0].Y
	maxXf, maxYf := pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		minXf = minFloat32(minXf, p.X)
		minYf = minFloat32(minYf, p.Y)
		maxXf = maxFloat32(maxXf, p.X)
		maxYf = maxFloat32(maxYf, p.Y)
	}
	return int(math.Floor(float64(minXf))), int(math.Floor(float64(minYf))),
		int(math.Ceil(float64(maxXf))) - 1, int(math.Ceil(float64(maxYf))) - 1
}

func minFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
