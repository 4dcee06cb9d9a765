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

// Operator names a Porter-Duff compositing operator. Only the two operators
// the fill pipeline needs are defined; the rest of the Porter-Duff algebra
// (Out, Atop, Xor, ...) is not exercised by anything in this module's scope.
type Operator int

const (
	// Over composites source over destination: the standard "paint on top"
	// blend used when a fill's color is laid onto the target surface.
	Over Operator = iota
	// In restricts the fill's color to the trapezoid coverage mask,
	// producing the per-pixel color that Over then paints onto the surface.
	In
)

type operatorFunc func(src, dst Rgba) Rgba

// operators maps each Operator to its implementation, mirroring the
// enum-to-function registry shape used for compositing dispatch.
var operators = map[Operator]operatorFunc{
	Over: compositeOver,
	In:   compositeIn,
}

// Composite applies op to src and dst and returns the result. Both
// colors are expected to already be in premultiplied form.
func Composite(op Operator, src, dst Rgba) Rgba {
	fn, ok := operators[op]
	if !ok {
		panic("raster: unknown operator")
	}
	return fn(src, dst)
}

// compositeOver implements d' = s + d*(1-s.alpha), applied uniformly across
// every premultiplied channel including alpha itself.
func compositeOver(src, dst Rgba) Rgba {
	coeff := 1 - src.Alpha
	return Rgba{
		Red:   src.Red + dst.Red*coeff,
		Green: src.Green + dst.Green*coeff,
		Blue:  src.Blue + dst.Blue*coeff,
		Alpha: src.Alpha + dst.Alpha*coeff,
	}
}

// compositeIn implements d'.alpha = s.alpha*d.alpha, d'.rgb = s.rgb: the
// source color survives unchanged, scaled down only by how much of the
// destination's coverage admits it.
func compositeIn(src, dst Rgba) Rgba {
	return Rgba{
		Red:   src.Red,
		Green: src.Green,
		Blue:  src.Blue,
		Alpha: src.Alpha * dst.Alpha,
	}
}
