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

// Rgba is a color in premultiplied-alpha form: Red, Green, and Blue are
// already scaled by Alpha. This is the representation the compositor and
// the surface buffer both store, since Porter-Duff Over/In are defined in
// terms of premultiplied channels.
type Rgba struct {
	Red, Green, Blue, Alpha float32
}

// NewRgba builds a premultiplied Rgba from straight (non-premultiplied)
// channel values, each expected to lie in [0, 1].
func NewRgba(red, green, blue, alpha float32) Rgba {
	return Rgba{
		Red:   red * alpha,
		Green: green * alpha,
		Blue:  blue * alpha,
		Alpha: alpha,
	}
}

// Correct clamps c's channels into their valid premultiplied ranges: Alpha
// to [0, 1], and Red/Green/Blue to [0, Alpha] (a premultiplied channel can
// never exceed the alpha it was scaled by). A negative alpha is treated as
// fully transparent and zeroes every channel.
func (c Rgba) Correct() Rgba {
	if c.Alpha < 0 {
		return Rgba{}
	}
	if c.Alpha > 1 {
		c.Alpha = 1
	}
	c.Red = clamp(c.Red, 0, c.Alpha)
	c.Green = clamp(c.Green, 0, c.Alpha)
	c.Blue = clamp(c.Blue, 0, c.Alpha)
	return c
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Bytes un-premultiplies c and quantizes it to 8-bit straight-alpha
// channels, the form a persisted raster (e.g. PNG) stores. A fully
// transparent pixel (Alpha == 0) has no recoverable color, so it maps to
// opaque black's RGB with zero alpha rather than dividing by zero.
func (c Rgba) Bytes() (r, g, b, a uint8) {
	c = c.Correct()
	if c.Alpha == 0 {
		return 0, 0, 0, 0
	}
	return quantize(c.Red / c.Alpha), quantize(c.Green / c.Alpha), quantize(c.Blue / c.Alpha), quantize(c.Alpha)
}

func quantize(v float32) uint8 {
	v = clamp(v, 0, 1)
	return uint8(v*255 + 0.5)
}
