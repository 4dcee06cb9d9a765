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

import "github.com/pkg/errors"

// Surface is a row-major buffer of premultiplied pixels: the destination a
// fill paints into.
type Surface struct {
	width, height int
	pixels        []Rgba
}

// Create allocates a Surface of the given dimensions, initialized to fully
// transparent black. It returns ErrInvalidDimensions if width or height is
// not positive.
func Create(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "create surface %dx%d", width, height)
	}
	return &Surface{
		width:  width,
		height: height,
		pixels: make([]Rgba, width*height),
	}, nil
}

// Width and Height report the surface's fixed dimensions.
func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Get returns the pixel at (x, y) and true, or the zero Rgba and false if
// the coordinates lie outside the surface.
func (s *Surface) Get(x, y int) (Rgba, bool) {
	i, ok := s.index(x, y)
	if !ok {
		return Rgba{}, false
	}
	return s.pixels[i], true
}

// GetMut returns a pointer to the pixel at (x, y), or nil if the
// coordinates lie outside the surface. The pointer aliases the surface's
// internal buffer and is valid until the next Reset.
func (s *Surface) GetMut(x, y int) *Rgba {
	i, ok := s.index(x, y)
	if !ok {
		return nil
	}
	return &s.pixels[i]
}

// Reset clears every pixel back to fully transparent black without
// reallocating the backing buffer, mirroring the teacher's steady-state
// buffer-reuse convention.
func (s *Surface) Reset() {
	clear(s.pixels)
}

// Mask is a per-pixel coverage buffer produced by the trapezoid rasterizer.
// Its Alpha channel holds fractional coverage in [0, 1]; Red/Green/Blue stay
// zero, since the fill pipeline's In step writes its colored result to a
// separate value rather than back into the mask.
type Mask struct {
	width, height int
	pixels        []Rgba
}

// NewMask allocates a zero-coverage Mask sized width x height.
func NewMask(width, height int) *Mask {
	return &Mask{width: width, height: height, pixels: make([]Rgba, width*height)}
}

// Reset clears the mask back to zero coverage without reallocating,
// preparing it for reuse across successive fills.
func (m *Mask) Reset() {
	clear(m.pixels)
}

func (m *Mask) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, false
	}
	return y*m.width + x, true
}

// Get returns the coverage pixel at (x, y) and true, or the zero Rgba and
// false outside the mask's bounds.
func (m *Mask) Get(x, y int) (Rgba, bool) {
	i, ok := m.index(x, y)
	if !ok {
		return Rgba{}, false
	}
	return m.pixels[i], true
}

// Accumulate raises the coverage at (x, y) to max(existing, alpha), the
// rule spec uses when multiple trapezoids from the same fill overlap a
// pixel. Coordinates outside the mask are silently ignored.
func (m *Mask) Accumulate(x, y int, alpha float32) {
	i, ok := m.index(x, y)
	if !ok {
		return
	}
	if alpha > m.pixels[i].Alpha {
		m.pixels[i].Alpha = alpha
	}
}
