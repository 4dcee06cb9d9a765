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

import "testing"

func TestNewRgbaPremultiplies(t *testing.T) {
	c := NewRgba(1, 0.5, 0.25, 0.5)
	want := Rgba{Red: 0.5, Green: 0.25, Blue: 0.125, Alpha: 0.5}
	if c != want {
		t.Fatalf("NewRgba = %+v, want %+v", c, want)
	}
}

func TestRgbaCorrectClampsAlpha(t *testing.T) {
	c := Rgba{Red: 2, Green: 2, Blue: 2, Alpha: 2}.Correct()
	if c.Alpha != 1 {
		t.Fatalf("Alpha = %v, want 1", c.Alpha)
	}
	if c.Red != 1 || c.Green != 1 || c.Blue != 1 {
		t.Fatalf("channels not clamped to alpha: %+v", c)
	}
}

func TestRgbaCorrectNegativeAlphaZeroesAll(t *testing.T) {
	c := Rgba{Red: 0.5, Green: 0.5, Blue: 0.5, Alpha: -1}.Correct()
	if c != (Rgba{}) {
		t.Fatalf("Correct() with negative alpha = %+v, want zero value", c)
	}
}

func TestRgbaBytesRoundTrip(t *testing.T) {
	c := NewRgba(1, 0, 0, 1) // opaque red
	r, g, b, a := c.Bytes()
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Fatalf("Bytes() = %d,%d,%d,%d, want 255,0,0,255", r, g, b, a)
	}
}

func TestRgbaBytesZeroAlphaIsBlack(t *testing.T) {
	c := Rgba{Red: 0, Green: 0, Blue: 0, Alpha: 0}
	r, g, b, a := c.Bytes()
	if r != 0 || g != 0 || b != 0 || a != 0 {
		t.Fatalf("Bytes() for alpha=0 = %d,%d,%d,%d, want all zero", r, g, b, a)
	}
}

func TestRgbaBytesHalfTransparentWhite(t *testing.T) {
	// Straight white at 50% coverage, premultiplied: (0.5, 0.5, 0.5, 0.5).
	c := NewRgba(1, 1, 1, 0.5)
	r, g, b, a := c.Bytes()
	if r != 255 || g != 255 || b != 255 {
		t.Fatalf("un-premultiplied rgb = %d,%d,%d, want 255,255,255", r, g, b)
	}
	if a != 128 {
		t.Fatalf("alpha byte = %d, want 128", a)
	}
}
