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

func TestCreateRejectsNonPositiveDimensions(t *testing.T) {
	cases := [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}}
	for _, c := range cases {
		if _, err := Create(c[0], c[1]); err == nil {
			t.Fatalf("Create(%d,%d) should fail", c[0], c[1])
		}
	}
}

func TestSurfaceGetOutOfBounds(t *testing.T) {
	s, err := Create(4, 4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := s.Get(-1, 0); ok {
		t.Fatalf("Get(-1,0) should report not-ok")
	}
	if _, ok := s.Get(4, 0); ok {
		t.Fatalf("Get(4,0) should report not-ok (width=4)")
	}
	if s.GetMut(10, 10) != nil {
		t.Fatalf("GetMut out of bounds should return nil")
	}
}

func TestSurfaceGetMutAliasesBuffer(t *testing.T) {
	s, err := Create(4, 4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	px := s.GetMut(1, 1)
	*px = NewRgba(1, 0, 0, 1)

	got, ok := s.Get(1, 1)
	if !ok {
		t.Fatalf("Get(1,1) should be ok")
	}
	if got.Red != 1 || got.Alpha != 1 {
		t.Fatalf("Get(1,1) = %+v, expected the write through GetMut", got)
	}
}

func TestSurfaceResetClearsBuffer(t *testing.T) {
	s, err := Create(2, 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	*s.GetMut(0, 0) = NewRgba(1, 1, 1, 1)
	s.Reset()

	got, _ := s.Get(0, 0)
	if got != (Rgba{}) {
		t.Fatalf("Get(0,0) after Reset = %+v, want zero value", got)
	}
}

func TestMaskAccumulateTakesMax(t *testing.T) {
	m := NewMask(2, 2)
	m.Accumulate(0, 0, 0.3)
	m.Accumulate(0, 0, 0.7)
	m.Accumulate(0, 0, 0.1)

	got, _ := m.Get(0, 0)
	if got.Alpha != 0.7 {
		t.Fatalf("Alpha = %v, want 0.7 (max of accumulated values)", got.Alpha)
	}
}

func TestMaskAccumulateOutOfBoundsIsNoop(t *testing.T) {
	m := NewMask(2, 2)
	m.Accumulate(-1, -1, 1) // must not panic
	m.Accumulate(5, 5, 1)   // must not panic
}

func TestMaskReset(t *testing.T) {
	m := NewMask(2, 2)
	m.Accumulate(0, 0, 1)
	m.Reset()
	got, _ := m.Get(0, 0)
	if got.Alpha != 0 {
		t.Fatalf("Alpha after Reset = %v, want 0", got.Alpha)
	}
}
