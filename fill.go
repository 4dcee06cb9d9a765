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

// Fill rasterizes path under rule and paints it in color src onto dest,
// using Porter-Duff Over. The whole operation either fully succeeds or
// leaves dest entirely unchanged: the coverage mask is built in a scratch
// buffer first, and dest is only written to once every trapezoid has been
// rasterized without error.
func Fill(path *Path, rule FillRule, src Rgba, dest *Surface) error {
	if err := path.Err(); err != nil {
		return errors.Wrap(err, "fill: path is in an error state")
	}

	traps, err := Scan(path.Edges(), rule)
	if err != nil {
		return errors.Wrap(err, "fill: sweep")
	}

	mask := NewMask(dest.Width(), dest.Height())
	for _, tr := range traps {
		RasterizeTrapezoid(tr, mask)
	}

	src = src.Correct()
	for y := 0; y < dest.Height(); y++ {
		for x := 0; x < dest.Width(); x++ {
			coverage, _ := mask.Get(x, y)
			if coverage.Alpha == 0 {
				continue
			}
			masked := Composite(In, src, coverage)
			dst := dest.GetMut(x, y)
			*dst = Composite(Over, masked, *dst)
		}
	}
	return nil
}
