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

// Sentinel errors for the module's error taxonomy. Call sites wrap these
// with errors.Wrapf so errors.Is and errors.Cause still resolve to the
// sentinel while the wrapped message carries call-specific detail.
// OutOfMemory has no Go equivalent here: an allocation failure surfaces as
// a runtime panic, not a returned error, since Go gives no recoverable
// signal for it.
var (
	// ErrInvalidPath is returned when a path operation is attempted before
	// a current point exists (e.g. LineTo or CurveTo before any MoveTo), or
	// when a path is used after it has entered a sticky error state.
	ErrInvalidPath = errors.New("raster: invalid path")

	// ErrInvalidDimensions is returned by Create when a surface is requested
	// with a non-positive width or height. NewMask does not validate its size.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrOutOfIntersections is returned when the sweep's intersection
	// safety cap is exceeded, guarding against pathological or malformed
	// input driving the event queue unbounded.
	ErrOutOfIntersections = errors.New("raster: too many intersections")

	// ErrExportFailure names a failed conversion of a surface to its
	// persisted form. No function in this package returns it; Rgba.Bytes
	// cannot fail.
	ErrExportFailure = errors.New("raster: export failure")
)
