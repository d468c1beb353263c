// seehuhn.de/go/tiling - tessellations of the plane by regular polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package tiling

import "errors"

// Errors returned by the tiling functions.  Returned errors wrap one of
// these values and can be tested using errors.Is.
var (
	// ErrInvalidSides indicates a polygon with fewer than three sides.
	ErrInvalidSides = errors.New("invalid number of sides")

	// ErrInvalidEdgeIndex indicates an edge number outside [0, sides-1].
	ErrInvalidEdgeIndex = errors.New("invalid edge index")

	// ErrIndexOutOfRange indicates a reference to a shape which has not
	// been added to the model.
	ErrIndexOutOfRange = errors.New("shape index out of range")

	// ErrDivergentTiling indicates that the generators of a periodic
	// extension do not reach all four corners of the viewport.
	ErrDivergentTiling = errors.New("tiling does not cover the viewport")
)
