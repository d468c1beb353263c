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

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// keyPrecision is the number of decimal digits kept when positions are
// quantised for deduplication.
const keyPrecision = 6

var keyScale = math.Pow10(keyPrecision)

// key identifies a quantised position in the plane.  Two positions which
// agree to keyPrecision decimal digits map to the same key.
type key struct {
	x, y int64
}

func makeKey(p vec.Vec2) key {
	return key{
		x: int64(math.Round(p.X * keyScale)),
		y: int64(math.Round(p.Y * keyScale)),
	}
}
