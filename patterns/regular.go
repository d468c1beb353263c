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

package patterns

import "seehuhn.de/go/tiling"

// A shape attached by Model.Add shares its edge 0 with the parent.  The
// edge opposite to the shared one is edge 2 of a square, edge 3 of a
// hexagon and edge 6 of a dodecagon.

var regularPatterns = []Pattern{
	{
		Name:   "triangle",
		Vertex: "3.3.3.3.3.3",
		Build:  triangles,
	},
	{
		Name:   "square",
		Vertex: "4.4.4.4",
		Build:  squares,
	},
	{
		Name:   "hexagon",
		Vertex: "6.6.6",
		Build:  hexagons,
	},
}

// triangles builds an upward triangle, the downward triangle across its
// first edge, and two translated copies of the first triangle.
func triangles(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	first := s.start(3)
	down := s.add(first, 0, 3)
	gens := s.addAll([]int{down}, []int{1, 2}, 3)
	return s.result(gens)
}

// squares builds a square with its right and lower neighbours.
func squares(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	first := s.start(4)
	gens := s.addAll([]int{first}, []int{0, 1}, 4)
	return s.result(gens)
}

// hexagons builds a hexagon with three neighbours, 120 degrees apart.
func hexagons(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	first := s.start(6)
	gens := s.addAll([]int{first}, []int{0, 2, 4}, 6)
	return s.result(gens)
}
