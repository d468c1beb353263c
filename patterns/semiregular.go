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

var semiregularPatterns = []Pattern{
	{
		Name:   "truncated_square",
		Vertex: "4.8.8",
		Build:  truncatedSquare,
	},
	{
		Name:   "trihexagonal",
		Vertex: "3.6.3.6",
		Build:  trihexagonal,
	},
	{
		Name:   "truncated_trihexagonal",
		Vertex: "4.6.12",
		Build:  truncatedTrihexagonal,
	},
	{
		Name:   "truncated_hexagonal",
		Vertex: "3.12.12",
		Build:  truncatedHexagonal,
	},
	{
		Name:   "rhombitrihexagonal",
		Vertex: "3.4.6.4",
		Build:  rhombitrihexagonal,
	},
	{
		Name:   "elongated_triangular",
		Vertex: "3.3.3.4.4",
		Build:  elongatedTriangular,
	},
}

// truncatedSquare builds an octagon with a square on a diagonal edge and
// octagons on two axis-parallel edges.
func truncatedSquare(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	oct := s.start(8)
	s.add(oct, 0, 4)
	gens := s.addAll([]int{oct}, []int{1, 3}, 8)
	return s.result(gens)
}

// trihexagonal builds a hexagon surrounded by triangles, and two more
// hexagons touching the triangle on the first edge.
func trihexagonal(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	hex := s.start(6)
	tris := s.addAll([]int{hex}, []int{0, 1, 2, 3, 4, 5}, 3)
	if s.err != nil {
		return nil, s.err
	}
	gens := s.addAll(tris[:1], []int{1, 2}, 6)
	return s.result(gens)
}

// truncatedTrihexagonal builds a dodecagon with squares and hexagons on
// alternate edges, and dodecagons opposite two of the squares.
func truncatedTrihexagonal(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	dodec := s.start(12)
	squares := s.addAll([]int{dodec}, []int{0, 2, 4, 6, 8, 10}, 4)
	s.addAll([]int{dodec}, []int{1, 3, 5, 7, 9, 11}, 6)
	if s.err != nil {
		return nil, s.err
	}
	gens := s.addAll(squares[1:3], []int{2}, 12)
	return s.result(gens)
}

// truncatedHexagonal builds a dodecagon with triangles on the odd edges
// and dodecagons on three of the even ones.
func truncatedHexagonal(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	dodec := s.start(12)
	s.addAll([]int{dodec}, []int{1, 3, 5, 7, 9, 11}, 3)
	gens := s.addAll([]int{dodec}, []int{0, 2, 4}, 12)
	return s.result(gens)
}

// rhombitrihexagonal builds a hexagon with squares on all edges,
// triangles in the corners between the squares, and hexagons opposite
// two of the squares.
func rhombitrihexagonal(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	hex := s.start(6)
	squares := s.addAll([]int{hex}, []int{0, 1, 2, 3, 4, 5}, 4)
	s.addAll(squares, []int{3}, 3)
	if s.err != nil {
		return nil, s.err
	}
	gens := s.addAll(squares[:2], []int{2}, 6)
	return s.result(gens)
}

// elongatedTriangular builds a square, its right neighbour, a row of two
// triangles below, and the square below the triangles.
func elongatedTriangular(m *tiling.Model) ([]int, error) {
	s := &seed{m: m}
	sq := s.start(4)
	right := s.add(sq, 0, 4)
	down := s.add(sq, 1, 3)
	up := s.add(down, 1, 3)
	below := s.add(up, 2, 4)
	return s.result([]int{right, below})
}
