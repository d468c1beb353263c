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
	"fmt"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Shape is a regular polygon with edge length 1.
//
// The vertex ring of a Shape is fully determined by Sides, Center and
// Rotation.  Shapes are values; translated copies are cheap.
type Shape struct {
	Sides    int      // number of edges, at least 3
	Center   vec.Vec2 // center in tiling units
	Rotation float64  // orientation offset in radians
}

// NewShape returns a regular polygon with the given number of sides,
// centered at (x, y).
func NewShape(sides int, x, y, rotation float64) (Shape, error) {
	if sides < 3 {
		return Shape{}, fmt.Errorf("%w: %d", ErrInvalidSides, sides)
	}
	return Shape{
		Sides:    sides,
		Center:   vec.Vec2{X: x, Y: y},
		Rotation: rotation,
	}, nil
}

// Circumradius returns the distance from the center of a regular polygon
// with unit edge length to one of its vertices.
func Circumradius(sides int) float64 {
	return 0.5 / math.Sin(math.Pi/float64(sides))
}

// Apothem returns the distance from the center of a regular polygon with
// unit edge length to the midpoint of one of its edges.
func Apothem(sides int) float64 {
	return 0.5 / math.Tan(math.Pi/float64(sides))
}

// Points returns the closed vertex ring of the polygon.  The result has
// Sides+1 entries; the last one repeats the first.
//
// A positive margin shrinks the ring so that every edge moves inwards by
// margin, measured perpendicular to the edge.  Adjacency computations use
// margin 0; a positive margin leaves a visible gap between neighbouring
// tiles.
func (s Shape) Points(margin float64) []vec.Vec2 {
	if s.Sides < 3 {
		return nil
	}
	step := 2 * math.Pi / float64(s.Sides)
	base := s.Rotation - math.Pi/2
	if s.Sides%2 == 0 {
		base += step / 2
	}
	d := 0.5/math.Sin(step/2) - margin/math.Cos(step/2)

	pts := make([]vec.Vec2, s.Sides+1)
	for i := range s.Sides {
		a := base + float64(i)*step
		pts[i] = vec.Vec2{
			X: s.Center.X + d*math.Cos(a),
			Y: s.Center.Y + d*math.Sin(a),
		}
	}
	pts[s.Sides] = pts[0]
	return pts
}

// Adjacent returns a new regular polygon with the given number of sides
// which shares edge number edge of s.  Edge i runs from vertex i to vertex
// i+1 of the ring returned by Points(0).
func (s Shape) Adjacent(sides, edge int) (Shape, error) {
	if sides < 3 {
		return Shape{}, fmt.Errorf("%w: %d", ErrInvalidSides, sides)
	}
	if edge < 0 || edge >= s.Sides {
		return Shape{}, fmt.Errorf("%w: edge %d of %d-gon",
			ErrInvalidEdgeIndex, edge, s.Sides)
	}

	pts := s.Points(0)
	p1, p2 := pts[edge], pts[edge+1]
	step := 2 * math.Pi / float64(sides)

	a := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
	b := a - math.Pi/2 // outward normal
	d := Apothem(sides)

	mid := p1.Add(p2.Sub(p1).Mul(0.5))
	center := mid.Add(vec.Vec2{X: math.Cos(b), Y: math.Sin(b)}.Mul(d))

	return Shape{
		Sides:    sides,
		Center:   center,
		Rotation: a + step*float64((sides-1)/2),
	}, nil
}

// Translate returns a copy of s with the center moved by offset.
func (s Shape) Translate(offset vec.Vec2) Shape {
	s.Center = s.Center.Add(offset)
	return s
}

// Path returns the vertex ring as a closed path.  Shapes with fewer than
// three sides give an empty path.
func (s Shape) Path(margin float64) path.Path {
	pts := s.Points(margin)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts)-1; i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// Bounds returns the smallest axis-aligned rectangle containing the
// vertex ring.
func (s Shape) Bounds(margin float64) rect.Rect {
	pts := s.Points(margin)
	if len(pts) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: pts[0].X, LLy: pts[0].Y, URx: pts[0].X, URy: pts[0].Y}
	for _, pt := range pts[1:] {
		b.LLx = min(b.LLx, pt.X)
		b.LLy = min(b.LLy, pt.Y)
		b.URx = max(b.URx, pt.X)
		b.URy = max(b.URy, pt.Y)
	}
	return b
}
