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
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const tolerance = 1e-9

var approx = cmpopts.EquateApprox(0, tolerance)

func near(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance
}

func TestNewShape(t *testing.T) {
	for _, sides := range []int{-1, 0, 1, 2} {
		_, err := NewShape(sides, 0, 0, 0)
		if !errors.Is(err, ErrInvalidSides) {
			t.Errorf("NewShape(%d): got %v, want ErrInvalidSides", sides, err)
		}
	}

	s, err := NewShape(5, 1, 2, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	want := Shape{Sides: 5, Center: vec.Vec2{X: 1, Y: 2}, Rotation: 0.5}
	if d := cmp.Diff(want, s); d != "" {
		t.Errorf("unexpected shape (-want +got):\n%s", d)
	}
}

func TestPointsRing(t *testing.T) {
	for sides := 3; sides <= 12; sides++ {
		for _, margin := range []float64{0, 0.1} {
			name := fmt.Sprintf("%d_%g", sides, margin)
			t.Run(name, func(t *testing.T) {
				s, err := NewShape(sides, 0.25, -1.5, 0.3)
				if err != nil {
					t.Fatal(err)
				}
				pts := s.Points(margin)
				if len(pts) != sides+1 {
					t.Fatalf("got %d points, want %d", len(pts), sides+1)
				}
				if pts[0] != pts[sides] {
					t.Errorf("ring not closed: %v != %v", pts[0], pts[sides])
				}

				step := 2 * math.Pi / float64(sides)
				want := Circumradius(sides) - margin/math.Cos(step/2)
				for i, p := range pts {
					got := p.Sub(s.Center).Length()
					if math.Abs(got-want) > tolerance {
						t.Errorf("point %d: distance %g, want %g", i, got, want)
					}
				}
			})
		}
	}
}

func TestPointsEdgeLength(t *testing.T) {
	for sides := 3; sides <= 12; sides++ {
		s := Shape{Sides: sides, Rotation: 1}
		pts := s.Points(0)
		for i := range sides {
			l := pts[i+1].Sub(pts[i]).Length()
			if math.Abs(l-1) > tolerance {
				t.Errorf("%d-gon edge %d: length %g", sides, i, l)
			}
		}
	}
}

func TestPointsMarginGap(t *testing.T) {
	// The margin moves every edge inwards by the given distance.
	const margin = 0.1
	for _, sides := range []int{3, 4, 6, 8} {
		s := Shape{Sides: sides}
		pts := s.Points(margin)
		mid := pts[0].Add(pts[1]).Mul(0.5)
		got := mid.Sub(s.Center).Length()
		want := Apothem(sides) - margin
		if math.Abs(got-want) > tolerance {
			t.Errorf("%d-gon: apothem %g, want %g", sides, got, want)
		}
	}
}

func TestPointsInvalid(t *testing.T) {
	if pts := (Shape{Sides: 2}).Points(0); pts != nil {
		t.Errorf("expected nil, got %v", pts)
	}
}

func TestAdjacentHexagon(t *testing.T) {
	hex, err := NewShape(6, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	next, err := hex.Adjacent(6, 0)
	if err != nil {
		t.Fatal(err)
	}

	dist := next.Center.Length()
	if want := 2 * 0.5 / math.Tan(math.Pi/6); math.Abs(dist-want) > tolerance {
		t.Errorf("distance %g, want %g", dist, want)
	}
	want := vec.Vec2{X: 1.5, Y: -math.Sqrt(3) / 2}
	if d := cmp.Diff(want, next.Center, approx); d != "" {
		t.Errorf("unexpected center (-want +got):\n%s", d)
	}
}

// sharedEdge returns the index of the edge of b which has the same
// endpoints as edge e of a, or -1.
func sharedEdge(a Shape, e int, b Shape) int {
	pa := a.Points(0)
	pb := b.Points(0)
	for j := range b.Sides {
		if near(pb[j], pa[e+1]) && near(pb[j+1], pa[e]) ||
			near(pb[j], pa[e]) && near(pb[j+1], pa[e+1]) {
			return j
		}
	}
	return -1
}

func TestAdjacentSharesEdge(t *testing.T) {
	cases := []struct {
		sides, edge, newSides int
		rotation              float64
	}{
		{6, 0, 6, 0},
		{3, 0, 4, 0},
		{3, 2, 3, 0.7},
		{4, 1, 8, 0},
		{8, 2, 4, 0},
		{8, 5, 8, 0},
		{12, 0, 3, 0},
		{12, 7, 4, 0},
		{6, 3, 12, 0.2},
		{4, 3, 3, 0},
		{5, 1, 5, 0},
	}
	for _, c := range cases {
		name := fmt.Sprintf("%d_%d_%d", c.sides, c.edge, c.newSides)
		t.Run(name, func(t *testing.T) {
			a := Shape{Sides: c.sides, Center: vec.Vec2{X: 0.5, Y: 0.25}, Rotation: c.rotation}
			b, err := a.Adjacent(c.newSides, c.edge)
			if err != nil {
				t.Fatal(err)
			}
			if b.Sides != c.newSides {
				t.Errorf("got %d sides, want %d", b.Sides, c.newSides)
			}

			back := sharedEdge(a, c.edge, b)
			if back < 0 {
				t.Fatalf("no shared edge: %v / %v", a.Points(0), b.Points(0))
			}

			// The two polygons lie on opposite sides of the shared edge.
			pa := a.Points(0)
			mid := pa[c.edge].Add(pa[c.edge+1]).Mul(0.5)
			da := a.Center.Sub(mid)
			db := b.Center.Sub(mid)
			if da.X*db.X+da.Y*db.Y >= 0 {
				t.Errorf("polygons overlap: centers %v and %v", a.Center, b.Center)
			}

			// going back across the shared edge recovers the original
			c2, err := b.Adjacent(c.sides, back)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(a.Center, c2.Center, approx); d != "" {
				t.Errorf("round trip moved center (-want +got):\n%s", d)
			}
			for _, p := range a.Points(0) {
				found := false
				for _, q := range c2.Points(0) {
					if near(p, q) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("vertex %v missing after round trip", p)
				}
			}
		})
	}
}

func TestAdjacentErrors(t *testing.T) {
	s := Shape{Sides: 4}
	for _, edge := range []int{-1, 4, 100} {
		_, err := s.Adjacent(4, edge)
		if !errors.Is(err, ErrInvalidEdgeIndex) {
			t.Errorf("edge %d: got %v, want ErrInvalidEdgeIndex", edge, err)
		}
	}
	_, err := s.Adjacent(2, 0)
	if !errors.Is(err, ErrInvalidSides) {
		t.Errorf("got %v, want ErrInvalidSides", err)
	}
}

func TestAdjacentPure(t *testing.T) {
	s := Shape{Sides: 6, Center: vec.Vec2{X: 3, Y: 4}, Rotation: 0.1}
	orig := s
	_, err := s.Adjacent(4, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s != orig {
		t.Errorf("Adjacent modified its receiver: %v", s)
	}
}

func TestTranslate(t *testing.T) {
	s := Shape{Sides: 3, Center: vec.Vec2{X: 1, Y: 1}, Rotation: 2}
	u := s.Translate(vec.Vec2{X: -1, Y: 0.5})
	want := Shape{Sides: 3, Center: vec.Vec2{X: 0, Y: 1.5}, Rotation: 2}
	if u != want {
		t.Errorf("got %v, want %v", u, want)
	}
	if s.Center != (vec.Vec2{X: 1, Y: 1}) {
		t.Errorf("Translate modified its receiver")
	}
}

func TestPath(t *testing.T) {
	s := Shape{Sides: 5}
	pts := s.Points(0)

	var cmds []path.Command
	var coords []vec.Vec2
	for cmd, p := range s.Path(0) {
		cmds = append(cmds, cmd)
		coords = append(coords, p...)
	}

	want := []path.Command{
		path.CmdMoveTo,
		path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo,
		path.CmdClose,
	}
	if d := cmp.Diff(want, cmds); d != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", d)
	}
	if d := cmp.Diff(pts[:5], coords, approx); d != "" {
		t.Errorf("unexpected coordinates (-want +got):\n%s", d)
	}

	for range (Shape{Sides: 2}).Path(0) {
		t.Error("degenerate shape has a non-empty path")
	}
}

func TestBounds(t *testing.T) {
	s := Shape{Sides: 4, Center: vec.Vec2{X: 2, Y: 3}}
	b := s.Bounds(0)
	if math.Abs(b.LLx-1.5) > tolerance || math.Abs(b.URx-2.5) > tolerance ||
		math.Abs(b.LLy-2.5) > tolerance || math.Abs(b.URy-3.5) > tolerance {
		t.Errorf("unexpected bounds %v", b)
	}
}

// The new polygon's edge 0 is the edge shared with its parent, traversed
// in the opposite direction.
func TestAdjacentEdgeZero(t *testing.T) {
	for sides := 3; sides <= 12; sides++ {
		for newSides := 3; newSides <= 12; newSides++ {
			a := Shape{Sides: sides, Rotation: 0.123 * float64(sides)}
			for edge := range sides {
				b, err := a.Adjacent(newSides, edge)
				if err != nil {
					t.Fatal(err)
				}
				pa, pb := a.Points(0), b.Points(0)
				if !near(pb[0], pa[edge+1]) || !near(pb[1], pa[edge]) {
					t.Errorf("%d-gon edge %d -> %d-gon: edge 0 is %v-%v, want %v-%v",
						sides, edge, newSides, pb[0], pb[1], pa[edge+1], pa[edge])
				}
			}
		}
	}
}
