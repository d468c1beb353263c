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
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// DefaultScale is the default number of pixels per tiling unit.
	DefaultScale = 64

	// DefaultMaxDepth is the default limit on the number of rounds used
	// by Repeat.
	DefaultMaxDepth = 1000
)

// Model is a growing collection of regular polygons.
//
// Shapes are added one at a time, each new shape sharing an edge with a
// shape already in the model.  Repeat then fills the viewport with
// translated copies of the whole collection.
//
// Shapes are never removed.  A Model is not safe for concurrent use.
type Model struct {
	// Width and Height give the size of the viewport in pixels.
	Width, Height float64

	// Scale is the number of pixels per tiling unit.
	// Must be positive.
	Scale float64

	// MaxDepth bounds the number of rounds of Repeat.  Zero means
	// DefaultMaxDepth.
	MaxDepth int

	shapes []Shape

	// lookup maps quantised centers to positions in placed.
	lookup map[key]int
	placed []Shape
}

// NewModel returns an empty model for a viewport of the given size in
// pixels.
func NewModel(width, height float64) *Model {
	return &Model{
		Width:    width,
		Height:   height,
		Scale:    DefaultScale,
		MaxDepth: DefaultMaxDepth,
		lookup:   make(map[key]int),
	}
}

// Append adds a shape to the model and returns its index.
//
// If a placed shape already occupies the same quantised center, the new
// shape replaces it in the placement set.  The earlier shape keeps its
// index.
func (m *Model) Append(s Shape) int {
	m.shapes = append(m.shapes, s)
	m.put(s, true)
	return len(m.shapes) - 1
}

// Add appends the polygon with the given number of sides which shares edge
// number edge of the shape at index, and returns the index of the new
// shape.
func (m *Model) Add(index, edge, sides int) (int, error) {
	parent, err := m.Shape(index)
	if err != nil {
		return 0, err
	}
	s, err := parent.Adjacent(sides, edge)
	if err != nil {
		return 0, err
	}
	return m.Append(s), nil
}

// AddAll calls Add for every combination of an index from indexes and an
// edge from edges.  The outer loop runs over indexes.  The indices of the
// new shapes are returned in the order they were added.
//
// All arguments are checked before the first shape is added, so that on
// error the model is left unchanged.
func (m *Model) AddAll(indexes, edges []int, sides int) ([]int, error) {
	var added []Shape
	for _, index := range indexes {
		parent, err := m.Shape(index)
		if err != nil {
			return nil, err
		}
		for _, edge := range edges {
			s, err := parent.Adjacent(sides, edge)
			if err != nil {
				return nil, err
			}
			added = append(added, s)
		}
	}

	res := make([]int, len(added))
	for i, s := range added {
		res[i] = m.Append(s)
	}
	return res, nil
}

// Len returns the number of shapes added to the model.
// Translated copies made by Repeat are not counted.
func (m *Model) Len() int {
	return len(m.shapes)
}

// Shape returns the shape with the given index.
func (m *Model) Shape(index int) (Shape, error) {
	if index < 0 || index >= len(m.shapes) {
		return Shape{}, fmt.Errorf("%w: %d (have %d shapes)",
			ErrIndexOutOfRange, index, len(m.shapes))
	}
	return m.shapes[index], nil
}

// All iterates over the shapes added to the model, in the order they were
// added.
func (m *Model) All() iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		for _, s := range m.shapes {
			if !yield(s) {
				return
			}
		}
	}
}

// Placed iterates over the placement set: one shape per quantised center,
// including the copies made by Repeat.  Shapes are visited in the order in
// which their position was first occupied.
func (m *Model) Placed() iter.Seq[Shape] {
	return func(yield func(Shape) bool) {
		for _, s := range m.placed {
			if !yield(s) {
				return
			}
		}
	}
}

// NumPlaced returns the number of occupied positions.
func (m *Model) NumPlaced() int {
	return len(m.placed)
}

// At returns the placed shape centered at (x, y), if any.
func (m *Model) At(x, y float64) (Shape, bool) {
	i, ok := m.lookup[makeKey(vec.Vec2{X: x, Y: y})]
	if !ok {
		return Shape{}, false
	}
	return m.placed[i], true
}

// Extent returns the half-width and half-height of the viewport in tiling
// units.  The viewport is centered at the origin.
func (m *Model) Extent() (maxX, maxY float64) {
	scale := m.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	return m.Width / 2 / scale, m.Height / 2 / scale
}

// put records s in the placement set.  If the position is already
// occupied, s replaces the existing shape when replace is set and is
// dropped otherwise.  The return value reports whether s was stored.
func (m *Model) put(s Shape, replace bool) bool {
	if m.lookup == nil {
		m.lookup = make(map[key]int)
	}
	k := makeKey(s.Center)
	if i, ok := m.lookup[k]; ok {
		if !replace {
			return false
		}
		m.placed[i] = s
		return true
	}
	m.lookup[k] = len(m.placed)
	m.placed = append(m.placed, s)
	return true
}

// quadrant flags used by Repeat
const (
	topLeft = iota
	topRight
	bottomLeft
	bottomRight
)

// Repeat fills the viewport with translated copies of all shapes in the
// model.
//
// The centers of the shapes at the given indexes act as translation
// generators: copies are placed at every integer combination of these
// vectors which the search reaches.  The search deepens one step per round
// until, in each of the four diagonal directions, an offset beyond the
// corner of the viewport has been seen.  Offsets further than two
// generator lengths outside the viewport are not explored.
//
// Copies whose center lies more than one generator length outside the
// viewport are discarded.  Copies never replace shapes which are already
// placed.
//
// If the generators do not span the plane, ErrDivergentTiling is returned.
func (m *Model) Repeat(indexes []int) error {
	gens := make([]vec.Vec2, 0, 2*len(indexes))
	reach := 0.0
	for _, index := range indexes {
		s, err := m.Shape(index)
		if err != nil {
			return err
		}
		gens = append(gens, s.Center, s.Center.Mul(-1))
		reach = max(reach, s.Center.Length())
	}
	if len(gens) == 0 {
		return fmt.Errorf("%w: no generators", ErrDivergentTiling)
	}

	maxX, maxY := m.Extent()
	limX, limY := maxX+2*reach, maxY+2*reach // exploration
	keepX, keepY := maxX+reach, maxY+reach   // placement

	maxDepth := m.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	type step struct {
		offset vec.Vec2
		depth  int
	}

	memo := make(map[key]int) // offset -> largest depth expanded so far
	var done [4]bool
	var stack []step
	for depth := 0; ; depth++ {
		if depth > maxDepth {
			return fmt.Errorf("%w: not covered after %d rounds",
				ErrDivergentTiling, maxDepth)
		}
		seen := len(memo)

		stack = append(stack[:0], step{depth: depth})
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if cur.depth < 0 {
				continue
			}

			x, y := cur.offset.X, cur.offset.Y
			if x < -maxX && y < -maxY {
				done[topLeft] = true
			}
			if x > maxX && y < -maxY {
				done[topRight] = true
			}
			if x < -maxX && y > maxY {
				done[bottomLeft] = true
			}
			if x > maxX && y > maxY {
				done[bottomRight] = true
			}
			if math.Abs(x) > limX || math.Abs(y) > limY {
				continue
			}

			k := makeKey(cur.offset)
			prev, visited := memo[k]
			if visited && prev >= cur.depth {
				continue
			}
			memo[k] = cur.depth
			if !visited {
				for _, s := range m.shapes {
					c := s.Translate(cur.offset)
					if math.Abs(c.Center.X) > keepX || math.Abs(c.Center.Y) > keepY {
						continue
					}
					m.put(c, false)
				}
			}

			// push in reverse, so that generators are expanded in order
			for i := len(gens) - 1; i >= 0; i-- {
				stack = append(stack, step{
					offset: cur.offset.Add(gens[i]),
					depth:  cur.depth - 1,
				})
			}
		}

		if done[topLeft] && done[topRight] && done[bottomLeft] && done[bottomRight] {
			return nil
		}
		if depth > 0 && len(memo) == seen {
			return fmt.Errorf("%w: generators do not span the plane",
				ErrDivergentTiling)
		}
	}
}
