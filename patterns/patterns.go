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

// Package patterns holds a catalogue of periodic tilings by regular
// polygons.
//
// Every pattern knows how to build a small seed cluster in a
// [tiling.Model] and which shapes of the cluster span the translation
// lattice of the tiling.
package patterns

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/tiling"
)

// Pattern describes one periodic tiling.
type Pattern struct {
	Name string // lowercase a-z, digits and _ only

	// Vertex lists the polygons around each vertex, for example "4.8.8".
	Vertex string

	// Build adds the seed cluster to an empty model and returns the
	// indexes of the shapes whose centers generate the translation
	// lattice.
	Build func(m *tiling.Model) ([]int, error)
}

// Generate returns a model for a viewport of the given size in pixels,
// covered by the pattern.
func (p Pattern) Generate(width, height float64) (*tiling.Model, error) {
	m := tiling.NewModel(width, height)
	gens, err := p.Build(m)
	if err != nil {
		return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
	}
	if err := m.Repeat(gens); err != nil {
		return nil, fmt.Errorf("pattern %q: %w", p.Name, err)
	}
	return m, nil
}

// All contains all patterns, grouped by category.
var All = map[string][]Pattern{
	"regular":     regularPatterns,
	"semiregular": semiregularPatterns,
}

// Lookup returns the pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	for _, category := range All {
		for _, p := range category {
			if p.Name == name {
				return p, true
			}
		}
	}
	return Pattern{}, false
}

// Names returns the names of all patterns, sorted by category and then
// in catalogue order.
func Names() []string {
	var names []string
	for _, category := range slices.Sorted(maps.Keys(All)) {
		for _, p := range All[category] {
			names = append(names, p.Name)
		}
	}
	return names
}

// seed wraps a model while a cluster is built.  After the first error
// all further calls are ignored; the error is kept in err.
type seed struct {
	m   *tiling.Model
	err error
}

func (s *seed) start(sides int) int {
	if s.err != nil {
		return -1
	}
	var shape tiling.Shape
	shape, s.err = tiling.NewShape(sides, 0, 0, 0)
	if s.err != nil {
		return -1
	}
	return s.m.Append(shape)
}

func (s *seed) add(index, edge, sides int) int {
	if s.err != nil {
		return -1
	}
	var idx int
	idx, s.err = s.m.Add(index, edge, sides)
	return idx
}

func (s *seed) addAll(indexes, edges []int, sides int) []int {
	if s.err != nil {
		return nil
	}
	var idx []int
	idx, s.err = s.m.AddAll(indexes, edges, sides)
	return idx
}

// result returns the generators, or the first error encountered.
func (s *seed) result(gens []int) ([]int, error) {
	if s.err != nil {
		return nil, s.err
	}
	return gens, nil
}
