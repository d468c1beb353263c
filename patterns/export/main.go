// Command export writes the placed shapes of every pattern to JSON, for
// use by external renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/tiling"
	"seehuhn.de/go/tiling/patterns"
)

// viewport size used for the export, in pixels
const (
	width  = 640
	height = 480
)

func main() {
	var out struct {
		Width    float64       `json:"width"`
		Height   float64       `json:"height"`
		Scale    float64       `json:"scale"`
		Patterns []jsonPattern `json:"patterns"`
	}
	out.Width = width
	out.Height = height
	out.Scale = tiling.DefaultScale

	for _, category := range slices.Sorted(maps.Keys(patterns.All)) {
		for _, p := range patterns.All[category] {
			m, err := p.Generate(width, height)
			if err != nil {
				panic(err)
			}
			out.Patterns = append(out.Patterns, toJSON(category, p, m))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/patterns.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonPattern struct {
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Vertex   string      `json:"vertex"`
	Seeds    int         `json:"seeds"`
	Shapes   []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Sides    int          `json:"sides"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Rotation float64      `json:"rotation"`
	Points   [][2]float64 `json:"points"`
}

func toJSON(category string, p patterns.Pattern, m *tiling.Model) jsonPattern {
	jp := jsonPattern{
		Name:     p.Name,
		Category: category,
		Vertex:   p.Vertex,
		Seeds:    m.Len(),
	}
	for s := range m.Placed() {
		js := jsonShape{
			Sides:    s.Sides,
			X:        s.Center.X,
			Y:        s.Center.Y,
			Rotation: s.Rotation,
		}
		// the closing point is implied
		pts := s.Points(0)
		for _, pt := range pts[:len(pts)-1] {
			js.Points = append(js.Points, [2]float64{pt.X, pt.Y})
		}
		jp.Shapes = append(jp.Shapes, js)
	}
	return jp
}
