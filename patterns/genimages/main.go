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

// Command genimages renders the tiling patterns to PNG, PDF and SVG files.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/tiling"
	"seehuhn.de/go/tiling/patterns"
	"seehuhn.de/go/tiling/render"
)

func main() {
	width := flag.Int("width", 640, "image width in pixels")
	height := flag.Int("height", 480, "image height in pixels")
	scale := flag.Float64("scale", tiling.DefaultScale, "pixels per polygon edge")
	outDir := flag.String("out", "testdata/images", "output directory")
	only := flag.String("pattern", "", "render only the named pattern")
	flag.Parse()

	cfg := render.DefaultConfig()

	names := patterns.Names()
	if *only != "" {
		names = []string{*only}
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, name := range names {
		p, ok := patterns.Lookup(name)
		if !ok {
			panic(fmt.Errorf("unknown pattern %q", name))
		}

		m := tiling.NewModel(float64(*width), float64(*height))
		m.Scale = *scale
		gens, err := p.Build(m)
		if err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		if err := m.Repeat(gens); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}

		base := filepath.Join(*outDir, name)
		if err := writePNG(base+".png", m, *width, *height, cfg); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		if err := writePDF(base+".pdf", m, cfg); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		if err := writeSVG(base+".svg", m, cfg); err != nil {
			panic(fmt.Errorf("%s: %w", name, err))
		}
		slog.Info("rendered", "pattern", name, "vertex", p.Vertex,
			"seeds", m.Len(), "tiles", m.NumPlaced())
	}
}

func writePNG(fname string, m *tiling.Model, width, height int, cfg *render.Config) (err error) {
	c := render.NewImage(width, height)
	render.DrawModel(c, m, cfg)

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return c.WritePNG(f)
}

func writePDF(fname string, m *tiling.Model, cfg *render.Config) error {
	c, err := render.CreatePDF(fname, m.Width, m.Height)
	if err != nil {
		return err
	}
	render.DrawModel(c, m, cfg)
	return c.Close()
}

func writeSVG(fname string, m *tiling.Model, cfg *render.Config) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	c := render.NewSVG(f, m.Width, m.Height)
	render.DrawModel(c, m, cfg)
	return c.Close()
}
