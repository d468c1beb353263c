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

// Package render paints tilings onto raster images, PDF pages and SVG
// documents.
//
// Drawing goes through the [Canvas] interface, which receives closed
// polygons in device coordinates.  [Draw] sets up the transformation from
// tiling units to pixels, clears the background and then fills and strokes
// the vertex ring of every shape which intersects the viewport.  Canvases
// which implement [PathCanvas] receive tile paths and the transformation
// instead.
package render

import (
	"image/color"
	"iter"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/tiling"
)

// Config holds the visual parameters of a rendered tiling.
type Config struct {
	// Scale is the number of pixels per tiling unit.  If Scale is zero,
	// DrawModel uses the scale of the model and Draw uses
	// tiling.DefaultScale.
	Scale float64

	// LineWidth is the width of tile outlines, in tiling units.
	// Zero disables outlines.
	LineWidth float64

	// Margin moves every tile edge inwards by this distance, in tiling
	// units, leaving a gap between neighbouring tiles.
	Margin float64

	Background color.Color
	Fill       color.Color
	Line       color.Color
}

// DefaultConfig returns the default visual parameters: light outlines on
// reddish-brown tiles over a black background.  The scale is left at zero.
func DefaultConfig() *Config {
	return &Config{
		LineWidth:  0.1,
		Margin:     0.1,
		Background: color.Black,
		Fill:       color.RGBA{R: 0x88, G: 0x55, B: 0x55, A: 0xff},
		Line:       color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff},
	}
}

// CTM returns the transformation from tiling units to device pixels for a
// viewport of the given size.  The origin of the tiling is mapped to the
// center of the viewport.
func (cfg *Config) CTM(width, height float64) matrix.Matrix {
	s := cfg.scale()
	return matrix.Matrix{s, 0, 0, s, width / 2, height / 2}
}

func (cfg *Config) scale() float64 {
	if cfg.Scale > 0 {
		return cfg.Scale
	}
	return tiling.DefaultScale
}

// Canvas is a drawing surface.
//
// All coordinates are device pixels with the origin in the top-left corner
// and the y-axis pointing down.  Rings are closed: the last point repeats
// the first.  A ring passed to a Canvas method is only valid during the
// call.
type Canvas interface {
	// Clear paints the whole surface in the given color.
	Clear(c color.Color)

	// FillPolygon fills the interior of a closed ring.
	FillPolygon(ring []vec.Vec2, c color.Color)

	// StrokePolygon draws the outline of a closed ring.  The width is
	// given in pixels.
	StrokePolygon(ring []vec.Vec2, width float64, c color.Color)
}

// PathCanvas is implemented by canvases which transform and rasterize
// paths themselves.  For these, Draw passes the tile paths in tiling units
// together with the transformation to device pixels.
type PathCanvas interface {
	Canvas

	// FillPath fills p, transformed by ctm, using the nonzero rule.
	FillPath(p path.Path, ctm matrix.Matrix, c color.Color)

	// StrokePath strokes the closed subpaths of p, transformed by ctm.
	// The width is given in the units of p.
	StrokePath(p path.Path, ctm matrix.Matrix, width float64, c color.Color)
}

// Draw paints the given shapes onto c.  The size of the viewport is given
// in pixels.  If cfg is nil, DefaultConfig is used.
func Draw(c Canvas, width, height float64, shapes iter.Seq[tiling.Shape], cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	scale := cfg.scale()
	ctm := cfg.CTM(width, height)

	c.Clear(cfg.Background)

	// viewport in tiling units, grown by the line width
	hw := width/2/scale + cfg.LineWidth
	hh := height/2/scale + cfg.LineWidth
	view := rect.Rect{LLx: -hw, LLy: -hh, URx: hw, URy: hh}

	pc, usePaths := c.(PathCanvas)
	var ring []vec.Vec2
	for s := range shapes {
		if !overlaps(s.Bounds(cfg.Margin), view) {
			continue
		}

		if usePaths {
			p := s.Path(cfg.Margin)
			pc.FillPath(p, ctm, cfg.Fill)
			if cfg.LineWidth > 0 {
				pc.StrokePath(p, ctm, cfg.LineWidth, cfg.Line)
			}
			continue
		}

		ring = ring[:0]
		for _, p := range s.Points(cfg.Margin) {
			ring = append(ring, apply(ctm, p))
		}
		if len(ring) == 0 {
			continue
		}

		c.FillPolygon(ring, cfg.Fill)
		if cfg.LineWidth > 0 {
			c.StrokePolygon(ring, cfg.LineWidth*scale, cfg.Line)
		}
	}
}

// DrawModel paints all placed shapes of m onto c, using the viewport size
// stored in the model.  Unless cfg sets a scale, the scale of the model is
// used, so that the picture shows the region which Repeat covered.
func DrawModel(c Canvas, m *tiling.Model, cfg *Config) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Scale <= 0 && m.Scale > 0 {
		local := *cfg
		local.Scale = m.Scale
		cfg = &local
	}
	Draw(c, m.Width, m.Height, m.Placed(), cfg)
}

// apply transforms p by the matrix m.
func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && b.LLx <= a.URx && a.LLy <= b.URy && b.LLy <= a.URy
}
