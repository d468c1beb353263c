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

package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo/float"

	"seehuhn.de/go/geom/vec"
)

// SVG is a Canvas which writes an SVG document.
type SVG struct {
	s             *svg.SVG
	width, height float64

	xs, ys []float64
}

// NewSVG starts an SVG document of the given size on w.
// The caller must call Close to complete the document.
func NewSVG(w io.Writer, width, height float64) *SVG {
	s := svg.New(w)
	s.Decimals = 3
	s.Start(width, height)
	return &SVG{s: s, width: width, height: height}
}

// Clear implements the Canvas interface.
func (c *SVG) Clear(col color.Color) {
	c.s.Rect(0, 0, c.width, c.height, "fill:"+hexColor(col))
}

// FillPolygon implements the Canvas interface.
func (c *SVG) FillPolygon(ring []vec.Vec2, col color.Color) {
	if !c.coords(ring) {
		return
	}
	c.s.Polygon(c.xs, c.ys, "fill:"+hexColor(col)+";stroke:none")
}

// StrokePolygon implements the Canvas interface.
func (c *SVG) StrokePolygon(ring []vec.Vec2, width float64, col color.Color) {
	if !c.coords(ring) {
		return
	}
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g;stroke-linejoin:round",
		hexColor(col), width)
	c.s.Polygon(c.xs, c.ys, style)
}

// Close ends the SVG document.
func (c *SVG) Close() error {
	c.s.End()
	return nil
}

// coords fills c.xs and c.ys with the ring, omitting the closing point.
func (c *SVG) coords(ring []vec.Vec2) bool {
	if len(ring) < 2 {
		return false
	}
	c.xs, c.ys = c.xs[:0], c.ys[:0]
	for _, p := range ring[:len(ring)-1] {
		c.xs = append(c.xs, p.X)
		c.ys = append(c.ys, p.Y)
	}
	return true
}

func hexColor(col color.Color) string {
	r, g, b, _ := col.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
