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
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// PDF is a Canvas which draws onto a single-page PDF file.
// One pixel corresponds to one PDF point.
type PDF struct {
	page          *document.Page
	width, height float64
}

// CreatePDF creates a new PDF file with a single page of the given size.
// The caller must call Close to complete the file.
func CreatePDF(fileName string, width, height float64) (*PDF, error) {
	paper := &pdf.Rectangle{
		URx: width,
		URy: height,
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF origin is bottom-left; canvas coordinates are top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	return &PDF{page: page, width: width, height: height}, nil
}

// Clear implements the Canvas interface.
func (c *PDF) Clear(col color.Color) {
	c.page.SetFillColor(toPDFColor(col))
	c.page.Rectangle(0, 0, c.width, c.height)
	c.page.Fill()
}

// FillPolygon implements the Canvas interface.
func (c *PDF) FillPolygon(ring []vec.Vec2, col color.Color) {
	if len(ring) < 2 {
		return
	}
	c.page.SetFillColor(toPDFColor(col))
	c.ring(ring)
	c.page.Fill()
}

// StrokePolygon implements the Canvas interface.
func (c *PDF) StrokePolygon(ring []vec.Vec2, width float64, col color.Color) {
	if len(ring) < 2 {
		return
	}
	c.page.SetLineWidth(width)
	c.page.SetStrokeColor(toPDFColor(col))
	c.ring(ring)
	c.page.Stroke()
}

// Close writes the page and closes the file.
func (c *PDF) Close() error {
	return c.page.Close()
}

func (c *PDF) ring(ring []vec.Vec2) {
	c.page.MoveTo(ring[0].X, ring[0].Y)
	for _, p := range ring[1 : len(ring)-1] {
		c.page.LineTo(p.X, p.Y)
	}
	c.page.ClosePath()
}

func toPDFColor(col color.Color) pdfcolor.Color {
	r, g, b, _ := col.RGBA()
	return pdfcolor.DeviceRGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}
