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
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Image is a Canvas which paints into an RGBA image.
//
// Shapes are rasterized with anti-aliasing, and outlines use round joins
// like the PDF and SVG canvases.  Image also implements [PathCanvas], so
// that [Draw] hands over tile paths together with the transformation
// instead of pre-transformed rings.
//
// An Image is not safe for concurrent use.
type Image struct {
	Dst *image.RGBA

	r *Rasterizer
}

// NewImage allocates a new image of the given size in pixels.
func NewImage(width, height int) *Image {
	r := NewRasterizer(rect.Rect{URx: float64(width), URy: float64(height)})
	r.Join = graphics.LineJoinRound
	return &Image{
		Dst: image.NewRGBA(image.Rect(0, 0, width, height)),
		r:   r,
	}
}

// Clear implements the Canvas interface.
func (c *Image) Clear(col color.Color) {
	draw.Draw(c.Dst, c.Dst.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPolygon implements the Canvas interface.
func (c *Image) FillPolygon(ring []vec.Vec2, col color.Color) {
	c.FillPath(ringPath(ring), matrix.Identity, col)
}

// StrokePolygon implements the Canvas interface.
func (c *Image) StrokePolygon(ring []vec.Vec2, width float64, col color.Color) {
	c.StrokePath(ringPath(ring), matrix.Identity, width, col)
}

// FillPath implements the PathCanvas interface.
func (c *Image) FillPath(p path.Path, ctm matrix.Matrix, col color.Color) {
	c.r.CTM = ctm
	c.r.FillNonZero(p, c.painter(col))
}

// StrokePath implements the PathCanvas interface.
func (c *Image) StrokePath(p path.Path, ctm matrix.Matrix, width float64, col color.Color) {
	if width <= 0 {
		return
	}
	c.r.CTM = ctm
	c.r.Width = width
	c.r.Stroke(p, c.painter(col))
}

// WritePNG encodes the image in PNG format.
func (c *Image) WritePNG(w io.Writer) error {
	return png.Encode(w, c.Dst)
}

// painter returns an emit callback which composites col over the image,
// using the coverage values as a mask.
func (c *Image) painter(col color.Color) func(y, xMin int, coverage []float32) {
	sr, sg, sb, sa := col.RGBA()
	return func(y, xMin int, coverage []float32) {
		row := c.Dst.Pix[c.Dst.PixOffset(xMin, y):]
		for i, cov := range coverage {
			m := uint32(cov*0xffff + 0.5)
			if m == 0 {
				continue
			}
			inv := 0xffff - sa*m/0xffff
			px := row[4*i : 4*i+4 : 4*i+4]
			px[0] = uint8((uint32(px[0])*0x101*inv + sr*m) / 0xffff >> 8)
			px[1] = uint8((uint32(px[1])*0x101*inv + sg*m) / 0xffff >> 8)
			px[2] = uint8((uint32(px[2])*0x101*inv + sb*m) / 0xffff >> 8)
			px[3] = uint8((uint32(px[3])*0x101*inv + sa*m) / 0xffff >> 8)
		}
	}
}

// ringPath converts a closed ring into a path.
func ringPath(ring []vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(ring) < 2 {
			return
		}
		if !yield(path.CmdMoveTo, ring[:1]) {
			return
		}
		for i := 1; i < len(ring)-1; i++ {
			if !yield(path.CmdLineTo, ring[i:i+1]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
