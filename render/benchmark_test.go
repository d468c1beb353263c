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
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/tiling"
)

// BenchmarkImage measures painting a hexagonal tiling into an image of
// increasing size.  The tiling is computed once per size.
func BenchmarkImage(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			m := tiling.NewModel(float64(size), float64(size))
			m.Append(tiling.Shape{Sides: 6})
			gens, err := m.AddAll([]int{0}, []int{0, 2, 4}, 6)
			if err != nil {
				b.Fatal(err)
			}
			if err := m.Repeat(gens); err != nil {
				b.Fatal(err)
			}

			c := NewImage(size, size)
			cfg := DefaultConfig()

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				DrawModel(c, m, cfg)
			}
		})
	}
}

// BenchmarkRasterizerHexagon measures filling and stroking a single tile
// which covers most of the image.
func BenchmarkRasterizerHexagon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			s := float64(size) / 2
			r.CTM = matrix.Matrix{s, 0, 0, s, s, s}
			r.Width = 0.05

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			emit := func(y, xMin int, coverage []float32) {
				row := dst.Pix[y*dst.Stride+xMin:]
				for i, c := range coverage {
					row[i] = uint8(c * 255)
				}
			}
			p := tiling.Shape{Sides: 6}.Path(0)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.FillNonZero(p, emit)
				r.Stroke(p, emit)
			}
		})
	}
}

// BenchmarkVectorHexagon fills the same tile with x/image/vector, for
// comparison.
func BenchmarkVectorHexagon(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			z := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			s := float32(size) / 2
			ring := tiling.Shape{Sides: 6}.Points(0)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				z.Reset(size, size)
				z.MoveTo(s+s*float32(ring[0].X), s+s*float32(ring[0].Y))
				for _, p := range ring[1:] {
					z.LineTo(s+s*float32(p.X), s+s*float32(p.Y))
				}
				z.ClosePath()
				z.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
