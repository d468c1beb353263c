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
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Rasterizer computes anti-aliased pixel coverage for polygonal paths.
//
// Coverage is reported row by row through an emit callback as the
// fraction of each pixel covered by the path, between 0 and 1.  Paths are
// made of straight lines only; curve segments are replaced by their
// chords.  A Rasterizer keeps its buffers between calls, so reusing one
// instance for all tiles of a picture avoids allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps path coordinates to device pixels.
	CTM matrix.Matrix

	// Clip is the device rectangle which receives coverage.  The
	// coordinates must be integers.
	Clip rect.Rect

	// Width is the stroke width, in path coordinates.
	Width float64

	// Join is the corner style used by Stroke.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to the
	// stroke width.  Longer miters are drawn as bevels.
	MiterLimit float64

	// Flatness is the maximal distance, in device pixels, between a round
	// join and the polygon which approximates it.
	Flatness float64

	edges      []edge
	active     []int
	cover      []float32
	area       []float32
	bbox       rect.Rect // device bounding box of edges
	bboxSet    bool
	segs       []strokeSegment
	segsStart  []int
	outline    []vec.Vec2
	outlineEnd []int
}

// edge is a non-horizontal line segment in device space.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
}

// NewRasterizer returns a Rasterizer which clips to the given rectangle
// and otherwise uses the PDF defaults.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:        matrix.Identity,
		Clip:       clip,
		Width:      1,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
		Flatness:   defaultFlatness,
	}
}

// FillNonZero fills the path using the nonzero winding rule.  The slice
// passed to emit is only valid during the call.
func (r *Rasterizer) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.resetEdges()

	var cur, start vec.Vec2
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur, start = pts[0], pts[0]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		default:
			if len(pts) == 0 {
				continue
			}
			end := pts[len(pts)-1]
			r.addEdge(cur, end)
			cur = end
		}
	}
	// fills close open subpaths implicitly
	if cur != start {
		r.addEdge(cur, start)
	}

	r.sweep(emit)
}

func (r *Rasterizer) resetEdges() {
	r.edges = r.edges[:0]
	r.bboxSet = false
}

// addEdge transforms the segment from p0 to p1 to device space and adds
// it to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	b := rect.Rect{LLx: min(x0, x1), LLy: min(y0, y1), URx: max(x0, x1), URy: max(y0, y1)}
	if !r.bboxSet {
		r.bbox = b
		r.bboxSet = true
		return
	}
	r.bbox.LLx = min(r.bbox.LLx, b.LLx)
	r.bbox.LLy = min(r.bbox.LLy, b.LLy)
	r.bbox.URx = max(r.bbox.URx, b.URx)
	r.bbox.URy = max(r.bbox.URy, b.URy)
}

// sweep integrates the edge list scanline by scanline, using an active
// edge list, and reports nonzero coverage.
//
// Every edge deposits, for each pixel it crosses, its signed vertical
// extent in cover and that extent weighted by the part of the pixel to the
// right of the crossing in area.  Walking a row from left to right, the
// coverage of a pixel is then the running sum of cover to its left plus
// its own area.
func (r *Rasterizer) sweep(emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}
	xMin := max(int(math.Floor(r.bbox.LLx)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.bbox.URx))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.bbox.LLy)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.bbox.URy))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top, bot := float64(y), float64(y+1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.deposit(e, y, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// deposit adds the contribution of e within scanline y to the cover and
// area buffers, which are indexed from xMin.  The return value reports
// whether e intersects the scanline.
func (r *Rasterizer) deposit(e *edge, y, xMin, xMax int) bool {
	top := max(float64(y), min(e.y0, e.y1))
	bot := min(float64(y+1), max(e.y0, e.y1))
	if bot <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	left := int(math.Floor(min(xTop, xBot)))
	right := int(math.Floor(max(xTop, xBot)))

	switch {
	case right < xMin:
		// everything is to the left of the buffer
		c := sign * float32(bot-top)
		r.cover[0] += c
		r.area[0] += c
		return true
	case left >= xMax:
		return true
	case left == right:
		r.depositPixel(e, top, bot, sign, left, xMin, xMax)
		return true
	}

	// split the edge at pixel column boundaries
	dydx := 1 / e.dxdy
	for px := left; px <= right; px++ {
		ya := e.y0 + dydx*(float64(px)-e.x0)
		yb := e.y0 + dydx*(float64(px+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bot)
		if hi > lo {
			r.depositPixel(e, lo, hi, sign, px, xMin, xMax)
		}
	}
	return true
}

// depositPixel handles the part of e between lo and hi, which lies
// inside pixel column px.
func (r *Rasterizer) depositPixel(e *edge, lo, hi float64, sign float32, px, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case px < xMin:
		r.cover[0] += c
		r.area[0] += c
	case px < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(px)
		r.cover[px-xMin] += c
		r.area[px-xMin] += c * float32(1-frac)
	}
}

// integrateNonZero turns the accumulated cover and area values of one
// row into coverage, in place.
func integrateNonZero(cover, area []float32) {
	var sum float32
	for i := range cover {
		v := sum + area[i]
		sum += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// trimZeros strips leading and trailing zeros from a row of coverage
// values.  It returns nil if all values are zero.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	// defaultFlatness is the default tolerance for round joins, in device
	// pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF default.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes coverage.
	horizontalEdgeThreshold = 1e-10
)
