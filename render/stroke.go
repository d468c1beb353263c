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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a line segment of a stroked path, in path coordinates.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent from A to B
	N    vec.Vec2 // T turned by 90 degrees counterclockwise
}

// Stroke paints the outline of every closed subpath of p, using Width,
// Join and MiterLimit.  Open subpaths have no use for tile outlines and
// are ignored.  The slice passed to emit is only valid during the call.
//
// Each closed subpath gives two polygons: the offset curve on the +N side
// traversed forwards and the offset curve on the -N side traversed
// backwards.  Filled together with the nonzero rule, they cover the band
// of the stroke and leave the inside of the subpath empty.
func (r *Rasterizer) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.collectSegments(p)

	r.outline = r.outline[:0]
	r.outlineEnd = r.outlineEnd[:0]
	for i := range r.segsStart {
		r.strokeClosed(r.subpath(i))
	}

	r.resetEdges()
	start := 0
	for _, end := range r.outlineEnd {
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
		start = end
	}
	r.sweep(emit)
}

// collectSegments splits p into line segments and records where each
// closed subpath starts.
func (r *Rasterizer) collectSegments(p path.Path) {
	r.segs = r.segs[:0]
	r.segsStart = r.segsStart[:0]

	var cur, start vec.Vec2
	first := 0
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			r.segs = r.segs[:first] // drop an open subpath
			cur, start = pts[0], pts[0]
		case path.CmdClose:
			r.addSegment(cur, start)
			if len(r.segs) > first {
				r.segsStart = append(r.segsStart, first)
				first = len(r.segs)
			}
			cur = start
		default:
			if len(pts) == 0 {
				continue
			}
			end := pts[len(pts)-1]
			r.addSegment(cur, end)
			cur = end
		}
	}
	r.segs = r.segs[:first]
}

func (r *Rasterizer) addSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

// subpath returns the segments of the i-th closed subpath.
func (r *Rasterizer) subpath(i int) []strokeSegment {
	end := len(r.segs)
	if i+1 < len(r.segsStart) {
		end = r.segsStart[i+1]
	}
	return r.segs[r.segsStart[i]:end]
}

// strokeClosed appends the two stroke polygons of one closed subpath to
// r.outline.
func (r *Rasterizer) strokeClosed(segs []strokeSegment) {
	n := len(segs)
	d := r.Width / 2

	start := len(r.outline)
	for i := range n {
		r.cornerPlus(&segs[(i+n-1)%n], &segs[i], d)
	}
	r.endPolygon(start)

	start = len(r.outline)
	for i := n - 1; i >= 0; i-- {
		r.cornerMinus(&segs[(i+n-1)%n], &segs[i], d)
	}
	r.endPolygon(start)
}

// endPolygon marks the end of the polygon which starts at r.outline[start].
// Polygons with fewer than three points are dropped.
func (r *Rasterizer) endPolygon(start int) {
	if len(r.outline)-start < 3 {
		r.outline = r.outline[:start]
		return
	}
	r.outlineEnd = append(r.outlineEnd, len(r.outline))
}

// cornerPlus adds the +N side of the corner where a ends and b starts.
func (r *Rasterizer) cornerPlus(a, b *strokeSegment, d float64) {
	p := b.A
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, a.B.Add(a.N.Mul(d)), p.Add(b.N.Mul(d)))
	case sin > 0: // +N is the inner side
		r.innerCorner(p, a, b, d, 1)
	default:
		r.outline = append(r.outline, a.B.Add(a.N.Mul(d)))
		r.addJoin(p, a, b, d, 1)
		r.outline = append(r.outline, p.Add(b.N.Mul(d)))
	}
}

// cornerMinus adds the -N side of the corner where a ends and b starts,
// walking from b back to a.
func (r *Rasterizer) cornerMinus(a, b *strokeSegment, d float64) {
	p := b.A
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.outline = append(r.outline, p.Sub(b.N.Mul(d)), a.B.Sub(a.N.Mul(d)))
	case sin > 0: // -N is the outer side
		r.outline = append(r.outline, p.Sub(b.N.Mul(d)))
		r.addJoin(p, a, b, d, -1)
		r.outline = append(r.outline, a.B.Sub(a.N.Mul(d)))
	default:
		r.innerCorner(p, a, b, d, -1)
	}
}

// innerCorner adds the point where the two offset lines on the inner side
// of the corner at p intersect.  side is +1 for the +N side and -1 for
// the -N side.
func (r *Rasterizer) innerCorner(p vec.Vec2, a, b *strokeSegment, d, side float64) {
	cos := a.T.Dot(b.T)
	cosHalf := math.Sqrt((1 + cos) / 2)
	dir := a.N.Add(b.N)
	l := dir.Length()
	if cosHalf < 1e-9 || l < 1e-9 {
		// path folds back on itself
		first, second := a, b
		if side < 0 {
			first, second = b, a
		}
		r.outline = append(r.outline,
			p.Add(first.N.Mul(side*d)),
			p.Add(second.N.Mul(side*d)))
		return
	}
	r.outline = append(r.outline, p.Add(dir.Mul(side*d/(l*cosHalf))))
}

// addJoin adds the join geometry on the outer side of the corner at p,
// between the offset points of a and b which the caller adds.
func (r *Rasterizer) addJoin(p vec.Vec2, a, b *strokeSegment, d, side float64) {
	cos := a.T.Dot(b.T)

	switch r.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if side > 0 {
			r.addArc(p, d, a.N, -angle)
		} else {
			r.addArc(p, d, b.N.Mul(-1), -angle)
		}

	case graphics.LineJoinMiter:
		// The miter length relative to the width is 1/sin(phi/2), where
		// phi = pi - theta is the corner angle of the stroke.
		sinHalf := math.Sqrt((1 + cos) / 2)
		if sinHalf <= 0 || 1/sinHalf > r.MiterLimit+1e-10 {
			return // bevel
		}
		dir := a.N.Add(b.N)
		l := dir.Length()
		if l < zeroLengthThreshold {
			return
		}
		r.outline = append(r.outline, p.Add(dir.Mul(side*d/(l*sinHalf))))
	}
	// bevel joins need no extra points
}

// addArc appends points on the circle of the given radius around center,
// from the direction start (excluded) through the given sweep (included).
// Positive sweeps turn counterclockwise.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, start vec.Vec2, sweep float64) {
	devRadius := max(
		r.linear(vec.Vec2{X: radius}).Length(),
		r.linear(vec.Vec2{Y: radius}).Length())

	n := 1
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		}
	}

	for i := 1; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: start.X*cos - start.Y*sin,
			Y: start.X*sin + start.Y*cos,
		}
		r.outline = append(r.outline, center.Add(dir.Mul(radius)))
	}
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

const (
	// zeroLengthThreshold is the length below which stroke segments are
	// dropped.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the sine of the turning angle below which
	// a corner needs no join.
	collinearityThreshold = 1e-6
)
