// Package tiling constructs tessellations of the plane by regular polygons.
//
// A tiling starts from a small seed cluster: a first [Shape] is appended to
// a [Model], and further polygons are attached edge to edge using
// [Model.Add] and [Model.AddAll].  All polygons have edge length 1.
// [Model.Repeat] then covers a rectangular viewport with translated copies
// of the cluster, using the centers of selected seed shapes as the
// translation vectors of the periodic lattice.
//
// The package only computes geometry.  The subpackage render paints the
// placed shapes onto images, PDF pages or SVG documents, and the
// subpackage patterns holds a catalogue of ready-made seed clusters.
package tiling

//go:generate go run ./patterns/export
//go:generate go run ./patterns/genimages
