package rowan

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is fully opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// NRGBA converts the color to 8-bit straight-alpha RGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Box is an axis-aligned rectangle in integer coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Box struct {
	X, Y, Width, Height int
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the box.
// Points on the right and bottom edges are considered outside.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width &&
		y >= b.Y && y < b.Y+b.Height
}

// Intersection returns the overlap of b and other. The result is empty when
// the boxes are disjoint or merely share an edge.
func (b Box) Intersection(other Box) Box {
	x1 := max(b.X, other.X)
	y1 := max(b.Y, other.Y)
	x2 := min(b.X+b.Width, other.X+other.Width)
	y2 := min(b.Y+b.Height, other.Y+other.Height)
	if x2 <= x1 || y2 <= y1 {
		return Box{}
	}
	return Box{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersects reports whether b and other overlap with nonzero area.
func (b Box) Intersects(other Box) bool {
	return !b.Intersection(other).Empty()
}

// NodeKind distinguishes the behavior of a Node in the scene tree.
type NodeKind uint8

const (
	NodeRoot    NodeKind = iota // tree root with no parent; one per Scene
	NodeSurface                 // references an external drawable Surface
	NodeRect                    // solid color quad with a fixed size
)
