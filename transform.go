package rowan

// Transform describes the rotation and/or flip applied to content so that it
// matches the physical orientation of an output. Rotations are in 90-degree
// steps; flipped variants mirror around the vertical axis before rotating.
type Transform uint8

const (
	TransformNormal     Transform = iota // no rotation or flip
	Transform90                          // rotate 90 degrees counter-clockwise
	Transform180                         // rotate 180 degrees
	Transform270                         // rotate 270 degrees counter-clockwise
	TransformFlipped                     // flip around the vertical axis
	TransformFlipped90                   // flip, then rotate 90 degrees
	TransformFlipped180                  // flip, then rotate 180 degrees
	TransformFlipped270                  // flip, then rotate 270 degrees
)

// Invert returns the transform that undoes t. Flipped transforms and
// half-turns are their own inverse; pure quarter-turns swap with each other.
func (t Transform) Invert() Transform {
	if t == Transform90 || t == Transform270 {
		return t ^ Transform180
	}
	return t
}

// SwapsDimensions reports whether t exchanges width and height.
func (t Transform) SwapsDimensions() bool {
	return t&1 != 0
}

// transformBox maps a box through t within a space of the given width and
// height (the dimensions of the space the box currently lives in). The
// mapping matches the inverse of the matrix returned by matrixFor: applying
// transformBox with t.Invert() lands the box on the same pixels a quad drawn
// through matrixFor(t) covers.
func transformBox(b Box, t Transform, width, height int) Box {
	out := b
	if t.SwapsDimensions() {
		out.Width = b.Height
		out.Height = b.Width
	}
	switch t {
	case TransformNormal:
		out.X = b.X
		out.Y = b.Y
	case Transform90:
		out.X = height - b.Y - b.Height
		out.Y = b.X
	case Transform180:
		out.X = width - b.X - b.Width
		out.Y = height - b.Y - b.Height
	case Transform270:
		out.X = b.Y
		out.Y = width - b.X - b.Width
	case TransformFlipped:
		out.X = width - b.X - b.Width
		out.Y = b.Y
	case TransformFlipped90:
		out.X = b.Y
		out.Y = b.X
	case TransformFlipped180:
		out.X = b.X
		out.Y = height - b.Y - b.Height
	case TransformFlipped270:
		out.X = height - b.Y - b.Height
		out.Y = width - b.X - b.Width
	}
	return out
}
