package rowan

import "github.com/chewxy/math32"

// Matrix is a 3x3 projection matrix in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
//
// Render matrices map the unit square (0,0)-(1,1) onto a destination quad in
// output buffer pixels; the third row is (0, 0, 1) for every matrix produced
// by this package.
type Matrix [9]float32

// matrixIdentity returns the identity matrix.
func matrixIdentity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mul returns m * n, the matrix that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[3] + m[2]*n[6],
		m[0]*n[1] + m[1]*n[4] + m[2]*n[7],
		m[0]*n[2] + m[1]*n[5] + m[2]*n[8],

		m[3]*n[0] + m[4]*n[3] + m[5]*n[6],
		m[3]*n[1] + m[4]*n[4] + m[5]*n[7],
		m[3]*n[2] + m[4]*n[5] + m[5]*n[8],

		m[6]*n[0] + m[7]*n[3] + m[8]*n[6],
		m[6]*n[1] + m[7]*n[4] + m[8]*n[7],
		m[6]*n[2] + m[7]*n[5] + m[8]*n[8],
	}
}

// Apply transforms the point (x, y) by m.
func (m Matrix) Apply(x, y float32) (float32, float32) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// matrixTranslate returns a translation by (x, y).
func matrixTranslate(x, y float32) Matrix {
	return Matrix{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// matrixScale returns a scale by (x, y).
func matrixScale(x, y float32) Matrix {
	return Matrix{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// matrixRotate returns a rotation by rad radians.
func matrixRotate(rad float32) Matrix {
	sin, cos := math32.Sincos(rad)
	return Matrix{
		cos, -sin, 0,
		sin, cos, 0,
		0, 0, 1,
	}
}

// transformMatrices holds the linear map for each Transform value.
var transformMatrices = [8]Matrix{
	TransformNormal: {
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	},
	Transform90: {
		0, 1, 0,
		-1, 0, 0,
		0, 0, 1,
	},
	Transform180: {
		-1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	},
	Transform270: {
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	},
	TransformFlipped: {
		-1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	},
	TransformFlipped90: {
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	},
	TransformFlipped180: {
		1, 0, 0,
		0, -1, 0,
		0, 0, 1,
	},
	TransformFlipped270: {
		0, -1, 0,
		-1, 0, 0,
		0, 0, 1,
	},
}

// matrixFor returns the linear map for t.
func matrixFor(t Transform) Matrix {
	return transformMatrices[t]
}

// projectBox builds the matrix that maps the unit square onto box, orienting
// the content by transform (around the box center) and rotating by rotation
// radians, then projecting through projection. Painting content that carries
// a stored orientation requires passing the INVERSE of that orientation here,
// since the paint transform undoes what the content already baked in.
func projectBox(box Box, transform Transform, rotation float32, projection Matrix) Matrix {
	x := float32(box.X)
	y := float32(box.Y)
	width := float32(box.Width)
	height := float32(box.Height)

	m := matrixTranslate(x, y)

	if rotation != 0 {
		m = m.Mul(matrixTranslate(width/2, height/2))
		m = m.Mul(matrixRotate(rotation))
		m = m.Mul(matrixTranslate(-width/2, -height/2))
	}

	m = m.Mul(matrixScale(width, height))

	if transform != TransformNormal {
		m = m.Mul(matrixTranslate(0.5, 0.5))
		m = m.Mul(matrixFor(transform))
		m = m.Mul(matrixTranslate(-0.5, -0.5))
	}

	return projection.Mul(m)
}
