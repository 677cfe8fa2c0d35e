package rowan

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// SoftwareRenderer is a CPU Renderer drawing into an in-memory framebuffer.
// It accepts ImageTexture textures only. Useful for headless compositing and
// for tests; the examples snapshot its target to PNG.
type SoftwareRenderer struct {
	target *image.NRGBA
	clip   *Box
}

// NewSoftwareRenderer creates a renderer with a zeroed framebuffer of the
// given size.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		target: image.NewNRGBA(image.Rect(0, 0, width, height)),
	}
}

// Target returns the framebuffer. Pixels are straight-alpha RGBA.
func (r *SoftwareRenderer) Target() *image.NRGBA {
	return r.target
}

// Clear fills the whole framebuffer with c, ignoring the scissor.
func (r *SoftwareRenderer) Clear(c Color) {
	draw.Draw(r.target, r.target.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Scissor restricts subsequent draws to b in framebuffer coordinates.
// nil removes the restriction.
func (r *SoftwareRenderer) Scissor(b *Box) {
	if b == nil {
		r.clip = nil
		return
	}
	clip := *b
	r.clip = &clip
}

// dst returns the framebuffer view draws land in: the whole target, or a
// SubImage window when a scissor is set. SubImage preserves coordinates, so
// transformed draw positions need no adjustment.
func (r *SoftwareRenderer) dst() *image.NRGBA {
	if r.clip == nil {
		return r.target
	}
	rect := image.Rect(r.clip.X, r.clip.Y, r.clip.X+r.clip.Width, r.clip.Y+r.clip.Height)
	return r.target.SubImage(rect.Intersect(r.target.Bounds())).(*image.NRGBA)
}

// DrawTexture paints tex onto the quad m maps the unit square to. Partial
// alpha is not supported by this backend: alpha <= 0 skips the draw and
// anything else draws with source-over blending, which is all the damage
// clipped render pass asks for.
func (r *SoftwareRenderer) DrawTexture(tex Texture, m Matrix, alpha float32) {
	it, ok := tex.(*ImageTexture)
	if !ok {
		panic("rowan: software renderer requires an ImageTexture")
	}
	if alpha <= 0 {
		return
	}
	w, h := it.Size()
	if w == 0 || h == 0 {
		return
	}
	// m maps the unit square; pre-scale so the affine maps source pixels.
	a := m.Mul(matrixScale(1/float32(w), 1/float32(h)))
	aff := f64.Aff3{
		float64(a[0]), float64(a[1]), float64(a[2]),
		float64(a[3]), float64(a[4]), float64(a[5]),
	}
	xdraw.NearestNeighbor.Transform(r.dst(), aff, it.Img, it.Img.Bounds(), xdraw.Over, nil)
}

// DrawQuad fills the quad m maps the unit square to with a solid color. The
// quads the render pass produces stay axis-aligned under every output
// transform, so the fill covers the transformed corners' bounding box.
func (r *SoftwareRenderer) DrawQuad(c Color, m Matrix) {
	x0, y0 := m.Apply(0, 0)
	x1, y1 := m.Apply(1, 0)
	x2, y2 := m.Apply(0, 1)
	x3, y3 := m.Apply(1, 1)

	minX := min(min(x0, x1), min(x2, x3))
	minY := min(min(y0, y1), min(y2, y3))
	maxX := max(max(x0, x1), max(x2, x3))
	maxY := max(max(y0, y1), max(y2, y3))

	rect := image.Rect(
		int(minX+0.5), int(minY+0.5),
		int(maxX+0.5), int(maxY+0.5),
	)
	draw.Draw(r.dst(), rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}
