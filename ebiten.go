package rowan

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// EbitenTexture is a GPU texture backed by an ebiten image, the texture type
// the ebiten renderer draws.
type EbitenTexture struct {
	Img *ebiten.Image
}

// Size returns the image dimensions.
func (t *EbitenTexture) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

// EbitenRenderer is a Renderer drawing into an ebiten image, typically the
// screen passed to an ebiten game's Draw. It accepts EbitenTexture textures
// only.
type EbitenRenderer struct {
	target *ebiten.Image
	clip   *Box
}

// NewEbitenRenderer creates a renderer drawing into target.
func NewEbitenRenderer(target *ebiten.Image) *EbitenRenderer {
	return &EbitenRenderer{target: target}
}

// SetTarget redirects subsequent draws to img. Ebiten hands Draw a fresh
// screen image each frame, so callers reset the target at the top of Draw.
func (r *EbitenRenderer) SetTarget(img *ebiten.Image) {
	r.target = img
}

// Scissor restricts subsequent draws to b in framebuffer coordinates.
// nil removes the restriction.
func (r *EbitenRenderer) Scissor(b *Box) {
	if b == nil {
		r.clip = nil
		return
	}
	clip := *b
	r.clip = &clip
}

// dst returns the image draws land in: the whole target, or a SubImage view
// when a scissor is set. SubImage preserves coordinates.
func (r *EbitenRenderer) dst() *ebiten.Image {
	if r.clip == nil {
		return r.target
	}
	rect := image.Rect(r.clip.X, r.clip.Y, r.clip.X+r.clip.Width, r.clip.Y+r.clip.Height)
	return r.target.SubImage(rect.Intersect(r.target.Bounds())).(*ebiten.Image)
}

// geoM converts a projection matrix for source dimensions (w, h) into the
// GeoM ebiten expects, which maps source pixels rather than the unit square.
func geoM(m Matrix, w, h int) ebiten.GeoM {
	a := m.Mul(matrixScale(1/float32(w), 1/float32(h)))
	var g ebiten.GeoM
	g.SetElement(0, 0, float64(a[0]))
	g.SetElement(0, 1, float64(a[1]))
	g.SetElement(0, 2, float64(a[2]))
	g.SetElement(1, 0, float64(a[3]))
	g.SetElement(1, 1, float64(a[4]))
	g.SetElement(1, 2, float64(a[5]))
	return g
}

// DrawTexture paints tex onto the quad m maps the unit square to.
func (r *EbitenRenderer) DrawTexture(tex Texture, m Matrix, alpha float32) {
	et, ok := tex.(*EbitenTexture)
	if !ok {
		panic("rowan: ebiten renderer requires an EbitenTexture")
	}
	w, h := et.Size()
	if w == 0 || h == 0 || alpha <= 0 {
		return
	}
	opts := &ebiten.DrawImageOptions{GeoM: geoM(m, w, h)}
	opts.ColorScale.ScaleAlpha(alpha)
	r.dst().DrawImage(et.Img, opts)
}

// quadPixel is a shared 1x1 white image stretched to draw solid quads.
// Created lazily so merely importing the package never touches the GPU.
var quadPixel *ebiten.Image

// DrawQuad fills the quad m maps the unit square to with a solid color.
func (r *EbitenRenderer) DrawQuad(c Color, m Matrix) {
	if quadPixel == nil {
		quadPixel = ebiten.NewImage(1, 1)
		quadPixel.Fill(ColorWhite.NRGBA())
	}
	opts := &ebiten.DrawImageOptions{GeoM: geoM(m, 1, 1)}
	opts.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	r.dst().DrawImage(quadPixel, opts)
}
