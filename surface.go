package rowan

import "image"

// Texture is the renderable content of a surface. Concrete textures are
// backend-specific; a renderer only accepts the texture type it understands.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)
}

// Surface is the external drawable entity a surface node references: actual
// pixel content plus its own tree of sub-surfaces. The scene does not own
// surfaces; it only observes their destruction.
type Surface interface {
	// Texture returns the surface's renderable texture, or nil when the
	// surface has nothing to show this frame.
	Texture() Texture

	// Size returns the surface dimensions in surface-local coordinates.
	Size() (w, h int)

	// SurfaceTransform returns the orientation the content is stored with.
	// Painting applies the inverse, undoing the stored orientation.
	SurfaceTransform() Transform

	// ForEachSurface visits this surface and every sub-surface beneath it in
	// paint order, with offsets local to this surface.
	ForEachSurface(fn SurfaceVisitor)

	// OnDestroy registers fn to run exactly once when the surface is
	// destroyed. The returned cancel function unregisters it.
	OnDestroy(fn func()) (cancel func())
}

// ImageTexture is a CPU texture backed by a straight-alpha image, the
// texture type the software renderer draws.
type ImageTexture struct {
	Img *image.NRGBA
}

// Size returns the image dimensions.
func (t *ImageTexture) Size() (w, h int) {
	b := t.Img.Bounds()
	return b.Dx(), b.Dy()
}

// ImageSurface is a reference Surface implementation carrying one CPU
// texture plus child sub-surfaces at local offsets. It is what the examples
// and tests composite; a display server would implement Surface over its own
// client buffers instead.
type ImageSurface struct {
	tex       *ImageTexture
	transform Transform

	subs []imageSub

	destroy   destroySignal
	destroyed bool
}

type imageSub struct {
	surface *ImageSurface
	x, y    int
}

// NewImageSurface creates a surface showing img. A nil img creates a surface
// with no renderable texture, which renders nothing until SetImage.
func NewImageSurface(img *image.NRGBA) *ImageSurface {
	s := &ImageSurface{}
	s.SetImage(img)
	return s
}

// SetImage replaces the surface content. Immediate; surfaces carry no
// pending state of their own in this model.
func (s *ImageSurface) SetImage(img *image.NRGBA) {
	if img == nil {
		s.tex = nil
		return
	}
	s.tex = &ImageTexture{Img: img}
}

// SetTransform sets the orientation the content is stored with.
func (s *ImageSurface) SetTransform(t Transform) {
	s.transform = t
}

// AddSub attaches child as a sub-surface at the given offset, local to s.
// Later sub-surfaces paint above earlier ones.
func (s *ImageSurface) AddSub(child *ImageSurface, x, y int) {
	if child == nil {
		panic("rowan: cannot add a nil sub-surface")
	}
	s.subs = append(s.subs, imageSub{surface: child, x: x, y: y})
}

// Texture returns the current texture, or nil when the surface is empty or
// destroyed.
func (s *ImageSurface) Texture() Texture {
	if s.destroyed || s.tex == nil {
		return nil
	}
	return s.tex
}

// Size returns the texture dimensions, or (0, 0) for an empty surface.
func (s *ImageSurface) Size() (w, h int) {
	if s.tex == nil {
		return 0, 0
	}
	return s.tex.Size()
}

// SurfaceTransform returns the stored content orientation.
func (s *ImageSurface) SurfaceTransform() Transform {
	return s.transform
}

// ForEachSurface visits s and then every sub-surface subtree in paint order,
// translating each yielded offset into s-local coordinates.
func (s *ImageSurface) ForEachSurface(fn SurfaceVisitor) {
	fn(s, 0, 0)
	for _, sub := range s.subs {
		x, y := sub.x, sub.y
		sub.surface.ForEachSurface(func(sf Surface, sx, sy int) {
			fn(sf, x+sx, y+sy)
		})
	}
}

// OnDestroy registers fn on the surface's destroy notification.
func (s *ImageSurface) OnDestroy(fn func()) (cancel func()) {
	return s.destroy.subscribe(fn)
}

// Destroy fires the surface's destroy notification, which in turn tears down
// any scene node referencing it. Sub-surfaces are destroyed with it.
// Idempotent.
func (s *ImageSurface) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.destroy.fire()
	for _, sub := range s.subs {
		sub.surface.Destroy()
	}
	s.subs = nil
	s.tex = nil
}
