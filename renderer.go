package rowan

// Renderer is the drawing backend a render pass issues calls against. The
// clip primitive is rectangle-only, which is why the render pass issues one
// draw per damage rectangle instead of one clipped draw per region.
type Renderer interface {
	// Scissor restricts subsequent draws to b, in framebuffer coordinates.
	// A nil box removes the restriction.
	Scissor(b *Box)

	// DrawTexture paints tex onto the quad the matrix maps the unit square
	// to, modulated by alpha.
	DrawTexture(tex Texture, m Matrix, alpha float32)

	// DrawQuad fills the quad the matrix maps the unit square to with a
	// solid color.
	DrawQuad(c Color, m Matrix)
}
