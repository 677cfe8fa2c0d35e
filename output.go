package rowan

// Output describes one display the scene is rendered to: its framebuffer
// size, the scale factor applied to scene coordinates, the orientation
// transform matching the physical panel, and the backend that draws into it.
//
// Scene and damage coordinates live in the output's scaled logical space,
// whose dimensions are TransformedResolution. The render pass maps them to
// framebuffer pixels through Matrix.
type Output struct {
	Enabled       bool
	Width, Height int
	Scale         float32
	Transform     Transform
	Renderer      Renderer
}

// TransformedResolution returns the output dimensions in logical
// orientation: Width and Height swap when the transform is a quarter turn.
func (o *Output) TransformedResolution() (w, h int) {
	if o.Transform.SwapsDimensions() {
		return o.Height, o.Width
	}
	return o.Width, o.Height
}

// Matrix returns the projection from logical output coordinates to
// framebuffer pixels under the output transform. Identity for a normal
// untransformed output.
func (o *Output) Matrix() Matrix {
	if o.Transform == TransformNormal {
		return matrixIdentity()
	}
	tw, th := o.TransformedResolution()
	m := matrixTranslate(float32(o.Width)/2, float32(o.Height)/2)
	m = m.Mul(matrixFor(o.Transform))
	return m.Mul(matrixTranslate(-float32(tw)/2, -float32(th)/2))
}
