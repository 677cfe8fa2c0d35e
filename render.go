package rowan

import "github.com/chewxy/math32"

// scaleLength scales a length at a given offset, rounding the far edge and
// the near edge separately and subtracting. Rounding the length alone would
// open one-pixel gaps or overlaps between adjacent boxes at different
// offsets; this formula keeps boxes whose edges touch before scaling
// touching after scaling.
func scaleLength(length, offset int, scale float32) int {
	return int(math32.Round(float32(offset+length)*scale)) -
		int(math32.Round(float32(offset)*scale))
}

// scaleBox scales a box by the output scale factor, widths and heights
// through scaleLength with the box position as the offset.
func scaleBox(b Box, scale float32) Box {
	b.Width = scaleLength(b.Width, b.X, scale)
	b.Height = scaleLength(b.Height, b.Y, scale)
	b.X = int(math32.Round(float32(b.X) * scale))
	b.Y = int(math32.Round(float32(b.Y) * scale))
	return b
}

// scissorBox maps a damage rectangle from logical output coordinates to the
// framebuffer rectangle the backend scissor expects, through the inverse of
// the output transform over the transformed resolution.
func scissorBox(out *Output, rect Box) Box {
	tw, th := out.TransformedResolution()
	return transformBox(rect, out.Transform.Invert(), tw, th)
}

// Render paints the scene's current tree into the output, with the scene
// origin at (x, y) in output-logical coordinates. Painting is clipped to
// damage, a set of rectangles in the same coordinate space known to need
// repainting; a nil damage region repaints the whole output. A disabled
// output or an empty damage region issues no backend calls at all.
//
// Each visible drawable is drawn once per damage rectangle intersecting its
// destination box, with the backend scissor set to that rectangle; the
// scissor is reset after the pass.
func (s *Scene) Render(out *Output, x, y int, damage *Region) {
	if !out.Enabled {
		return
	}
	if damage == nil {
		tw, th := out.TransformedResolution()
		damage = NewRegion(Box{Width: tw, Height: th})
	}
	if damage.Empty() {
		return
	}

	var stats renderStats
	projection := out.Matrix()

	s.forEachNode(-x, -y, func(node *Node, nx, ny int) {
		switch node.Kind {
		case NodeSurface:
			node.surface.ForEachSurface(func(sf Surface, sx, sy int) {
				renderSurface(out, damage, projection, sf, nx+sx, ny+sy, &stats)
			})
		case NodeRect:
			renderRect(out, damage, projection, node, nx, ny, &stats)
		}
	})
	out.Renderer.Scissor(nil)

	s.debugRenderLog(stats)
}

// renderSurface draws one drawable surface at its absolute position,
// clipped to the damage region.
func renderSurface(out *Output, damage *Region, projection Matrix,
	sf Surface, x, y int, stats *renderStats) {
	tex := sf.Texture()
	if tex == nil {
		return
	}
	stats.surfaces++

	w, h := sf.Size()
	box := scaleBox(Box{X: x, Y: y, Width: w, Height: h}, out.Scale)
	m := projectBox(box, sf.SurfaceTransform().Invert(), 0, projection)

	clipped := damage.Intersection(box)
	if clipped.Empty() {
		stats.culled++
		return
	}
	for _, rect := range clipped.Rects() {
		sc := scissorBox(out, rect)
		out.Renderer.Scissor(&sc)
		out.Renderer.DrawTexture(tex, m, 1.0)
		stats.drawCalls++
	}
}

// renderRect draws one solid color quad, clipped the same way surfaces are.
func renderRect(out *Output, damage *Region, projection Matrix,
	node *Node, x, y int, stats *renderStats) {
	stats.rects++

	box := scaleBox(Box{X: x, Y: y, Width: node.rectW, Height: node.rectH}, out.Scale)
	m := projectBox(box, TransformNormal, 0, projection)

	clipped := damage.Intersection(box)
	if clipped.Empty() {
		stats.culled++
		return
	}
	for _, rect := range clipped.Rects() {
		sc := scissorBox(out, rect)
		out.Renderer.Scissor(&sc)
		out.Renderer.DrawQuad(node.rectColor, m)
		stats.drawCalls++
	}
}
