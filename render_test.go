package rowan

import "testing"

// recordRenderer captures backend calls for inspection.
type recordRenderer struct {
	calls []backendCall
}

type backendCall struct {
	op      string // "scissor", "texture", "quad"
	scissor *Box
	tex     Texture
	color   Color
	m       Matrix
	alpha   float32
}

func (r *recordRenderer) Scissor(b *Box) {
	call := backendCall{op: "scissor"}
	if b != nil {
		box := *b
		call.scissor = &box
	}
	r.calls = append(r.calls, call)
}

func (r *recordRenderer) DrawTexture(tex Texture, m Matrix, alpha float32) {
	r.calls = append(r.calls, backendCall{op: "texture", tex: tex, m: m, alpha: alpha})
}

func (r *recordRenderer) DrawQuad(c Color, m Matrix) {
	r.calls = append(r.calls, backendCall{op: "quad", color: c, m: m})
}

func (r *recordRenderer) ops(op string) []backendCall {
	var out []backendCall
	for _, c := range r.calls {
		if c.op == op {
			out = append(out, c)
		}
	}
	return out
}

func testOutput(w, h int) (*Output, *recordRenderer) {
	rec := &recordRenderer{}
	return &Output{
		Enabled:  true,
		Width:    w,
		Height:   h,
		Scale:    1,
		Renderer: rec,
	}, rec
}

// quadCorners returns the framebuffer corners m maps the unit square to.
func quadCorners(m Matrix) [4][2]float32 {
	var out [4][2]float32
	out[0][0], out[0][1] = m.Apply(0, 0)
	out[1][0], out[1][1] = m.Apply(1, 0)
	out[2][0], out[2][1] = m.Apply(0, 1)
	out[3][0], out[3][1] = m.Apply(1, 1)
	return out
}

// --- Scaling math ---

func TestScaleLength(t *testing.T) {
	tests := []struct {
		length, offset int
		scale          float32
		want           int
	}{
		{10, 0, 2.0, 20},
		{10, 0, 1.5, 15},
		{10, 10, 1.5, 15},
		{10, 5, 1.0, 10},
		{3, 1, 1.25, 4}, // round(5) - round(1.25) = 5 - 1
		{0, 7, 2.0, 0},
	}
	for _, tt := range tests {
		got := scaleLength(tt.length, tt.offset, tt.scale)
		if got != tt.want {
			t.Errorf("scaleLength(%d, %d, %v) = %d, want %d",
				tt.length, tt.offset, tt.scale, got, tt.want)
		}
	}
}

func TestScaleLengthKeepsAbuttingBoxesContiguous(t *testing.T) {
	// Boxes [0,10) and [10,20) scaled by 1.5 must stay contiguous.
	a := scaleBox(Box{X: 0, Width: 10, Height: 1}, 1.5)
	b := scaleBox(Box{X: 10, Width: 10, Height: 1}, 1.5)
	if a.X != 0 || a.Width != 15 {
		t.Errorf("first box scaled to [%d,%d), want [0,15)", a.X, a.X+a.Width)
	}
	if b.X != 15 || b.Width != 15 {
		t.Errorf("second box scaled to [%d,%d), want [15,30)", b.X, b.X+b.Width)
	}

	// Same property at many offsets and a fractional scale.
	const scale = 1.3
	for off := -25; off < 25; off++ {
		lo := scaleBox(Box{X: off, Width: 7, Height: 1}, scale)
		hi := scaleBox(Box{X: off + 7, Width: 7, Height: 1}, scale)
		if lo.X+lo.Width != hi.X {
			t.Fatalf("gap or overlap at offset %d: [%d,%d) then [%d,%d)",
				off, lo.X, lo.X+lo.Width, hi.X, hi.X+hi.Width)
		}
	}
}

func TestScaleBox(t *testing.T) {
	got := scaleBox(Box{X: 5, Y: 5, Width: 10, Height: 10}, 2)
	want := Box{X: 10, Y: 10, Width: 20, Height: 20}
	if got != want {
		t.Errorf("scaleBox = %+v, want %+v", got, want)
	}
}

// --- Render pass ---

func TestRenderFullOutputOnNilDamage(t *testing.T) {
	s := NewScene()
	sf := newTestSurface(8, 8)
	n := NewSurfaceNode(&s.Node, sf)
	n.Move(2, 3)
	s.Commit()

	out, rec := testOutput(32, 32)
	s.Render(out, 0, 0, nil)

	draws := rec.ops("texture")
	if len(draws) != 1 {
		t.Fatalf("draw calls = %d, want 1 (full-output damage is one rectangle)", len(draws))
	}
	if draws[0].alpha != 1.0 {
		t.Errorf("alpha = %v, want 1.0", draws[0].alpha)
	}
	corners := quadCorners(draws[0].m)
	if corners[0] != [2]float32{2, 3} || corners[3] != [2]float32{10, 11} {
		t.Errorf("projection maps unit square to %v, want (2,3)-(10,11)", corners)
	}

	scissors := rec.ops("scissor")
	if len(scissors) != 2 {
		t.Fatalf("scissor calls = %d, want 2 (clip + reset)", len(scissors))
	}
	if got := scissors[0].scissor; got == nil || *got != (Box{X: 2, Y: 3, Width: 8, Height: 8}) {
		t.Errorf("scissor = %v, want the destination box", got)
	}
	if last := rec.calls[len(rec.calls)-1]; last.op != "scissor" || last.scissor != nil {
		t.Error("pass did not end with a scissor reset")
	}
}

func TestRenderDisabledOutput(t *testing.T) {
	s := NewScene()
	NewSurfaceNode(&s.Node, newTestSurface(4, 4))
	s.Commit()

	out, rec := testOutput(16, 16)
	out.Enabled = false
	s.Render(out, 0, 0, nil)
	if len(rec.calls) != 0 {
		t.Errorf("disabled output received %d backend calls, want 0", len(rec.calls))
	}
}

func TestRenderEmptyDamage(t *testing.T) {
	s := NewScene()
	NewSurfaceNode(&s.Node, newTestSurface(4, 4))
	s.Commit()

	out, rec := testOutput(16, 16)
	s.Render(out, 0, 0, NewRegion())
	if len(rec.calls) != 0 {
		t.Errorf("empty damage produced %d backend calls, want 0", len(rec.calls))
	}
}

func TestRenderDisjointDamageSkipsSurface(t *testing.T) {
	s := NewScene()
	NewSurfaceNode(&s.Node, newTestSurface(4, 4))
	s.Commit()

	out, rec := testOutput(32, 32)
	s.Render(out, 0, 0, NewRegion(Box{X: 20, Y: 20, Width: 4, Height: 4}))

	if draws := rec.ops("texture"); len(draws) != 0 {
		t.Errorf("draw calls = %d, want 0 for disjoint damage", len(draws))
	}
	// Only the trailing reset may touch the scissor.
	scissors := rec.ops("scissor")
	if len(scissors) != 1 || scissors[0].scissor != nil {
		t.Errorf("scissor calls = %v, want only the final reset", scissors)
	}
}

func TestRenderOneDrawPerDamageRect(t *testing.T) {
	s := NewScene()
	NewSurfaceNode(&s.Node, newTestSurface(10, 10))
	s.Commit()

	damage := NewRegion(
		Box{X: 0, Y: 0, Width: 3, Height: 3},
		Box{X: 6, Y: 6, Width: 3, Height: 3},
	)
	out, rec := testOutput(32, 32)
	s.Render(out, 0, 0, damage)

	draws := rec.ops("texture")
	if len(draws) != 2 {
		t.Fatalf("draw calls = %d, want 2 (one per damage rectangle)", len(draws))
	}
	// Both draws share the same projection; only the scissor differs.
	if draws[0].m != draws[1].m {
		t.Error("projection changed between damage rectangles")
	}
	scissors := rec.ops("scissor")
	if len(scissors) != 3 {
		t.Fatalf("scissor calls = %d, want 3 (two clips + reset)", len(scissors))
	}
	want := []Box{{0, 0, 3, 3}, {6, 6, 3, 3}}
	for i, w := range want {
		if scissors[i].scissor == nil || *scissors[i].scissor != w {
			t.Errorf("scissor %d = %v, want %+v", i, scissors[i].scissor, w)
		}
	}
}

func TestRenderSkipsSurfaceWithoutTexture(t *testing.T) {
	s := NewScene()
	NewSurfaceNode(&s.Node, NewImageSurface(nil))
	s.Commit()

	out, rec := testOutput(16, 16)
	s.Render(out, 0, 0, nil)
	if draws := rec.ops("texture"); len(draws) != 0 {
		t.Errorf("textureless surface drew %d times, want 0", len(draws))
	}
}

func TestRenderAppliesScale(t *testing.T) {
	s := NewScene()
	n := NewSurfaceNode(&s.Node, newTestSurface(10, 10))
	n.Move(5, 5)
	s.Commit()

	out, rec := testOutput(64, 64)
	out.Scale = 2
	s.Render(out, 0, 0, nil)

	draws := rec.ops("texture")
	if len(draws) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(draws))
	}
	corners := quadCorners(draws[0].m)
	if corners[0] != [2]float32{10, 10} || corners[3] != [2]float32{30, 30} {
		t.Errorf("scaled projection maps to %v, want (10,10)-(30,30)", corners)
	}
	scissors := rec.ops("scissor")
	if got := scissors[0].scissor; got == nil || *got != (Box{X: 10, Y: 10, Width: 20, Height: 20}) {
		t.Errorf("scaled scissor = %v, want (10,10,20,20)", got)
	}
}

func TestRenderOriginOffsetsScene(t *testing.T) {
	s := NewScene()
	n := NewSurfaceNode(&s.Node, newTestSurface(4, 4))
	n.Move(10, 10)
	s.Commit()

	out, rec := testOutput(32, 32)
	s.Render(out, 8, 8, nil)

	draws := rec.ops("texture")
	if len(draws) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(draws))
	}
	corners := quadCorners(draws[0].m)
	if corners[0] != [2]float32{2, 2} {
		t.Errorf("origin-shifted surface at %v, want (2,2)", corners[0])
	}
}

func TestRenderRectNode(t *testing.T) {
	s := NewScene()
	red := Color{1, 0, 0, 1}
	n := NewRectNode(&s.Node, 6, 6, red)
	n.Move(1, 1)
	s.Commit()

	out, rec := testOutput(16, 16)
	s.Render(out, 0, 0, nil)

	quads := rec.ops("quad")
	if len(quads) != 1 {
		t.Fatalf("quad draws = %d, want 1", len(quads))
	}
	if quads[0].color != red {
		t.Errorf("quad color = %v, want %v", quads[0].color, red)
	}
	corners := quadCorners(quads[0].m)
	if corners[0] != [2]float32{1, 1} || corners[3] != [2]float32{7, 7} {
		t.Errorf("quad maps to %v, want (1,1)-(7,7)", corners)
	}
}

func TestRenderTransformedOutput(t *testing.T) {
	s := NewScene()
	NewSurfaceNode(&s.Node, newTestSurface(10, 10))
	s.Commit()

	// A 100x60 logical output rotated a quarter turn sits in a 60x100
	// framebuffer.
	out, rec := testOutput(60, 100)
	out.Transform = Transform90
	s.Render(out, 0, 0, nil)

	scissors := rec.ops("scissor")
	if len(scissors) != 2 {
		t.Fatalf("scissor calls = %d, want 2", len(scissors))
	}
	want := Box{X: 0, Y: 90, Width: 10, Height: 10}
	if got := scissors[0].scissor; got == nil || *got != want {
		t.Errorf("transformed scissor = %v, want %+v", got, want)
	}

	// The draw projection must cover the same framebuffer pixels.
	draws := rec.ops("texture")
	if len(draws) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(draws))
	}
	corners := quadCorners(draws[0].m)
	for _, c := range corners {
		if c[0] < -0.01 || c[0] > 10.01 || c[1] < 89.99 || c[1] > 100.01 {
			t.Errorf("projected corner %v outside framebuffer box %+v", c, want)
		}
	}
}

func TestRenderSkipsDisabledSubtree(t *testing.T) {
	s := NewScene()
	n := NewSurfaceNode(&s.Node, newTestSurface(4, 4))
	s.Commit()
	n.SetEnabled(false)

	out, rec := testOutput(16, 16)
	s.Render(out, 0, 0, nil)
	if draws := rec.ops("texture"); len(draws) != 0 {
		t.Errorf("disabled node drew %d times, want 0", len(draws))
	}
}

// --- Output descriptor ---

func TestTransformedResolution(t *testing.T) {
	out := &Output{Width: 100, Height: 60}
	if w, h := out.TransformedResolution(); w != 100 || h != 60 {
		t.Errorf("normal resolution = (%d, %d), want (100, 60)", w, h)
	}
	out.Transform = Transform90
	if w, h := out.TransformedResolution(); w != 60 || h != 100 {
		t.Errorf("rotated resolution = (%d, %d), want (60, 100)", w, h)
	}
	out.Transform = TransformFlipped
	if w, h := out.TransformedResolution(); w != 100 || h != 60 {
		t.Errorf("flipped resolution = (%d, %d), want (100, 60)", w, h)
	}
}

func TestOutputMatrixNormalIsIdentity(t *testing.T) {
	out := &Output{Width: 100, Height: 60}
	if out.Matrix() != matrixIdentity() {
		t.Errorf("normal output matrix = %v, want identity", out.Matrix())
	}
}

func TestOutputMatrixQuarterTurn(t *testing.T) {
	out := &Output{Width: 60, Height: 100, Transform: Transform90}
	m := out.Matrix()
	// Logical origin lands at the framebuffer's bottom-left corner.
	if x, y := m.Apply(0, 0); x != 0 || y != 100 {
		t.Errorf("logical (0,0) -> (%v, %v), want (0, 100)", x, y)
	}
	if x, y := m.Apply(100, 60); x != 60 || y != 0 {
		t.Errorf("logical (100,60) -> (%v, %v), want (60, 0)", x, y)
	}
}

// --- Benchmarks ---

func BenchmarkCommit_100Nodes(b *testing.B) {
	s := NewScene()
	for i := 0; i < 100; i++ {
		n := NewSurfaceNode(&s.Node, newTestSurface(1, 1))
		n.Move(i, i)
	}
	s.Commit()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.Commit()
	}
}

func BenchmarkRender_100Surfaces_FullDamage(b *testing.B) {
	s := NewScene()
	for i := 0; i < 100; i++ {
		n := NewSurfaceNode(&s.Node, newTestSurface(16, 16))
		n.Move((i%10)*20, (i/10)*20)
	}
	s.Commit()
	out, rec := testOutput(200, 200)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rec.calls = rec.calls[:0]
		s.Render(out, 0, 0, nil)
	}
}
