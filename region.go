package rowan

// Region is a set of points covered by zero or more disjoint boxes. Damage
// regions restrict rendering work: the renderer only issues draw calls for
// the parts of a surface that intersect the region.
//
// The rectangle list is kept disjoint at all times, so iterating Rects and
// painting each one touches every covered pixel exactly once.
type Region struct {
	rects []Box
}

// NewRegion returns a region covering the union of the given boxes.
func NewRegion(boxes ...Box) *Region {
	r := &Region{}
	for _, b := range boxes {
		r.Add(b)
	}
	return r
}

// Add extends the region to cover b. Parts of b already covered are not
// duplicated; empty boxes are ignored.
func (r *Region) Add(b Box) {
	if b.Empty() {
		return
	}
	pending := []Box{b}
	for _, have := range r.rects {
		var next []Box
		for _, p := range pending {
			next = append(next, subtractBox(p, have)...)
		}
		if len(next) == 0 {
			return
		}
		pending = next
	}
	r.rects = append(r.rects, pending...)
}

// Empty reports whether the region covers no points.
func (r *Region) Empty() bool {
	return r == nil || len(r.rects) == 0
}

// Contains reports whether the region covers the point (x, y).
func (r *Region) Contains(x, y int) bool {
	if r == nil {
		return false
	}
	for _, b := range r.rects {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Rects returns the disjoint boxes making up the region.
// The returned slice MUST NOT be mutated by the caller.
func (r *Region) Rects() []Box {
	if r == nil {
		return nil
	}
	return r.rects
}

// Intersection returns a new region covering the overlap of r and b.
// The result's boxes stay disjoint since clipping cannot introduce overlap.
func (r *Region) Intersection(b Box) *Region {
	out := &Region{}
	if r == nil {
		return out
	}
	for _, have := range r.rects {
		if i := have.Intersection(b); !i.Empty() {
			out.rects = append(out.rects, i)
		}
	}
	return out
}

// subtractBox returns the parts of b not covered by sub, split into at most
// four boxes: the bands above and below the overlap, and the side pieces
// beside it.
func subtractBox(b, sub Box) []Box {
	i := b.Intersection(sub)
	if i.Empty() {
		return []Box{b}
	}
	var out []Box
	if i.Y > b.Y {
		out = append(out, Box{X: b.X, Y: b.Y, Width: b.Width, Height: i.Y - b.Y})
	}
	if bot := b.Y + b.Height; bot > i.Y+i.Height {
		out = append(out, Box{X: b.X, Y: i.Y + i.Height, Width: b.Width, Height: bot - (i.Y + i.Height)})
	}
	if i.X > b.X {
		out = append(out, Box{X: b.X, Y: i.Y, Width: i.X - b.X, Height: i.Height})
	}
	if right := b.X + b.Width; right > i.X+i.Width {
		out = append(out, Box{X: i.X + i.Width, Y: i.Y, Width: right - (i.X + i.Width), Height: i.Height})
	}
	return out
}
