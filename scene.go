package rowan

// Scene is the root of a scene tree and the single entry point for committing
// and rendering it. It is owned by its creator; destroying it tears down the
// whole tree.
type Scene struct {
	Node

	debug bool
}

// NewScene creates an empty scene holding only the root node.
func NewScene() *Scene {
	s := &Scene{}
	nodeInit(&s.Node, NodeRoot, nil)
	return s
}

// SetDebug toggles stderr diagnostics for tree operations and render passes
// on this scene.
func (s *Scene) SetDebug(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// constructors, which have no scene back-pointer, can run their checks.
var globalDebug bool

// Commit copies the node's pending state into its current state and recurses
// into its children, making the whole subtree's accumulated edits (position
// and stacking order) visible to traversal and rendering in one step.
//
// This is a caller-driven synchronization point, not a transaction: parts of
// the tree outside the committed subtree keep whatever state they were last
// committed to. Callers typically commit the root once per frame.
func (n *Node) Commit() {
	n.current.X = n.pending.X
	n.current.Y = n.pending.Y

	// Rebuild the current child order to match pending order. Each child is
	// unlinked from wherever it sits in the current list and appended at the
	// tail; its own committed subtree is untouched. Commit never removes a
	// node, removal only happens through Destroy.
	for _, child := range n.pending.children {
		n.current.children = removeNode(n.current.children, child)
		n.current.children = append(n.current.children, child)
	}

	for _, child := range n.current.children {
		child.Commit()
	}
}

// SurfaceVisitor is called once per drawable surface during a traversal,
// with the surface's absolute position.
type SurfaceVisitor func(sf Surface, x, y int)

// ForEachSurface walks the node's current subtree depth-first in paint order
// (back to front), expanding each surface node into the surface's own
// sub-surface hierarchy, and calls fn with each drawable's absolute
// position, accumulated from the given origin. Disabled subtrees are
// skipped. The walk is synchronous and deterministic; fn must not mutate or
// destroy nodes of the same tree.
func (n *Node) ForEachSurface(originX, originY int, fn SurfaceVisitor) {
	n.forEachNode(originX, originY, func(node *Node, x, y int) {
		if node.Kind != NodeSurface {
			return
		}
		node.surface.ForEachSurface(func(sf Surface, sx, sy int) {
			fn(sf, x+sx, y+sy)
		})
	})
}

// forEachNode is the preorder walk underlying traversal and rendering: it
// accumulates each node's current position into a running absolute offset
// and visits every enabled node of the current subtree.
func (n *Node) forEachNode(x, y int, fn func(node *Node, x, y int)) {
	if !n.enabled {
		return
	}
	x += n.current.X
	y += n.current.Y
	fn(n, x, y)
	for _, child := range n.current.children {
		child.forEachNode(x, y, fn)
	}
}
