package rowan

// NodeState holds the position and child list of a node in one of its two
// state views. Children are kept in insertion order; earlier children paint
// first, so the list reads back-to-front.
type NodeState struct {
	X, Y     int
	children []*Node
}

// Node is an element of the scene tree. A single flat struct is used for all
// node kinds to avoid interface dispatch on the hot path.
//
// Every node carries two independent NodeState records. Mutators (Move,
// PlaceAbove, PlaceBelow, node creation) write only to the pending state;
// traversal and rendering read only the current state. Commit is the sole
// operation that copies pending into current.
type Node struct {
	Kind NodeKind

	// Parent is set at creation and never changes; nil only for the root.
	Parent *Node

	pending NodeState
	current NodeState

	destroy destroySignal

	// enabled is an immediate visibility toggle, not double-buffered.
	// Disabled subtrees are skipped by traversal and rendering.
	enabled   bool
	destroyed bool

	// Surface-kind fields (NodeSurface)
	surface       Surface
	cancelSurface func()

	// Rect-kind fields (NodeRect)
	rectW, rectH int
	rectColor    Color
}

// nodeInit sets the common field values shared by all constructors and links
// the node under parent's pending children. Only the root may have a nil
// parent, and every other node must attach directly under the root.
func nodeInit(n *Node, kind NodeKind, parent *Node) {
	if kind != NodeRoot && parent == nil {
		panic("rowan: non-root node requires a parent")
	}
	if parent != nil && parent.Kind != NodeRoot {
		panic("rowan: parent must be the root node")
	}
	n.Kind = kind
	n.Parent = parent
	n.enabled = true
	if parent != nil {
		parent.pending.children = append(parent.pending.children, n)
	}
	if globalDebug {
		debugCheckTreeDepth(n)
		if parent != nil {
			debugCheckChildCount(parent)
		}
	}
}

// NewSurfaceNode creates a node displaying the given drawable surface and
// links it into parent's pending children. The node subscribes to the
// surface's destroy notification, so it is torn down no later than the
// surface itself. Panics if parent is not a root node or sf is nil.
func NewSurfaceNode(parent *Node, sf Surface) *Node {
	if sf == nil {
		panic("rowan: cannot create a surface node from a nil surface")
	}
	n := &Node{surface: sf}
	nodeInit(n, NodeSurface, parent)
	n.cancelSurface = sf.OnDestroy(func() {
		n.cancelSurface = nil
		n.Destroy()
	})
	return n
}

// NewRectNode creates a solid color quad node of the given size and links it
// into parent's pending children. Panics if parent is not a root node.
func NewRectNode(parent *Node, width, height int, c Color) *Node {
	n := &Node{rectW: width, rectH: height, rectColor: c}
	nodeInit(n, NodeRect, parent)
	return n
}

// Surface returns the drawable surface a surface node references.
// Panics on any other node kind.
func (n *Node) Surface() Surface {
	if n.Kind != NodeSurface {
		panic("rowan: Surface called on a non-surface node")
	}
	return n.surface
}

// RectSize returns a rect node's size. Panics on any other node kind.
func (n *Node) RectSize() (width, height int) {
	if n.Kind != NodeRect {
		panic("rowan: RectSize called on a non-rect node")
	}
	return n.rectW, n.rectH
}

// SetRectSize resizes a rect node. Takes effect immediately; only position
// and stacking order are double-buffered. Panics on any other node kind.
func (n *Node) SetRectSize(width, height int) {
	if n.Kind != NodeRect {
		panic("rowan: SetRectSize called on a non-rect node")
	}
	n.rectW, n.rectH = width, height
}

// RectColor returns a rect node's color. Panics on any other node kind.
func (n *Node) RectColor() Color {
	if n.Kind != NodeRect {
		panic("rowan: RectColor called on a non-rect node")
	}
	return n.rectColor
}

// SetRectColor recolors a rect node. Immediate, like SetRectSize.
// Panics on any other node kind.
func (n *Node) SetRectColor(c Color) {
	if n.Kind != NodeRect {
		panic("rowan: SetRectColor called on a non-rect node")
	}
	n.rectColor = c
}

// Enabled reports whether the node participates in traversal and rendering.
func (n *Node) Enabled() bool {
	return n.enabled
}

// SetEnabled toggles the node (and with it, its whole subtree) in or out of
// traversal and rendering. Immediate effect, not deferred to commit.
func (n *Node) SetEnabled(enabled bool) {
	n.enabled = enabled
}

// Destroyed reports whether the node has been destroyed.
func (n *Node) Destroyed() bool {
	return n == nil || n.destroyed
}

// Position returns the node's current (committed) position.
func (n *Node) Position() (x, y int) {
	return n.current.X, n.current.Y
}

// PendingPosition returns the position the node will have after the next
// commit of its ancestor chain.
func (n *Node) PendingPosition() (x, y int) {
	return n.pending.X, n.pending.Y
}

// Children returns the node's current (committed) child list, back to front.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.current.children
}

// OnDestroy registers fn to run when the node is destroyed, before its
// subtree is torn down. Fires exactly once; returns a cancel function.
func (n *Node) OnDestroy(fn func()) (cancel func()) {
	return n.destroy.subscribe(fn)
}

// Move sets the node's pending position. Takes effect only after a commit
// reaches the node.
func (n *Node) Move(x, y int) {
	n.pending.X = x
	n.pending.Y = y
}

// PlaceAbove relinks the node immediately after sibling in their parent's
// pending children, so the node paints on top of sibling after the next
// commit. Panics unless the two nodes share a parent.
func (n *Node) PlaceAbove(sibling *Node) {
	n.placeRelative(sibling, 1)
}

// PlaceBelow relinks the node immediately before sibling in their parent's
// pending children, so the node paints beneath sibling after the next
// commit. Panics unless the two nodes share a parent.
func (n *Node) PlaceBelow(sibling *Node) {
	n.placeRelative(sibling, 0)
}

func (n *Node) placeRelative(sibling *Node, after int) {
	if n.Parent == nil || n.Parent != sibling.Parent {
		panic("rowan: node and sibling do not share a parent")
	}
	if n == sibling {
		return
	}
	children := removeNode(n.Parent.pending.children, n)
	at := indexOfNode(children, sibling) + after
	children = append(children, nil)
	copy(children[at+1:], children[at:])
	children[at] = n
	n.Parent.pending.children = children
}

// Destroy tears down the node and its whole subtree in both state views.
// Each destroyed node fires its destroy notification exactly once, before
// any of its descendants are torn down and before its own references are
// released. Safe to call on a nil or already-destroyed node.
//
// Destruction is synchronous and immediate: the subtree vanishes from both
// the current and pending views right away rather than at the next commit.
// Callers must not destroy nodes from within a traversal or render visitor
// over the same tree.
func (n *Node) Destroy() {
	if n == nil || n.destroyed {
		return
	}
	// Explicit work stack rather than call-stack recursion, so adversarially
	// deep trees cannot overflow the goroutine stack.
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if node.destroyed {
			continue
		}
		node.destroyed = true
		node.destroy.fire()

		// Push every child present in either state view, once each. A child
		// linked in both views must still be destroyed exactly once.
		for i := len(node.current.children) - 1; i >= 0; i-- {
			stack = append(stack, node.current.children[i])
		}
		for i := len(node.pending.children) - 1; i >= 0; i-- {
			child := node.pending.children[i]
			if indexOfNode(node.current.children, child) < 0 {
				stack = append(stack, child)
			}
		}

		if p := node.Parent; p != nil {
			p.current.children = removeNode(p.current.children, node)
			p.pending.children = removeNode(p.pending.children, node)
		}
		if node.cancelSurface != nil {
			node.cancelSurface()
			node.cancelSurface = nil
		}
		node.surface = nil
		node.current.children = nil
		node.pending.children = nil
	}
}

// indexOfNode returns the position of node in list, or -1.
func indexOfNode(list []*Node, node *Node) int {
	for i, have := range list {
		if have == node {
			return i
		}
	}
	return -1
}

// removeNode removes node from list if present. Uses copy+nil to avoid
// retaining a dangling pointer in the backing array.
func removeNode(list []*Node, node *Node) []*Node {
	i := indexOfNode(list, node)
	if i < 0 {
		return list
	}
	copy(list[i:], list[i+1:])
	list[len(list)-1] = nil
	return list[:len(list)-1]
}
