// Package rowan is a retained-mode scene graph for compositing display
// servers.
//
// Rowan keeps a tree of positioned nodes in which every node carries two
// state records: a pending state that mutators write, and a current state
// that traversal and rendering read. An explicit [Node.Commit] copies
// pending into current recursively, which is the compositor's frame
// boundary: edits accumulate freely between commits and become visible all
// at once.
//
// # Building a tree
//
// A tree starts from [NewScene] and grows by attaching nodes under the
// root:
//
//	scene := rowan.NewScene()
//	a := rowan.NewSurfaceNode(&scene.Node, surfaceA)
//	b := rowan.NewSurfaceNode(&scene.Node, surfaceB)
//	a.Move(5, 5)
//	b.PlaceBelow(a)
//	scene.Commit()
//
// [Node.Move], [Node.PlaceAbove], and [Node.PlaceBelow] edit only the
// pending state; nothing is visible to rendering until the commit. Child
// order is paint order, back to front. A node's parent never changes, and
// [Node.Destroy] tears a subtree down immediately in both state views,
// firing each node's destroy notification exactly once.
//
// # Rendering
//
// [Scene.Render] paints the committed tree into an [Output] through a
// [Renderer] backend, clipped to a damage [Region] — the set of rectangles
// known to need repainting. Destination boxes are scaled to the output with
// seam-free edge rounding, and each drawable is drawn once per damage
// rectangle under a backend scissor, since the clip primitive is
// rectangle-only.
//
// Two backends ship with the package: [SoftwareRenderer] composites into an
// in-memory image for headless use and tests, and [EbitenRenderer] draws
// into an [Ebitengine] image for interactive use.
//
// All of rowan is single-threaded: mutate, commit, and render from one
// goroutine.
//
// [Ebitengine]: https://ebitengine.org
package rowan
