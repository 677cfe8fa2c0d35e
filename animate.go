package rowan

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animator tweens node positions over time. Each Step writes the
// interpolated positions as pending moves, so animation frames become
// visible only when the caller commits, at the same frame boundary as every
// other pending edit.
type Animator struct {
	anims []*moveAnim
}

// moveAnim holds the active tweens for one node's X and Y.
type moveAnim struct {
	node   *Node
	tweenX *gween.Tween
	tweenY *gween.Tween
}

// MoveTo starts animating node from its pending position to (x, y) over
// duration seconds. A node already animating restarts from wherever its
// pending position is now; the previous tween is dropped.
func (a *Animator) MoveTo(node *Node, x, y int, duration float32, easeFn ease.TweenFunc) {
	a.Cancel(node)
	fromX, fromY := node.PendingPosition()
	a.anims = append(a.anims, &moveAnim{
		node:   node,
		tweenX: gween.New(float32(fromX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(fromY), float32(y), duration, easeFn),
	})
}

// Cancel stops any active animation on node, leaving its pending position
// wherever the last Step put it.
func (a *Animator) Cancel(node *Node) {
	for i, anim := range a.anims {
		if anim.node == node {
			a.anims = append(a.anims[:i], a.anims[i+1:]...)
			return
		}
	}
}

// Step advances every active animation by dt seconds and writes the new
// positions as pending moves. Finished animations and animations on
// destroyed nodes are dropped. Returns whether any animation is still
// active, so callers can skip commits once everything has settled.
func (a *Animator) Step(dt float32) bool {
	live := a.anims[:0]
	for _, anim := range a.anims {
		if anim.node.Destroyed() {
			continue
		}
		x, doneX := anim.tweenX.Update(dt)
		y, doneY := anim.tweenY.Update(dt)
		anim.node.Move(roundf(x), roundf(y))
		if !doneX || !doneY {
			live = append(live, anim)
		}
	}
	for i := len(live); i < len(a.anims); i++ {
		a.anims[i] = nil
	}
	a.anims = live
	return len(a.anims) > 0
}

// roundf rounds to the nearest integer, halves away from zero.
func roundf(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
