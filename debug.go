package rowan

import (
	"fmt"
	"os"
)

// renderStats holds per-pass draw metrics. Only reported when Scene.debug
// is true.
type renderStats struct {
	surfaces  int
	rects     int
	culled    int
	drawCalls int
}

// debugRenderLog prints draw metrics for one render pass to stderr.
func (s *Scene) debugRenderLog(stats renderStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[rowan] surfaces: %d | rects: %d | culled: %d | draw calls: %d\n",
		stats.surfaces, stats.rects, stats.culled, stats.drawCalls)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: tree depth %d exceeds %d\n",
			depth, debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns on stderr if a node's pending child list grows
// past the threshold.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.pending.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[rowan] warning: node has %d pending children (threshold %d)\n",
			len(n.pending.children), debugMaxChildCount)
	}
}
