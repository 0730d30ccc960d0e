package panzoom

import (
	"fmt"
	"os"
)

// globalDebug mirrors the most recently set Canvas debug flag so that node
// operations (which lack a Canvas pointer) can check it cheaply. Only valid
// with a single Canvas; multiple Canvases with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// SetDebugMode enables or disables debug mode. When enabled, gesture
// transitions and rejected gesture starts are logged to stderr, and
// disposed-node access panics.
func (c *Canvas) SetDebugMode(enabled bool) {
	c.debug = enabled
	globalDebug = enabled
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func (c *Canvas) debugf(format string, args ...any) {
	if !c.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[panzoom] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used. Only called in debug mode; in release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("panzoom debug: %s on disposed node %q", op, n.Name))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[panzoom] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
