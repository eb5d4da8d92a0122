package searcher

import "baduk/game"

// nodeID is an opaque handle into a tree's node arena.
type nodeID int32

const (
	noNode nodeID = -1
	rootID nodeID = 0
)

// node is one board position reached by one line of play. Parent and child
// relations are arena handles, never pointers, so the tree holds no ownership
// cycles and is discarded wholesale when the search returns.
type node struct {
	board    *game.Board
	played   game.Color // color that made the move leading into this node
	parent   nodeID
	children []nodeID
	visits   int
	wins     int
	terminal bool
}

// tree owns the node arena for one search. Node identity is structural: a
// position reached again through a different move order resolves to the same
// node.
type tree struct {
	nodes   []node
	byState map[string]nodeID
	metrics Collector
}

// newTree creates the arena with a root holding a snapshot of the caller's
// board. The root records the opposite of toMove as its mover so that the
// first expansion generates moves for toMove.
func newTree(b *game.Board, toMove game.Color, metrics Collector) *tree {
	t := &tree{
		byState: make(map[string]nodeID),
		metrics: metrics,
	}

	root := node{
		board:  b.Copy(),
		played: toMove.Opposite(),
		parent: noNode,
	}
	t.nodes = append(t.nodes, root)
	t.byState[stateKey(root.board, root.played)] = rootID
	return t
}

// stateKey is the structural identity of a node: the stone grid plus the
// color that moved into it. Search statistics never participate.
func stateKey(b *game.Board, played game.Color) string {
	return b.Fingerprint() + string(byte(played))
}

// intern returns the node for the given position, creating it when the
// position is new. The second return value reports whether an existing node
// was reused.
func (t *tree) intern(b *game.Board, played game.Color, parent nodeID) (nodeID, bool) {
	key := stateKey(b, played)
	if id, ok := t.byState[key]; ok {
		t.metrics.AddReuse()
		return id, true
	}

	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		board:  b,
		played: played,
		parent: parent,
	})
	t.byState[key] = id
	t.metrics.AddNode()
	return id, false
}

// link records child under parent, skipping duplicates.
func (t *tree) link(parent, child nodeID) {
	for _, existing := range t.nodes[parent].children {
		if existing == child {
			return
		}
	}
	t.nodes[parent].children = append(t.nodes[parent].children, child)
}

// size returns the number of nodes in the arena.
func (t *tree) size() int {
	return len(t.nodes)
}
