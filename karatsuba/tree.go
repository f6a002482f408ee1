package karatsuba

import (
	"strings"
)

// Tree is the immutable call tree of one Trace invocation.
//
// Nodes are stored in pre-order (a parent precedes its children and the
// children appear in -0, -1, -2 order). Indices returned by the methods
// refer to that order; index 0 is always the root.
type Tree struct {
	nodes    []CallNode
	parent   []int
	children [][]int
	byID     map[string]int
}

// Edge links a parent call to one of its children.
// ID follows the "e<child id>" convention of the flow-chart renderer.
type Edge struct {
	ID     string `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// Position places a node on a 2D canvas.
type Position struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

func newTree(nodes []CallNode, parent []int, children [][]int) *Tree {
	byID := make(map[string]int, len(nodes))
	for i, n := range nodes {
		byID[n.ID] = i
	}

	return &Tree{nodes: nodes, parent: parent, children: children, byID: byID}
}

// Len returns the number of calls recorded in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the outermost call.
func (t *Tree) Root() CallNode { return t.nodes[0] }

// Node returns the call stored at index i.
// It panics if i is out of range, like a slice index.
func (t *Tree) Node(i int) CallNode { return t.nodes[i] }

// Nodes returns a copy of all calls in pre-order.
func (t *Tree) Nodes() []CallNode {
	out := make([]CallNode, len(t.nodes))
	copy(out, t.nodes)

	return out
}

// Parent returns the index of the parent of node i, or -1 for the root.
func (t *Tree) Parent(i int) int { return t.parent[i] }

// Children returns the child indices of node i: none for a leaf,
// exactly three otherwise.
func (t *Tree) Children(i int) []int {
	out := make([]int, len(t.children[i]))
	copy(out, t.children[i])

	return out
}

// IndexOf returns the arena index of the node with the given path id.
func (t *Tree) IndexOf(id string) (int, bool) {
	i, ok := t.byID[id]

	return i, ok
}

// ByID returns the node with the given path id.
func (t *Tree) ByID(id string) (CallNode, bool) {
	i, ok := t.byID[id]
	if !ok {
		return CallNode{}, false
	}

	return t.nodes[i], true
}

// ParentID derives the parent path id by dropping the last "-k" segment.
// The root (and any id without a dash) has no parent.
func ParentID(id string) (string, bool) {
	cut := strings.LastIndexByte(id, '-')
	if cut < 0 {
		return "", false
	}

	return id[:cut], true
}

// Edges returns one edge per non-root node, in pre-order of the targets.
func (t *Tree) Edges() []Edge {
	if len(t.nodes) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(t.nodes)-1)
	for i := 1; i < len(t.nodes); i++ {
		target := t.nodes[i].ID
		edges = append(edges, Edge{
			ID:     "e" + target,
			Source: t.nodes[t.parent[i]].ID,
			Target: target,
		})
	}

	return edges
}

// Leaves returns the indices of all base-case calls in pre-order.
func (t *Tree) Leaves() []int {
	var out []int
	for i := range t.nodes {
		if len(t.children[i]) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// MaxDepth returns the deepest recursion level reached.
func (t *Tree) MaxDepth() int {
	d := 0
	for _, n := range t.nodes {
		if n.Depth > d {
			d = n.Depth
		}
	}

	return d
}

// Levels groups node indices by depth; Levels()[d] lists every call at
// depth d in pre-order.
func (t *Tree) Levels() [][]int {
	levels := make([][]int, t.MaxDepth()+1)
	for i, n := range t.nodes {
		levels[n.Depth] = append(levels[n.Depth], i)
	}

	return levels
}

// Walk visits the nodes in pre-order until fn returns false.
func (t *Tree) Walk(fn func(i int, n CallNode) bool) {
	for i, n := range t.nodes {
		if !fn(i, n) {
			return
		}
	}
}

// Layout positions every node for a top-down chart: Y = depth·dy and the
// nodes of one level are spread dx apart, centred on X = 0.
// Positions are returned in pre-order.
func (t *Tree) Layout(dx, dy float64) []Position {
	pos := make([]Position, len(t.nodes))
	for _, level := range t.Levels() {
		centre := float64(len(level)-1) / 2
		for k, i := range level {
			pos[i] = Position{
				ID: t.nodes[i].ID,
				X:  (float64(k) - centre) * dx,
				Y:  float64(t.nodes[i].Depth) * dy,
			}
		}
	}

	return pos
}
