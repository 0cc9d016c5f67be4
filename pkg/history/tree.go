package history

import (
	"github.com/ianw11/gamebase/pkg/domain"
	"github.com/ianw11/gamebase/pkg/turn"
)

// NodeID addresses a node in a Tree.
type NodeID int

// Root is the ID of the root sentinel of every tree.
const Root NodeID = 0

type node struct {
	turn     *turn.Turn
	parent   NodeID
	children []NodeID
}

// Tree is a navigable record of every turn taken.
// A Tree is not safe for concurrent use.
type Tree struct {
	nodes   []node
	current NodeID
	index   map[*turn.Turn]NodeID
}

// New creates a tree holding only the root sentinel.
func New() *Tree {
	return &Tree{
		nodes:   []node{{parent: Root}},
		current: Root,
		index:   make(map[*turn.Turn]NodeID),
	}
}

// AddTurn records t as a new child of the current node and moves the cursor to it.
// A nil turn is ignored and the current node is returned unchanged.
func (tr *Tree) AddTurn(t *turn.Turn) NodeID {
	if t == nil {
		return tr.current
	}
	id := NodeID(len(tr.nodes))
	tr.nodes = append(tr.nodes, node{turn: t, parent: tr.current})
	tr.nodes[tr.current].children = append(tr.nodes[tr.current].children, id)
	if _, seen := tr.index[t]; !seen {
		tr.index[t] = id
	}
	tr.current = id
	return id
}

// Rewind returns the current turn and moves the cursor to its parent.
func (tr *Tree) Rewind() (*turn.Turn, error) {
	if tr.current == Root {
		return nil, domain.ErrAtRoot
	}
	n := tr.nodes[tr.current]
	tr.current = n.parent
	return n.turn, nil
}

// AdvanceToNextAt moves the cursor to the child at choice and returns its turn.
func (tr *Tree) AdvanceToNextAt(choice int) (*turn.Turn, error) {
	children := tr.nodes[tr.current].children
	if choice < 0 || choice >= len(children) {
		return nil, &domain.IndexError{Index: choice, Len: len(children)}
	}
	tr.current = children[choice]
	return tr.nodes[tr.current].turn, nil
}

// WidestBranchFactor returns the largest number of children of any node in the tree.
func (tr *Tree) WidestBranchFactor() int {
	w, _ := tr.WidestBranchFactorAt(Root)
	return w
}

// WidestBranchFactorAt returns the largest number of children of any node in
// the subtree rooted at id.
func (tr *Tree) WidestBranchFactorAt(id NodeID) (int, error) {
	if err := tr.check(id); err != nil {
		return 0, err
	}
	widest := 0
	stack := []NodeID{id}
	for len(stack) > 0 {
		n := tr.nodes[stack[len(stack)-1]]
		stack = stack[:len(stack)-1]
		if len(n.children) > widest {
			widest = len(n.children)
		}
		stack = append(stack, n.children...)
	}
	return widest, nil
}

// FindPathToTurn returns the child indices leading from the root to the node
// holding t. Replaying the indices with AdvanceToNextAt from the root lands
// on that node. If t was added more than once, the first node is used.
func (tr *Tree) FindPathToTurn(t *turn.Turn) ([]int, error) {
	id, ok := tr.index[t]
	if !ok || t == nil {
		return nil, domain.ErrNotFound
	}

	var path []int
	for id != Root {
		parent := tr.nodes[id].parent
		for i, child := range tr.nodes[parent].children {
			if child == id {
				path = append(path, i)
				break
			}
		}
		id = parent
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// Current returns the node the cursor points at.
func (tr *Tree) Current() NodeID { return tr.current }

// CurrentTurn returns the turn at the cursor, or nil at the root.
func (tr *Tree) CurrentTurn() *turn.Turn { return tr.nodes[tr.current].turn }

// Root returns the ID of the root sentinel.
func (tr *Tree) Root() NodeID { return Root }

// Reset moves the cursor back to the root without discarding any branch.
func (tr *Tree) Reset() { tr.current = Root }

// Turn returns the turn held by id. The root holds nil.
func (tr *Tree) Turn(id NodeID) (*turn.Turn, error) {
	if err := tr.check(id); err != nil {
		return nil, err
	}
	return tr.nodes[id].turn, nil
}

// Parent returns the parent of id. The root has no parent.
func (tr *Tree) Parent(id NodeID) (NodeID, bool) {
	if id == Root || tr.check(id) != nil {
		return Root, false
	}
	return tr.nodes[id].parent, true
}

// Children returns a copy of the child IDs of id, in insertion order.
func (tr *Tree) Children(id NodeID) []NodeID {
	if tr.check(id) != nil {
		return nil
	}
	return append([]NodeID(nil), tr.nodes[id].children...)
}

// Len returns the number of recorded turns, excluding the root sentinel.
func (tr *Tree) Len() int { return len(tr.nodes) - 1 }

// Depth returns the distance between the root and the cursor.
func (tr *Tree) Depth() int {
	depth := 0
	for id := tr.current; id != Root; id = tr.nodes[id].parent {
		depth++
	}
	return depth
}

// Path returns the turns from the root to the cursor, oldest first.
func (tr *Tree) Path() []*turn.Turn {
	turns := make([]*turn.Turn, tr.Depth())
	i := len(turns) - 1
	for id := tr.current; id != Root; id = tr.nodes[id].parent {
		turns[i] = tr.nodes[id].turn
		i--
	}
	return turns
}

// Walk visits every node in pre-order, children in insertion order.
// depth is 0 for the root.
func (tr *Tree) Walk(fn func(id NodeID, depth int)) {
	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{Root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(f.id, f.depth)
		children := tr.nodes[f.id].children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, frame{children[i], f.depth + 1})
		}
	}
}

func (tr *Tree) check(id NodeID) error {
	if id < 0 || int(id) >= len(tr.nodes) {
		return &domain.IndexError{Index: int(id), Len: len(tr.nodes)}
	}
	return nil
}
