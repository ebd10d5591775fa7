package bstviz

import (
	"github.com/cockroachdb/errors"
)

// Tree is an unbalanced binary search tree over distinct ints. Nodes are
// stored in an arena; a parent owns its children through their indices.
// Shape depends on insertion order.
type Tree struct {
	nodes []TreeNode
	root  NodeIndex
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: NoNode}
}

// Root returns the index of the root node, or NoNode for an empty tree.
func (t *Tree) Root() NodeIndex { return t.root }

// Empty reports whether the tree has no nodes.
func (t *Tree) Empty() bool { return t.root == NoNode }

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node at index i. The pointer is invalidated by the next
// Insert, Build or Reset.
func (t *Tree) Node(i NodeIndex) *TreeNode {
	return &t.nodes[i]
}

// Insert places value in the tree and returns its index. Inserting a value
// that is already present is a no-op; the existing index is returned with
// inserted == false.
func (t *Tree) Insert(value int) (at NodeIndex, inserted bool) {
	t.root = t.insert(t.root, value, &at, &inserted)
	return at, inserted
}

// insert returns the (possibly new) subtree root for index i. The arena may
// grow during the recursive call, so no node pointer is held across it.
func (t *Tree) insert(i NodeIndex, value int, at *NodeIndex, inserted *bool) NodeIndex {
	if i == NoNode {
		t.nodes = append(t.nodes, newTreeNode(value))
		*at = NodeIndex(len(t.nodes) - 1)
		*inserted = true
		return *at
	}
	v := t.nodes[i].Value
	switch {
	case value < v:
		child := t.insert(t.nodes[i].left, value, at, inserted)
		t.nodes[i].left = child
	case value > v:
		child := t.insert(t.nodes[i].right, value, at, inserted)
		t.nodes[i].right = child
	default:
		*at = i
	}
	return i
}

// Build discards the current tree and inserts values in order. Duplicates
// are dropped. Every node starts in its initial entrance and highlight state.
func (t *Tree) Build(values []int) {
	t.nodes = make([]TreeNode, 0, len(values))
	t.root = NoNode
	for _, v := range values {
		t.Insert(v)
	}
}

// Reset removes every node.
func (t *Tree) Reset() {
	t.nodes = nil
	t.root = NoNode
}

// InOrder returns the values in left, node, right order (ascending).
func (t *Tree) InOrder() []int {
	res := make([]int, 0, len(t.nodes))
	return t.inorder(t.root, res)
}

func (t *Tree) inorder(i NodeIndex, res []int) []int {
	if i == NoNode {
		return res
	}
	n := &t.nodes[i]
	res = t.inorder(n.left, res)
	res = append(res, n.Value)
	return t.inorder(n.right, res)
}

// PreOrder returns the values in node, left, right order.
func (t *Tree) PreOrder() []int {
	res := make([]int, 0, len(t.nodes))
	return t.preorder(t.root, res)
}

func (t *Tree) preorder(i NodeIndex, res []int) []int {
	if i == NoNode {
		return res
	}
	n := &t.nodes[i]
	res = append(res, n.Value)
	res = t.preorder(n.left, res)
	return t.preorder(n.right, res)
}

// PostOrder returns the values in left, right, node order.
func (t *Tree) PostOrder() []int {
	res := make([]int, 0, len(t.nodes))
	return t.postorder(t.root, res)
}

func (t *Tree) postorder(i NodeIndex, res []int) []int {
	if i == NoNode {
		return res
	}
	n := &t.nodes[i]
	res = t.postorder(n.left, res)
	res = t.postorder(n.right, res)
	return append(res, n.Value)
}

// CountNodes returns the number of nodes reachable from the root.
func (t *Tree) CountNodes() int {
	return t.countNodes(t.root)
}

func (t *Tree) countNodes(i NodeIndex) int {
	if i == NoNode {
		return 0
	}
	n := &t.nodes[i]
	return 1 + t.countNodes(n.left) + t.countNodes(n.right)
}

// CountLeaves returns the number of nodes without children.
func (t *Tree) CountLeaves() int {
	return t.countLeaves(t.root)
}

func (t *Tree) countLeaves(i NodeIndex) int {
	if i == NoNode {
		return 0
	}
	n := &t.nodes[i]
	if n.IsLeaf() {
		return 1
	}
	return t.countLeaves(n.left) + t.countLeaves(n.right)
}

// Height returns the number of edges on the longest root-to-leaf path.
// An empty tree has height -1 and a single node has height 0.
func (t *Tree) Height() int {
	return t.height(t.root)
}

func (t *Tree) height(i NodeIndex) int {
	if i == NoNode {
		return -1
	}
	n := &t.nodes[i]
	return 1 + max(t.height(n.left), t.height(n.right))
}

// LevelWidths returns the number of nodes at each depth, root first.
func (t *Tree) LevelWidths() []int {
	var widths []int
	t.Walk(func(_ NodeIndex, _ *TreeNode, depth int) {
		if depth == len(widths) {
			widths = append(widths, 0)
		}
		widths[depth]++
	})
	return widths
}

// Search walks from the root toward value and returns every node visited.
// The last index is the matching node, or the node whose missing child the
// value would have been placed under. An empty tree yields an empty path.
func (t *Tree) Search(value int) []NodeIndex {
	var path []NodeIndex
	for i := t.root; i != NoNode; {
		path = append(path, i)
		n := &t.nodes[i]
		switch {
		case value < n.Value:
			i = n.left
		case value > n.Value:
			i = n.right
		default:
			return path
		}
	}
	return path
}

// Contains reports whether value is in the tree.
func (t *Tree) Contains(value int) bool {
	path := t.Search(value)
	return len(path) > 0 && t.nodes[path[len(path)-1]].Value == value
}

// Min returns the smallest value.
func (t *Tree) Min() (int, error) {
	if t.Empty() {
		return 0, errors.Wrap(ErrEmptyTree, "min")
	}
	i := t.root
	for t.nodes[i].left != NoNode {
		i = t.nodes[i].left
	}
	return t.nodes[i].Value, nil
}

// Max returns the largest value.
func (t *Tree) Max() (int, error) {
	if t.Empty() {
		return 0, errors.Wrap(ErrEmptyTree, "max")
	}
	i := t.root
	for t.nodes[i].right != NoNode {
		i = t.nodes[i].right
	}
	return t.nodes[i].Value, nil
}

// Walk visits every node depth-first in pre-order, passing its depth
// (root = 0). fn may mutate the node's animation and highlight fields but
// must not insert.
func (t *Tree) Walk(fn func(i NodeIndex, n *TreeNode, depth int)) {
	t.walk(t.root, 0, fn)
}

func (t *Tree) walk(i NodeIndex, depth int, fn func(NodeIndex, *TreeNode, int)) {
	if i == NoNode {
		return
	}
	n := &t.nodes[i]
	fn(i, n, depth)
	t.walk(n.left, depth+1, fn)
	t.walk(n.right, depth+1, fn)
}
