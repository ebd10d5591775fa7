package bstviz

// NodeIndex addresses a TreeNode inside its Tree's arena.
type NodeIndex int32

// NoNode marks an absent child or an empty tree.
const NoNode NodeIndex = -1

// Entrance animation constants. A fresh node starts EntranceOffset pixels
// above its slot with zero opacity and moves OffsetStep pixels and
// OpacityStep alpha closer per tick.
const (
	EntranceOffset = -25.0
	OffsetStep     = 2.0
	OpacityStep    = 0.05
)

// TreeNode is a single value in the tree plus the transient state the
// animation driver and search highlighter attach to it. Nodes live in the
// owning Tree's arena; children are referenced by index.
type TreeNode struct {
	Value int

	left  NodeIndex
	right NodeIndex

	// Entrance animation
	VerticalOffset float64
	Opacity        float64

	// Search highlight
	Visited bool
	Found   bool
}

func newTreeNode(value int) TreeNode {
	n := TreeNode{Value: value, left: NoNode, right: NoNode}
	n.resetEntrance()
	return n
}

// Left returns the index of the left child, or NoNode.
func (n *TreeNode) Left() NodeIndex { return n.left }

// Right returns the index of the right child, or NoNode.
func (n *TreeNode) Right() NodeIndex { return n.right }

// IsLeaf reports whether the node has no children.
func (n *TreeNode) IsLeaf() bool {
	return n.left == NoNode && n.right == NoNode
}

// Settled reports whether the entrance animation has completed.
func (n *TreeNode) Settled() bool {
	return n.VerticalOffset == 0 && n.Opacity == 1
}

// State returns the paint state. Found wins over visited.
func (n *TreeNode) State() ColorState {
	switch {
	case n.Found:
		return StateFound
	case n.Visited:
		return StateVisited
	default:
		return StateNormal
	}
}

func (n *TreeNode) resetEntrance() {
	n.VerticalOffset = EntranceOffset
	n.Opacity = 0
}

func (n *TreeNode) resetHighlight() {
	n.Visited = false
	n.Found = false
}
