package bstviz

import (
	"strconv"
	"strings"
)

// Summary is the text shown next to the tree after a build.
type Summary struct {
	InOrder   []int
	PreOrder  []int
	PostOrder []int
	Nodes     int
	Leaves    int
	Height    int
}

// Summarize computes the traversals and structural metrics of t.
func Summarize(t *Tree) Summary {
	return Summary{
		InOrder:   t.InOrder(),
		PreOrder:  t.PreOrder(),
		PostOrder: t.PostOrder(),
		Nodes:     t.CountNodes(),
		Leaves:    t.CountLeaves(),
		Height:    t.Height(),
	}
}

// JoinValues formats values as "1, 3, 4".
func JoinValues(values []int) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Lines returns one "Label: value" line per field.
func (s Summary) Lines() []string {
	return []string{
		"Inorder: " + JoinValues(s.InOrder),
		"Preorder: " + JoinValues(s.PreOrder),
		"Postorder: " + JoinValues(s.PostOrder),
		"Total nodes: " + strconv.Itoa(s.Nodes),
		"Leaf nodes: " + strconv.Itoa(s.Leaves),
		"Height: " + strconv.Itoa(s.Height),
	}
}

func (s Summary) String() string {
	return strings.Join(s.Lines(), "\n")
}
