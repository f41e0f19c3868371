package tst

import (
	"fmt"

	ltree "github.com/charmbracelet/lipgloss/tree"
)

// Render draws the tree in pre-order, each node labelled
// "(letter, frequency, endWord)" with its left, middle and right children
// nested below it. Nodes without a frequency show "-". An empty tree renders
// as an empty string.
func (t *Tree) Render() string {
	if t.root == nil {
		return ""
	}
	return renderNode(t.root).String()
}

func renderNode(n *node) *ltree.Tree {
	branch := ltree.Root(label(n))
	for _, child := range []*node{n.left, n.middle, n.right} {
		switch {
		case child == nil:
		case child.left == nil && child.middle == nil && child.right == nil:
			branch.Child(label(child))
		default:
			branch.Child(renderNode(child))
		}
	}
	return branch
}

func label(n *node) string {
	if !n.endWord {
		return fmt.Sprintf("(%c, -, false)", n.letter)
	}
	return fmt.Sprintf("(%c, %d, true)", n.letter, n.frequency)
}
