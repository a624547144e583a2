package tree

import "skroutz/categorytree/internal/domain"

// Node is one category of a built tree. A node owns at most two children.
type Node struct {
	Label      string
	ID         domain.CategoryID
	FirstChild *Node
	LastChild  *Node
}

// NewNode creates a childless node
func NewNode(label string, id domain.CategoryID) *Node {
	return &Node{Label: label, ID: id}
}

// AppendChild attaches child to the first free slot and returns it. It
// returns nil when both slots are taken.
func (n *Node) AppendChild(child *Node) *Node {
	switch {
	case n.FirstChild == nil:
		n.FirstChild = child
	case n.LastChild == nil:
		n.LastChild = child
	default:
		return nil
	}
	return child
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.FirstChild == nil
}

// Depth returns the zero based depth of the subtree rooted at n, or -1 for a
// nil node.
//
//	     1 = root
//	    / \
//	   2   3
//	  / \
//	 4   5
//
// Depth(root) == 2, Depth(root.FirstChild) == 1, Depth(root.LastChild) == 0.
func (n *Node) Depth() int {
	if n == nil {
		return -1
	}
	return 1 + max(n.FirstChild.Depth(), n.LastChild.Depth())
}

// Size returns the number of nodes in the subtree rooted at n
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.FirstChild.Size() + n.LastChild.Size()
}

// Levels groups the nodes of the subtree by level, root first.
func (n *Node) Levels() [][]*Node {
	var levels [][]*Node
	var walk func(level int, node *Node)
	walk = func(level int, node *Node) {
		if node == nil {
			return
		}
		if len(levels) == level {
			levels = append(levels, nil)
		}
		levels[level] = append(levels[level], node)
		walk(level+1, node.FirstChild)
		walk(level+1, node.LastChild)
	}
	walk(0, n)
	return levels
}
