package conftree

// Order selects a traversal order for Descendants.
type Order int

const (
	BreadthFirst Order = iota
	DepthFirst
)

// Descendants returns every group in the subtree rooted at g, excluding g
// itself, in the requested order. Children appear in attachment order
// within each level (breadth-first) or branch (depth-first).
func (g *Group) Descendants(order Order) []*Group {
	if order == DepthFirst {
		return g.descendantsDFS()
	}
	return g.descendantsBFS()
}

func (g *Group) descendantsDFS() []*Group {
	var out []*Group
	for _, child := range g.children {
		out = append(out, child)
		out = append(out, child.descendantsDFS()...)
	}
	return out
}

func (g *Group) descendantsBFS() []*Group {
	var out []*Group
	queue := append([]*Group(nil), g.children...)
	for len(queue) > 0 {
		child := queue[0]
		queue = queue[1:]
		out = append(out, child)
		queue = append(queue, child.children...)
	}
	return out
}
