package conftree

import (
	"fmt"
	"strings"
)

// Stats summarizes the group's slot population for diagnostics.
func (g *Group) Stats() string {
	return fmt.Sprintf("%d options, %d values, %d groups",
		g.NumOptions(), g.NumValues(), len(g.children))
}

// FormatAttributes renders the group's slots for error messages and
// debugging: each slot's kind, type, and current value. Nothing parses this
// output.
func (g *Group) FormatAttributes(includeNested bool) string {
	var b strings.Builder
	parent := "ROOT"
	if g.parent != nil {
		parent = "parent: " + g.parent.name
	}
	fmt.Fprintf(&b, "%s (%s): %s\n\t*** %s ***\n", g.name, parent, g.description, g.Stats())

	for _, s := range g.slots {
		switch s.kind {
		case slotOption:
			d := s.opt
			fmt.Fprintf(&b, "\t(option)\t%s:\t%s\tdefault %s\n",
				s.name, d.Type.FriendlyName(), valueString(d.Default))
		case slotValue:
			fmt.Fprintf(&b, "\t(value)\t%s:\t%s\n", s.name, valueString(s.val))
		case slotNested:
			if includeNested {
				fmt.Fprintf(&b, "\t(group)\t%s:\t%s\n", s.name, s.group.Stats())
			}
		}
	}
	return b.String()
}

// FormatTree renders the group followed by its whole subtree in the given
// order, one attribute block per group.
func (g *Group) FormatTree(order Order) string {
	var b strings.Builder
	b.WriteString(g.FormatAttributes(false))
	for _, child := range g.Descendants(order) {
		b.WriteString("\n")
		b.WriteString(child.FormatAttributes(false))
	}
	return b.String()
}

func (g *Group) String() string {
	return g.FormatAttributes(true)
}
