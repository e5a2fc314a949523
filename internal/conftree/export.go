package conftree

// OwnValues returns the group's resolved plain-value fields in slot order,
// as native Go values. Unresolved declarations and nested groups are
// excluded from this view.
func (g *Group) OwnValues() map[string]any {
	out := make(map[string]any)
	for _, s := range g.slots {
		if s.kind == slotValue {
			out[s.name] = goValue(s.val)
		}
	}
	return out
}

// TreeValues returns a recursive mapping of every resolved value in the
// subtree, nested by each child group's field name. This is the bulk-export
// boundary consumed by logging and persistence collaborators.
func (g *Group) TreeValues() map[string]any {
	out := g.OwnValues()
	for _, child := range g.children {
		key := child.fieldName
		if key == "" {
			key = child.name
		}
		out[key] = child.TreeValues()
	}
	return out
}

// FlatValues returns every resolved value in the subtree merged into a
// single flat mapping. Later groups overwrite earlier ones on a name
// collision, mirroring Lookup.
func (g *Group) FlatValues() map[string]any {
	out := g.OwnValues()
	for _, child := range g.Descendants(BreadthFirst) {
		for name, v := range child.OwnValues() {
			out[name] = v
		}
	}
	return out
}
