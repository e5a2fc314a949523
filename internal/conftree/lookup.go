package conftree

// Lookup resolves a field name by searching the entire tree this group
// belongs to, starting from its root. It finds option declarations and
// resolved values alike; nested groups are reachable through their own
// slots. The search runs against an index built once per root and rebuilt
// only after a group has been attached, so lookups stay cheap during the
// interleaved traversal of resolution.
func (g *Group) Lookup(name string) (*Slot, error) {
	root := g.Root()
	if root.index == nil || root.indexDirty {
		root.rebuildIndex()
	}
	s, ok := root.index[name]
	if !ok {
		return nil, &UnknownFieldError{Field: name}
	}
	return s, nil
}

// rebuildIndex walks the root's subtree breadth-first and records every
// non-nested slot by name. When two groups declare the same field name the
// deeper/later one wins, matching the flat-merge semantics of the bulk
// views; group trees with governed fields are expected to keep those names
// unique.
func (g *Group) rebuildIndex() {
	index := make(map[string]*Slot)
	groups := append([]*Group{g}, g.descendantsBFS()...)
	for _, grp := range groups {
		for _, s := range grp.slots {
			if s.kind == slotNested {
				continue
			}
			index[s.name] = s
		}
	}
	g.index = index
	g.indexDirty = false
}
