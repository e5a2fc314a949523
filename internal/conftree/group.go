package conftree

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

type slotKind int

const (
	slotOption slotKind = iota
	slotValue
	slotNested
)

// Slot is one named entry of a group. Exactly one of the three states
// applies at any moment: unresolved option declaration, resolved plain
// value, or nested group.
type Slot struct {
	name  string
	kind  slotKind
	opt   *Decl
	val   cty.Value
	group *Group
	owner *Group
}

// Name returns the slot's field name within its owning group.
func (s *Slot) Name() string { return s.name }

// IsOption reports whether the slot still holds an unresolved declaration.
func (s *Slot) IsOption() bool { return s.kind == slotOption }

// IsValue reports whether the slot holds a resolved plain value.
func (s *Slot) IsValue() bool { return s.kind == slotValue }

// IsNested reports whether the slot holds a nested group.
func (s *Slot) IsNested() bool { return s.kind == slotNested }

// Option returns the unresolved declaration, or nil for other states.
func (s *Slot) Option() *Decl { return s.opt }

// Value returns the resolved value. Only meaningful when IsValue is true.
func (s *Slot) Value() cty.Value { return s.val }

// Nested returns the nested group, or nil for other states.
func (s *Slot) Nested() *Group { return s.group }

// Owner returns the group the slot belongs to.
func (s *Slot) Owner() *Group { return s.owner }

// Group is a named node of the configuration tree: an ordered mixture of
// option declarations, resolved values, and nested groups.
type Group struct {
	name        string
	description string
	fieldName   string

	parent   *Group
	slots    []*Slot
	byName   map[string]*Slot
	children []*Group
	consumed bool

	// Tree-wide lookup index, maintained on the root only and rebuilt
	// lazily after any group is attached.
	index      map[string]*Slot
	indexDirty bool
}

// NewGroup creates a root-attachable group. Groups reachable only through
// spawning must be created with NewSpawnableGroup instead so their field
// name is known before attachment.
func NewGroup(name, description string) *Group {
	if name == "" {
		panic("conftree: group requires a name")
	}
	return &Group{
		name:        name,
		description: description,
		byName:      make(map[string]*Slot),
	}
}

// NewSpawnableGroup creates a group carrying the field name under which it
// will hang off its future parent.
func NewSpawnableGroup(name, description, fieldName string) *Group {
	g := NewGroup(name, description)
	g.fieldName = fieldName
	return g
}

// Name returns the group's display name.
func (g *Group) Name() string { return g.name }

// Description returns the group's description.
func (g *Group) Description() string { return g.description }

// FieldName returns the attribute name this group is attached under, or ""
// for an unattached root.
func (g *Group) FieldName() string { return g.fieldName }

// Parent returns the owning group, or nil for a root.
func (g *Group) Parent() *Group { return g.parent }

// Root walks up to the root of the tree this group belongs to.
func (g *Group) Root() *Group {
	r := g
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Resolved reports whether the group's own options have all been consumed.
func (g *Group) Resolved() bool { return g.consumed }

// AddOption declares a new option slot. Name collisions are construction
// defects and panic.
func (g *Group) AddOption(d *Decl) {
	g.addSlot(&Slot{name: d.Name, kind: slotOption, opt: d, owner: g})
}

// AddValue adds a pre-resolved plain value slot, bypassing consumption.
func (g *Group) AddValue(name string, v cty.Value) {
	g.addSlot(&Slot{name: name, kind: slotValue, val: v, owner: g})
}

// AddGroup attaches a statically constructed nested group under the given
// field name. Construction defects (duplicate field, reattached child)
// panic; the spawn path reports them as errors instead.
func (g *Group) AddGroup(fieldName string, child *Group) {
	child.fieldName = fieldName
	if err := g.attach(child); err != nil {
		panic(fmt.Sprintf("conftree: %v", err))
	}
}

func (g *Group) addSlot(s *Slot) {
	if _, exists := g.byName[s.name]; exists {
		panic(fmt.Sprintf("conftree: group %q: duplicate field %q", g.name, s.name))
	}
	g.slots = append(g.slots, s)
	g.byName[s.name] = s
}

// attach wires a child group into the tree: a nested slot, an entry in the
// ordered children list, and a single-write parent pointer. The root index
// is invalidated because the reachable field set changed.
func (g *Group) attach(child *Group) error {
	if child.fieldName == "" {
		panic(fmt.Sprintf("conftree: group %q cannot be attached without a field name", child.name))
	}
	if _, exists := g.byName[child.fieldName]; exists {
		return &DuplicateFieldError{Group: g.name, Field: child.fieldName}
	}
	if child.parent != nil {
		panic(fmt.Sprintf("conftree: group %q already has a parent", child.name))
	}
	g.addSlot(&Slot{name: child.fieldName, kind: slotNested, group: child, owner: g})
	g.children = append(g.children, child)
	child.parent = g
	g.Root().indexDirty = true
	return nil
}

// Slots returns all slots in declaration/attachment order.
func (g *Group) Slots() []*Slot {
	return g.slots
}

// Options returns the currently-unresolved option slots in declaration
// order.
func (g *Group) Options() []*Slot {
	var out []*Slot
	for _, s := range g.slots {
		if s.kind == slotOption {
			out = append(out, s)
		}
	}
	return out
}

// Children returns the directly-attached nested groups in attachment
// order: static children first, spawned children appended as they arrive.
func (g *Group) Children() []*Group {
	return g.children
}

// NumOptions counts the still-unresolved option slots.
func (g *Group) NumOptions() int { return len(g.Options()) }

// NumValues counts the resolved plain-value slots.
func (g *Group) NumValues() int {
	n := 0
	for _, s := range g.slots {
		if s.kind == slotValue {
			n++
		}
	}
	return n
}
