package conftree

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Consume turns the group's option declarations into final values using the
// provided raw values, validating each one and spawning nested groups where
// a resolved value triggers a spawn rule. Slots transition irreversibly
// from declaration to value, in declaration order. The returned list holds
// the newly spawned groups in spawn order; the caller is responsible for
// resolving them before moving on.
func (g *Group) Consume(values map[string]cty.Value) ([]*Group, error) {
	if g.consumed {
		return nil, &AlreadyConsumedError{Group: g.name}
	}
	for name := range values {
		s, ok := g.byName[name]
		if !ok || s.kind != slotOption {
			return nil, &UnexpectedFieldError{Group: g.name, Field: name}
		}
	}

	var spawned []*Group
	for _, s := range g.slots {
		if s.kind != slotOption {
			continue
		}
		raw, provided := values[s.name]
		if !provided {
			continue
		}
		d := s.opt

		if IsDynamicDefault(raw) {
			computed, err := g.dynamicDefault(d)
			if err != nil {
				return nil, err
			}
			raw = computed
		}

		final, err := d.Sanitize(raw)
		if err != nil {
			return nil, err
		}

		if factory := d.SpawnFor(final); factory != nil {
			child, err := g.spawn(factory)
			if err != nil {
				return nil, err
			}
			spawned = append(spawned, child)
		}

		// The declaration is discarded; only the value remains.
		s.kind = slotValue
		s.opt = nil
		s.val = final
	}

	g.consumed = true
	return spawned, nil
}

// dynamicDefault evaluates an option's dynamic default against the resolved
// value of its governing field, looked up across the whole tree.
func (g *Group) dynamicDefault(d *Decl) (cty.Value, error) {
	if d.Dynamic == nil {
		panic(fmt.Sprintf("conftree: option %q carries the dynamic sentinel but no dynamic spec", d.Name))
	}
	governing, err := g.Lookup(d.Dynamic.Field)
	if err != nil {
		return cty.NilVal, err
	}
	if !governing.IsValue() {
		return cty.NilVal, &OrderingError{Group: g.name, Option: d.Name, Governing: d.Dynamic.Field}
	}
	return d.Dynamic.Resolve(governing.Value()), nil
}

// spawn builds a child group from the factory and attaches it. The factory
// must produce a group whose field name is already set.
func (g *Group) spawn(factory GroupFactory) (*Group, error) {
	child := factory.NewGroup()
	if err := g.attach(child); err != nil {
		return nil, err
	}
	return child, nil
}

// FillRemainingDefaults assigns every still-unresolved option its static
// default with no dependency, choice, or constraint processing. Dynamic
// options receive their spec's fallback, the static default they declared
// before it moved into the spec. This is an escape hatch for contexts with
// no token source; the orchestrated path never uses it.
func (g *Group) FillRemainingDefaults() {
	for _, s := range g.slots {
		if s.kind != slotOption {
			continue
		}
		d := s.opt
		def := d.Default
		if IsDynamicDefault(def) {
			def = d.Dynamic.Fallback
		}
		if def == cty.NilVal {
			def = cty.NullVal(d.Type)
		} else if converted, err := convert.Convert(def, d.Type); err == nil {
			def = converted
		}
		s.kind = slotValue
		s.opt = nil
		s.val = def
	}
	g.consumed = true
}
