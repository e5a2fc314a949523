package conftree

import (
	"fmt"

	"github.com/vk/conftreego/internal/constraint"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// GroupFactory builds a new, fully self-initialized group: options freshly
// declared, static children attached, field name set. Spawn rules hold
// factories so that a subtree is only constructed when its triggering value
// is actually resolved.
type GroupFactory interface {
	NewGroup() *Group
}

// GroupFactoryFunc adapts a plain constructor function to GroupFactory.
type GroupFactoryFunc func() *Group

func (f GroupFactoryFunc) NewGroup() *Group { return f() }

// SpawnRule attaches a group factory to one literal value of the declaring
// option. Resolving the option to When spawns a group built by Factory.
type SpawnRule struct {
	When    cty.Value
	Factory GroupFactory
}

// Decl declares a single typed configuration leaf awaiting resolution.
type Decl struct {
	Name string
	// Type is one of cty.Number, cty.Bool, cty.String.
	Type cty.Type
	// Default is a literal of Type, the DynamicDefault sentinel, or
	// cty.NilVal for no default. Declaring Dynamic forces it to the
	// sentinel.
	Default    cty.Value
	Help       string
	Choices    []cty.Value
	Constraint constraint.Checker
	Dynamic    *DynamicSpec
	Spawn      []SpawnRule
}

// NewDecl validates a declaration and applies the dynamic-default
// invariant: a declaration with a DynamicSpec has its default forced to the
// sentinel, and the declared static default becomes the spec's fallback
// unless the spec already carries one. Declaration defects panic; they are
// construction-time programming errors, not user input.
func NewDecl(d Decl) *Decl {
	if d.Name == "" {
		panic("conftree: option declaration requires a name")
	}
	if d.Type == cty.NilType {
		panic(fmt.Sprintf("conftree: option %q requires a value type", d.Name))
	}
	if !d.Type.Equals(cty.Number) && !d.Type.Equals(cty.Bool) && !d.Type.Equals(cty.String) {
		panic(fmt.Sprintf("conftree: option %q: unsupported value type %s", d.Name, d.Type.FriendlyName()))
	}
	if d.Dynamic != nil {
		spec := *d.Dynamic
		if spec.Fallback == cty.NilVal {
			spec.Fallback = d.Default
		}
		d.Dynamic = &spec
		d.Default = DynamicDefault
	}
	return &d
}

// Sanitize casts a raw value into the declared type and validates it
// against the allowed choices and the constraint checker. An absent value
// (cty.NilVal or a null) passes through as a typed null.
func (d *Decl) Sanitize(raw cty.Value) (cty.Value, error) {
	if raw == cty.NilVal || raw.IsNull() {
		return cty.NullVal(d.Type), nil
	}
	if IsDynamicDefault(raw) {
		// The consume path resolves the sentinel before sanitizing.
		panic(fmt.Sprintf("conftree: option %q: Sanitize called with an unresolved dynamic default", d.Name))
	}

	converted, err := convert.Convert(raw, d.Type)
	if err != nil {
		return cty.NilVal, &TypeCastError{Option: d.Name, Value: raw, Err: err}
	}
	if !converted.Type().Equals(d.Type) {
		return cty.NilVal, &TypeMismatchError{Option: d.Name, Got: converted.Type(), Want: d.Type}
	}

	if len(d.Choices) > 0 {
		found := false
		for _, choice := range d.Choices {
			if choice.RawEquals(converted) {
				found = true
				break
			}
		}
		if !found {
			return cty.NilVal, &InvalidChoiceError{Option: d.Name, Value: converted, Choices: d.Choices}
		}
	}

	if d.Constraint != nil {
		if err := d.Constraint.Check(converted); err != nil {
			return cty.NilVal, &ConstraintError{Option: d.Name, Err: err}
		}
	}
	return converted, nil
}

// SpawnFor returns the group factory registered for the given final value,
// or nil when the value triggers no spawn.
func (d *Decl) SpawnFor(v cty.Value) GroupFactory {
	for _, rule := range d.Spawn {
		if rule.When.RawEquals(v) {
			return rule.Factory
		}
	}
	return nil
}

// IsFlag reports whether the option is a presence flag on the token stream.
func (d *Decl) IsFlag() bool {
	return d.Type.Equals(cty.Bool)
}
