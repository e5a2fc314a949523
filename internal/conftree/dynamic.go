package conftree

import (
	"fmt"
	"reflect"

	"github.com/zclconf/go-cty/cty"
)

type dynamicMarker struct{}

// dynamicType is a capsule type used to build the sentinel value below.
var dynamicType = cty.Capsule("dynamic_default", reflect.TypeOf(dynamicMarker{}))

// DynamicDefault is the sentinel default of an option whose real default is
// computed at resolution time from another option's resolved value. The
// tokenizer passes it through untouched when the user supplies no override.
var DynamicDefault = cty.CapsuleVal(dynamicType, &dynamicMarker{})

// IsDynamicDefault reports whether v is the dynamic-default sentinel.
func IsDynamicDefault(v cty.Value) bool {
	return v != cty.NilVal && v.Type().Equals(dynamicType)
}

// Mapping pairs a resolved value of the governing field with the default it
// implies for the dependent option.
type Mapping struct {
	When cty.Value
	Then cty.Value
}

// DynamicSpec describes a default computed from another option's resolved
// value. Field names the governing option, resolvable anywhere in the tree.
// Fallback is used when the governing value matches no mapping.
type DynamicSpec struct {
	Field    string
	Mappings []Mapping
	Fallback cty.Value
}

// Resolve returns the default implied by the governing field's resolved
// value. The caller must guarantee the governing field is already resolved;
// the consume path enforces that with an OrderingError before ever calling
// this.
func (s *DynamicSpec) Resolve(governing cty.Value) cty.Value {
	for _, m := range s.Mappings {
		if m.When.RawEquals(governing) {
			return m.Then
		}
	}
	return s.Fallback
}

// DynamicFromTable builds a DynamicSpec from a shared reference table of the
// shape governing-value -> option-name -> default. Tables are process-wide
// immutable data declared once per domain; entries that do not mention the
// option contribute no mapping.
func DynamicFromTable(field string, table map[string]map[string]cty.Value, option string, fallback cty.Value) *DynamicSpec {
	spec := &DynamicSpec{Field: field, Fallback: fallback}
	for governing, defaults := range table {
		def, ok := defaults[option]
		if !ok {
			continue
		}
		spec.Mappings = append(spec.Mappings, Mapping{
			When: cty.StringVal(governing),
			Then: def,
		})
	}
	return spec
}

func (s *DynamicSpec) String() string {
	return fmt.Sprintf("dynamic(%s, %d mappings)", s.Field, len(s.Mappings))
}
