package conftree

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// TypeCastError indicates a raw value that cannot be coerced into the
// option's declared type.
type TypeCastError struct {
	Option string
	Value  cty.Value
	Err    error
}

func (e *TypeCastError) Error() string {
	return fmt.Sprintf("option %q: cannot cast value %s: %v", e.Option, valueString(e.Value), e.Err)
}

func (e *TypeCastError) Unwrap() error { return e.Err }

// TypeMismatchError indicates a cast result that is not of the declared
// type even though the conversion itself did not fail.
type TypeMismatchError struct {
	Option string
	Got    cty.Type
	Want   cty.Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("option %q: value has type %s, declared type is %s",
		e.Option, e.Got.FriendlyName(), e.Want.FriendlyName())
}

// InvalidChoiceError indicates a resolved value outside the option's
// allowed-choices set.
type InvalidChoiceError struct {
	Option  string
	Value   cty.Value
	Choices []cty.Value
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("option %q: value %s is not one of the allowed choices %s",
		e.Option, valueString(e.Value), choicesString(e.Choices))
}

// ConstraintError indicates a value that failed the option's constraint
// checker. It carries the checker's diagnostic.
type ConstraintError struct {
	Option string
	Err    error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("option %q: constraint violated: %v", e.Option, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// OrderingError indicates a dynamic default whose governing field is still
// an unresolved declaration at evaluation time. This is a tree-construction
// defect: the governing option must be declared in a group resolved no
// later than, and within the same group strictly before, the dependent one.
type OrderingError struct {
	Group     string
	Option    string
	Governing string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("group %q: governing field %q must be resolved before dependent option %q",
		e.Group, e.Governing, e.Option)
}

// DuplicateFieldError indicates a spawned group whose field name collides
// with an existing slot on the spawning group.
type DuplicateFieldError struct {
	Group string
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("group %q: field %q already exists", e.Group, e.Field)
}

// AlreadyConsumedError indicates a second consume call on a resolved group.
type AlreadyConsumedError struct {
	Group string
}

func (e *AlreadyConsumedError) Error() string {
	return fmt.Sprintf("group %q has already been consumed", e.Group)
}

// UnexpectedFieldError indicates a provided value naming a slot the group
// does not declare as an option.
type UnexpectedFieldError struct {
	Group string
	Field string
}

func (e *UnexpectedFieldError) Error() string {
	return fmt.Sprintf("group %q declares no option %q", e.Group, e.Field)
}

// UnknownFieldError indicates a tree-wide lookup for a name that exists
// nowhere in the tree.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q not found anywhere in the configuration tree", e.Field)
}
