// Package constraint provides composable value-validation predicates for
// resolved option values. Checkers operate on cty values so they can be
// attached to option declarations regardless of the declared primitive type.
package constraint

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Checker validates a single value. Check returns nil when the value
// satisfies the predicate and a descriptive error otherwise.
type Checker interface {
	Check(v cty.Value) error
}

type lowerBound struct {
	bound  cty.Value
	strict bool
}

type upperBound struct {
	bound  cty.Value
	strict bool
}

// LowerBound returns a checker that accepts values greater than the bound,
// or greater than or equal to it when strict is false.
func LowerBound(bound cty.Value, strict bool) Checker {
	mustNumber("LowerBound", bound)
	return &lowerBound{bound: bound, strict: strict}
}

// UpperBound returns a checker that accepts values less than the bound,
// or less than or equal to it when strict is false.
func UpperBound(bound cty.Value, strict bool) Checker {
	mustNumber("UpperBound", bound)
	return &upperBound{bound: bound, strict: strict}
}

func (c *lowerBound) Check(v cty.Value) error {
	if skip, err := checkNumber(v); skip || err != nil {
		return err
	}
	if c.strict && v.LessThanOrEqualTo(c.bound).True() {
		return fmt.Errorf("value %s is less than or equal to the lower bound %s", fmtVal(v), fmtVal(c.bound))
	}
	if !c.strict && v.LessThan(c.bound).True() {
		return fmt.Errorf("value %s is less than the lower bound %s", fmtVal(v), fmtVal(c.bound))
	}
	return nil
}

func (c *upperBound) Check(v cty.Value) error {
	if skip, err := checkNumber(v); skip || err != nil {
		return err
	}
	if c.strict && v.GreaterThanOrEqualTo(c.bound).True() {
		return fmt.Errorf("value %s is greater than or equal to the upper bound %s", fmtVal(v), fmtVal(c.bound))
	}
	if !c.strict && v.GreaterThan(c.bound).True() {
		return fmt.Errorf("value %s is greater than the upper bound %s", fmtVal(v), fmtVal(c.bound))
	}
	return nil
}

// chain runs a fixed list of checkers in order.
type chain struct {
	checkers []Checker
}

func (c *chain) Check(v cty.Value) error {
	for _, checker := range c.checkers {
		if err := checker.Check(v); err != nil {
			return err
		}
	}
	return nil
}

// Compose collapses a set of checkers into a single equivalent one. All
// lower bounds collapse to the tightest lower bound and all upper bounds to
// the tightest upper bound. An unsatisfiable combination (the effective
// lower bound at or above the effective upper bound, under the applicable
// strictness) is rejected here, before any value is ever checked. Checkers
// that are not bound checks are kept and run in their original order.
func Compose(checkers ...Checker) (Checker, error) {
	var (
		lower  *lowerBound
		upper  *upperBound
		others []Checker
	)

	for _, c := range checkers {
		switch b := c.(type) {
		case *lowerBound:
			if lower == nil || tighterLower(b, lower) {
				lower = b
			}
		case *upperBound:
			if upper == nil || tighterUpper(b, upper) {
				upper = b
			}
		default:
			others = append(others, c)
		}
	}

	if lower != nil && upper != nil {
		if lower.bound.GreaterThan(upper.bound).True() {
			return nil, fmt.Errorf("incompatible constraints: lower bound %s > upper bound %s",
				fmtVal(lower.bound), fmtVal(upper.bound))
		}
		if lower.bound.Equals(upper.bound).True() && (lower.strict || upper.strict) {
			return nil, fmt.Errorf("incompatible constraints: lower bound %s >= upper bound %s",
				fmtVal(lower.bound), fmtVal(upper.bound))
		}
	}

	var collapsed []Checker
	if lower != nil {
		collapsed = append(collapsed, lower)
	}
	if upper != nil {
		collapsed = append(collapsed, upper)
	}
	collapsed = append(collapsed, others...)

	if len(collapsed) == 1 {
		return collapsed[0], nil
	}
	return &chain{checkers: collapsed}, nil
}

// tighterLower reports whether a is a tighter lower bound than b. A higher
// bound is tighter; at an equal bound the strict variant is tighter.
func tighterLower(a, b *lowerBound) bool {
	if a.bound.GreaterThan(b.bound).True() {
		return true
	}
	return a.bound.Equals(b.bound).True() && a.strict && !b.strict
}

// tighterUpper reports whether a is a tighter upper bound than b.
func tighterUpper(a, b *upperBound) bool {
	if a.bound.LessThan(b.bound).True() {
		return true
	}
	return a.bound.Equals(b.bound).True() && a.strict && !b.strict
}

// checkNumber reports whether the value should skip bound checking (null or
// absent values are not constrained) and rejects non-numeric values.
func checkNumber(v cty.Value) (bool, error) {
	if v == cty.NilVal || v.IsNull() {
		return true, nil
	}
	if !v.Type().Equals(cty.Number) {
		return false, fmt.Errorf("bound constraints require a number, got %s", v.Type().FriendlyName())
	}
	return false, nil
}

func mustNumber(kind string, bound cty.Value) {
	if bound == cty.NilVal || !bound.Type().Equals(cty.Number) {
		panic(fmt.Sprintf("constraint: %s requires a number bound", kind))
	}
}

func fmtVal(v cty.Value) string {
	if v.Type().Equals(cty.Number) {
		return v.AsBigFloat().Text('g', -1)
	}
	return v.GoString()
}
