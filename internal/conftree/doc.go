// Package conftree implements the declared-configuration tree model: typed
// option declarations, dynamic defaults governed by other options, and
// groups of options that consume raw values into final typed ones and may
// spawn nested groups while doing so.
//
// A Group holds an ordered set of named slots. Each slot is in exactly one
// of three states: an unresolved option declaration, a resolved plain
// value, or a nested group. Consumption transitions option slots to value
// slots exactly once, in declaration order, and is irreversible.
package conftree
