// Package tokens defines the boundary between the configuration tree and
// the raw token stream it is resolved against. The orchestrator registers
// each group's option descriptors in rounds; a Tokenizer resolves one round
// against the remaining tokens and passes everything it does not recognize
// through to later rounds. Unknown tokens are not an error at this
// boundary.
package tokens

import (
	"github.com/zclconf/go-cty/cty"
)

// OptionSpec describes one registered option to the tokenizer: enough to
// match tokens, determine arity, and fall back to the declared default.
type OptionSpec struct {
	Name string
	Type cty.Type
	// Default is returned verbatim when no token matches the option. It
	// may be the dynamic-default sentinel or cty.NilVal; the tokenizer
	// treats it as opaque.
	Default cty.Value
	Choices []cty.Value
	// IsFlag marks a presence flag: the option consumes no value token.
	IsFlag bool
	Help   string
}

// Tokenizer resolves a round of registered options against the remaining
// token stream. It returns a value for every spec (a raw token value or the
// spec's default) plus the tokens it did not consume, in their original
// order.
type Tokenizer interface {
	Resolve(specs []OptionSpec, remaining []string) (map[string]cty.Value, []string, error)
}
