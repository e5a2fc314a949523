package tokens

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Argv scans command-line-style tokens. Recognized forms are `--name`,
// `--name value`, and `--name=value`; a presence flag never consumes a
// value token. Later occurrences of the same option win. Everything else,
// including `--other` flags registered by no spec in this round, is left
// untouched for later rounds.
type Argv struct{}

// NewArgv creates the default command-line tokenizer.
func NewArgv() *Argv {
	return &Argv{}
}

// Resolve implements Tokenizer.
func (a *Argv) Resolve(specs []OptionSpec, remaining []string) (map[string]cty.Value, []string, error) {
	byName := make(map[string]OptionSpec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}

	values := make(map[string]cty.Value, len(specs))
	var leftover []string

	for i := 0; i < len(remaining); i++ {
		tok := remaining[i]
		name, inline, hasInline := splitToken(tok)
		if name == "" {
			leftover = append(leftover, tok)
			continue
		}
		spec, known := byName[name]
		if !known {
			leftover = append(leftover, tok)
			continue
		}

		switch {
		case hasInline:
			values[name] = cty.StringVal(inline)
		case spec.IsFlag:
			values[name] = cty.True
		default:
			if i+1 >= len(remaining) || isOptionToken(remaining[i+1]) {
				return nil, nil, fmt.Errorf("option --%s expects a value", name)
			}
			values[name] = cty.StringVal(remaining[i+1])
			i++
		}
	}

	// Every registered option resolves: defaults fill the gaps.
	for _, s := range specs {
		if _, ok := values[s.Name]; !ok {
			values[s.Name] = s.Default
		}
	}
	return values, leftover, nil
}

// splitToken extracts the option name from a `--name` or `--name=value`
// token. A non-option token yields an empty name.
func splitToken(tok string) (name, inline string, hasInline bool) {
	if !isOptionToken(tok) {
		return "", "", false
	}
	body := tok[2:]
	if eq := strings.IndexByte(body, '='); eq >= 0 {
		return body[:eq], body[eq+1:], true
	}
	return body, "", false
}

func isOptionToken(tok string) bool {
	return len(tok) > 2 && strings.HasPrefix(tok, "--")
}
