package resolver

import (
	"fmt"
	"strings"

	"github.com/vk/conftreego/internal/tokens"
)

// UnrecognizedTokensError reports tokens that matched no option registered
// by any group in the whole tree. It is the one user-facing, recoverable
// failure mode of resolution and carries a rendering of every registered
// option for the error message.
type UnrecognizedTokensError struct {
	Tokens []string
	Help   string
}

func (e *UnrecognizedTokensError) Error() string {
	return fmt.Sprintf("unrecognized tokens: %s\n%s", strings.Join(e.Tokens, " "), e.Help)
}

// renderHelp lists every option registered during the run, in registration
// order, with its type and default.
func (r *Resolver) renderHelp() string {
	var b strings.Builder
	b.WriteString("registered options:\n")
	for _, s := range r.registered {
		writeSpecLine(&b, s)
	}
	return b.String()
}

func writeSpecLine(b *strings.Builder, s tokens.OptionSpec) {
	fmt.Fprintf(b, "  --%s (%s)", s.Name, s.Type.FriendlyName())
	if s.Help != "" {
		fmt.Fprintf(b, "\t%s", s.Help)
	}
	b.WriteString("\n")
}
