package conftree

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// valueString renders a cty value for diagnostics and error messages.
func valueString(v cty.Value) string {
	switch {
	case v == cty.NilVal:
		return "<absent>"
	case IsDynamicDefault(v):
		return "<dynamic>"
	case v.IsNull():
		return "null"
	case v.Type().Equals(cty.String):
		return fmt.Sprintf("%q", v.AsString())
	case v.Type().Equals(cty.Number):
		return v.AsBigFloat().Text('g', -1)
	case v.Type().Equals(cty.Bool):
		if v.True() {
			return "true"
		}
		return "false"
	default:
		return v.GoString()
	}
}

func choicesString(choices []cty.Value) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		parts = append(parts, valueString(c))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// goValue converts a resolved cty value into its native Go rendering for
// the bulk-export boundary. Whole numbers export as int64.
func goValue(v cty.Value) any {
	switch {
	case v == cty.NilVal || v.IsNull():
		return nil
	case v.Type().Equals(cty.String):
		return v.AsString()
	case v.Type().Equals(cty.Bool):
		return v.True()
	case v.Type().Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return i
		}
		f, _ := bf.Float64()
		return f
	default:
		return v.GoString()
	}
}
