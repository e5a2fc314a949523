// Package hclargs loads option overrides from an HCL attributes file and
// linearizes them into the token stream the tokenizer consumes. File
// overrides are prepended to command-line tokens, so explicit flags win via
// the tokenizer's last-write rule.
//
// The file is a flat set of top-level attributes with constant values:
//
//	dataset   = "wikitext"
//	log_every = 100
//	wandb     = true
package hclargs

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/conftreego/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// LoadTokens parses the file and returns its attributes as `--name=value`
// tokens in source order.
func LoadTokens(ctx context.Context, path string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", path, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsing %s: unexpected body type %T", path, file.Body)
	}
	if len(body.Blocks) > 0 {
		blk := body.Blocks[0]
		return nil, fmt.Errorf("%s: blocks are not allowed in an overrides file, found %q at %s",
			path, blk.Type, blk.TypeRange.String())
	}

	attrs := make([]*hclsyntax.Attribute, 0, len(body.Attributes))
	for _, attr := range body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	var out []string
	for _, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating %s in %s: %w", attr.Name, path, diags)
		}
		tok, err := formatToken(attr.Name, val)
		if err != nil {
			return nil, fmt.Errorf("%s in %s: %w", attr.Name, path, err)
		}
		out = append(out, tok)
	}
	logger.Debug("Loaded override tokens from file.", "path", path, "count", len(out))
	return out, nil
}

// formatToken renders one attribute as a `--name=value` token. Values stay
// stringly typed here; option sanitization casts them back to the declared
// type just like values typed on the command line.
func formatToken(name string, val cty.Value) (string, error) {
	if val.IsNull() {
		return "", fmt.Errorf("null values are not allowed")
	}
	switch {
	case val.Type().Equals(cty.String):
		return fmt.Sprintf("--%s=%s", name, val.AsString()), nil
	case val.Type().Equals(cty.Number):
		return fmt.Sprintf("--%s=%s", name, val.AsBigFloat().Text('g', -1)), nil
	case val.Type().Equals(cty.Bool):
		if val.True() {
			return fmt.Sprintf("--%s=true", name), nil
		}
		return fmt.Sprintf("--%s=false", name), nil
	default:
		return "", fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
	}
}
