package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/conftreego/internal/conftree"
	"github.com/vk/conftreego/internal/ctxlog"
	"github.com/vk/conftreego/internal/hclargs"
	"github.com/vk/conftreego/internal/resolver"
	"github.com/vk/conftreego/internal/tokens"
	"gopkg.in/yaml.v3"
)

// Run resolves the selected root config against the overrides file and the
// command-line tokens, then renders the resolved tree to the output writer.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	factory, err := a.registry.Root(cfg.RootName)
	if err != nil {
		return err
	}
	root := factory.NewGroup()
	a.logger.Debug("Root config constructed.", "root", root.Name())

	var argv []string
	if cfg.OverridesPath != "" {
		fileTokens, err := hclargs.LoadTokens(ctx, cfg.OverridesPath)
		if err != nil {
			return fmt.Errorf("loading overrides: %w", err)
		}
		// File tokens come first so explicit command-line tokens win.
		argv = append(argv, fileTokens...)
	}
	argv = append(argv, cfg.Args...)

	if err := resolver.New(root, tokens.NewArgv()).Resolve(ctx, argv); err != nil {
		return err
	}
	a.logger.Info("Configuration resolved.", "root", root.Name(), "stats", root.Stats())

	return a.render(root, cfg.Output)
}

// render writes the resolved tree in the configured format.
func (a *App) render(root *conftree.Group, format string) error {
	switch format {
	case "yaml":
		return encodeYAML(a.outW, root.TreeValues())
	case "flat":
		return encodeYAML(a.outW, root.FlatValues())
	case "tree":
		_, err := fmt.Fprintln(a.outW, root.FormatTree(conftree.BreadthFirst))
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding resolved config: %w", err)
	}
	return enc.Close()
}
