package hclargs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overrides.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTokens(t *testing.T) {
	t.Run("attributes become tokens in source order", func(t *testing.T) {
		path := writeFile(t, `
dataset   = "wikitext"
log_every = 100
wandb     = true
pct_start = 0.02
no_test   = false
`)
		tokens, err := LoadTokens(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"--dataset=wikitext",
			"--log_every=100",
			"--wandb=true",
			"--pct_start=0.02",
			"--no_test=false",
		}, tokens)
	})

	t.Run("empty file yields no tokens", func(t *testing.T) {
		path := writeFile(t, "")
		tokens, err := LoadTokens(context.Background(), path)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})

	t.Run("blocks are rejected", func(t *testing.T) {
		path := writeFile(t, `
dataset = "sst2"
trainer {
  n_epochs = 4
}
`)
		_, err := LoadTokens(context.Background(), path)
		assert.ErrorContains(t, err, "blocks are not allowed")
	})

	t.Run("null attribute is rejected", func(t *testing.T) {
		path := writeFile(t, `seed = null`)
		_, err := LoadTokens(context.Background(), path)
		assert.ErrorContains(t, err, "null values")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTokens(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})
}
