package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	args := []string{"-log-level", "error", "--", "--dataset", "sst2", "--seed", "12123"}

	require.NoError(t, run(out, errW, args))

	rendered := out.String()
	assert.Contains(t, rendered, "dataset: sst2")
	assert.Contains(t, rendered, "seed: 12123")
	// dynamic default keyed on the dataset
	assert.Contains(t, rendered, "model: bert")
}

func TestRun_OverridesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte("dataset = \"wikitext\"\nseed = 7\n"), 0o600))

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	// The explicit token wins over the file value for seed.
	args := []string{"-log-level", "error", "-overrides", path, "--", "--seed", "42"}

	require.NoError(t, run(out, errW, args))

	rendered := out.String()
	assert.Contains(t, rendered, "dataset: wikitext")
	assert.Contains(t, rendered, "seed: 42")
	assert.Contains(t, rendered, "scheduler: one_cycle")
}

func TestRun_UnrecognizedToken(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	err := run(out, errW, []string{"-log-level", "error", "--", "--no_such_option", "1"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized tokens")
	assert.Contains(t, err.Error(), "--no_such_option")
}

func TestRun_UnknownRoot(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	errW := &bytes.Buffer{}
	err := run(out, errW, []string{"-root", "serving"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `no root config named "serving"`)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
