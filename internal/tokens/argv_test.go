package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func specs() []OptionSpec {
	return []OptionSpec{
		{Name: "dataset", Type: cty.String, Default: cty.StringVal("cifar10")},
		{Name: "seed", Type: cty.Number, Default: cty.NullVal(cty.Number)},
		{Name: "wandb", Type: cty.Bool, Default: cty.False, IsFlag: true},
	}
}

func TestArgvResolve(t *testing.T) {
	tok := NewArgv()

	t.Run("pair and flag forms", func(t *testing.T) {
		values, leftover, err := tok.Resolve(specs(), strings.Split("--wandb --seed 12123 --dataset sst2", " "))
		require.NoError(t, err)
		assert.Empty(t, leftover)
		assert.Equal(t, cty.StringVal("sst2"), values["dataset"])
		assert.Equal(t, cty.StringVal("12123"), values["seed"])
		assert.Equal(t, cty.True, values["wandb"])
	})

	t.Run("inline form", func(t *testing.T) {
		values, leftover, err := tok.Resolve(specs(), []string{"--dataset=wikitext", "--wandb=false"})
		require.NoError(t, err)
		assert.Empty(t, leftover)
		assert.Equal(t, cty.StringVal("wikitext"), values["dataset"])
		assert.Equal(t, cty.StringVal("false"), values["wandb"])
	})

	t.Run("defaults fill unmatched specs", func(t *testing.T) {
		values, leftover, err := tok.Resolve(specs(), nil)
		require.NoError(t, err)
		assert.Empty(t, leftover)
		assert.Equal(t, cty.StringVal("cifar10"), values["dataset"])
		assert.Equal(t, cty.NullVal(cty.Number), values["seed"])
		assert.Equal(t, cty.False, values["wandb"])
	})

	t.Run("unknown tokens pass through in order", func(t *testing.T) {
		values, leftover, err := tok.Resolve(specs(), strings.Split("--lr 0.1 --dataset sst2 --model bert", " "))
		require.NoError(t, err)
		assert.Equal(t, []string{"--lr", "0.1", "--model", "bert"}, leftover)
		assert.Equal(t, cty.StringVal("sst2"), values["dataset"])
	})

	t.Run("negative number is a value, not an option", func(t *testing.T) {
		values, leftover, err := tok.Resolve(specs(), []string{"--seed", "-1"})
		require.NoError(t, err)
		assert.Empty(t, leftover)
		assert.Equal(t, cty.StringVal("-1"), values["seed"])
	})

	t.Run("missing value is an error", func(t *testing.T) {
		_, _, err := tok.Resolve(specs(), []string{"--seed"})
		assert.ErrorContains(t, err, "expects a value")

		_, _, err = tok.Resolve(specs(), []string{"--seed", "--dataset", "sst2"})
		assert.ErrorContains(t, err, "expects a value")
	})

	t.Run("later occurrence wins", func(t *testing.T) {
		values, _, err := tok.Resolve(specs(), strings.Split("--dataset sst2 --dataset wikitext", " "))
		require.NoError(t, err)
		assert.Equal(t, cty.StringVal("wikitext"), values["dataset"])
	})

	t.Run("dynamic sentinel default passes through opaquely", func(t *testing.T) {
		sentinel := cty.StringVal("sentinel-stand-in")
		values, _, err := tok.Resolve([]OptionSpec{{Name: "model", Type: cty.String, Default: sentinel}}, nil)
		require.NoError(t, err)
		assert.Equal(t, sentinel, values["model"])
	})
}
