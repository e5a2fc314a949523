package trainconf

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/conftreego/internal/conftree"
	"github.com/vk/conftreego/internal/registry"
	"github.com/vk/conftreego/internal/resolver"
	"github.com/vk/conftreego/internal/tokens"
	"github.com/zclconf/go-cty/cty"
)

// These tests depend on the shipped option set and default tables; changing
// those may break them.

func resolve(t *testing.T, root *conftree.Group, argv string) error {
	t.Helper()
	var args []string
	if argv != "" {
		args = strings.Split(argv, " ")
	}
	return resolver.New(root, tokens.NewArgv()).Resolve(context.Background(), args)
}

func fieldValue(t *testing.T, root *conftree.Group, name string) cty.Value {
	t.Helper()
	s, err := root.Lookup(name)
	require.NoError(t, err)
	require.True(t, s.IsValue(), "field %q is not resolved", name)
	return s.Value()
}

// assertValEqual compares through RawEquals: numbers parsed from command
// line tokens carry a different big.Float precision than literal ones.
func assertValEqual(t *testing.T, want, got cty.Value) {
	t.Helper()
	assert.True(t, want.RawEquals(got), "want %v, got %v", want, got)
}

func nestedGroup(t *testing.T, root *conftree.Group, fieldName string) *conftree.Group {
	t.Helper()
	for _, g := range root.Descendants(conftree.BreadthFirst) {
		if g.FieldName() == fieldName {
			return g
		}
	}
	t.Fatalf("no group with field name %q", fieldName)
	return nil
}

func TestTrainingConfigWorkflow(t *testing.T) {
	root := NewTrainingConfig()
	assert.Equal(t, 5, root.NumOptions())
	assert.Len(t, root.Children(), 3)

	require.NoError(t, resolve(t, root, "--wandb --seed 12123 --dataset sst2"))

	assert.True(t, root.Resolved())
	assert.Equal(t, 0, root.NumOptions())
	assert.Equal(t, 5, root.NumValues())

	// user supplied values
	assert.Equal(t, cty.True, fieldValue(t, root, "wandb"))
	assertValEqual(t, cty.NumberIntVal(12123), fieldValue(t, root, "seed"))
	assert.Equal(t, cty.StringVal("sst2"), fieldValue(t, root, "dataset"))

	// static defaults
	assert.Equal(t, cty.StringVal("AUTO"), fieldValue(t, root, "log_dir"))

	// dynamic defaults keyed on the dataset
	assert.Equal(t, cty.StringVal("bert"), fieldValue(t, root, "model"))
	assertValEqual(t, cty.NumberFloatVal(2e-5), fieldValue(t, root, "lr"))
	assertValEqual(t, cty.NumberFloatVal(0), fieldValue(t, root, "weight_decay"))
	assert.Equal(t, cty.StringVal("adamw"), fieldValue(t, root, "optimizer"))
	assert.Equal(t, cty.StringVal("linear"), fieldValue(t, root, "scheduler"))
	assert.Equal(t, cty.True, fieldValue(t, root, "no_test"))
	assert.Equal(t, cty.False, fieldValue(t, root, "turn_on_torch_amp_autocast"))
}

func TestTrainingConfigDynamicDefaults(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--wandb --seed 12123 --dataset wikitext"))

	assert.Equal(t, cty.StringVal("one_cycle"), fieldValue(t, root, "scheduler"))
	assert.Equal(t, cty.True, fieldValue(t, root, "turn_on_torch_amp_autocast"))
	assertValEqual(t, cty.NumberIntVal(4), fieldValue(t, root, "batch_size"))
	assertValEqual(t, cty.NumberIntVal(4), fieldValue(t, root, "n_accumulate_batches"))
	assertValEqual(t, cty.NumberIntVal(1), fieldValue(t, root, "n_epochs"))
}

func TestTrainingConfigUserOverridesDynamicDefault(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--wandb --seed 12123 --dataset sst2 --turn_on_torch_amp_autocast"))
	assert.Equal(t, cty.True, fieldValue(t, root, "turn_on_torch_amp_autocast"))
}

func TestTrainingConfigSpawnsOneCycle(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--wandb --seed 12123 --dataset sst2 --scheduler one_cycle"))

	oneCycle := nestedGroup(t, root, "one_cycle")
	assert.Equal(t, "OneCycleLRConfig", oneCycle.Name())
	assert.True(t, oneCycle.Resolved())
	// sst2 carries no pct_start override, so the declared fallback holds.
	assertValEqual(t, cty.NumberFloatVal(0.3), fieldValue(t, root, "pct_start"))
}

func TestTrainingConfigSpawnWithDynamicDefaults(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--wandb --seed 12123 --dataset wikitext"))

	oneCycle := nestedGroup(t, root, "one_cycle")
	assert.True(t, oneCycle.Resolved())
	assertValEqual(t, cty.NumberFloatVal(0.02), fieldValue(t, root, "pct_start"))

	assert.Equal(t, cty.StringVal("gptbase"), fieldValue(t, root, "model"))
	gpt := nestedGroup(t, root, "gpt_base_configs")
	assert.True(t, gpt.Resolved())
	assertValEqual(t, cty.NumberIntVal(4096), fieldValue(t, root, "sequence_length"))
	assertValEqual(t, cty.NumberIntVal(12), fieldValue(t, root, "n_layer"))
	assertValEqual(t, cty.NumberIntVal(50304), fieldValue(t, root, "vocab_size"))
}

func TestTrainingConfigOverrideInSpawnedGroup(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--dataset wikitext --n_layer 1234"))

	assert.Equal(t, cty.StringVal("batch"), fieldValue(t, root, "scheduler_step_every"))
	assertValEqual(t, cty.NumberFloatVal(0.02), fieldValue(t, root, "pct_start"))
	assert.Equal(t, cty.StringVal("gptbase"), fieldValue(t, root, "model"))
	assertValEqual(t, cty.NumberIntVal(4096), fieldValue(t, root, "sequence_length"))
	assertValEqual(t, cty.NumberIntVal(1234), fieldValue(t, root, "n_layer"))
}

func TestTrainingConfigConstraints(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--log_every 1 --dataset wikitext"))
	assertValEqual(t, cty.NumberIntVal(1), fieldValue(t, root, "log_every"))

	root = NewTrainingConfig()
	err := resolve(t, root, "--log_every -1 --dataset wikitext")
	var constraintErr *conftree.ConstraintError
	require.ErrorAs(t, err, &constraintErr)
	assert.Equal(t, "log_every", constraintErr.Option)
}

func TestTrainingConfigTwoLevelDynamicDefault(t *testing.T) {
	// scheduler would default to one_cycle for wikitext; the explicit
	// override must govern scheduler_step_every instead.
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--dataset wikitext --scheduler reduce_lr_on_plateau"))
	assert.Equal(t, cty.StringVal("reduce_lr_on_plateau"), fieldValue(t, root, "scheduler"))
	assert.Equal(t, cty.StringVal("epoch"), fieldValue(t, root, "scheduler_step_every"))
}

func TestTrainingConfigProfilerSpawn(t *testing.T) {
	root := NewTrainingConfig()
	require.NoError(t, resolve(t, root, "--dataset sst2 --run_profiler --repeat 3"))

	profiler := nestedGroup(t, root, "profiler_config")
	assert.True(t, profiler.Resolved())
	assertValEqual(t, cty.NumberIntVal(3), fieldValue(t, root, "repeat"))
	assertValEqual(t, cty.NumberIntVal(5), fieldValue(t, root, "schedule_skip_first"))
	assert.Equal(t, cty.True, fieldValue(t, root, "profile_memory"))
}

func TestTrainingConfigUnrecognizedTokens(t *testing.T) {
	root := NewTrainingConfig()
	err := resolve(t, root, "--dataset sst2 --no_such_option 42")
	var leftoverErr *resolver.UnrecognizedTokensError
	require.ErrorAs(t, err, &leftoverErr)
	assert.Equal(t, []string{"--no_such_option", "42"}, leftoverErr.Tokens)
}

func TestModuleRegistersTrainingRoot(t *testing.T) {
	r := registry.New()
	Module{}.Register(r)

	f, err := r.Root("training")
	require.NoError(t, err)
	assert.Equal(t, "TrainingConfig", f.NewGroup().Name())
}
