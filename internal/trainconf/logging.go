package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/vk/conftreego/internal/constraint"
	"github.com/zclconf/go-cty/cty"
)

// NewLoggingConfig declares logging options. run_profiler=true spawns the
// profiler subtree.
func NewLoggingConfig() *conftree.Group {
	g := conftree.NewGroup("LoggingConfig", "Logging related configs")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "log_dir",
		Type:    cty.String,
		Default: cty.StringVal("AUTO"),
		Help:    "Location for log files and checkpoints. Default picks a directory automatically.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "log_fixed_gradients_n_epochs",
		Type:    cty.Number,
		Default: cty.NumberIntVal(0),
		Help: "Frequency in epochs to log gradients of batches as an epoch of its own. " +
			"Set above 0 to activate; also logs an epoch of gradients before training begins.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "run_test_only_if_best_metric_split_improved",
		Type:    cty.Bool,
		Default: cty.False,
		Help: "Only run the test set on epochs where the configured best metric and split improved. " +
			"See config_best_metric and config_best_split.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "log_gradients",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Log gradients of batches during the training epoch.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:       "log_every",
		Type:       cty.Number,
		Help:       "Log every this many steps.",
		Constraint: constraint.LowerBound(cty.NumberIntVal(0), true),
		Dynamic:    conftree.DynamicFromTable("dataset", datasetDefaults, "log_every", cty.NumberIntVal(50)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "show_progress",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Show a progress bar for training and validation.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "run_profiler",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Profile a set number of batches. The profiler subtree controls the schedule.",
		Spawn: []conftree.SpawnRule{
			{When: cty.True, Factory: conftree.GroupFactoryFunc(NewProfilerConfig)},
		},
	}))
	return g
}

// NewProfilerConfig declares profiling-run options, spawned only when
// run_profiler resolves to true.
func NewProfilerConfig() *conftree.Group {
	g := conftree.NewSpawnableGroup("ProfilerConfig", "Configs for profiling runs", "profiler_config")

	g.AddValue("wait", cty.NumberIntVal(5))
	g.AddValue("warmup", cty.NumberIntVal(2))
	g.AddValue("active", cty.NumberIntVal(3))
	g.AddValue("profile_memory", cty.True)
	g.AddValue("record_shapes", cty.True)
	g.AddValue("with_stack", cty.True)

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "schedule_skip_first",
		Type:    cty.Number,
		Default: cty.NumberIntVal(5),
		Help:    "Steps to skip before the profiler cycles start.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "repeat",
		Type:    cty.Number,
		Default: cty.NumberIntVal(1),
		Help:    "Upper bound on the number of profiler cycles.",
	}))
	return g
}
