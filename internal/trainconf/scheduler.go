package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

var availSchedulers = []string{"linear", "one_cycle", "cos", "reduce_lr_on_plateau"}

// NewSchedulerConfig declares scheduler options. The scheduler option is
// both dynamically defaulted from the dataset and itself governs
// scheduler_step_every, and one_cycle spawns the OneCycleLR subtree.
func NewSchedulerConfig() *conftree.Group {
	g := conftree.NewGroup("SchedulerConfig", "Scheduler related configs")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "scheduler",
		Type:    cty.String,
		Choices: strChoices(availSchedulers...),
		Help:    "Null means no scheduler.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "scheduler", cty.NullVal(cty.String)),
		Spawn: []conftree.SpawnRule{
			{When: cty.StringVal("one_cycle"), Factory: conftree.GroupFactoryFunc(NewOneCycleConfig)},
		},
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "scheduler_step_every",
		Type:    cty.String,
		Choices: strChoices("epoch", "batch"),
		Help: "Whether the scheduler steps every batch or every epoch. Most schedulers " +
			"step right after the optimizer, which is every batch.",
		Dynamic: conftree.DynamicFromTable("scheduler", schedulerDefaults, "scheduler_step_every", cty.StringVal("batch")),
	}))
	return g
}

// NewOneCycleConfig declares OneCycleLR scheduler options, spawned when
// scheduler resolves to "one_cycle".
func NewOneCycleConfig() *conftree.Group {
	g := conftree.NewSpawnableGroup("OneCycleLRConfig", "OneCycleLR scheduler related configs", "one_cycle")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "max_lr",
		Type:    cty.Number,
		Default: cty.NumberIntVal(1),
		Help:    "Maximum learning rate for the OneCycleLR scheduler.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "anneal_strategy",
		Type:    cty.String,
		Default: cty.StringVal("cos"),
		Choices: strChoices("cos", "linear", "none"),
		Help:    "Anneal strategy for the OneCycleLR scheduler.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "pct_start",
		Type:    cty.Number,
		Help:    "Warmup percent for the OneCycleLR scheduler.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "pct_start", cty.NumberFloatVal(0.3)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "no_cycle_momentum",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Turns off cycle momentum for the OneCycleLR scheduler.",
	}))
	return g
}
