package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

var availCriterions = []string{"cross_entropy", "square"}

// NewTrainerConfig declares the trainer options and attaches the training
// loop, logging, checkpointing, optimizer, and scheduler subtrees.
func NewTrainerConfig() *conftree.Group {
	g := conftree.NewGroup("TrainerConfig", "Trainer configs for the project")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "n_epochs",
		Type:    cty.Number,
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "n_epochs", cty.NumberIntVal(100)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "loss",
		Type:    cty.String,
		Choices: strChoices(availCriterions...),
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "loss", cty.StringVal("cross_entropy")),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "no_test",
		Type:    cty.Bool,
		Help:    "Do not evaluate on the test set.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "no_test", cty.False),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "no_val",
		Type:    cty.Bool,
		Help:    "Do not evaluate on the val set.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "no_val", cty.False),
	}))

	g.AddGroup("epoch_runner_config", NewEpochRunnerConfig())
	g.AddGroup("logger_config", NewLoggingConfig())
	g.AddGroup("checkpointing_config", NewCheckpointingConfig())
	g.AddGroup("optimizer_config", NewOptimizerConfig())
	g.AddGroup("scheduler_config", NewSchedulerConfig())
	return g
}
