package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

var availMetrics = []string{"accuracy", "loss"}

// NewCheckpointingConfig declares checkpoint saving and resume options.
func NewCheckpointingConfig() *conftree.Group {
	g := conftree.NewGroup("CheckpointingConfig", "Configs for checkpointing")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "save_last",
		Type:    cty.Bool,
		Default: cty.False,
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "save_best",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Save the best model according to the configured metric and split.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "config_best_split",
		Type:    cty.String,
		Default: cty.StringVal("val"),
		Choices: strChoices("train", "val"),
		Help:    "Split (train or val) used with config_best_metric to pick the best model.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "config_best_metric",
		Type:    cty.String,
		Default: cty.StringVal("accuracy"),
		Choices: strChoices(availMetrics...),
		Help:    "Main metric to save the best model by, together with config_best_split.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "resume",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Resume training from the last checkpoint.",
	}))

	// Set by the run once the tracker session exists.
	g.AddValue("wandb_id", cty.NullVal(cty.String))
	return g
}
