// Package trainconf declares the training-run configuration tree: a root
// group of project settings with dataset, model, and trainer subtrees.
// Dataset choice governs most dynamic defaults, and certain resolved values
// (model=gptbase, scheduler=one_cycle, run_profiler=true) spawn further
// config groups during resolution.
package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/vk/conftreego/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Module registers the training root config under the name "training".
type Module struct{}

func (Module) Register(r *registry.Registry) {
	r.AddRoot("training", conftree.GroupFactoryFunc(NewTrainingConfig))
}

// NewTrainingConfig builds the root group. Child ordering matters: trainer
// options take their dynamic defaults from the dataset group, so the dataset
// group must resolve first.
func NewTrainingConfig() *conftree.Group {
	g := conftree.NewGroup("TrainingConfig", "Top-level configs for a training run")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "project_name",
		Type:    cty.String,
		Default: cty.StringVal("PROJECT_NAME"),
		Help:    "Experiment tracker project name.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "wandb",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Turn on wandb cloud logging.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "wandb_entity",
		Type:    cty.String,
		Default: cty.StringVal("fastr"),
		Help:    "wandb entity, a team or an individual.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "gpu",
		Type:    cty.Number,
		Default: cty.NumberIntVal(0),
		Help:    "Set gpu to -1 to use cpu instead.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "seed",
		Type:    cty.Number,
		Default: cty.NullVal(cty.Number),
		Help:    "Deterministic seed. Null means a random seed.",
	}))

	g.AddGroup("dataset_config", NewDatasetConfig())
	g.AddGroup("model_config", NewModelConfig())
	g.AddGroup("trainer_config", NewTrainerConfig())
	return g
}

func strChoices(names ...string) []cty.Value {
	out := make([]cty.Value, len(names))
	for i, n := range names {
		out[i] = cty.StringVal(n)
	}
	return out
}
