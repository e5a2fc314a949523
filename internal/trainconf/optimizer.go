package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

var availOptimizers = []string{"sgd", "adam", "adamw"}

// NewOptimizerConfig declares optimizer options.
func NewOptimizerConfig() *conftree.Group {
	g := conftree.NewGroup("OptimizerConfig", "Optimizer related configs")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "optimizer",
		Type:    cty.String,
		Choices: strChoices(availOptimizers...),
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "optimizer", cty.StringVal("sgd")),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "lr",
		Type:    cty.Number,
		Help:    "Learning rate.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "lr", cty.NumberFloatVal(1e-3)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "weight_decay",
		Type:    cty.Number,
		Help:    "L2 regularization.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "weight_decay", cty.NumberIntVal(0)),
	}))
	return g
}
