package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

var availModels = []string{"resnet50", "gptbase", "bert"}

// NewModelConfig declares model selection options. Resolving model to
// "gptbase" spawns the GPTBase subtree.
func NewModelConfig() *conftree.Group {
	g := conftree.NewGroup("ModelConfig", "Model related configs")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "model",
		Type:    cty.String,
		Choices: strChoices(availModels...),
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "model", cty.StringVal("resnet50")),
		Spawn: []conftree.SpawnRule{
			{When: cty.StringVal("gptbase"), Factory: conftree.GroupFactoryFunc(NewGPTBaseConfig)},
		},
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name: "dropout",
		Type: cty.Number,
		Help: "Dropout rate for models that use it. Not every model honors this; " +
			"check the model code before setting it.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "dropout", cty.NumberIntVal(0)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "use_pretrained",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Use a pretrained model where one is available.",
	}))
	return g
}

// NewGPTBaseConfig declares GPTBase model options. Only spawned when model
// resolves to "gptbase". Fixed architecture values live next to the tunable
// options as plain values.
func NewGPTBaseConfig() *conftree.Group {
	g := conftree.NewSpawnableGroup("GPTBaseConfigs", "GPTBase models' configs", "gpt_base_configs")

	g.AddValue("vocab_size", cty.NumberIntVal(50304))
	g.AddValue("n_embd", cty.NumberIntVal(768))
	g.AddValue("bias", cty.False)
	g.AddValue("dropout", cty.NumberFloatVal(0.2))

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "sequence_length",
		Type:    cty.Number,
		Help:    "Max sequence length for the model, used to truncate or pad data.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "sequence_length", cty.NumberIntVal(512)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "n_layer",
		Type:    cty.Number,
		Default: cty.NumberIntVal(12),
		Help:    "Number of transformer layers.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "n_head",
		Type:    cty.Number,
		Default: cty.NumberIntVal(4),
		Help:    "Number of attention heads.",
	}))
	return g
}
