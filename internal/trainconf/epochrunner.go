package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

// NewEpochRunnerConfig declares options for the main training loop and
// attaches the gradient processing subtree.
func NewEpochRunnerConfig() *conftree.Group {
	g := conftree.NewGroup("EpochRunnerConfig", "Options for the main training loop")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "turn_on_torch_amp_autocast",
		Type:    cty.Bool,
		Help:    "Turn on torch's amp autocast.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "turn_on_torch_amp_autocast", cty.False),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "n_batches_per_epoch",
		Type:    cty.Number,
		Default: cty.NullVal(cty.Number),
		Help: "Maximum number of batches per epoch, for datasets too large to run a full epoch. " +
			"With n_accumulate_batches>1 the optimizer steps this many times divided by n_accumulate_batches.",
	}))

	g.AddGroup("grad_processing_config", NewGradProcessingConfig())
	return g
}

// NewGradProcessingConfig declares gradient clipping and noise options.
func NewGradProcessingConfig() *conftree.Group {
	g := conftree.NewGroup("GradProcessingConfig", "Gradient processing configs")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "scale_noise",
		Type:    cty.Number,
		Default: cty.NumberIntVal(1),
		Help: "Scales down per-coordinate noise, so the total noise added " +
			"need not depend on the dimension.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "clip_grad",
		Type:    cty.Number,
		Default: cty.NullVal(cty.Number),
		Help: "Threshold to clip the grad norm before stepping. Null means no clipping. " +
			"The norm is computed across the whole model, not layer by layer.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "noise_param",
		Type:    cty.Number,
		Default: cty.NullVal(cty.Number),
		Help: "Parameter of the configured noise distribution. For a Laplace " +
			"distribution this is the scale b.",
	}))
	return g
}
