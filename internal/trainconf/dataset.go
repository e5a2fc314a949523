package trainconf

import (
	"github.com/vk/conftreego/internal/conftree"
	"github.com/zclconf/go-cty/cty"
)

var availDatasets = []string{"mnist", "cifar10", "wikitext", "sst2", "imdb", "mrpc", "mnli"}

const maxNumWorkers = 4

// NewDatasetConfig declares data loading and preprocessing options. The
// dataset option governs most dynamic defaults elsewhere in the tree.
func NewDatasetConfig() *conftree.Group {
	g := conftree.NewGroup("DatasetConfig", "Options for data loading and preprocessing")

	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "dataset",
		Type:    cty.String,
		Default: cty.StringVal("cifar10"),
		Choices: strChoices(availDatasets...),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "val_fraction",
		Type:    cty.Number,
		Default: cty.NumberIntVal(0),
		Help:    "Fraction of the training dataset to split for validation.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "num_workers",
		Type:    cty.Number,
		Default: cty.NumberIntVal(maxNumWorkers),
		Help:    "Number of dataloading workers. Must not exceed maxNumWorkers.",
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "batch_size",
		Type:    cty.Number,
		Help:    "See also n_accumulate_batches.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "batch_size", cty.NumberIntVal(256)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name: "n_accumulate_batches",
		Type: cty.Number,
		Help: "Accumulate gradients across this many batches before an optimizer step. " +
			"batch_size=16 with n_accumulate_batches=2 steps like batch_size=32 at the cost of parallelism.",
		Dynamic: conftree.DynamicFromTable("dataset", datasetDefaults, "n_accumulate_batches", cty.NumberIntVal(1)),
	}))
	g.AddOption(conftree.NewDecl(conftree.Decl{
		Name:    "no_augment_data",
		Type:    cty.Bool,
		Default: cty.False,
		Help:    "Set this flag to not run data augmentation.",
	}))
	return g
}
