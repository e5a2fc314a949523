package trainconf

import "github.com/zclconf/go-cty/cty"

// datasetDefaults overrides generic option defaults per dataset. Read at
// resolution time through DynamicFromTable; never mutated.
var datasetDefaults = map[string]map[string]cty.Value{
	"imagenet": {
		"n_epochs":     cty.NumberIntVal(50),
		"batch_size":   cty.NumberIntVal(128),
		"log_every":    cty.NumberIntVal(250),
		"weight_decay": cty.NumberFloatVal(1e-4),
		"lr":           cty.NumberFloatVal(1e-3),
		"model":        cty.StringVal("resnet50"),
	},
	"mrpc": {
		"n_epochs":     cty.NumberIntVal(3),
		"batch_size":   cty.NumberIntVal(8),
		"log_every":    cty.NumberIntVal(100),
		"weight_decay": cty.NumberFloatVal(0),
		"lr":           cty.NumberFloatVal(5e-5),
		"optimizer":    cty.StringVal("adamw"),
		"scheduler":    cty.StringVal("linear"),
		"model":        cty.StringVal("bert"),
	},
	// sst2 and mnli test sets carry no labels, so no_test defaults on.
	"sst2": {
		"n_epochs":     cty.NumberIntVal(4),
		"batch_size":   cty.NumberIntVal(16),
		"log_every":    cty.NumberIntVal(100),
		"weight_decay": cty.NumberFloatVal(0),
		"lr":           cty.NumberFloatVal(2e-5),
		"optimizer":    cty.StringVal("adamw"),
		"scheduler":    cty.StringVal("linear"),
		"model":        cty.StringVal("bert"),
		"no_test":      cty.True,
	},
	"mnli": {
		"n_epochs":     cty.NumberIntVal(4),
		"batch_size":   cty.NumberIntVal(8),
		"log_every":    cty.NumberIntVal(1000),
		"weight_decay": cty.NumberFloatVal(0),
		"lr":           cty.NumberFloatVal(2e-5),
		"optimizer":    cty.StringVal("adamw"),
		"scheduler":    cty.StringVal("linear"),
		"model":        cty.StringVal("bert"),
		"no_test":      cty.True,
	},
	"imdb": {
		"n_epochs":     cty.NumberIntVal(10),
		"batch_size":   cty.NumberIntVal(16),
		"log_every":    cty.NumberIntVal(25),
		"weight_decay": cty.NumberFloatVal(0.01),
		"lr":           cty.NumberFloatVal(2e-5),
		"optimizer":    cty.StringVal("adamw"),
		"scheduler":    cty.StringVal("linear"),
		"model":        cty.StringVal("distilbert"),
		"no_test":      cty.False,
	},
	"mnist": {
		"model":        cty.StringVal("simple"),
		"n_epochs":     cty.NumberIntVal(50),
		"batch_size":   cty.NumberIntVal(128),
		"weight_decay": cty.NumberFloatVal(0),
		"lr":           cty.NumberFloatVal(1e-2),
		"log_every":    cty.NumberIntVal(0),
	},
	"wikitext": {
		"model":                      cty.StringVal("gptbase"),
		"batch_size":                 cty.NumberIntVal(4),
		"optimizer":                  cty.StringVal("adamw"),
		"scheduler":                  cty.StringVal("one_cycle"),
		"weight_decay":               cty.NumberFloatVal(0.1),
		"lr":                         cty.NumberFloatVal(1e-3),
		"dropout":                    cty.NumberFloatVal(0.1),
		"log_every":                  cty.NumberIntVal(100),
		"n_epochs":                   cty.NumberIntVal(1),
		"sequence_length":            cty.NumberIntVal(4096),
		"turn_on_torch_amp_autocast": cty.True,
		"n_accumulate_batches":       cty.NumberIntVal(4),
		"pct_start":                  cty.NumberFloatVal(0.02),
	},
}

// schedulerDefaults keys on the resolved scheduler, a second level of
// dynamic defaults: scheduler itself usually comes out of datasetDefaults.
var schedulerDefaults = map[string]map[string]cty.Value{
	"one_cycle":            {"scheduler_step_every": cty.StringVal("batch")},
	"linear":               {"scheduler_step_every": cty.StringVal("batch")},
	"reduce_lr_on_plateau": {"scheduler_step_every": cty.StringVal("epoch")},
}
