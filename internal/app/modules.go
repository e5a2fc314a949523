package app

import (
	"github.com/vk/conftreego/internal/registry"
	"github.com/vk/conftreego/internal/trainconf"
)

// coreModules are the config modules registered when the caller supplies
// none of its own.
var coreModules = []registry.Module{
	trainconf.Module{},
}
