package journal

import "github.com/kilianp07/chargeslot/core/factory"

var backendRegistry = factory.NewRegistry[Manager]()

// RegisterBackend adds a journal backend factory identified by name.
func RegisterBackend(name string, f factory.Factory[Manager]) error {
	return backendRegistry.Register(name, f)
}

// NewManager creates the journal backend described by cfg.
func NewManager(cfg factory.ModuleConfig) (Manager, error) {
	return backendRegistry.Create(cfg)
}
