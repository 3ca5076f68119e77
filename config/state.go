package config

import (
	"fmt"
	"maps"

	"github.com/kilianp07/chargeslot/core/factory"
)

// StateConfig selects where bookings are persisted.
type StateConfig struct {
	// Type selects the store: "file", "redis" or "memory".
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// SetDefaults selects the state file next to the working directory.
func (c *StateConfig) SetDefaults() {
	if c.Type == "" {
		c.Type = "file"
	}
}

// Validate checks mandatory fields.
func (c StateConfig) Validate() error {
	switch c.Type {
	case "file", "redis", "memory":
		return nil
	default:
		return fmt.Errorf("unknown store %s", c.Type)
	}
}

// Module returns the factory configuration of the store. The station id is
// injected so stores keyed by station can derive their key.
func (c StateConfig) Module(stationID string) factory.ModuleConfig {
	conf := maps.Clone(c.Conf)
	if conf == nil {
		conf = map[string]any{}
	}
	if _, ok := conf["station_id"]; !ok {
		conf["station_id"] = stationID
	}
	return factory.ModuleConfig{Type: c.Type, Conf: conf}
}
