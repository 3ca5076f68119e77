package config

import (
	"fmt"
	"maps"

	"github.com/kilianp07/chargeslot/core/factory"
	"github.com/kilianp07/chargeslot/core/journal"
)

// JournalConfig selects the journal backend and the log names it writes.
type JournalConfig struct {
	// Type selects the backend: "file" or "sqlite".
	Type string `json:"type"`
	// Conf is passed to the backend factory (dir, archive_dir, max_size_mb,
	// max_backups, max_age_days for files; path for sqlite).
	Conf  map[string]any `json:"conf"`
	Names journal.Names  `json:"names"`
}

// SetDefaults applies sane defaults.
func (c *JournalConfig) SetDefaults() {
	if c.Type == "" {
		c.Type = "file"
	}
	c.Names.SetDefaults()
}

// Validate checks mandatory fields.
func (c JournalConfig) Validate() error {
	if c.Type != "file" && c.Type != "sqlite" {
		return fmt.Errorf("unknown backend %s", c.Type)
	}
	return nil
}

// Module returns the factory configuration of the backend. The run session
// is injected so backends that stamp rows share the id of the log lines.
func (c JournalConfig) Module(session string) factory.ModuleConfig {
	conf := maps.Clone(c.Conf)
	if conf == nil {
		conf = map[string]any{}
	}
	if _, ok := conf["session"]; !ok && session != "" {
		conf["session"] = session
	}
	return factory.ModuleConfig{Type: c.Type, Conf: conf}
}
