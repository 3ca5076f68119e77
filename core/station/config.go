package station

import (
	"fmt"

	"github.com/kilianp07/chargeslot/core/model"
)

// Config defines the station identity and business hours.
type Config struct {
	ID    string         `json:"id"`
	Open  model.Timeslot `json:"open"`
	Close model.Timeslot `json:"close"`
	// LegacyFirstSlotGate rejects the first listed slot like the historical
	// booking gate did. Disabled by default.
	LegacyFirstSlotGate bool `json:"legacy_first_slot_gate"`
}

// SetDefaults applies the historical station id and 09:00-17:00 hours.
func (c *Config) SetDefaults() {
	if c.ID == "" {
		c.ID = "Station1"
	}
	if c.Open == 0 {
		c.Open = model.DefaultOpen
	}
	if c.Close == 0 {
		c.Close = model.DefaultClose
	}
}

// Validate checks business hours.
func (c Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("station id is required")
	}
	if !c.Open.Valid() || !c.Close.Valid() {
		return fmt.Errorf("business hours must be HHMM on a half hour: open=%d close=%d", c.Open, c.Close)
	}
	if c.Open > c.Close {
		return fmt.Errorf("open %s is after close %s", c.Open, c.Close)
	}
	return nil
}
