package statestore

import (
	"github.com/kilianp07/chargeslot/core/factory"
	"github.com/kilianp07/chargeslot/core/state"
)

// init registers the durable state stores.
func init() {
	_ = state.RegisterStore("file", func(conf map[string]any) (state.Store, error) {
		var c struct {
			Path string `json:"path"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewFileStore(c.Path), nil
	})

	_ = state.RegisterStore("redis", func(conf map[string]any) (state.Store, error) {
		var c struct {
			RedisConfig `json:",squash"`
			StationID   string `json:"station_id"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewRedisStore(c.RedisConfig, c.StationID), nil
	})
}
