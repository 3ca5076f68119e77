package model

import (
	"errors"
	"fmt"
)

// ErrEnergySourceNotFound is returned when an index is outside the registry.
var ErrEnergySourceNotFound = errors.New("energy source not found")

// EnergySource identifies where the charging energy comes from.
type EnergySource int

const (
	EnergySolar EnergySource = iota + 1
	EnergyWind
	EnergyHydro
)

// String returns a human-readable representation of the energy source.
func (e EnergySource) String() string {
	switch e {
	case EnergySolar:
		return "Solar"
	case EnergyWind:
		return "Wind"
	case EnergyHydro:
		return "Hydro"
	default:
		return "unknown"
	}
}

// EnergyRegistry is the read-only ordered list of selectable sources.
type EnergyRegistry struct {
	sources []EnergySource
}

// NewEnergyRegistry returns the registry Solar, Wind, Hydro.
func NewEnergyRegistry() EnergyRegistry {
	return EnergyRegistry{sources: []EnergySource{EnergySolar, EnergyWind, EnergyHydro}}
}

// Get resolves a 1-based index.
func (r EnergyRegistry) Get(index int) (EnergySource, error) {
	if index < 1 || index > len(r.sources) {
		return 0, fmt.Errorf("%w: index %d not in [1,%d]", ErrEnergySourceNotFound, index, len(r.sources))
	}
	return r.sources[index-1], nil
}

// List returns a copy of the sources in display order.
func (r EnergyRegistry) List() []EnergySource {
	out := make([]EnergySource, len(r.sources))
	copy(out, r.sources)
	return out
}

func (r EnergyRegistry) Len() int { return len(r.sources) }
