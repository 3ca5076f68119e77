package state

import (
	"context"
	"errors"

	"github.com/kilianp07/chargeslot/core/model"
)

var (
	// ErrMalformedState is returned when a state file cannot be decoded.
	ErrMalformedState = errors.New("malformed state")
	// ErrNoState is returned by a Store that has nothing saved yet.
	ErrNoState = errors.New("no saved state")
)

const (
	keyStationID = "stationId"
	keyBooked    = "availableTimeslots"
	keyUsers     = "bookedUsers"
)

// Booking binds a slot to the user holding it.
type Booking struct {
	Slot model.Timeslot
	User model.User
}

// Snapshot is the durable part of a station.
type Snapshot struct {
	StationID string
	Bookings  []Booking
}

// Store persists snapshots.
type Store interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (Snapshot, error)
}
