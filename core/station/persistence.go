package station

import (
	"context"
	"fmt"
	"slices"

	"github.com/kilianp07/chargeslot/core/state"
)

// Snapshot returns the durable part of the station.
func (s *Station) Snapshot() state.Snapshot {
	return state.Snapshot{StationID: s.id, Bookings: slices.Clone(s.bookings)}
}

// SaveState overwrites the stored state with the current bookings.
func (s *Station) SaveState(ctx context.Context) error {
	if err := s.store.Save(ctx, s.Snapshot()); err != nil {
		return fmt.Errorf("save station state: %w", err)
	}
	s.log.Infof("Charging station state saved.")
	return nil
}

// LoadState replaces the bookings with the stored ones. The station id is
// taken from the stored state when present (the store itself stays bound to
// the configured id) and the available list becomes the
// catalog minus the booked slots. Every restored booking's user is appended to
// the wait queue, so loading twice queues them twice.
//
// On error the station is left unchanged; state.ErrNoState means nothing was
// saved yet.
func (s *Station) LoadState(ctx context.Context) error {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load station state: %w", err)
	}
	if snap.StationID != "" {
		s.id = snap.StationID
	}
	booked := make(map[int]bool, len(snap.Bookings))
	for _, b := range snap.Bookings {
		booked[int(b.Slot)] = true
	}
	s.available = s.available[:0]
	for _, slot := range s.catalog {
		if !booked[int(slot)] {
			s.available = append(s.available, slot)
		}
	}
	s.bookings = slices.Clone(snap.Bookings)
	for _, b := range snap.Bookings {
		s.queue.Enqueue(b.User)
	}
	s.log.Infow("Charging station state loaded.", map[string]any{
		"station": s.id, "bookings": len(s.bookings), "queued": s.queue.Len(),
	})
	s.recordOccupancy()
	return nil
}
