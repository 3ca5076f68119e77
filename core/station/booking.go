package station

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kilianp07/chargeslot/core/journal"
	"github.com/kilianp07/chargeslot/core/metrics"
	"github.com/kilianp07/chargeslot/core/model"
)

// Prompter answers the two questions asked while booking. Implementations
// may block on user input.
type Prompter interface {
	// Confirm returns the raw answer to "confirm this booking? (yes/no)".
	Confirm(ctx context.Context, slot model.Timeslot) (string, error)
	// SelectEnergy returns the 1-based index of the chosen source.
	SelectEnergy(ctx context.Context, sources []model.EnergySource) (int, error)
}

// Answers is a Prompter with already resolved answers.
type Answers struct {
	Confirmation string
	EnergyIndex  int
}

func (a Answers) Confirm(context.Context, model.Timeslot) (string, error) {
	return a.Confirmation, nil
}

func (a Answers) SelectEnergy(context.Context, []model.EnergySource) (int, error) {
	return a.EnergyIndex, nil
}

// Result describes a confirmed booking.
type Result struct {
	Slot model.Timeslot
	User model.User
	// EnergyIndex is the raw 1-based answer; Energy is zero when it does not
	// resolve to a registered source.
	EnergyIndex int
	Energy      model.EnergySource
	Persisted   bool
}

// Book reserves the slot listed at index for u after confirmation.
//
// Invalid users and indexes fail before any prompt. Any answer other than
// "yes" abandons the booking with ErrDeclinedConfirmation. Once confirmed the
// slot leaves the available list and the state is saved; if saving fails the
// booking is kept and the Result is returned together with an error wrapping
// ErrPersistenceFailure.
//
//gocyclo:ignore
func (s *Station) Book(ctx context.Context, u model.User, index int, p Prompter) (Result, error) {
	if err := u.Validate(); err != nil {
		s.recordBooking(metrics.OutcomeInvalid, 0, 0)
		return Result{}, fmt.Errorf("book: %w", err)
	}
	slot, err := s.selectSlot(index)
	if err != nil {
		s.recordBooking(metrics.OutcomeInvalid, 0, 0)
		return Result{}, err
	}

	answer, err := p.Confirm(ctx, slot)
	if err != nil {
		s.recordBooking(metrics.OutcomePromptFailure, slot, 0)
		return Result{}, fmt.Errorf("confirm booking: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes":
	case "no":
		s.log.Infof("Booking canceled.")
		s.recordBooking(metrics.OutcomeDeclined, slot, 0)
		return Result{}, fmt.Errorf("%w: booking canceled", ErrDeclinedConfirmation)
	default:
		s.log.Warnf("Invalid input %q. Booking canceled.", answer)
		s.recordBooking(metrics.OutcomeDeclined, slot, 0)
		return Result{}, fmt.Errorf("%w: invalid answer %q", ErrDeclinedConfirmation, answer)
	}

	s.commit(slot, u)
	res := Result{Slot: slot, User: u, Persisted: true}
	s.appendJournal(ctx, s.logs.Station, fmt.Sprintf("%s booked timeslot %s at %s",
		u.ID, slot.TimeRange(), s.now().Format(journal.TimeLayout)))

	outcome := metrics.OutcomeBooked
	var saveErr error
	if err := s.SaveState(ctx); err != nil {
		res.Persisted = false
		outcome = metrics.OutcomeUnpersisted
		saveErr = fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
		s.log.Warnf("booking of %s for %s kept in memory only: %v", slot, u.ID, err)
	}

	idx, err := p.SelectEnergy(ctx, s.energy.List())
	if err != nil {
		s.recordBooking(outcome, slot, 0)
		return res, errors.Join(saveErr, fmt.Errorf("select energy source: %w", err))
	}
	res.EnergyIndex = idx
	label := "none"
	if src, err := s.energy.Get(idx); err == nil {
		res.Energy = src
		label = src.String()
	} else {
		s.log.Warnf("energy selection: %v", err)
	}
	s.appendJournal(ctx, s.logs.Energy, fmt.Sprintf("User made a selection %s in the energy management system.", label))
	s.recordBooking(outcome, slot, res.Energy)
	return res, saveErr
}

// selectSlot applies the booking gate to a 1-based listing index.
func (s *Station) selectSlot(index int) (model.Timeslot, error) {
	first := 1
	if s.cfg.LegacyFirstSlotGate {
		first = 2
	}
	if len(s.available) == 0 {
		return 0, fmt.Errorf("%w: no timeslot available", ErrInvalidSelection)
	}
	if index < first || index > len(s.available) {
		return 0, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidSelection, index, first, len(s.available))
	}
	return s.available[index-1], nil
}

// commit moves slot from the available list to the bookings.
func (s *Station) commit(slot model.Timeslot, u model.User) {
	if i := slices.Index(s.available, slot); i >= 0 {
		s.available = slices.Delete(s.available, i, i+1)
	}
	s.bookings = append(s.bookings, Booking{Slot: slot, User: u})
	s.log.Infow("timeslot booked", map[string]any{"station": s.id, "slot": slot.String(), "user": u.ID})
}

func (s *Station) recordBooking(o metrics.Outcome, slot model.Timeslot, src model.EnergySource) {
	ev := metrics.BookingEvent{StationID: s.id, Outcome: o, Slot: slot, Energy: src, Time: s.now()}
	if err := s.sink.RecordBooking(ev); err != nil {
		s.log.Warnf("record booking: %v", err)
	}
	s.recordOccupancy()
}
