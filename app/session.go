package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/kilianp07/chargeslot/core/journal"
	"github.com/kilianp07/chargeslot/core/model"
	"github.com/kilianp07/chargeslot/core/station"
)

// BookingSession runs one interactive booking at the console: list the free
// slots, book the chosen one for User, then prioritize Admin in the queue.
type BookingSession struct {
	User  model.User
	Admin model.User
}

// PrintSlots writes the numbered list of available slots.
func (s *Service) PrintSlots(w io.Writer) {
	fmt.Fprintln(w, "Available timeslots:")
	for i, slot := range s.Station.Available() {
		fmt.Fprintf(w, "%d. %s\n", i, slot.TimeRange())
	}
}

// Run executes the session against the service state. Rejected selections
// and declined confirmations end the booking step but not the session.
func (b BookingSession) Run(ctx context.Context, svc *Service, c *Console) error {
	if err := svc.LoadState(ctx); err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	svc.PrintSlots(c.out)
	choice, err := c.ReadInt(ctx)
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}

	res, err := svc.Station.Book(ctx, b.User, choice, c)
	booked := res.Slot != 0
	switch {
	case booked:
		if err != nil {
			c.Printf("Warning: %v\n", err)
		}
		c.Printf("%s booked timeslot %s at %s\n", res.User.ID, res.Slot.TimeRange(), svc.now().Format(journal.TimeLayout))
		if res.Energy != 0 {
			svc.Station.LogEnergySources(ctx, res.Slot, []model.EnergySource{res.Energy})
		}
	case errors.Is(err, station.ErrInvalidSelection):
		c.Printf("Invalid timeslot selection.\n")
	case errors.Is(err, model.ErrInvalidUser):
		c.Printf("Booking rejected: %v\n", err)
	case errors.Is(err, station.ErrDeclinedConfirmation):
		c.Printf("Booking canceled.\n")
	default:
		return err
	}

	_, notice := svc.Station.Prioritize(ctx, b.Admin)
	c.Printf("%s\n", notice)

	if err := svc.Journal.Append(ctx, svc.Names.System, "System updated successfully"); err != nil {
		svc.log.Warnf("journal %s: %v", svc.Names.System, err)
	}
	return nil
}
