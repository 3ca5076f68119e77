package metrics

import (
	"time"

	"github.com/kilianp07/chargeslot/core/model"
)

// Outcome classifies the end of a booking attempt.
type Outcome string

const (
	OutcomeBooked        Outcome = "booked"
	OutcomeDeclined      Outcome = "declined"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeUnpersisted   Outcome = "unpersisted"
	OutcomePromptFailure Outcome = "prompt_failure"
)

// BookingEvent records one call to Station.Book.
type BookingEvent struct {
	StationID string
	Outcome   Outcome
	Slot      model.Timeslot
	Energy    model.EnergySource
	Time      time.Time
}

// PromotionEvent records one queue promotion attempt.
type PromotionEvent struct {
	StationID string
	Promoted  bool
	Time      time.Time
}

// OccupancyEvent is a snapshot of the station sizes.
type OccupancyEvent struct {
	StationID string
	Available int
	Booked    int
	Queued    int
	Time      time.Time
}

// Sink records station events for observability purposes.
type Sink interface {
	RecordBooking(ev BookingEvent) error
	RecordPromotion(ev PromotionEvent) error
	RecordOccupancy(ev OccupancyEvent) error
}

// Flusher is implemented by sinks that buffer until explicitly flushed,
// such as the Prometheus textfile exporter.
type Flusher interface {
	Flush() error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordBooking(BookingEvent) error     { return nil }
func (NopSink) RecordPromotion(PromotionEvent) error { return nil }
func (NopSink) RecordOccupancy(OccupancyEvent) error { return nil }
