package metrics

import "errors"

// MultiSink fans out events to multiple sinks.
type MultiSink struct {
	Sinks []Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordBooking forwards the event to every sink and joins their errors.
func (m *MultiSink) RecordBooking(ev BookingEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordBooking(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordPromotion(ev PromotionEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordPromotion(ev))
	}
	return errors.Join(errs...)
}

func (m *MultiSink) RecordOccupancy(ev OccupancyEvent) error {
	var errs []error
	for _, s := range m.Sinks {
		errs = append(errs, s.RecordOccupancy(ev))
	}
	return errors.Join(errs...)
}

// Flush flushes every sink implementing Flusher and joins their errors.
func (m *MultiSink) Flush() error {
	var errs []error
	for _, s := range m.Sinks {
		if f, ok := s.(Flusher); ok {
			errs = append(errs, f.Flush())
		}
	}
	return errors.Join(errs...)
}
