package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/chargeslot/core/metrics"
)

// PromSink records station events in Prometheus metrics. When a textfile
// path is set, Flush writes the gathered metrics there for the node
// exporter textfile collector.
type PromSink struct {
	bookings   *prometheus.CounterVec
	energy     *prometheus.CounterVec
	promotions *prometheus.CounterVec
	slots      *prometheus.GaugeVec
	queue      *prometheus.GaugeVec

	gatherer prometheus.Gatherer
	textfile string
}

// NewPromSink registers station metrics on a dedicated registry.
func NewPromSink(textfile string) (*PromSink, error) {
	reg := prometheus.NewRegistry()
	return NewPromSinkWithRegistry(reg, reg, textfile)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer and a nil
// gatherer to the global gatherer.
func NewPromSinkWithRegistry(reg prometheus.Registerer, g prometheus.Gatherer, textfile string) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	s := &PromSink{
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "station_booking_attempts_total",
			Help: "Booking attempts by outcome",
		}, []string{"station_id", "outcome"}),
		energy: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "station_energy_selections_total",
			Help: "Energy sources selected for confirmed bookings",
		}, []string{"station_id", "source"}),
		promotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "station_queue_promotions_total",
			Help: "Queue promotion requests by result",
		}, []string{"station_id", "promoted"}),
		slots: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "station_timeslots",
			Help: "Timeslots of the business day by state",
		}, []string{"station_id", "state"}),
		queue: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "station_queue_length",
			Help: "Users waiting in the queue",
		}, []string{"station_id"}),
		gatherer: g,
		textfile: textfile,
	}
	var err error
	if s.bookings, err = register(reg, s.bookings); err != nil {
		return nil, err
	}
	if s.energy, err = register(reg, s.energy); err != nil {
		return nil, err
	}
	if s.promotions, err = register(reg, s.promotions); err != nil {
		return nil, err
	}
	if s.slots, err = register(reg, s.slots); err != nil {
		return nil, err
	}
	if s.queue, err = register(reg, s.queue); err != nil {
		return nil, err
	}
	return s, nil
}

// register returns the already registered collector when c is a duplicate.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordBooking counts the attempt and, for confirmed bookings, the energy source.
func (s *PromSink) RecordBooking(ev coremetrics.BookingEvent) error {
	s.bookings.WithLabelValues(ev.StationID, string(ev.Outcome)).Inc()
	if ev.Energy != 0 {
		s.energy.WithLabelValues(ev.StationID, ev.Energy.String()).Inc()
	}
	return nil
}

func (s *PromSink) RecordPromotion(ev coremetrics.PromotionEvent) error {
	s.promotions.WithLabelValues(ev.StationID, strconv.FormatBool(ev.Promoted)).Inc()
	return nil
}

// RecordOccupancy sets the slot and queue gauges.
func (s *PromSink) RecordOccupancy(ev coremetrics.OccupancyEvent) error {
	s.slots.WithLabelValues(ev.StationID, "available").Set(float64(ev.Available))
	s.slots.WithLabelValues(ev.StationID, "booked").Set(float64(ev.Booked))
	s.queue.WithLabelValues(ev.StationID).Set(float64(ev.Queued))
	return nil
}

// Flush writes the metrics to the textfile, if configured.
func (s *PromSink) Flush() error {
	if s.textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(s.textfile, s.gatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
