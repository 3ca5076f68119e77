package station

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/kilianp07/chargeslot/core/journal"
	"github.com/kilianp07/chargeslot/core/logger"
	"github.com/kilianp07/chargeslot/core/metrics"
	"github.com/kilianp07/chargeslot/core/model"
	"github.com/kilianp07/chargeslot/core/queue"
	"github.com/kilianp07/chargeslot/core/state"
)

// Booking binds a slot to the user holding it.
type Booking = state.Booking

// Station is the aggregate root of the booking core.
type Station struct {
	cfg       Config
	id        string
	catalog   []model.Timeslot
	available []model.Timeslot
	bookings  []Booking
	queue     *queue.WaitQueue
	energy    model.EnergyRegistry

	store   state.Store
	journal journal.Journal
	logs    journal.Names
	log     logger.Logger
	sink    metrics.Sink
	now     func() time.Time
}

// Option customises a Station.
type Option func(*Station)

// WithStore sets the durable state store. Defaults to an in-memory store.
func WithStore(s state.Store) Option { return func(st *Station) { st.store = s } }

// WithJournal sets the narrative journal and the log names it writes to.
func WithJournal(j journal.Journal, names journal.Names) Option {
	return func(st *Station) {
		names.SetDefaults()
		st.journal = j
		st.logs = names
	}
}

func WithLogger(l logger.Logger) Option { return func(st *Station) { st.log = l } }

func WithMetrics(s metrics.Sink) Option { return func(st *Station) { st.sink = s } }

// WithClock overrides time.Now for notices and metrics.
func WithClock(now func() time.Time) Option { return func(st *Station) { st.now = now } }

// New creates a station with a freshly generated catalog, everything
// available and an empty queue.
func New(cfg Config, opts ...Option) (*Station, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("station config: %w", err)
	}
	catalog := model.GenerateCatalog(cfg.Open, cfg.Close)
	s := &Station{
		cfg:       cfg,
		id:        cfg.ID,
		catalog:   catalog,
		available: slices.Clone(catalog),
		queue:     queue.New(),
		energy:    model.NewEnergyRegistry(),
		store:     state.NewMemoryStore(),
		journal:   journal.Nop{},
		log:       logger.Nop{},
		sink:      metrics.NopSink{},
		now:       time.Now,
	}
	s.logs.SetDefaults()
	for _, o := range opts {
		o(s)
	}
	return s, nil
}

func (s *Station) ID() string { return s.id }

// Catalog returns every slot generated for the business day.
func (s *Station) Catalog() []model.Timeslot { return slices.Clone(s.catalog) }

// Available lists the available slots with their 1-based index in catalog
// order. The sequence reads the live list and can be ranged over repeatedly.
func (s *Station) Available() iter.Seq2[int, model.Timeslot] {
	return func(yield func(int, model.Timeslot) bool) {
		for i, slot := range s.available {
			if !yield(i+1, slot) {
				return
			}
		}
	}
}

// AvailableSlots returns a copy of the available slots.
func (s *Station) AvailableSlots() []model.Timeslot { return slices.Clone(s.available) }

// Bookings returns a copy of the bookings in booking order.
func (s *Station) Bookings() []Booking { return slices.Clone(s.bookings) }

// Queue returns the wait queue from head to tail.
func (s *Station) Queue() []model.User { return s.queue.Users() }

// Enqueue adds a user to the tail of the wait queue.
func (s *Station) Enqueue(u model.User) {
	s.queue.Enqueue(u)
	s.recordOccupancy()
}

// EnergySources returns the selectable energy sources in display order.
func (s *Station) EnergySources() []model.EnergySource { return s.energy.List() }

// EnergySource resolves a 1-based energy source index.
func (s *Station) EnergySource(index int) (model.EnergySource, error) { return s.energy.Get(index) }

// Prioritize moves u to the front of the wait queue. The returned notice is
// also logged and appended to the station journal.
func (s *Station) Prioritize(ctx context.Context, u model.User) (bool, string) {
	promoted := s.queue.Promote(u)
	at := s.now()
	var notice string
	if promoted {
		notice = fmt.Sprintf("Queue prioritized. %s moved to the front at %s", u.ID, at.Format(journal.TimeLayout))
	} else {
		notice = fmt.Sprintf("%s is not in the queue.", u.ID)
	}
	s.log.Infow(notice, map[string]any{"station": s.id, "user": u.ID, "admin": u.Admin, "promoted": promoted})
	s.appendJournal(ctx, s.logs.Station, notice)
	if err := s.sink.RecordPromotion(metrics.PromotionEvent{StationID: s.id, Promoted: promoted, Time: at}); err != nil {
		s.log.Warnf("record promotion: %v", err)
	}
	return promoted, notice
}

// LogEnergySources records the sources picked for a slot in the energy journal.
func (s *Station) LogEnergySources(ctx context.Context, slot model.Timeslot, sources []model.EnergySource) {
	names := make([]string, len(sources))
	for i, src := range sources {
		names[i] = src.String()
	}
	s.appendJournal(ctx, s.logs.Energy, fmt.Sprintf("Timeslot %d - Selected Energy Sources: %s", int(slot), strings.Join(names, ",")))
}

func (s *Station) appendJournal(ctx context.Context, name, message string) {
	if err := s.journal.Append(ctx, name, message); err != nil {
		s.log.Warnf("journal %s: %v", name, err)
	}
}

func (s *Station) recordOccupancy() {
	ev := metrics.OccupancyEvent{
		StationID: s.id,
		Available: len(s.available),
		Booked:    len(s.bookings),
		Queued:    s.queue.Len(),
		Time:      s.now(),
	}
	if err := s.sink.RecordOccupancy(ev); err != nil {
		s.log.Warnf("record occupancy: %v", err)
	}
}
