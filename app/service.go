package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/kilianp07/chargeslot/config"
	"github.com/kilianp07/chargeslot/core/journal"
	coremetrics "github.com/kilianp07/chargeslot/core/metrics"
	"github.com/kilianp07/chargeslot/core/state"
	"github.com/kilianp07/chargeslot/core/station"
	_ "github.com/kilianp07/chargeslot/infra/journal"
	"github.com/kilianp07/chargeslot/infra/logger"
	_ "github.com/kilianp07/chargeslot/infra/metrics"
	_ "github.com/kilianp07/chargeslot/infra/statestore"
)

// Service wires the station to its store, journal, metrics and logger.
type Service struct {
	Station *station.Station
	Journal journal.Manager
	Names   journal.Names

	store   state.Store
	sink    coremetrics.Sink
	log     logger.Logger
	session string
	now     func() time.Time
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	session := uuid.NewString()
	zl := logger.NewSession("station", session)

	store, err := state.NewStore(cfg.State.Module(cfg.Station.ID))
	if err != nil {
		return nil, fmt.Errorf("state store: %w", err)
	}
	jnl, err := journal.NewManager(cfg.Journal.Module(session))
	if err != nil {
		closeStore(store)
		return nil, fmt.Errorf("journal: %w", err)
	}
	sink, err := coremetrics.NewSink(cfg.Metrics.Sinks)
	if err != nil {
		closeStore(store)
		_ = jnl.Close()
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	names := cfg.Journal.Names
	names.SetDefaults()

	st, err := station.New(cfg.Station,
		station.WithStore(store),
		station.WithJournal(jnl, names),
		station.WithMetrics(sink),
		station.WithLogger(zl),
	)
	if err != nil {
		closeStore(store)
		_ = jnl.Close()
		return nil, err
	}
	return &Service{
		Station: st,
		Journal: jnl,
		Names:   names,
		store:   store,
		sink:    sink,
		log:     zl,
		session: session,
		now:     time.Now,
	}, nil
}

// Session returns the id attached to every log line of this run.
func (s *Service) Session() string { return s.session }

// LoadState restores the bookings. A store without saved state is not an error.
func (s *Service) LoadState(ctx context.Context) error {
	err := s.Station.LoadState(ctx)
	if errors.Is(err, state.ErrNoState) {
		s.log.Infof("no saved state, starting with an empty station")
		return nil
	}
	return err
}

// Close flushes metrics and releases the journal and store.
func (s *Service) Close() error {
	var errs []error
	if f, ok := s.sink.(coremetrics.Flusher); ok {
		errs = append(errs, f.Flush())
	}
	errs = append(errs, s.Journal.Close())
	if c, ok := s.store.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

func closeStore(st state.Store) {
	if c, ok := st.(io.Closer); ok {
		_ = c.Close()
	}
}
