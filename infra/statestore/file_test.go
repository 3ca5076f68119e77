package statestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeslot/core/factory"
	"github.com/kilianp07/chargeslot/core/model"
	"github.com/kilianp07/chargeslot/core/state"
)

var snap = state.Snapshot{
	StationID: "Station1",
	Bookings: []state.Booking{
		{Slot: 1000, User: model.User{ID: "ExternalUser2"}},
		{Slot: 1100, User: model.User{ID: "Admin1", Admin: true}},
	},
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "station_state.text")
	s := NewFileStore(path)
	ctx := context.Background()

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, state.ErrNoState)

	require.NoError(t, s.Save(ctx, snap))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "stationId:Station1\navailableTimeslots:1000,1100\nbookedUsers:ExternalUser2-false,Admin1-true\n", string(data))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, snap, got)
}

func TestFileStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station_state.text")
	s := NewFileStore(path)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, snap))
	require.NoError(t, s.Save(ctx, state.Snapshot{StationID: "Station1"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Bookings)
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "station_state.text")
	require.NoError(t, os.WriteFile(path, []byte("stationId:S\navailableTimeslots:abc\nbookedUsers:u-false\n"), 0o644))
	_, err := NewFileStore(path).Load(context.Background())
	assert.ErrorIs(t, err, state.ErrMalformedState)
}

func TestFileStoreFactory(t *testing.T) {
	s, err := state.NewStore(factory.ModuleConfig{Type: "file"})
	require.NoError(t, err)
	assert.Equal(t, DefaultPath, s.(*FileStore).Path())
}

func factoryConf(typ string, conf map[string]any) factory.ModuleConfig {
	return factory.ModuleConfig{Type: typ, Conf: conf}
}
