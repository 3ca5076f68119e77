package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeslot/config"
	"github.com/kilianp07/chargeslot/core/model"
	infrajournal "github.com/kilianp07/chargeslot/infra/journal"
)

var session = BookingSession{
	User:  model.User{ID: "ExternalUser2"},
	Admin: model.User{ID: "Admin1", Admin: true},
}

func testConfig(t *testing.T) (*config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.State.Conf = map[string]any{"path": filepath.Join(dir, "station_state.text")}
	cfg.Journal.Conf = map[string]any{"dir": dir}
	return cfg, dir
}

func newService(t *testing.T, cfg *config.Config) *Service {
	t.Helper()
	svc, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNewRejectsUnknownStore(t *testing.T) {
	cfg := config.Default()
	cfg.State.Type = "etcd"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestBookingSessionBooksAndJournals(t *testing.T) {
	cfg, dir := testConfig(t)
	svc := newService(t, cfg)
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("3\nyes\n2\n"), &out)

	require.NoError(t, session.Run(context.Background(), svc, c))

	got := out.String()
	assert.Contains(t, got, "Available timeslots:\n1. 09:00 AM - 09:30 AM\n")
	assert.Contains(t, got, "Do you want to confirm this booking? (yes/no)\n")
	assert.Contains(t, got, "Available energy sources:\n1. Solar\n2. Wind\n3. Hydro\n")
	assert.Contains(t, got, "ExternalUser2 booked timeslot 10:00 AM - 10:30 AM at ")
	assert.Contains(t, got, "Admin1 is not in the queue.\n")

	require.NoError(t, svc.Journal.Close())
	assert.Contains(t, readLog(t, filepath.Join(dir, "station_log.txt")), "ExternalUser2 booked timeslot 10:00 AM - 10:30 AM at")
	energy := readLog(t, filepath.Join(dir, "energy_log.txt"))
	assert.Contains(t, energy, "User made a selection Wind in the energy management system.")
	assert.Contains(t, energy, "Timeslot 1000 - Selected Energy Sources: Wind")
	assert.Contains(t, readLog(t, filepath.Join(dir, "system_log.txt")), " : System updated successfully")
	assert.Equal(t, "stationId:Station1\navailableTimeslots:1000\nbookedUsers:ExternalUser2-false\n",
		readLog(t, filepath.Join(dir, "station_state.text")))
}

func TestBookingSessionPrioritizesLoadedAdmin(t *testing.T) {
	cfg, dir := testConfig(t)
	state := "stationId:Station1\navailableTimeslots:900,\nbookedUsers:Admin1-true,\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "station_state.text"), []byte(state), 0o644))
	svc := newService(t, cfg)
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("1\nno\n"), &out)

	require.NoError(t, session.Run(context.Background(), svc, c))

	got := out.String()
	assert.Contains(t, got, "1. 09:30 AM - 10:00 AM\n")
	assert.Contains(t, got, "Booking canceled.\n")
	assert.Contains(t, got, "Queue prioritized. Admin1 moved to the front at ")
	assert.Len(t, svc.Station.Bookings(), 1)
}

func TestBookingSessionInvalidSelectionStillPrioritizes(t *testing.T) {
	cfg, _ := testConfig(t)
	svc := newService(t, cfg)
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("42\n"), &out)

	require.NoError(t, session.Run(context.Background(), svc, c))

	assert.Contains(t, out.String(), "Invalid timeslot selection.\n")
	assert.Contains(t, out.String(), "Admin1 is not in the queue.\n")
	assert.Empty(t, svc.Station.Bookings())
}

func TestBookingSessionRejectsNonNumericSelection(t *testing.T) {
	cfg, _ := testConfig(t)
	svc := newService(t, cfg)
	c := NewConsole(strings.NewReader("ten\n"), &bytes.Buffer{})

	err := session.Run(context.Background(), svc, c)
	assert.ErrorContains(t, err, "not a number")
}

func TestBookingSessionMalformedStateAborts(t *testing.T) {
	cfg, dir := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "station_state.text"), []byte("availableTimeslots:abc\n"), 0o644))
	svc := newService(t, cfg)
	var out bytes.Buffer

	err := session.Run(context.Background(), svc, NewConsole(strings.NewReader("1\nyes\n1\n"), &out))
	assert.Error(t, err)
	assert.Empty(t, out.String())
	assert.Equal(t, "availableTimeslots:abc\n", readLog(t, filepath.Join(dir, "station_state.text")))
}

func TestSQLiteJournalSharesServiceSession(t *testing.T) {
	cfg, dir := testConfig(t)
	cfg.Journal.Type = "sqlite"
	cfg.Journal.Conf = map[string]any{"path": filepath.Join(dir, "journal.db")}
	svc := newService(t, cfg)

	jnl, ok := svc.Journal.(*infrajournal.SQLiteJournal)
	require.True(t, ok, "unexpected journal %T", svc.Journal)
	assert.NotEmpty(t, svc.Session())
	assert.Equal(t, svc.Session(), jnl.Session())
}
