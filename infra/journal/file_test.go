package journal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/chargeslot/core/factory"
	"github.com/kilianp07/chargeslot/core/journal"
)

var at = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newFileJournal(t *testing.T) (*FileJournal, string) {
	t.Helper()
	dir := t.TempDir()
	j, err := NewFileJournal(FileConfig{Dir: dir})
	require.NoError(t, err)
	j.now = func() time.Time { return at }
	t.Cleanup(func() { _ = j.Close() })
	return j, dir
}

func TestFileJournalAppendRead(t *testing.T) {
	j, dir := newFileJournal(t)
	ctx := context.Background()
	require.NoError(t, j.Append(ctx, "system_log.txt", "System updated successfully"))
	require.NoError(t, j.Append(ctx, "system_log.txt", "again"))

	lines, err := j.Read(ctx, "system_log.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-10-18 09:00:00 : System updated successfully",
		"2026-10-18 09:00:00 : again",
	}, lines)
	assert.FileExists(t, filepath.Join(dir, "system_log.txt"))

	_, err = j.Read(ctx, "missing.txt")
	assert.ErrorIs(t, err, journal.ErrNotFound)
}

func TestFileJournalMove(t *testing.T) {
	j, dir := newFileJournal(t)
	ctx := context.Background()
	require.NoError(t, j.Append(ctx, "station_log.txt", "booked"))
	require.NoError(t, j.Move(ctx, "station_log.txt", "old/station_log.txt"))

	assert.NoFileExists(t, filepath.Join(dir, "station_log.txt"))
	lines, err := j.Read(ctx, "old/station_log.txt")
	require.NoError(t, err)
	assert.Len(t, lines, 1)

	// appending after a move starts a new file
	require.NoError(t, j.Append(ctx, "station_log.txt", "next"))
	lines, err = j.Read(ctx, "station_log.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-10-18 09:00:00 : next"}, lines)

	assert.ErrorIs(t, j.Move(ctx, "nope.txt", "x.txt"), journal.ErrNotFound)
}

func TestFileJournalMoveOntoOpenLog(t *testing.T) {
	j, _ := newFileJournal(t)
	ctx := context.Background()
	require.NoError(t, j.Append(ctx, "energy_log.txt", "stale"))
	require.NoError(t, j.Append(ctx, "station_log.txt", "booked"))

	require.NoError(t, j.Move(ctx, "station_log.txt", "energy_log.txt"))
	require.NoError(t, j.Append(ctx, "energy_log.txt", "after move"))

	lines, err := j.Read(ctx, "energy_log.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2026-10-18 09:00:00 : booked",
		"2026-10-18 09:00:00 : after move",
	}, lines)
}

func TestFileJournalArchiveAndDelete(t *testing.T) {
	j, dir := newFileJournal(t)
	ctx := context.Background()
	require.NoError(t, j.Append(ctx, "energy_log.txt", "Solar"))
	require.NoError(t, j.Archive(ctx, "energy_log.txt"))
	assert.FileExists(t, filepath.Join(dir, "archive", "energy_log.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "energy_log.txt"))

	require.NoError(t, j.Append(ctx, "station_log.txt", "booked"))
	backup := filepath.Join(dir, "station_log-2026-10-18T09-00-00.000.txt")
	require.NoError(t, os.WriteFile(backup, []byte("old\n"), 0o644))
	require.NoError(t, j.Delete(ctx, "station_log.txt"))
	assert.FileExists(t, filepath.Join(dir, "archive", "station_log.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "station_log.txt"))
	assert.NoFileExists(t, backup)

	assert.ErrorIs(t, j.Delete(ctx, "station_log.txt"), journal.ErrNotFound)
}

func TestFileJournalFactory(t *testing.T) {
	dir := t.TempDir()
	m, err := journal.NewManager(factory.ModuleConfig{Type: "file", Conf: map[string]any{"dir": dir, "max_size_mb": "5"}})
	require.NoError(t, err)
	defer func() { _ = m.Close() }()
	fj, ok := m.(*FileJournal)
	require.True(t, ok)
	assert.Equal(t, 5, fj.cfg.MaxSizeMB)
	assert.Equal(t, "archive", fj.cfg.ArchiveDir)
}
