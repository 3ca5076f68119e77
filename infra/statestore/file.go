package statestore

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kilianp07/chargeslot/core/state"
)

// DefaultPath is the historical location of the station state file.
const DefaultPath = "station_state.text"

// FileStore keeps the station state in a text file. Save truncates and
// rewrites the file in place; a crash mid-write can leave it truncated.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(_ context.Context, snap state.Snapshot) error {
	var buf bytes.Buffer
	if err := state.Encode(&buf, snap); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, buf.Bytes(), 0o644)
}

func (s *FileStore) Load(_ context.Context) (state.Snapshot, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return state.Snapshot{}, state.ErrNoState
	}
	if err != nil {
		return state.Snapshot{}, err
	}
	defer func() { _ = f.Close() }()
	return state.Decode(f)
}
