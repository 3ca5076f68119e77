// Package journal defines the append-only narrative logs kept next to the
// station: one human-readable line per booking, promotion or energy choice.
package journal

import (
	"context"
	"errors"
	"sync"
	"time"
)

// TimeLayout is the timestamp format used in journal lines and notices.
const TimeLayout = "2006-01-02 15:04:05"

// ErrNotFound is returned when a named log does not exist.
var ErrNotFound = errors.New("log not found")

// Journal appends timestamped messages to named logs.
type Journal interface {
	Append(ctx context.Context, name, message string) error
}

// Manager extends Journal with the maintenance operations used by the CLI.
type Manager interface {
	Journal
	Read(ctx context.Context, name string) ([]string, error)
	Move(ctx context.Context, src, dst string) error
	Archive(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	Close() error
}

// Names maps each narrative to its log.
type Names struct {
	System  string `json:"system"`
	Station string `json:"station"`
	Energy  string `json:"energy"`
}

// SetDefaults applies the historical file names.
func (n *Names) SetDefaults() {
	if n.System == "" {
		n.System = "system_log.txt"
	}
	if n.Station == "" {
		n.Station = "station_log.txt"
	}
	if n.Energy == "" {
		n.Energy = "energy_log.txt"
	}
}

// Line formats a journal line.
func Line(at time.Time, message string) string {
	return at.Format(TimeLayout) + " : " + message
}

// Nop discards every message.
type Nop struct{}

func (Nop) Append(context.Context, string, string) error { return nil }

// Memory keeps raw messages per log, mostly for tests.
type Memory struct {
	mu   sync.Mutex
	logs map[string][]string
}

func NewMemory() *Memory { return &Memory{logs: map[string][]string{}} }

func (m *Memory) Append(_ context.Context, name, message string) error {
	m.mu.Lock()
	if m.logs == nil {
		m.logs = map[string][]string{}
	}
	m.logs[name] = append(m.logs[name], message)
	m.mu.Unlock()
	return nil
}

// Messages returns a copy of the messages appended to name.
func (m *Memory) Messages(name string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.logs[name]...)
}
