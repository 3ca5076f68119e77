package journal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kilianp07/chargeslot/core/journal"
)

// FileConfig configures a FileJournal.
type FileConfig struct {
	// Dir is the directory relative log names resolve against.
	Dir string `json:"dir"`
	// ArchiveDir receives archived logs. Relative paths resolve against Dir.
	ArchiveDir string `json:"archive_dir"`
	// MaxSizeMB triggers rotation when a log exceeds this size in megabytes.
	MaxSizeMB int `json:"max_size_mb"`
	// MaxBackups limits the number of rotated files to keep.
	MaxBackups int `json:"max_backups"`
	// MaxAgeDays removes rotated files older than this number of days.
	MaxAgeDays int  `json:"max_age_days"`
	Compress   bool `json:"compress"`
}

// SetDefaults applies sane defaults.
func (c *FileConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "."
	}
	if c.ArchiveDir == "" {
		c.ArchiveDir = "archive"
	}
	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = 10
	}
}

// FileJournal appends journal lines to plain text files, one per log name,
// rotated by lumberjack.
type FileJournal struct {
	cfg     FileConfig
	mu      sync.Mutex
	writers map[string]*lumberjack.Logger
	now     func() time.Time
}

// NewFileJournal creates the journal directory if needed.
func NewFileJournal(cfg FileConfig) (*FileJournal, error) {
	cfg.SetDefaults()
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal dir: %w", err)
	}
	return &FileJournal{cfg: cfg, writers: map[string]*lumberjack.Logger{}, now: time.Now}, nil
}

func (j *FileJournal) path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(j.cfg.Dir, name)
}

func (j *FileJournal) archiveDir() string {
	if filepath.IsAbs(j.cfg.ArchiveDir) {
		return j.cfg.ArchiveDir
	}
	return filepath.Join(j.cfg.Dir, j.cfg.ArchiveDir)
}

// Append writes "<timestamp> : <message>" to the named log.
func (j *FileJournal) Append(_ context.Context, name, message string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	w, ok := j.writers[name]
	if !ok {
		p := j.path(name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		w = &lumberjack.Logger{
			Filename:   p,
			MaxSize:    j.cfg.MaxSizeMB,
			MaxBackups: j.cfg.MaxBackups,
			MaxAge:     j.cfg.MaxAgeDays,
			Compress:   j.cfg.Compress,
		}
		j.writers[name] = w
	}
	_, err := fmt.Fprintln(w, journal.Line(j.now(), message))
	return err
}

// Read returns the lines of the named log.
func (j *FileJournal) Read(_ context.Context, name string) ([]string, error) {
	f, err := os.Open(j.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", journal.ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

// Move renames src to dst, creating dst's directory and replacing an
// existing dst.
func (j *FileJournal) Move(_ context.Context, src, dst string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.move(src, j.path(dst))
}

// Archive moves the named log into the archive directory.
func (j *FileJournal) Archive(_ context.Context, name string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.move(name, filepath.Join(j.archiveDir(), filepath.Base(name)))
}

// Delete archives the named log and removes its rotated backups.
func (j *FileJournal) Delete(_ context.Context, name string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err := j.move(name, filepath.Join(j.archiveDir(), filepath.Base(name))); err != nil {
		return err
	}
	p := j.path(name)
	ext := filepath.Ext(p)
	backups, err := filepath.Glob(strings.TrimSuffix(p, ext) + "-*" + ext + "*")
	if err != nil {
		return err
	}
	var errs []error
	for _, b := range backups {
		errs = append(errs, os.Remove(b))
	}
	return errors.Join(errs...)
}

// move closes the writers of name and of any log already open at dst before
// renaming the file, so later appends to either reopen the right inode.
func (j *FileJournal) move(name, dst string) error {
	src := j.path(name)
	if _, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", journal.ErrNotFound, name)
	}
	for open, w := range j.writers {
		if open != name && j.path(open) != dst {
			continue
		}
		if err := w.Close(); err != nil {
			return err
		}
		delete(j.writers, open)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("move %s to %s: %w", src, dst, err)
	}
	return nil
}

// Close closes every open log file.
func (j *FileJournal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	var errs []error
	for name, w := range j.writers {
		errs = append(errs, w.Close())
		delete(j.writers, name)
	}
	return errors.Join(errs...)
}
