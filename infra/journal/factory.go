package journal

import (
	"github.com/kilianp07/chargeslot/core/factory"
	"github.com/kilianp07/chargeslot/core/journal"
)

// init registers the built-in journal backends.
func init() {
	_ = journal.RegisterBackend("file", func(conf map[string]any) (journal.Manager, error) {
		var c FileConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewFileJournal(c)
	})

	_ = journal.RegisterBackend("sqlite", func(conf map[string]any) (journal.Manager, error) {
		var c struct {
			Path    string `json:"path"`
			Session string `json:"session"`
		}
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		if c.Path == "" {
			c.Path = "journal.db"
		}
		return NewSQLiteJournal(c.Path, c.Session)
	})
}

var (
	_ journal.Manager = (*FileJournal)(nil)
	_ journal.Manager = (*SQLiteJournal)(nil)
)
