package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kilianp07/chargeslot/core/journal"
)

// SQLiteJournal keeps journal lines in a SQLite database. Archived lines
// stay in the table but are no longer returned by Read.
type SQLiteJournal struct {
	db      *sql.DB
	session string
	now     func() time.Time
}

// NewSQLiteJournal opens or creates the database at path and ensures schema.
// Every line appended through the returned journal carries session, or a
// fresh id when session is empty.
func NewSQLiteJournal(path, session string) (*SQLiteJournal, error) {
	if session == "" {
		session = uuid.NewString()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS journal_lines (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        session TEXT NOT NULL,
        log_name TEXT NOT NULL,
        ts INTEGER NOT NULL,
        message TEXT NOT NULL,
        archived INTEGER NOT NULL DEFAULT 0
    );
    CREATE INDEX IF NOT EXISTS journal_lines_log ON journal_lines(log_name, archived);`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteJournal{db: db, session: session, now: time.Now}, nil
}

// Session returns the id stamped on lines appended by this journal.
func (j *SQLiteJournal) Session() string { return j.session }

func (j *SQLiteJournal) Append(ctx context.Context, name, message string) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO journal_lines (session, log_name, ts, message) VALUES (?, ?, ?, ?)`,
		j.session, name, j.now().UnixNano(), message)
	return err
}

// Read returns the live lines of name formatted like the file journal.
func (j *SQLiteJournal) Read(ctx context.Context, name string) ([]string, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT ts, message FROM journal_lines WHERE log_name = ? AND archived = 0 ORDER BY id`, name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var lines []string
	for rows.Next() {
		var (
			ts  int64
			msg string
		)
		if err := rows.Scan(&ts, &msg); err != nil {
			return nil, err
		}
		lines = append(lines, journal.Line(time.Unix(0, ts), msg))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if lines == nil {
		return nil, fmt.Errorf("%w: %s", journal.ErrNotFound, name)
	}
	return lines, nil
}

// Move renames the live lines of src to dst, replacing the live lines of dst.
func (j *SQLiteJournal) Move(ctx context.Context, src, dst string) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()
	if _, err := tx.ExecContext(ctx, `DELETE FROM journal_lines WHERE log_name = ? AND archived = 0`, dst); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE journal_lines SET log_name = ? WHERE log_name = ? AND archived = 0`, dst, src)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", journal.ErrNotFound, src)
	}
	return tx.Commit()
}

// Archive marks the live lines of name as archived.
func (j *SQLiteJournal) Archive(ctx context.Context, name string) error {
	res, err := j.db.ExecContext(ctx, `UPDATE journal_lines SET archived = 1 WHERE log_name = ? AND archived = 0`, name)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", journal.ErrNotFound, name)
	}
	return nil
}

// Delete archives the named log; archived lines are never dropped.
func (j *SQLiteJournal) Delete(ctx context.Context, name string) error {
	return j.Archive(ctx, name)
}

func (j *SQLiteJournal) Close() error { return j.db.Close() }
