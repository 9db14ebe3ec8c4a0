// Package store keeps a SQLite journal of solved answers so repeated runs
// against the same input can be compared.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"aoc2023/internal/logging"
	"aoc2023/internal/puzzle"
)

// MemoryPath opens a private in-memory journal.
const MemoryPath = ":memory:"

// Run is one recorded answer.
type Run struct {
	ID        string
	Day       int
	Part      puzzle.Part
	InputHash string
	Answer    puzzle.Answer
	Duration  time.Duration
	CreatedAt time.Time
}

// NewRun stamps a run with a fresh id, the input hash and the current time.
func NewRun(day int, part puzzle.Part, input string, answer puzzle.Answer, elapsed time.Duration) Run {
	return Run{
		ID:        uuid.NewString(),
		Day:       day,
		Part:      part,
		InputHash: HashInput(input),
		Answer:    answer,
		Duration:  elapsed,
		CreatedAt: time.Now().UTC(),
	}
}

// HashInput fingerprints normalised puzzle input, so CRLF and trailing
// whitespace changes do not look like a new input.
func HashInput(input string) string {
	sum := sha256.Sum256([]byte(puzzle.Normalize(input)))
	return hex.EncodeToString(sum[:])
}

// Journal is the SQLite-backed answer history.
type Journal struct {
	db     *sql.DB
	dbPath string
}

// Open initializes the SQLite database at the given path.
func Open(path string) (*Journal, error) {
	timer := logging.StartTimer(logging.CategoryStore, "store.Open")
	defer timer.Stop()

	if path != MemoryPath {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps :memory: databases alive and serialises writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		logging.StoreDebug("Failed to set sqlite busy_timeout: %v", err)
	}

	j := &Journal{db: db, dbPath: path}
	if err := j.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	logging.StoreDebug("Opened answer journal at %s", path)
	return j, nil
}

// initialize creates the required tables.
func (j *Journal) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		day INTEGER NOT NULL,
		part INTEGER NOT NULL,
		input_hash TEXT NOT NULL,
		answer INTEGER NOT NULL,
		duration_ns INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_runs_lookup ON runs(day, part, input_hash, created_at);
	`
	if _, err := j.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}
	return nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Path returns the database location.
func (j *Journal) Path() string {
	return j.dbPath
}

// Record appends a run. Answers are stored as signed 64-bit integers.
func (j *Journal) Record(ctx context.Context, r Run) error {
	if r.ID == "" {
		return fmt.Errorf("run id required")
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO runs (id, day, part, input_hash, answer, duration_ns, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Day, int(r.Part), r.InputHash, int64(r.Answer), r.Duration.Nanoseconds(), r.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	logging.StoreDebug("Recorded run %s: day %d part %d = %d", r.ID, r.Day, r.Part, r.Answer)
	return nil
}

// LastAnswer returns the most recent answer recorded for the same day, part
// and input. The boolean is false when nothing was recorded yet.
func (j *Journal) LastAnswer(ctx context.Context, day int, part puzzle.Part, inputHash string) (puzzle.Answer, bool, error) {
	var answer int64
	err := j.db.QueryRowContext(ctx,
		`SELECT answer FROM runs WHERE day = ? AND part = ? AND input_hash = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT 1`,
		day, int(part), inputHash).Scan(&answer)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query last answer: %w", err)
	}
	return puzzle.Answer(answer), true, nil
}

// History lists runs newest first. day 0 lists every day; limit <= 0 means no limit.
func (j *Journal) History(ctx context.Context, day int, limit int) ([]Run, error) {
	query := `SELECT id, day, part, input_hash, answer, duration_ns, created_at FROM runs`
	var args []interface{}
	if day > 0 {
		query += ` WHERE day = ?`
		args = append(args, day)
	}
	query += ` ORDER BY created_at DESC, rowid DESC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r                   Run
			part                int
			answer, dur, create int64
		)
		if err := rows.Scan(&r.ID, &r.Day, &part, &r.InputHash, &answer, &dur, &create); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Part = puzzle.Part(part)
		r.Answer = puzzle.Answer(answer)
		r.Duration = time.Duration(dur)
		r.CreatedAt = time.Unix(0, create).UTC()
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
