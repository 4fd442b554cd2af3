package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Syfaro/ZebraRfid/pkg/rfid"
)

// ErrNotInitialized is returned by a Store whose database was closed.
var ErrNotInitialized = errors.New("persistence: store not initialized")

// timeLayout is fixed width so text comparison orders timestamps.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store wraps the journal database. Methods may be called concurrently
// with each other and with Close.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Read is one journaled tag read.
type Read struct {
	ID         int64
	ReaderID   int32
	EPC        string
	PC         string
	RSSI       int16
	Channel    int16
	SeenCount  int16
	MemoryBank string
	Data       string
	ReceivedAt time.Time
}

// Access is one journaled access operation.
type Access struct {
	ID         int64
	ReaderID   int32
	Operation  string
	EPC        string
	OpCode     string
	Succeeded  bool
	Status     string
	Error      string
	Data       string
	RecordedAt time.Time
}

// TagSummary aggregates the reads of one EPC.
type TagSummary struct {
	EPC       string
	Reads     int64
	MaxRSSI   int16
	FirstSeen time.Time
	LastSeen  time.Time
	Readers   int64
}

// Open opens or creates the database at path, creating directories as
// needed. Call InitSchema before use.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	return &Store{db: db}, nil
}

// Close releases the database handle. Safe to call multiple times.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// InitSchema creates the journal tables if they do not exist.
func (s *Store) InitSchema(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrNotInitialized
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tag_reads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reader_id INTEGER NOT NULL,
			epc TEXT NOT NULL,
			pc TEXT,
			rssi INTEGER NOT NULL,
			channel INTEGER,
			seen_count INTEGER,
			memory_bank TEXT,
			data TEXT,
			received_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tag_reads_epc ON tag_reads(epc, received_at);`,
		`CREATE INDEX IF NOT EXISTS idx_tag_reads_time ON tag_reads(received_at);`,
		`CREATE TABLE IF NOT EXISTS access_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reader_id INTEGER NOT NULL,
			operation TEXT NOT NULL,
			epc TEXT NOT NULL,
			op_code TEXT,
			succeeded INTEGER NOT NULL,
			status TEXT,
			error TEXT,
			data TEXT,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_access_results_epc ON access_results(epc);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// RecordRead stores one tag read.
func (s *Store) RecordRead(ctx context.Context, readerID int32, tag rfid.TagData, receivedAt time.Time) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrNotInitialized
	}
	if receivedAt.IsZero() {
		receivedAt = time.Now()
	}

	var bank string
	if tag.MemoryBank != nil {
		bank = tag.MemoryBank.String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tag_reads (reader_id, epc, pc, rssi, channel, seen_count, memory_bank, data, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		readerID, tag.EPC, tag.PC, tag.PeakRSSI, tag.Channel, tag.SeenCount,
		bank, tag.MemoryBankData, formatTime(receivedAt),
	)
	if err != nil {
		return fmt.Errorf("insert tag read: %w", err)
	}
	return nil
}

// RecordAccess stores the outcome of an access operation. opErr is the
// error the Manager returned, if any; tag may be the zero value when the
// call failed. An *rfid.OperationError supplies the operation and status
// the zero tag lacks.
func (s *Store) RecordAccess(ctx context.Context, readerID int32, op, epc string, tag rfid.TagData, opErr error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return ErrNotInitialized
	}
	if tag.EPC != "" {
		epc = tag.EPC
	}

	var tagErr *rfid.OperationError
	if errors.As(opErr, &tagErr) && tag.Operation == nil {
		named := tagErr.Operation
		tag.Operation = &named
		tag.OperationStatus = tagErr.Status
	}

	var opCode, errText string
	if tag.Operation != nil {
		opCode = tag.Operation.Code.String()
	}
	if opErr != nil {
		errText = opErr.Error()
	}
	succeeded := opErr == nil && !tag.OperationFailed()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO access_results (reader_id, operation, epc, op_code, succeeded, status, error, data, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		readerID, op, epc, opCode, succeeded, tag.OperationStatus, errText, tag.MemoryBankData,
		formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("insert access result: %w", err)
	}
	return nil
}

// RecentReads returns up to limit reads, newest first.
func (s *Store) RecentReads(ctx context.Context, limit int) ([]Read, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reader_id, epc, COALESCE(pc, ''), rssi, COALESCE(channel, 0),
		       COALESCE(seen_count, 0), COALESCE(memory_bank, ''), COALESCE(data, ''), received_at
		FROM tag_reads
		ORDER BY received_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query reads: %w", err)
	}
	defer rows.Close()

	var out []Read
	for rows.Next() {
		var r Read
		var at string
		if err := rows.Scan(&r.ID, &r.ReaderID, &r.EPC, &r.PC, &r.RSSI, &r.Channel,
			&r.SeenCount, &r.MemoryBank, &r.Data, &at); err != nil {
			return nil, fmt.Errorf("scan read: %w", err)
		}
		if r.ReceivedAt, err = parseTime(at); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// AccessResults returns up to limit access results for epc, newest first.
// An empty epc returns results for every tag.
func (s *Store) AccessResults(ctx context.Context, epc string, limit int) ([]Access, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrNotInitialized
	}
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, reader_id, operation, epc, COALESCE(op_code, ''), succeeded, COALESCE(status, ''),
		       COALESCE(error, ''), COALESCE(data, ''), recorded_at
		FROM access_results
		WHERE ? = '' OR epc = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?`, epc, epc, limit)
	if err != nil {
		return nil, fmt.Errorf("query access results: %w", err)
	}
	defer rows.Close()

	var out []Access
	for rows.Next() {
		var a Access
		var at string
		if err := rows.Scan(&a.ID, &a.ReaderID, &a.Operation, &a.EPC, &a.OpCode, &a.Succeeded,
			&a.Status, &a.Error, &a.Data, &at); err != nil {
			return nil, fmt.Errorf("scan access result: %w", err)
		}
		if a.RecordedAt, err = parseTime(at); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// TagSummaries aggregates reads per EPC, most recently seen first.
func (s *Store) TagSummaries(ctx context.Context) ([]TagSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, ErrNotInitialized
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT epc, COUNT(*), MAX(rssi), MIN(received_at), MAX(received_at), COUNT(DISTINCT reader_id)
		FROM tag_reads
		GROUP BY epc
		ORDER BY MAX(received_at) DESC, epc`)
	if err != nil {
		return nil, fmt.Errorf("query tag summaries: %w", err)
	}
	defer rows.Close()

	var out []TagSummary
	for rows.Next() {
		var t TagSummary
		var first, last string
		if err := rows.Scan(&t.EPC, &t.Reads, &t.MaxRSSI, &first, &last, &t.Readers); err != nil {
			return nil, fmt.Errorf("scan tag summary: %w", err)
		}
		if t.FirstSeen, err = parseTime(first); err != nil {
			return nil, err
		}
		if t.LastSeen, err = parseTime(last); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// PruneReads deletes reads received before cutoff and returns the count.
func (s *Store) PruneReads(ctx context.Context, cutoff time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return 0, ErrNotInitialized
	}
	res, err := s.db.ExecContext(ctx, `DELETE FROM tag_reads WHERE received_at < ?`, formatTime(cutoff))
	if err != nil {
		return 0, fmt.Errorf("prune reads: %w", err)
	}
	return res.RowsAffected()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}
