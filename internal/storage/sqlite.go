//go:build sqlite

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"neurograph/internal/model"

	_ "modernc.org/sqlite"
)

type SQLiteRecorder struct {
	path string

	mu sync.RWMutex
	db *sql.DB
}

func NewSQLiteRecorder(path string) *SQLiteRecorder {
	return &SQLiteRecorder{path: path}
}

func newSQLiteRecorder(path string) (Recorder, error) {
	return NewSQLiteRecorder(path), nil
}

func (r *SQLiteRecorder) Init(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.path == "" {
		return errors.New("sqlite path is required")
	}
	if r.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return err
	}
	// ":memory:" databases are per connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return err
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	r.db = db
	return nil
}

func (r *SQLiteRecorder) SaveFrame(ctx context.Context, frame model.Frame) error {
	db, err := r.getDB()
	if err != nil {
		return err
	}

	payload, err := EncodeFrame(frame)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO frames (session_id, frame_index, clock, schema_version, codec_version, payload)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id, frame_index) DO UPDATE SET
			clock = excluded.clock,
			schema_version = excluded.schema_version,
			codec_version = excluded.codec_version,
			payload = excluded.payload
	`, frame.SessionID, frame.Index, frame.Clock, frame.SchemaVersion, frame.CodecVersion, payload)
	return err
}

func (r *SQLiteRecorder) GetFrame(ctx context.Context, sessionID string, index int) (model.Frame, bool, error) {
	db, err := r.getDB()
	if err != nil {
		return model.Frame{}, false, err
	}

	var payload []byte
	err = db.QueryRowContext(ctx, `SELECT payload FROM frames WHERE session_id = ? AND frame_index = ?`, sessionID, index).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Frame{}, false, nil
		}
		return model.Frame{}, false, err
	}

	frame, err := DecodeFrame(payload)
	if err != nil {
		return model.Frame{}, false, fmt.Errorf("decode frame %s/%d: %w", sessionID, index, err)
	}
	return frame, true, nil
}

func (r *SQLiteRecorder) ListFrames(ctx context.Context, sessionID string) ([]model.Frame, error) {
	db, err := r.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT frame_index, payload FROM frames WHERE session_id = ? ORDER BY frame_index`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	frames := make([]model.Frame, 0)
	for rows.Next() {
		var (
			index   int
			payload []byte
		)
		if err := rows.Scan(&index, &payload); err != nil {
			return nil, err
		}
		frame, err := DecodeFrame(payload)
		if err != nil {
			return nil, fmt.Errorf("decode frame %s/%d: %w", sessionID, index, err)
		}
		frames = append(frames, frame)
	}
	return frames, rows.Err()
}

func (r *SQLiteRecorder) Sessions(ctx context.Context) ([]string, error) {
	db, err := r.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT DISTINCT session_id FROM frames ORDER BY session_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *SQLiteRecorder) DeleteSession(ctx context.Context, sessionID string) error {
	db, err := r.getDB()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `DELETE FROM frames WHERE session_id = ?`, sessionID)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	return err
}

func (r *SQLiteRecorder) getDB() (*sql.DB, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return nil, ErrNotInitialized
	}
	return r.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS frames (
			session_id TEXT NOT NULL,
			frame_index INTEGER NOT NULL,
			clock REAL NOT NULL,
			schema_version INTEGER NOT NULL,
			codec_version INTEGER NOT NULL,
			payload BLOB NOT NULL,
			PRIMARY KEY (session_id, frame_index)
		);
	`)
	return err
}
