package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SnapshotRepo stores whole JSON records by key in SQLite.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*Snapshot, error) {
	var (
		s    Snapshot
		data string
	)
	if err := row.Scan(&s.Key, &data, &s.Revision, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot scan: %w", err)
	}
	s.Data = []byte(data)
	return &s, nil
}

// GetSnapshot returns the row for key, or nil when absent.
func (r *SnapshotRepo) GetSnapshot(ctx context.Context, key string) (*Snapshot, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, data, revision, updated_at FROM snapshots WHERE key = ?`, key)
	s, err := scanSnapshot(row)
	if err != nil {
		return nil, fmt.Errorf("snapshot get: %w", err)
	}
	return s, nil
}

// Get returns the stored bytes for key, or nil when absent.
func (r *SnapshotRepo) Get(ctx context.Context, key string) ([]byte, error) {
	s, err := r.GetSnapshot(ctx, key)
	if err != nil || s == nil {
		return nil, err
	}
	return s.Data, nil
}

// Put replaces the record for key and bumps its revision.
func (r *SnapshotRepo) Put(ctx context.Context, key string, data []byte) error {
	now := time.Now().UTC()
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO snapshots (key, data, revision, updated_at) VALUES (?, ?, 1, ?)
			ON CONFLICT(key) DO UPDATE SET
				data = excluded.data,
				revision = snapshots.revision + 1,
				updated_at = excluded.updated_at
		`, key, string(data), now)
		if err != nil {
			return fmt.Errorf("snapshot put: %w", err)
		}
		return nil
	})
}

// Delete removes key. Deleting a missing key is not an error.
func (r *SnapshotRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("snapshot delete: %w", err)
	}
	return nil
}
