package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// RecordRepo is a small key/value table holding serialized records.
type RecordRepo struct {
	db DBTX
}

func NewRecordRepo(db DBTX) *RecordRepo {
	return &RecordRepo{db: db}
}

// Get returns nil, nil when the key is absent.
func (r *RecordRepo) Get(ctx context.Context, key string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, `SELECT key, value, updated_at FROM records WHERE key = ?`, key)
	var (
		rec       Record
		value     string
		updatedAt sql.NullTime
	)
	if err := row.Scan(&rec.Key, &value, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("record get: %w", err)
	}
	rec.Value = []byte(value)
	if updatedAt.Valid {
		rec.UpdatedAt = updatedAt.Time
	}
	return &rec, nil
}

func (r *RecordRepo) Put(ctx context.Context, key string, value []byte, updatedAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), updatedAt.UTC())
	if err != nil {
		return fmt.Errorf("record put: %w", err)
	}
	return nil
}

// Delete removes key. It reports whether a row existed.
func (r *RecordRepo) Delete(ctx context.Context, key string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key)
	if err != nil {
		return false, fmt.Errorf("record delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("record delete rows: %w", err)
	}
	return n > 0, nil
}
