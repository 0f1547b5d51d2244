package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/db"
	"github.com/alexanderramin/pathwise/internal/domain"
)

// SQLiteSettingRepo implements SettingRepo using a SQLite database.
type SQLiteSettingRepo struct {
	db db.DBTX
}

// NewSQLiteSettingRepo creates a new SQLiteSettingRepo.
func NewSQLiteSettingRepo(conn db.DBTX) *SQLiteSettingRepo {
	return &SQLiteSettingRepo{db: conn}
}

func (r *SQLiteSettingRepo) Get(ctx context.Context, key string) (*domain.Setting, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = ?`, key)

	var s domain.Setting
	var updatedAt string
	if err := row.Scan(&s.Key, &s.Value, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("setting %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning setting %q: %w", key, err)
	}
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func (r *SQLiteSettingRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting setting %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteSettingRepo) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM settings WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting setting %q: %w", key, err)
	}
	return nil
}
