package sqlite

import (
	"context"
	"database/sql"

	"github.com/enesy/bookmarker"
)

var _ bookmarker.PreferenceService = (*PreferenceService)(nil)

// PreferenceService implements bookmarker.PreferenceService using SQLite.
type PreferenceService struct {
	db *DB
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(db *DB) *PreferenceService {
	return &PreferenceService{db: db}
}

// GetPreference returns the value for key, or def when unset.
func (s *PreferenceService) GetPreference(ctx context.Context, key, def string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetPreference stores the value for key, replacing any prior value.
func (s *PreferenceService) SetPreference(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}
