package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConfigRepo reads key/value rows from the configurations table.
type ConfigRepo struct{ db *pgxpool.Pool }

// NewConfigRepo creates a new ConfigRepo.
func NewConfigRepo(db *pgxpool.Pool) *ConfigRepo { return &ConfigRepo{db: db} }

// GetActive returns the raw JSON value of the active row named name.
// The bool is false when no such row exists.
func (r *ConfigRepo) GetActive(ctx context.Context, name string) ([]byte, bool, error) {
	var raw []byte
	err := r.db.QueryRow(ctx, `
        SELECT value::text FROM configurations
        WHERE name = $1 AND is_active
        ORDER BY id DESC
        LIMIT 1
    `, name).Scan(&raw)
	if err != nil {
		if IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get configuration %q: %w", name, err)
	}
	return raw, true, nil
}

// Put deactivates the current row named name and stores value as the active one.
func (r *ConfigRepo) Put(ctx context.Context, name string, value []byte) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`UPDATE configurations SET is_active = FALSE, updated_at = now() WHERE name = $1 AND is_active`, name); err != nil {
		return fmt.Errorf("deactivate configuration %q: %w", name, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO configurations(name, value, is_active) VALUES ($1, $2::jsonb, TRUE)`, name, string(value)); err != nil {
		return fmt.Errorf("store configuration %q: %w", name, err)
	}
	return tx.Commit(ctx)
}
