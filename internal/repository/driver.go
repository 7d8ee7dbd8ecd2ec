package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
)

// DriverRepo represents driver repository.
type DriverRepo struct{ db *pgxpool.Pool }

// NewDriverRepo creates a new DriverRepo.
func NewDriverRepo(db *pgxpool.Pool) *DriverRepo { return &DriverRepo{db: db} }

// Get - returns driver by its ID.
func (r *DriverRepo) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	var d domain.Driver
	err := r.db.QueryRow(ctx,
		`SELECT id, name, phone, is_active, is_driver, is_driving FROM drivers WHERE id=$1`, id,
	).Scan(&d.ID, &d.Name, &d.Phone, &d.IsActive, &d.IsDriver, &d.IsDriving)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get driver %d: %w", id, err)
	}
	return &d, nil
}

// Create - creates a new driver.
func (r *DriverRepo) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	err := r.db.QueryRow(ctx, `
        INSERT INTO drivers(name, phone, is_active, is_driver, is_driving)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `, d.Name, d.Phone, d.IsActive, d.IsDriver, d.IsDriving).Scan(&d.ID)
	if err != nil {
		if IsDuplicate(err) {
			return 0, apperr.ErrConflict
		}
		return 0, fmt.Errorf("create driver: %w", err)
	}
	return d.ID, nil
}

// SetDriving - sets is_driving and returns true if the driver exists.
func (r *DriverRepo) SetDriving(ctx context.Context, id int64, driving bool) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE drivers
        SET is_driving = $2, updated_at = now()
        WHERE id = $1
    `, id, driving)
	if err != nil {
		return false, fmt.Errorf("set driving %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}
