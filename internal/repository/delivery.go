package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/ports/deliverytx"
)

// DeliveryRepo represents delivery repository.
type DeliveryRepo struct {
	db *pgxpool.Pool
}

// NewDeliveryRepo creates a new DeliveryRepo.
func NewDeliveryRepo(db *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{db: db}
}

// WithTx opens a transaction and executes fn within it.
func (r *DeliveryRepo) WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// GetByOrderID - returns the latest delivery recorded for the order, or nil.
func (r *DeliveryRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Delivery, error) {
	return getLatestDelivery(ctx, r.db.QueryRow(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE order_id = $1
        ORDER BY id DESC
        LIMIT 1
    `, orderID), orderID)
}

// TxRepo represents transaction repository.
type TxRepo struct {
	tx pgx.Tx
}

var _ deliverytx.Repository = (*TxRepo)(nil)

const deliveryColumns = `id, driver_id, zone_id, order_id, status, address, phone,
        latitude, longitude, scheduled_at, created_at`

func activeStatuses() []string {
	out := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}

func getLatestDelivery(ctx context.Context, row pgx.Row, orderID string) (*domain.Delivery, error) {
	var d domain.Delivery
	err := row.Scan(&d.ID, &d.DriverID, &d.ZoneID, &d.OrderID, &d.Status, &d.Address, &d.Phone,
		&d.Latitude, &d.Longitude, &d.ScheduledAt, &d.CreatedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by order %q: %w", orderID, err)
	}
	return &d, nil
}

// ListActiveZonesWithCenter - returns the zones eligible for matching.
func (r *TxRepo) ListActiveZonesWithCenter(ctx context.Context) ([]domain.Zone, error) {
	return listActiveZones(ctx, r.tx)
}

// ListEligibleDriversForUpdate - returns the zone links of active, driving drivers and
// locks those driver rows, in id order, until the transaction ends.
func (r *TxRepo) ListEligibleDriversForUpdate(ctx context.Context, zoneID int64) ([]domain.UserZone, error) {
	rows, err := r.tx.Query(ctx, `
        SELECT uz.id, uz.user_id, uz.zone_id, uz.priority
        FROM user_zones uz
        JOIN drivers d ON d.id = uz.user_id
        WHERE uz.zone_id = $1
          AND d.is_active AND d.is_driver AND d.is_driving
        ORDER BY d.id
        FOR UPDATE OF d
    `, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list eligible drivers of zone %d: %w", zoneID, err)
	}
	defer rows.Close()

	out := make([]domain.UserZone, 0)
	for rows.Next() {
		var uz domain.UserZone
		if err := rows.Scan(&uz.ID, &uz.UserID, &uz.ZoneID, &uz.Priority); err != nil {
			return nil, err
		}
		out = append(out, uz)
	}
	return out, rows.Err()
}

// CountActiveDeliveries - number of assigned or in-progress deliveries of a driver.
func (r *TxRepo) CountActiveDeliveries(ctx context.Context, driverID int64) (int, error) {
	var n int64
	err := r.tx.QueryRow(ctx, `
        SELECT COUNT(*) FROM deliveries WHERE driver_id = $1 AND status = ANY($2)
    `, driverID, activeStatuses()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count deliveries of driver %d: %w", driverID, err)
	}
	return int(n), nil
}

// GetByOrderIDForUpdate - returns and locks the latest delivery of the order, or nil.
func (r *TxRepo) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*domain.Delivery, error) {
	return getLatestDelivery(ctx, r.tx.QueryRow(ctx, `
        SELECT `+deliveryColumns+`
        FROM deliveries
        WHERE order_id = $1
        ORDER BY id DESC
        LIMIT 1
        FOR UPDATE
    `, orderID), orderID)
}

// InsertDelivery - insert a new delivery. A second active delivery for the same order is a conflict.
func (r *TxRepo) InsertDelivery(ctx context.Context, d *domain.Delivery) error {
	err := r.tx.QueryRow(ctx, `
        INSERT INTO deliveries (driver_id, zone_id, order_id, status, address, phone,
                                latitude, longitude, scheduled_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `, d.DriverID, d.ZoneID, d.OrderID, string(d.Status), d.Address, d.Phone,
		d.Latitude, d.Longitude, d.ScheduledAt, d.CreatedAt).Scan(&d.ID)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// UpdateDeliveryStatus - update delivery status.
func (r *TxRepo) UpdateDeliveryStatus(ctx context.Context, id int64, status domain.DeliveryStatus) error {
	ct, err := r.tx.Exec(ctx, `
        UPDATE deliveries
        SET status = $2, updated_at = now()
        WHERE id = $1
    `, id, string(status))
	if err != nil {
		return fmt.Errorf("update delivery status %d: %w", id, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("delivery %d: %w", id, apperr.ErrNotFound)
	}
	return nil
}
