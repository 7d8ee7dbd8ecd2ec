package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
)

const zoneColumns = `id, name, path, description, center_lat, center_lng, radius_km, active`

// ZoneRepo represents zone repository.
type ZoneRepo struct{ db *pgxpool.Pool }

// NewZoneRepo creates a new ZoneRepo.
func NewZoneRepo(db *pgxpool.Pool) *ZoneRepo { return &ZoneRepo{db: db} }

func scanZone(row pgx.Row, z *domain.Zone) error {
	return row.Scan(&z.ID, &z.Name, &z.Path, &z.Description, &z.CenterLat, &z.CenterLng, &z.RadiusKm, &z.Active)
}

func collectZones(rows pgx.Rows, capacity int) ([]domain.Zone, error) {
	defer rows.Close()
	out := make([]domain.Zone, 0, capacity)
	for rows.Next() {
		var z domain.Zone
		if err := scanZone(rows, &z); err != nil {
			return nil, err
		}
		out = append(out, z)
	}
	return out, rows.Err()
}

// listActiveZones returns the zones that can take part in matching, ordered by id.
func listActiveZones(ctx context.Context, q querier) ([]domain.Zone, error) {
	rows, err := q.Query(ctx, `
        SELECT `+zoneColumns+`
        FROM zones
        WHERE active AND center_lat IS NOT NULL AND center_lng IS NOT NULL
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("list active zones: %w", err)
	}
	return collectZones(rows, 0)
}

// Get - returns zone by its ID.
func (r *ZoneRepo) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	var z domain.Zone
	err := scanZone(r.db.QueryRow(ctx, `SELECT `+zoneColumns+` FROM zones WHERE id=$1`, id), &z)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get zone %d: %w", id, err)
	}
	return &z, nil
}

// List returns zones ordered by id. If limit/offset are nil, returns the full list.
func (r *ZoneRepo) List(ctx context.Context, limit, offset *int) ([]domain.Zone, error) {
	q := `SELECT ` + zoneColumns + ` FROM zones ORDER BY id`
	args := make([]any, 0, 2)
	if limit != nil {
		q += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, *limit)
	}
	if offset != nil {
		q += fmt.Sprintf(" OFFSET $%d", len(args)+1)
		args = append(args, *offset)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	return collectZones(rows, capacity)
}

// ListActiveWithCenter - returns the zones eligible for matching.
func (r *ZoneRepo) ListActiveWithCenter(ctx context.Context) ([]domain.Zone, error) {
	return listActiveZones(ctx, r.db)
}

// Create - creates a new zone.
func (r *ZoneRepo) Create(ctx context.Context, z *domain.Zone) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
        INSERT INTO zones(name, path, description, center_lat, center_lng, radius_km, active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `, z.Name, z.Path, z.Description, z.CenterLat, z.CenterLng, z.RadiusKm, z.Active).Scan(&id)
	if err != nil {
		if IsCheckViolation(err) {
			return 0, apperr.ErrInvalid
		}
		return 0, fmt.Errorf("create zone: %w", err)
	}
	z.ID = id
	return id, nil
}

// UpdatePartial applies a partial update to a zone and returns true if a row was affected.
func (r *ZoneRepo) UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (bool, error) {
	ct, err := r.db.Exec(ctx, `
        UPDATE zones
        SET
            name        = COALESCE($2, name),
            path        = COALESCE($3, path),
            description = COALESCE($4, description),
            center_lat  = COALESCE($5, center_lat),
            center_lng  = COALESCE($6, center_lng),
            radius_km   = COALESCE($7, radius_km),
            active      = COALESCE($8, active),
            updated_at  = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Path, u.Description, u.CenterLat, u.CenterLng, u.RadiusKm, u.Active)
	if err != nil {
		if IsCheckViolation(err) {
			return false, apperr.ErrInvalid
		}
		return false, fmt.Errorf("update zone %d: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// AttachDriver - links a driver to a zone.
func (r *ZoneRepo) AttachDriver(ctx context.Context, link *domain.UserZone) (int64, error) {
	err := r.db.QueryRow(ctx, `
        INSERT INTO user_zones(user_id, zone_id, priority)
        VALUES ($1, $2, $3)
        RETURNING id
    `, link.UserID, link.ZoneID, link.Priority).Scan(&link.ID)
	if err != nil {
		switch {
		case IsDuplicate(err):
			return 0, apperr.ErrConflict
		case IsForeignKey(err):
			return 0, apperr.ErrNotFound
		}
		return 0, fmt.Errorf("attach driver %d to zone %d: %w", link.UserID, link.ZoneID, err)
	}
	return link.ID, nil
}

// DetachDriver - removes a driver/zone link and reports whether it existed.
func (r *ZoneRepo) DetachDriver(ctx context.Context, zoneID, userID int64) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM user_zones WHERE zone_id = $1 AND user_id = $2`, zoneID, userID)
	if err != nil {
		return false, fmt.Errorf("detach driver %d from zone %d: %w", userID, zoneID, err)
	}
	return ct.RowsAffected() > 0, nil
}

// ListDrivers - returns the drivers linked to a zone with their active delivery count.
func (r *ZoneRepo) ListDrivers(ctx context.Context, zoneID int64) ([]domain.ZoneDriver, error) {
	rows, err := r.db.Query(ctx, `
        SELECT d.id, d.name, d.phone, d.is_active, d.is_driver, d.is_driving, uz.priority,
               (SELECT COUNT(*) FROM deliveries x
                WHERE x.driver_id = d.id AND x.status = ANY($2))
        FROM user_zones uz
        JOIN drivers d ON d.id = uz.user_id
        WHERE uz.zone_id = $1
        ORDER BY d.id
    `, zoneID, activeStatuses())
	if err != nil {
		return nil, fmt.Errorf("list drivers of zone %d: %w", zoneID, err)
	}
	defer rows.Close()

	out := make([]domain.ZoneDriver, 0)
	for rows.Next() {
		var zd domain.ZoneDriver
		var load int64
		if err := rows.Scan(&zd.ID, &zd.Name, &zd.Phone, &zd.IsActive, &zd.IsDriver, &zd.IsDriving, &zd.Priority, &load); err != nil {
			return nil, err
		}
		zd.Load = int(load)
		out = append(out, zd)
	}
	return out, rows.Err()
}
