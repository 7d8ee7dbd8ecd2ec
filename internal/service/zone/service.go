package zone

import (
	"context"
	"strings"
	"time"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/geo"
)

// Service coordinates zone administration and point lookups.
type Service struct {
	repo             zoneRepository
	operationTimeout time.Duration
}

// NewService creates and configures a zone Service.
func NewService(r zoneRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func validateCenter(lat, lng *float64, radius float64) error {
	if (lat == nil) != (lng == nil) {
		return apperr.ErrInvalid
	}
	if lat == nil {
		return nil
	}
	if _, ok := geo.PointFrom(lat, lng); !ok {
		return apperr.ErrInvalid
	}
	if radius <= 0 {
		return apperr.ErrInvalid
	}
	return nil
}

func validateCreate(z *domain.Zone) error {
	if z == nil {
		return apperr.ErrInvalid
	}
	z.Name = strings.TrimSpace(z.Name)
	if z.Name == "" {
		return apperr.ErrInvalid
	}
	if z.RadiusKm < 0 {
		return apperr.ErrInvalid
	}
	return validateCenter(z.CenterLat, z.CenterLng, z.RadiusKm)
}

func validateUpdate(u *domain.PartialZoneUpdate) error {
	if u.ID <= 0 {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Path == nil && u.Description == nil &&
		u.CenterLat == nil && u.CenterLng == nil && u.RadiusKm == nil && u.Active == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return apperr.ErrInvalid
	}
	if u.RadiusKm != nil && *u.RadiusKm <= 0 {
		return apperr.ErrInvalid
	}
	if u.CenterLat != nil || u.CenterLng != nil {
		// a moved center must arrive whole
		if u.CenterLat == nil || u.CenterLng == nil {
			return apperr.ErrInvalid
		}
		if _, ok := geo.PointFrom(u.CenterLat, u.CenterLng); !ok {
			return apperr.ErrInvalid
		}
	}
	return nil
}

// Get retrieves a zone by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Zone, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	z, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if z == nil {
		return nil, apperr.ErrNotFound
	}
	return z, nil
}

// List returns zones with optional pagination.
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Zone, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new zone and returns its generated ID.
func (s *Service) Create(ctx context.Context, z *domain.Zone) (int64, error) {
	if err := validateCreate(z); err != nil {
		return 0, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, z)
}

// UpdatePartial applies a partial update to a zone. Setting Active to false
// takes the zone out of matching without deleting it.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	return true, nil
}

// AttachDriver links a driver to a zone. A second link for the same pair is a conflict.
func (s *Service) AttachDriver(ctx context.Context, zoneID, userID int64, priority int) (int64, error) {
	if zoneID <= 0 || userID <= 0 || priority < 0 {
		return 0, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.AttachDriver(ctx, &domain.UserZone{UserID: userID, ZoneID: zoneID, Priority: priority})
}

// DetachDriver removes the link between a driver and a zone.
func (s *Service) DetachDriver(ctx context.Context, zoneID, userID int64) error {
	if zoneID <= 0 || userID <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.DetachDriver(ctx, zoneID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}

// Drivers lists the drivers linked to a zone together with their current load.
func (s *Service) Drivers(ctx context.Context, zoneID int64) ([]domain.ZoneDriver, error) {
	if zoneID <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListDrivers(ctx, zoneID)
}

// Find returns the zone an order at (lat, lng) would be assigned to.
func (s *Service) Find(ctx context.Context, lat, lng float64) (Match, error) {
	p := geo.Point{Lat: lat, Lng: lng}
	if !p.Valid() {
		return Match{}, apperr.ErrNoZone
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	zones, err := s.repo.ListActiveWithCenter(ctx)
	if err != nil {
		return Match{}, err
	}
	m, ok := Locate(zones, p)
	if !ok {
		return Match{}, apperr.ErrNoZone
	}
	return m, nil
}
