package driver

import (
	"context"
	"time"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
)

type driverRepository interface {
	Get(ctx context.Context, id int64) (*domain.Driver, error)
	SetDriving(ctx context.Context, id int64, driving bool) (bool, error)
}

// Service toggles whether a driver is on shift.
type Service struct {
	repo             driverRepository
	operationTimeout time.Duration
}

// NewService creates a driver Service.
func NewService(r driverRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

// Get retrieves a driver by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Driver, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	d, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, apperr.ErrNotFound
	}
	return d, nil
}

// SetDriving sets the driver's is_driving flag. Only driving drivers receive new deliveries.
func (s *Service) SetDriving(ctx context.Context, id int64, driving bool) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := context.WithTimeout(ctx, s.operationTimeout)
	defer cancel()
	ok, err := s.repo.SetDriving(ctx, id, driving)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrNotFound
	}
	return nil
}
