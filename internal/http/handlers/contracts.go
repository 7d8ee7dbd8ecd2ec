package handlers

import (
	"context"
	"time"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/service/delivery"
	"zistino-dispatch/internal/service/driver"
	"zistino-dispatch/internal/service/slot"
	"zistino-dispatch/internal/service/zone"
)

type zoneUsecase interface {
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Zone, error)
	Create(ctx context.Context, z *domain.Zone) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (bool, error)
	AttachDriver(ctx context.Context, zoneID, userID int64, priority int) (int64, error)
	DetachDriver(ctx context.Context, zoneID, userID int64) error
	Drivers(ctx context.Context, zoneID int64) ([]domain.ZoneDriver, error)
	Find(ctx context.Context, lat, lng float64) (zone.Match, error)
}

// NewZoneUsecase exposes a zone.Service to the zone handler.
func NewZoneUsecase(svc *zone.Service) zoneUsecase {
	return svc
}

type driverUsecase interface {
	SetDriving(ctx context.Context, id int64, driving bool) error
}

// NewDriverUsecase exposes a driver.Service to the driver handler.
func NewDriverUsecase(svc *driver.Service) driverUsecase {
	return svc
}

type deliveryUsecase interface {
	Assign(ctx context.Context, order domain.Order) (domain.AssignResult, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.DeliveryStatus) (domain.StatusResult, error)
	PreviewSlot(ctx context.Context, target *time.Time) slot.Selection
}

// NewDeliveryUsecase exposes a delivery.Service to the delivery handler.
func NewDeliveryUsecase(svc *delivery.Service) deliveryUsecase {
	return svc
}
