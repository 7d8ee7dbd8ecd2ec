package deliverytx

import (
	"context"

	"zistino-dispatch/internal/domain"
)

// Repository is the set of storage operations available inside an assignment transaction.
type Repository interface {
	ListActiveZonesWithCenter(ctx context.Context) ([]domain.Zone, error)
	// ListEligibleDriversForUpdate returns the zone links of active, driving drivers and
	// locks the driver rows until the transaction ends. Rows come back ordered by user id.
	ListEligibleDriversForUpdate(ctx context.Context, zoneID int64) ([]domain.UserZone, error)
	CountActiveDeliveries(ctx context.Context, driverID int64) (int, error)
	// GetByOrderIDForUpdate returns the most recent delivery of the order, locked, or nil.
	GetByOrderIDForUpdate(ctx context.Context, orderID string) (*domain.Delivery, error)
	InsertDelivery(ctx context.Context, d *domain.Delivery) error
	UpdateDeliveryStatus(ctx context.Context, id int64, status domain.DeliveryStatus) error
}

