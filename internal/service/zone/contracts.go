package zone

import (
	"context"

	"zistino-dispatch/internal/domain"
)

// zoneRepository defines storage operations required by the zone service.
type zoneRepository interface {
	Get(ctx context.Context, id int64) (*domain.Zone, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Zone, error)
	ListActiveWithCenter(ctx context.Context) ([]domain.Zone, error)
	Create(ctx context.Context, z *domain.Zone) (int64, error)
	UpdatePartial(ctx context.Context, u domain.PartialZoneUpdate) (bool, error)
	AttachDriver(ctx context.Context, link *domain.UserZone) (int64, error)
	DetachDriver(ctx context.Context, zoneID, userID int64) (bool, error)
	ListDrivers(ctx context.Context, zoneID int64) ([]domain.ZoneDriver, error)
}
