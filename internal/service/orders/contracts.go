//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"zistino-dispatch/internal/domain"
)

// DeliveryPort is the subset of the delivery service the processor drives.
type DeliveryPort interface {
	Assign(ctx context.Context, order domain.Order) (domain.AssignResult, error)
	UpdateStatus(ctx context.Context, orderID string, status domain.DeliveryStatus) (domain.StatusResult, error)
}

// OrderSource looks an order up in the orders service. A nil order means it does not exist.
type OrderSource interface {
	GetByID(ctx context.Context, id string) (*domain.Order, error)
}
