//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery_test

package delivery

import (
	"context"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/ports/deliverytx"
	"zistino-dispatch/internal/service/slot"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx deliverytx.Repository) error) error
}

// WindowSource yields the delivery-day configuration. Implementations never fail:
// a missing or malformed setting resolves to defaults.
type WindowSource interface {
	DeliveryWindow(ctx context.Context) slot.Config
}

// Publisher announces committed assignments to other services.
type Publisher interface {
	PublishAssigned(ctx context.Context, res domain.AssignResult) error
}

type configStore interface {
	GetActive(ctx context.Context, name string) ([]byte, bool, error)
}
