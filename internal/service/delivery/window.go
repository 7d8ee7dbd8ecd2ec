package delivery

import (
	"context"

	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/service/slot"
)

// DeliveryTimeKey names the configurations row holding the delivery-day settings.
const DeliveryTimeKey = "delivery_time"

type storedWindowSource struct {
	store    configStore
	fallback slot.Config
	logger   logx.Logger
}

// NewWindowSource reads the delivery-day settings from store, falling back to fallback
// (itself normalized to the package defaults) when the row is absent or unusable.
func NewWindowSource(store configStore, fallback slot.Config, logger logx.Logger) WindowSource {
	return &storedWindowSource{store: store, fallback: fallback.Normalize(), logger: logger}
}

// DeliveryWindow implements WindowSource.
func (s *storedWindowSource) DeliveryWindow(ctx context.Context) slot.Config {
	if s.store == nil {
		return s.fallback
	}
	raw, ok, err := s.store.GetActive(ctx, DeliveryTimeKey)
	if err != nil {
		s.logger.Warn("delivery time config read failed, using defaults",
			logx.String("key", DeliveryTimeKey),
			logx.Err(err),
		)
		return s.fallback
	}
	if !ok {
		return s.fallback
	}
	cfg, err := slot.ParseConfig(raw)
	if err != nil {
		s.logger.Warn("delivery time config malformed, using defaults",
			logx.String("key", DeliveryTimeKey),
			logx.Err(err),
		)
		return s.fallback
	}
	return cfg
}

// StaticWindowSource always returns the same config.
type StaticWindowSource slot.Config

// DeliveryWindow implements WindowSource.
func (s StaticWindowSource) DeliveryWindow(context.Context) slot.Config {
	return slot.Config(s).Normalize()
}
