package delivery

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/geo"
	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/ports/deliverytx"
	"zistino-dispatch/internal/service/balancer"
	"zistino-dispatch/internal/service/slot"
	"zistino-dispatch/internal/service/zone"
)

// Service assigns orders to zone drivers and schedules the delivery window.
type Service struct {
	repo             txRunner
	windows          WindowSource
	publisher        Publisher
	assignments      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// NewDeliveryService - creates a new DeliveryService.
func NewDeliveryService(r txRunner, w WindowSource, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if w == nil {
		w = StaticWindowSource(slot.DefaultConfig())
	}
	return &Service{
		repo:             r,
		windows:          w,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// WithLocation makes slot selection use wall-clock time in loc.
func (s *Service) WithLocation(loc *time.Location) *Service {
	if loc != nil {
		s.now = func() time.Time { return time.Now().In(loc) }
	}
	return s
}

// WithClock replaces the wall clock used for slot selection.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// WithPublisher sets the publisher notified after each committed assignment.
func (s *Service) WithPublisher(p Publisher) *Service {
	s.publisher = p
	return s
}

// WithAssignCounter sets the counter labelled by assignment outcome.
func (s *Service) WithAssignCounter(c *prometheus.CounterVec) *Service {
	s.assignments = c
	return s
}

// Assign matches the order to a zone, picks the least-loaded driver of that zone and
// records the delivery together with its scheduled window, all in one transaction.
//
// apperr.ErrNoZone and apperr.ErrNoDriver leave the order unassigned; apperr.ErrConflict
// means the order already has an active delivery.
func (s *Service) Assign(ctx context.Context, order domain.Order) (domain.AssignResult, error) {
	orderID, err := validateOrderID(order.ID)
	if err != nil {
		s.observe(err)
		return domain.AssignResult{}, err
	}
	order.ID = orderID

	point, ok := geo.PointFrom(order.Latitude, order.Longitude)
	if !ok {
		s.logUnassigned(orderID, apperr.ErrNoZone)
		s.observe(apperr.ErrNoZone)
		return domain.AssignResult{}, apperr.ErrNoZone
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	windows := s.windows.DeliveryWindow(ctx)
	now := s.now()
	var result domain.AssignResult

	err = s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		existing, err := tx.GetByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if existing != nil && existing.Status.Active() {
			return apperr.ErrConflict
		}

		zones, err := tx.ListActiveZonesWithCenter(ctx)
		if err != nil {
			return err
		}
		match, ok := zone.Locate(zones, point)
		if !ok {
			return apperr.ErrNoZone
		}

		links, err := tx.ListEligibleDriversForUpdate(ctx, match.Zone.ID)
		if err != nil {
			return err
		}
		cands := make([]balancer.Candidate, 0, len(links))
		for _, l := range links {
			load, err := tx.CountActiveDeliveries(ctx, l.UserID)
			if err != nil {
				return err
			}
			cands = append(cands, balancer.Candidate{DriverID: l.UserID, Load: load, Priority: l.Priority})
		}
		pick, ok := balancer.Pick(cands)
		if !ok {
			return apperr.ErrNoDriver
		}

		sel := slot.Next(windows, now, order.DeliveryDate)
		d := &domain.Delivery{
			DriverID:    pick.DriverID,
			ZoneID:      match.Zone.ID,
			OrderID:     orderID,
			Status:      domain.DeliveryAssigned,
			Address:     order.Address,
			Phone:       order.Phone,
			Latitude:    order.Latitude,
			Longitude:   order.Longitude,
			ScheduledAt: sel.ScheduledAt,
			CreatedAt:   now,
		}
		if err := tx.InsertDelivery(ctx, d); err != nil {
			return err
		}

		result = domain.AssignResult{
			Delivery:    *d,
			ZoneName:    match.Zone.Name,
			DistanceKm:  match.DistanceKm,
			ScheduledAt: sel.ScheduledAt,
			SlotStart:   sel.Window.StartHour,
			SlotEnd:     sel.Window.EndHour,
			SlotLabel:   sel.Label,
		}
		return nil
	})
	s.observe(err)
	if err != nil {
		if apperr.IsUnassigned(err) {
			s.logUnassigned(orderID, err)
		}
		return domain.AssignResult{}, err
	}

	s.logger.Info("driver assigned",
		logx.String("event", "delivery_assigned"),
		logx.String("order_id", result.Delivery.OrderID),
		logx.Int64("driver_id", result.Delivery.DriverID),
		logx.Int64("zone_id", result.Delivery.ZoneID),
		logx.Float64("distance_km", result.DistanceKm),
		logx.Time("scheduled_at", result.ScheduledAt),
		logx.String("slot", result.SlotLabel),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishAssigned(ctx, result); err != nil {
			s.logger.Warn("publish delivery_assigned failed",
				logx.String("order_id", orderID),
				logx.Err(err),
			)
		}
	}

	return result, nil
}

// UpdateStatus moves the order's latest delivery to status. Setting the current status again is a no-op.
func (s *Service) UpdateStatus(ctx context.Context, orderID string, status domain.DeliveryStatus) (domain.StatusResult, error) {
	orderID, err := validateOrderID(orderID)
	if err != nil {
		return domain.StatusResult{}, err
	}
	if !status.Valid() || status == domain.DeliveryAssigned {
		return domain.StatusResult{}, apperr.ErrInvalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.StatusResult

	err = s.repo.WithTx(ctx, func(tx deliverytx.Repository) error {
		d, err := tx.GetByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if d == nil {
			return apperr.ErrNotFound
		}

		result = domain.StatusResult{
			OrderID:  orderID,
			DriverID: d.DriverID,
			Previous: d.Status,
			Status:   status,
		}
		if d.Status == status {
			return nil
		}
		if !d.Status.CanTransition(status) {
			return apperr.ErrConflict
		}
		return tx.UpdateDeliveryStatus(ctx, d.ID, status)
	})
	if err != nil {
		return domain.StatusResult{}, err
	}

	if result.Previous != result.Status {
		s.logger.Info("delivery status changed",
			logx.String("event", "delivery_status_changed"),
			logx.String("order_id", orderID),
			logx.Int64("driver_id", result.DriverID),
			logx.String("from", string(result.Previous)),
			logx.String("to", string(result.Status)),
		)
	}
	return result, nil
}

// PreviewSlot returns the window an order placed now would get.
func (s *Service) PreviewSlot(ctx context.Context, target *time.Time) slot.Selection {
	return slot.Next(s.windows.DeliveryWindow(ctx), s.now(), target)
}

func validateOrderID(raw string) (string, error) {
	orderID := strings.TrimSpace(raw)
	if orderID == "" {
		return "", apperr.ErrInvalid
	}
	return orderID, nil
}

func (s *Service) logUnassigned(orderID string, reason error) {
	s.logger.Warn("order left unassigned",
		logx.String("event", "delivery_unassigned"),
		logx.String("order_id", orderID),
		logx.String("reason", reason.Error()),
	)
}

func (s *Service) observe(err error) {
	if s.assignments == nil {
		return
	}
	s.assignments.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "assigned"
	case errors.Is(err, apperr.ErrNoZone):
		return "no_zone"
	case errors.Is(err, apperr.ErrNoDriver):
		return "no_driver"
	case errors.Is(err, apperr.ErrConflict):
		return "conflict"
	case errors.Is(err, apperr.ErrInvalid):
		return "invalid"
	default:
		return "error"
	}
}
