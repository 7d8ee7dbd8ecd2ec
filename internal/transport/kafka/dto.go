package kafka

import (
	"fmt"
	"strings"
	"time"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/service/orders"
)

const dateLayout = "2006-01-02"

// EventDTO is the wire form of an order event on the orders topic.
type EventDTO struct {
	OrderID      string    `json:"order_id"`
	Status       string    `json:"status"`
	Address      string    `json:"address,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	DeliveryDate string    `json:"delivery_date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event. delivery_date accepts a plain date or an
// RFC 3339 timestamp; anything else is a permanent error.
func ToDomain(dto EventDTO) (orders.Event, error) {
	ev := orders.Event{
		OrderID:   strings.TrimSpace(dto.OrderID),
		Status:    strings.TrimSpace(dto.Status),
		Address:   strings.TrimSpace(dto.Address),
		Phone:     strings.TrimSpace(dto.Phone),
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		CreatedAt: dto.CreatedAt,
	}
	if raw := strings.TrimSpace(dto.DeliveryDate); raw != "" {
		d, err := parseDate(raw)
		if err != nil {
			return orders.Event{}, Permanent(fmt.Errorf("delivery_date %q: %w", raw, err))
		}
		ev.DeliveryDate = &d
	}
	return ev, nil
}

func parseDate(raw string) (time.Time, error) {
	if d, err := time.Parse(dateLayout, raw); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// AssignedEventDTO is published on the deliveries topic after a commit.
type AssignedEventDTO struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	OrderID     string    `json:"order_id"`
	DeliveryID  int64     `json:"delivery_id"`
	DriverID    int64     `json:"driver_id"`
	ZoneID      int64     `json:"zone_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	SlotLabel   string    `json:"slot_label"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventTypeDeliveryAssigned is the type of AssignedEventDTO.
const EventTypeDeliveryAssigned = "delivery_assigned"

func assignedToDTO(id string, res domain.AssignResult, at time.Time) AssignedEventDTO {
	return AssignedEventDTO{
		EventID:     id,
		Type:        EventTypeDeliveryAssigned,
		OrderID:     res.Delivery.OrderID,
		DeliveryID:  res.Delivery.ID,
		DriverID:    res.Delivery.DriverID,
		ZoneID:      res.Delivery.ZoneID,
		ScheduledAt: res.ScheduledAt,
		SlotLabel:   res.SlotLabel,
		OccurredAt:  at.UTC(),
	}
}
