package orders

import (
	"time"

	"zistino-dispatch/internal/domain"
)

// Event is a single order lifecycle event.
// Location and contact fields are optional; the processor fetches them when missing.
type Event struct {
	OrderID      string
	Status       string
	Address      string
	Phone        string
	Latitude     *float64
	Longitude    *float64
	DeliveryDate *time.Time
	CreatedAt    time.Time
}

// HasLocation reports whether both coordinates are present.
func (e Event) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// Order projects the event onto the order view the assignment engine consumes.
func (e Event) Order() domain.Order {
	return domain.Order{
		ID:           e.OrderID,
		Address:      e.Address,
		Phone:        e.Phone,
		Latitude:     e.Latitude,
		Longitude:    e.Longitude,
		DeliveryDate: e.DeliveryDate,
	}
}

// merge fills the event's blank fields from o.
func (e Event) merge(o domain.Order) Event {
	if e.Address == "" {
		e.Address = o.Address
	}
	if e.Phone == "" {
		e.Phone = o.Phone
	}
	if !e.HasLocation() {
		e.Latitude, e.Longitude = o.Latitude, o.Longitude
	}
	if e.DeliveryDate == nil {
		e.DeliveryDate = o.DeliveryDate
	}
	return e
}
