package domain

import "time"

// Delivery is a driver's committed assignment to fulfill one order.
// Address, phone and coordinates are snapshots of the order at assignment time.
type Delivery struct {
	ID          int64
	DriverID    int64
	ZoneID      int64
	OrderID     string
	Status      DeliveryStatus
	Address     string
	Phone       string
	Latitude    *float64
	Longitude   *float64
	ScheduledAt time.Time
	CreatedAt   time.Time
}

// Order is the read-only view of an order the assignment engine consumes.
type Order struct {
	ID           string
	Address      string
	Phone        string
	Latitude     *float64
	Longitude    *float64
	DeliveryDate *time.Time
}

// AssignResult is the outcome of a successful assignment.
type AssignResult struct {
	Delivery    Delivery
	ZoneName    string
	DistanceKm  float64
	ScheduledAt time.Time
	SlotStart   int
	SlotEnd     int
	SlotLabel   string
}

// StatusResult is the outcome of a delivery status change.
type StatusResult struct {
	OrderID  string
	DriverID int64
	Previous DeliveryStatus
	Status   DeliveryStatus
}
