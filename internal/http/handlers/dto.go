package handlers

import "time"

type zoneRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Path        string   `json:"path" validate:"max=500"`
	Description string   `json:"description"`
	CenterLat   *float64 `json:"center_lat" validate:"required_with=CenterLng"`
	CenterLng   *float64 `json:"center_lng" validate:"required_with=CenterLat"`
	RadiusKm    float64  `json:"radius_km" validate:"gte=0"`
	Active      *bool    `json:"active"`
}

type zoneUpdateRequest struct {
	ID          int64    `json:"id" validate:"required,gt=0"`
	Name        *string  `json:"name" validate:"omitnil,max=200"`
	Path        *string  `json:"path" validate:"omitnil,max=500"`
	Description *string  `json:"description"`
	CenterLat   *float64 `json:"center_lat"`
	CenterLng   *float64 `json:"center_lng"`
	RadiusKm    *float64 `json:"radius_km"`
	Active      *bool    `json:"active"`
}

type zoneResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Path        string   `json:"path,omitempty"`
	Description string   `json:"description,omitempty"`
	CenterLat   *float64 `json:"center_lat"`
	CenterLng   *float64 `json:"center_lng"`
	RadiusKm    float64  `json:"radius_km"`
	Active      bool     `json:"active"`
}

type zoneMatchResponse struct {
	Zone       zoneResponse `json:"zone"`
	DistanceKm float64      `json:"distance_km"`
	Contains   bool         `json:"contains"`
}

type attachDriverRequest struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	Priority int   `json:"priority" validate:"gte=0"`
}

type zoneDriverResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	IsActive  bool   `json:"is_active"`
	IsDriver  bool   `json:"is_driver"`
	IsDriving bool   `json:"is_driving"`
	Priority  int    `json:"priority"`
	Load      int    `json:"load"`
}

type setDrivingRequest struct {
	Driving *bool `json:"driving" validate:"required"`
}

type assignDeliveryRequest struct {
	OrderID      string   `json:"order_id" validate:"required,max=64"`
	Address      string   `json:"address" validate:"max=1000"`
	Phone        string   `json:"phone" validate:"max=32"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	DeliveryDate *string  `json:"delivery_date" validate:"omitnil,datetime=2006-01-02"`
}

type assignDeliveryResponse struct {
	DeliveryID  int64     `json:"delivery_id"`
	OrderID     string    `json:"order_id"`
	DriverID    int64     `json:"driver_id"`
	ZoneID      int64     `json:"zone_id"`
	ZoneName    string    `json:"zone_name"`
	DistanceKm  float64   `json:"distance_km"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
	SlotStart   int       `json:"slot_start"`
	SlotEnd     int       `json:"slot_end"`
	SlotLabel   string    `json:"slot_label"`
}

type updateStatusRequest struct {
	OrderID string `json:"order_id" validate:"required,max=64"`
	Status  string `json:"status" validate:"required,oneof=in_progress completed cancelled"`
}

type statusResponse struct {
	OrderID  string `json:"order_id"`
	DriverID int64  `json:"driver_id"`
	Previous string `json:"previous"`
	Status   string `json:"status"`
}

type slotResponse struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	SlotStart   int       `json:"slot_start"`
	SlotEnd     int       `json:"slot_end"`
	SlotLabel   string    `json:"slot_label"`
	RolledOver  bool      `json:"rolled_over"`
}
