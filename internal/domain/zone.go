package domain

// Zone is a geographic service area: a center point and a radius in kilometers.
// A zone without a center can never contain a point.
type Zone struct {
	ID          int64
	Name        string
	Path        string
	Description string
	CenterLat   *float64
	CenterLng   *float64
	RadiusKm    float64
	Active      bool
}

// HasCenter reports whether both center coordinates are set.
func (z Zone) HasCenter() bool {
	return z.CenterLat != nil && z.CenterLng != nil
}

// PartialZoneUpdate carries optional fields to update a zone.
// A nil field means "do not change" that attribute.
type PartialZoneUpdate struct {
	ID          int64
	Name        *string
	Path        *string
	Description *string
	CenterLat   *float64
	CenterLng   *float64
	RadiusKm    *float64
	Active      *bool
}

// UserZone links a driver to a zone. Priority is stored for administrators
// but is not consulted when a driver is picked.
type UserZone struct {
	ID       int64
	UserID   int64
	ZoneID   int64
	Priority int
}

// ZoneDriver is a driver as seen from one of its zones, with the number of
// deliveries it currently carries.
type ZoneDriver struct {
	Driver
	Priority int
	Load     int
}
