package geo

import "math"

// EarthRadiusKm is the spherical Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lng float64
}

// PointFrom builds a Point from optional coordinates. It returns false when either
// coordinate is missing, not finite, or out of range.
func PointFrom(lat, lng *float64) (Point, bool) {
	if lat == nil || lng == nil {
		return Point{}, false
	}
	p := Point{Lat: *lat, Lng: *lng}
	if !p.Valid() {
		return Point{}, false
	}
	return p, true
}

// Valid reports whether the point has finite, in-range coordinates.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lng, 0) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Distance returns the great-circle distance between a and b in kilometers (Haversine).
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := lat2 - lat1
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// rounding can push h a hair over 1 for antipodal points
	h = math.Min(1, math.Max(0, h))
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
