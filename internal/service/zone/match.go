package zone

import (
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/geo"
)

// Match is the zone picked for a point.
type Match struct {
	Zone       domain.Zone
	DistanceKm float64
	// Contains is false when the point lies outside every zone and the nearest one was used.
	Contains bool
}

// Locate picks the best zone for p among zones.
//
// Only active zones with a center take part. Among the zones whose radius covers the point
// (boundary inclusive) the one with the closest center wins; equal distances keep input order.
// When no zone covers the point the nearest zone is returned regardless of radius.
// ok is false when p is invalid or no zone has a center.
func Locate(zones []domain.Zone, p geo.Point) (m Match, ok bool) {
	if !p.Valid() {
		return Match{}, false
	}

	var (
		best, nearest         Match
		haveBest, haveNearest bool
	)
	for _, z := range zones {
		if !z.Active || !z.HasCenter() {
			continue
		}
		d := geo.Distance(geo.Point{Lat: *z.CenterLat, Lng: *z.CenterLng}, p)

		if !haveNearest || d < nearest.DistanceKm {
			nearest = Match{Zone: z, DistanceKm: d}
			haveNearest = true
		}
		if d <= z.RadiusKm && (!haveBest || d < best.DistanceKm) {
			best = Match{Zone: z, DistanceKm: d, Contains: true}
			haveBest = true
		}
	}

	switch {
	case haveBest:
		return best, true
	case haveNearest:
		return nearest, true
	default:
		return Match{}, false
	}
}
