package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestDistance_Identity(t *testing.T) {
	t.Parallel()

	for _, p := range []Point{{0, 0}, {35.7, 51.4}, {-33.86, 151.2}, {90, 0}} {
		require.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]Point{
		{{35.70, 51.40}, {35.70, 51.42}},
		{{35.70, 51.40}, {35.90, 51.40}},
		{{51.5074, -0.1278}, {40.7128, -74.0060}},
		{{-33.86, 151.2}, {33.86, -28.8}},
	}
	for _, pair := range pairs {
		ab := Distance(pair[0], pair[1])
		ba := Distance(pair[1], pair[0])
		require.InDelta(t, ab, ba, 1e-6)
		require.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	// one degree of latitude along a meridian
	require.InDelta(t, EarthRadiusKm*math.Pi/180, Distance(Point{0, 0}, Point{1, 0}), 1e-9)

	// London - New York, roughly 5570 km
	require.InDelta(t, 5570, Distance(Point{51.5074, -0.1278}, Point{40.7128, -74.0060}), 10)

	// antipodal points
	require.InDelta(t, math.Pi*EarthRadiusKm, Distance(Point{0, 0}, Point{0, 180}), 1e-6)
}

func TestPointFrom(t *testing.T) {
	t.Parallel()

	p, ok := PointFrom(ptr(35.7), ptr(51.4))
	require.True(t, ok)
	require.Equal(t, Point{Lat: 35.7, Lng: 51.4}, p)

	_, ok = PointFrom(nil, ptr(51.4))
	require.False(t, ok)

	_, ok = PointFrom(ptr(35.7), nil)
	require.False(t, ok)

	_, ok = PointFrom(ptr(91), ptr(0))
	require.False(t, ok)

	_, ok = PointFrom(ptr(0), ptr(-180.5))
	require.False(t, ok)

	_, ok = PointFrom(ptr(math.NaN()), ptr(0))
	require.False(t, ok)

	_, ok = PointFrom(ptr(0), ptr(math.Inf(1)))
	require.False(t, ok)
}
