package geofence

import "math"

// Distance returns the great-circle distance in meters between two
// coordinates on the mean Earth radius.
func Distance(a, b Coordinate) float64 {
	return haversine(DefaultEarthRadiusMeters, a, b)
}

// haversine computes the spherical distance between two coordinates.
// Planar approximations drift near the poles and the antimeridian, so the
// full formula is used even for small separations.
func haversine(radiusMeters float64, a, b Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * radiusMeters * math.Asin(math.Min(1, math.Sqrt(h)))
}
