package game

import "math"

// EarthRadiusKm is the mean Earth radius used for distances.
const EarthRadiusKm = 6371.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(a, b Point) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Bearing returns the initial bearing in degrees [0, 360) from a to b.
func Bearing(a, b Point) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	deltaLon := radians(b.Lon - a.Lon)

	y := math.Sin(deltaLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLon)

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

var arrows = [8]string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// ArrowForBearing maps a bearing to one of eight arrows, each covering 45°
// centred on its direction.
func ArrowForBearing(bearing float64) string {
	bearing = math.Mod(math.Mod(bearing, 360)+360, 360)
	return arrows[int((bearing+22.5)/45)%8]
}

// DirectionArrow points from a guess towards the target.
func DirectionArrow(guess, target Point) string {
	return ArrowForBearing(Bearing(guess, target))
}
