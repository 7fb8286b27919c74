package geo

import (
	"healthlink-service/internal/pkg/constvars"
	"math"
)

// BoundingBox delimits a search area in WGS84 degrees. Overpass expects the
// order south, west, north, east.
type BoundingBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// BBoxFromCenter builds a box of radiusKm around a point. Latitude degrees
// are treated as a constant 111 km; longitude degrees shrink with the cosine
// of the latitude.
func BBoxFromCenter(lat, lng, radiusKm float64) BoundingBox {
	latDelta := radiusKm / constvars.KilometersPerLatitudeDegree
	lngDelta := radiusKm / (constvars.KilometersPerLatitudeDegree * math.Cos(lat*math.Pi/180))

	return BoundingBox{
		South: lat - latDelta,
		West:  lng - lngDelta,
		North: lat + latDelta,
		East:  lng + lngDelta,
	}
}
