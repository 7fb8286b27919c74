package models

import "healthlink-service/internal/pkg/geo"

// Location is a geocoded point. City carries the locality name extracted
// from the provider's address components.
type Location struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
}

// CityArea is a geocoded city together with the bounding box the provider
// reports for it, in south/west/north/east order.
type CityArea struct {
	City        string           `json:"city"`
	State       string           `json:"state,omitempty"`
	DisplayName string           `json:"display_name,omitempty"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	BBox        *geo.BoundingBox `json:"-"`
}
