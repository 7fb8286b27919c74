package responses

type GeocodedLocation struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	City             string  `json:"city,omitempty"`
	FormattedAddress string  `json:"formatted_address,omitempty"`
}

type ResolvedCity struct {
	City string `json:"city"`
}
