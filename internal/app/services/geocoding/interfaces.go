package geocoding

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/dto/responses"
)

type GeocodingUsecase interface {
	GeocodeAddress(ctx context.Context, query string) (*responses.GeocodedLocation, error)
	ReverseGeocodeCity(ctx context.Context, lat, lng float64) (*responses.ResolvedCity, error)
}

// GoogleGeocodingClient talks to the Google Geocoding API. Lookups that
// return no results yield (nil, nil).
type GoogleGeocodingClient interface {
	GeocodeAddress(ctx context.Context, query string) (*models.Location, error)
	ResolveCityFromPoint(ctx context.Context, lat, lng float64) (string, error)
}

// NominatimClient talks to the OpenStreetMap Nominatim API. It is the
// keyless fallback when Google is unavailable and the city-to-area resolver
// for hospital discovery.
type NominatimClient interface {
	SearchCity(ctx context.Context, city string) (*models.CityArea, error)
	ReversePoint(ctx context.Context, lat, lng float64) (*models.Location, error)
}
