package geocoding

import (
	"context"
	"errors"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/dto/responses"
	"healthlink-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type geocodingUsecase struct {
	GoogleClient    GoogleGeocodingClient
	NominatimClient NominatimClient
	Logger          *zap.Logger
}

func NewGeocodingUsecase(
	googleClient GoogleGeocodingClient,
	nominatimClient NominatimClient,
	logger *zap.Logger,
) GeocodingUsecase {
	return &geocodingUsecase{
		GoogleClient:    googleClient,
		NominatimClient: nominatimClient,
		Logger:          logger,
	}
}

func (uc *geocodingUsecase) GeocodeAddress(ctx context.Context, query string) (*responses.GeocodedLocation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("geocodingUsecase.GeocodeAddress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	location, err := uc.GoogleClient.GeocodeAddress(ctx, query)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}

	return &responses.GeocodedLocation{
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		City:             location.City,
		FormattedAddress: location.FormattedAddress,
	}, nil
}

func (uc *geocodingUsecase) ReverseGeocodeCity(ctx context.Context, lat, lng float64) (*responses.ResolvedCity, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("geocodingUsecase.ReverseGeocodeCity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	city, err := uc.GoogleClient.ResolveCityFromPoint(ctx, lat, lng)
	if err != nil {
		// Without a Google key the keyless OpenStreetMap instance still
		// gives us a usable city name.
		var customErr *exceptions.CustomError
		if !errors.As(err, &customErr) || customErr.ClientMessage != constvars.ErrClientGeocodingNotConfigured {
			return nil, err
		}
		location, nominatimErr := uc.NominatimClient.ReversePoint(ctx, lat, lng)
		if nominatimErr != nil {
			return nil, err
		}
		city = location.City
	}

	return &responses.ResolvedCity{City: city}, nil
}
