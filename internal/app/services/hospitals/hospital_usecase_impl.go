package hospitals

import (
	"context"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/app/services/geocoding"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/dto/responses"
	"healthlink-service/internal/pkg/geo"

	"go.uber.org/zap"
)

type hospitalUsecase struct {
	HospitalRepository HospitalRepository
	OverpassClient     OverpassClient
	NominatimClient    geocoding.NominatimClient
	InternalConfig     *config.InternalConfig
	Logger             *zap.Logger
}

func NewHospitalUsecase(
	hospitalMongoRepository HospitalRepository,
	overpassClient OverpassClient,
	nominatimClient geocoding.NominatimClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) HospitalUsecase {
	return &hospitalUsecase{
		HospitalRepository: hospitalMongoRepository,
		OverpassClient:     overpassClient,
		NominatimClient:    nominatimClient,
		InternalConfig:     internalConfig,
		Logger:             logger,
	}
}

func (uc *hospitalUsecase) GetHospitalsByCity(ctx context.Context, city string) ([]responses.Hospital, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("hospitalUsecase.GetHospitalsByCity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("city", city),
	)

	// Curated directory first
	facilities, err := uc.HospitalRepository.FindByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	if len(facilities) > 0 {
		return buildHospitalResponses(facilities), nil
	}

	// Fall back to live discovery around the city's center
	area, err := uc.NominatimClient.SearchCity(ctx, city)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return []responses.Hospital{}, nil
	}

	lat, lng := area.Latitude, area.Longitude
	if area.BBox != nil {
		lat = (area.BBox.South + area.BBox.North) / 2
		lng = (area.BBox.West + area.BBox.East) / 2
	}

	facilities, _, err = uc.discoverFacilities(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	return buildHospitalResponses(facilities), nil
}

func (uc *hospitalUsecase) GetNearbyHospitals(ctx context.Context, lat, lng float64, radiusKm float64) (*responses.NearbyHospitals, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("hospitalUsecase.GetNearbyHospitals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Float64("radius_km", radiusKm),
	)

	defaultRadius := uc.InternalConfig.Discovery.DefaultRadiusKm
	if radiusKm <= 0 {
		radiusKm = defaultRadius
	}

	// An explicitly requested radius is honored verbatim, even when empty.
	if radiusKm != defaultRadius {
		facilities, err := uc.OverpassClient.FetchFacilitiesByBBox(ctx, geo.BBoxFromCenter(lat, lng, radiusKm))
		if err != nil {
			return nil, err
		}
		return &responses.NearbyHospitals{
			Hospitals: buildHospitalResponses(facilities),
			RadiusKm:  radiusKm,
		}, nil
	}

	facilities, widened, err := uc.discoverFacilities(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	if widened {
		radiusKm = uc.InternalConfig.Discovery.WidenedRadiusKm
	}

	return &responses.NearbyHospitals{
		Hospitals: buildHospitalResponses(facilities),
		RadiusKm:  radiusKm,
		Widened:   widened,
	}, nil
}

// discoverFacilities searches around a point at the default radius and, when
// nothing turns up, retries exactly once at the widened radius.
func (uc *hospitalUsecase) discoverFacilities(ctx context.Context, lat, lng float64) ([]models.Facility, bool, error) {
	facilities, err := uc.OverpassClient.FetchFacilitiesByBBox(ctx, geo.BBoxFromCenter(lat, lng, uc.InternalConfig.Discovery.DefaultRadiusKm))
	if err != nil {
		return nil, false, err
	}
	if len(facilities) > 0 {
		return facilities, false, nil
	}

	facilities, err = uc.OverpassClient.FetchFacilitiesByBBox(ctx, geo.BBoxFromCenter(lat, lng, uc.InternalConfig.Discovery.WidenedRadiusKm))
	if err != nil {
		return nil, false, err
	}
	return facilities, true, nil
}

func buildHospitalResponses(facilities []models.Facility) []responses.Hospital {
	hospitals := make([]responses.Hospital, 0, len(facilities))
	for _, facility := range facilities {
		source := facility.Source
		if source == "" {
			source = "directory"
		}
		hospitals = append(hospitals, responses.Hospital{
			ID:        facility.ID,
			Name:      facility.Name,
			Address:   facility.Address,
			City:      facility.City,
			State:     facility.State,
			Area:      facility.Area,
			Phone:     facility.Phone,
			Latitude:  facility.Latitude,
			Longitude: facility.Longitude,
			Status:    facility.Status,
			Source:    source,
		})
	}
	return hospitals
}
