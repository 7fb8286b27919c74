package hospitals

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/dto/responses"
	"healthlink-service/internal/pkg/geo"
)

type HospitalUsecase interface {
	GetHospitalsByCity(ctx context.Context, city string) ([]responses.Hospital, error)
	GetNearbyHospitals(ctx context.Context, lat, lng float64, radiusKm float64) (*responses.NearbyHospitals, error)
}

// OverpassClient queries the OpenStreetMap Overpass API for hospitals and
// clinics inside a bounding box. Results come back deduplicated.
type OverpassClient interface {
	FetchFacilitiesByBBox(ctx context.Context, box geo.BoundingBox) ([]models.Facility, error)
}

type HospitalRepository interface {
	FindByCity(ctx context.Context, city string) ([]models.Facility, error)
}
