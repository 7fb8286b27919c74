package hospitals

import (
	"context"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/geo"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOverpassClient struct {
	calls     []geo.BoundingBox
	responses [][]models.Facility
}

func (f *fakeOverpassClient) FetchFacilitiesByBBox(ctx context.Context, box geo.BoundingBox) ([]models.Facility, error) {
	f.calls = append(f.calls, box)
	if len(f.responses) == 0 {
		return nil, nil
	}
	response := f.responses[0]
	f.responses = f.responses[1:]
	return response, nil
}

type fakeHospitalRepository struct {
	facilities []models.Facility
}

func (f *fakeHospitalRepository) FindByCity(ctx context.Context, city string) ([]models.Facility, error) {
	return f.facilities, nil
}

type fakeNominatimClient struct {
	area *models.CityArea
}

func (f *fakeNominatimClient) SearchCity(ctx context.Context, city string) (*models.CityArea, error) {
	return f.area, nil
}

func (f *fakeNominatimClient) ReversePoint(ctx context.Context, lat, lng float64) (*models.Location, error) {
	return nil, nil
}

func newTestInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Discovery: config.Discovery{
			DefaultRadiusKm: 8,
			WidenedRadiusKm: 12,
		},
	}
}

func someFacility() models.Facility {
	return models.Facility{Name: "City Hospital", Status: "Available"}
}

func TestGetNearbyHospitals(t *testing.T) {
	t.Run("Widens Exactly Once When Default Radius Finds Nothing", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{nil, {someFacility()}}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, &fakeNominatimClient{}, newTestInternalConfig(), zap.NewNop())

		response, err := uc.GetNearbyHospitals(context.Background(), 28.6139, 77.2090, 0)

		assert.NoError(t, err)
		assert.Len(t, overpass.calls, 2)
		assert.True(t, response.Widened)
		assert.Equal(t, 12.0, response.RadiusKm)
		assert.Len(t, response.Hospitals, 1)

		// Second search really covered the wider box.
		assert.Less(t, overpass.calls[1].South, overpass.calls[0].South)
		assert.Greater(t, overpass.calls[1].North, overpass.calls[0].North)
	})

	t.Run("Does Not Widen Twice", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{nil, nil}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, &fakeNominatimClient{}, newTestInternalConfig(), zap.NewNop())

		response, err := uc.GetNearbyHospitals(context.Background(), 28.6139, 77.2090, 0)

		assert.NoError(t, err)
		assert.Len(t, overpass.calls, 2)
		assert.True(t, response.Widened)
		assert.Empty(t, response.Hospitals)
	})

	t.Run("Custom Radius Never Widens", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{nil}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, &fakeNominatimClient{}, newTestInternalConfig(), zap.NewNop())

		response, err := uc.GetNearbyHospitals(context.Background(), 28.6139, 77.2090, 5)

		assert.NoError(t, err)
		assert.Len(t, overpass.calls, 1)
		assert.False(t, response.Widened)
		assert.Equal(t, 5.0, response.RadiusKm)
	})

	t.Run("No Widening When Default Radius Finds Results", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{{someFacility()}}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, &fakeNominatimClient{}, newTestInternalConfig(), zap.NewNop())

		response, err := uc.GetNearbyHospitals(context.Background(), 28.6139, 77.2090, 0)

		assert.NoError(t, err)
		assert.Len(t, overpass.calls, 1)
		assert.False(t, response.Widened)
		assert.Equal(t, 8.0, response.RadiusKm)
	})
}

func TestGetHospitalsByCity(t *testing.T) {
	t.Run("Directory Hit Skips Discovery", func(t *testing.T) {
		overpass := &fakeOverpassClient{}
		repo := &fakeHospitalRepository{facilities: []models.Facility{someFacility()}}
		uc := NewHospitalUsecase(repo, overpass, &fakeNominatimClient{}, newTestInternalConfig(), zap.NewNop())

		hospitals, err := uc.GetHospitalsByCity(context.Background(), "Delhi")

		assert.NoError(t, err)
		assert.Len(t, hospitals, 1)
		assert.Equal(t, "directory", hospitals[0].Source)
		assert.Empty(t, overpass.calls)
	})

	t.Run("Empty Directory Falls Back To Overpass", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{{someFacility()}}}
		nominatim := &fakeNominatimClient{area: &models.CityArea{
			City:      "Delhi",
			Latitude:  28.6139,
			Longitude: 77.2090,
			BBox:      &geo.BoundingBox{South: 28.4, West: 76.8, North: 28.9, East: 77.3},
		}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, nominatim, newTestInternalConfig(), zap.NewNop())

		hospitals, err := uc.GetHospitalsByCity(context.Background(), "Delhi")

		assert.NoError(t, err)
		assert.Len(t, hospitals, 1)
		assert.Len(t, overpass.calls, 1)

		// The search box is centered on the midpoint of the provider's
		// bounding box, not the raw box itself.
		box := overpass.calls[0]
		assert.InDelta(t, 28.65, (box.South+box.North)/2, 1e-9)
		assert.InDelta(t, 77.05, (box.West+box.East)/2, 1e-9)
	})

	t.Run("City Query Widens Once When Empty", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{nil, nil}}
		nominatim := &fakeNominatimClient{area: &models.CityArea{
			City:      "Mumbai",
			Latitude:  19.0760,
			Longitude: 72.8777,
			BBox:      &geo.BoundingBox{South: 18.9, West: 72.7, North: 19.3, East: 73.0},
		}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, nominatim, newTestInternalConfig(), zap.NewNop())

		hospitals, err := uc.GetHospitalsByCity(context.Background(), "Mumbai")

		assert.NoError(t, err)
		assert.Empty(t, hospitals)
		assert.Len(t, overpass.calls, 2, "an empty city search retries exactly once at the wider radius")
		assert.Less(t, overpass.calls[1].South, overpass.calls[0].South)
		assert.Greater(t, overpass.calls[1].North, overpass.calls[0].North)
	})

	t.Run("City Query Without Provider Bounding Box Uses The Point", func(t *testing.T) {
		overpass := &fakeOverpassClient{responses: [][]models.Facility{{someFacility()}}}
		nominatim := &fakeNominatimClient{area: &models.CityArea{
			City:      "Pune",
			Latitude:  18.5204,
			Longitude: 73.8567,
		}}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, nominatim, newTestInternalConfig(), zap.NewNop())

		_, err := uc.GetHospitalsByCity(context.Background(), "Pune")

		assert.NoError(t, err)
		assert.Len(t, overpass.calls, 1)
		box := overpass.calls[0]
		assert.InDelta(t, 18.5204, (box.South+box.North)/2, 1e-9)
		assert.InDelta(t, 73.8567, (box.West+box.East)/2, 1e-9)
	})

	t.Run("Unknown City Yields Empty List", func(t *testing.T) {
		overpass := &fakeOverpassClient{}
		uc := NewHospitalUsecase(&fakeHospitalRepository{}, overpass, &fakeNominatimClient{}, newTestInternalConfig(), zap.NewNop())

		hospitals, err := uc.GetHospitalsByCity(context.Background(), "Atlantis")

		assert.NoError(t, err)
		assert.Empty(t, hospitals)
		assert.Empty(t, overpass.calls)
	})
}
