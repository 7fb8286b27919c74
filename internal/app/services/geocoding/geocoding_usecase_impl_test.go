package geocoding

import (
	"context"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeGoogleClient struct {
	location *models.Location
	city     string
	err      error
}

func (f *fakeGoogleClient) GeocodeAddress(ctx context.Context, query string) (*models.Location, error) {
	return f.location, f.err
}

func (f *fakeGoogleClient) ResolveCityFromPoint(ctx context.Context, lat, lng float64) (string, error) {
	return f.city, f.err
}

type fakeNominatim struct {
	location *models.Location
	calls    int
}

func (f *fakeNominatim) SearchCity(ctx context.Context, city string) (*models.CityArea, error) {
	return nil, nil
}

func (f *fakeNominatim) ReversePoint(ctx context.Context, lat, lng float64) (*models.Location, error) {
	f.calls++
	return f.location, nil
}

func TestReverseGeocodeCity(t *testing.T) {
	t.Run("Prefers Google", func(t *testing.T) {
		nominatim := &fakeNominatim{}
		uc := NewGeocodingUsecase(&fakeGoogleClient{city: "New Delhi"}, nominatim, zap.NewNop())

		resolved, err := uc.ReverseGeocodeCity(context.Background(), 28.63, 77.21)

		assert.NoError(t, err)
		assert.Equal(t, "New Delhi", resolved.City)
		assert.Zero(t, nominatim.calls)
	})

	t.Run("Falls Back To Nominatim Without A Key", func(t *testing.T) {
		google := &fakeGoogleClient{err: exceptions.ErrGeocodingNotConfigured(nil)}
		nominatim := &fakeNominatim{location: &models.Location{City: "Pune"}}
		uc := NewGeocodingUsecase(google, nominatim, zap.NewNop())

		resolved, err := uc.ReverseGeocodeCity(context.Background(), 18.52, 73.85)

		assert.NoError(t, err)
		assert.Equal(t, "Pune", resolved.City)
		assert.Equal(t, 1, nominatim.calls)
	})

	t.Run("Upstream Errors Do Not Trigger The Fallback", func(t *testing.T) {
		google := &fakeGoogleClient{err: exceptions.ErrGeocodingUpstream(nil)}
		nominatim := &fakeNominatim{location: &models.Location{City: "Pune"}}
		uc := NewGeocodingUsecase(google, nominatim, zap.NewNop())

		_, err := uc.ReverseGeocodeCity(context.Background(), 18.52, 73.85)

		assert.Error(t, err)
		assert.Zero(t, nominatim.calls)
	})
}

func TestGeocodeAddressUsecase(t *testing.T) {
	t.Run("Passes Location Through", func(t *testing.T) {
		google := &fakeGoogleClient{location: &models.Location{
			Latitude: 28.63, Longitude: 77.21, City: "New Delhi", FormattedAddress: "Connaught Place, New Delhi",
		}}
		uc := NewGeocodingUsecase(google, &fakeNominatim{}, zap.NewNop())

		location, err := uc.GeocodeAddress(context.Background(), "Connaught Place")

		assert.NoError(t, err)
		assert.Equal(t, "New Delhi", location.City)
		assert.Equal(t, 28.63, location.Latitude)
	})

	t.Run("No Match Stays Nil", func(t *testing.T) {
		uc := NewGeocodingUsecase(&fakeGoogleClient{}, &fakeNominatim{}, zap.NewNop())

		location, err := uc.GeocodeAddress(context.Background(), "nowhere at all")

		assert.NoError(t, err)
		assert.Nil(t, location)
	})
}
