package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const googleGeocodeFixture = `{
	"status": "OK",
	"results": [
		{
			"formatted_address": "Connaught Place, New Delhi, Delhi 110001, India",
			"address_components": [
				{"long_name": "Connaught Place", "types": ["sublocality_level_1"]},
				{"long_name": "New Delhi", "types": ["locality", "political"]},
				{"long_name": "Delhi", "types": ["administrative_area_level_1"]}
			],
			"geometry": {"location": {"lat": 28.6315, "lng": 77.2167}}
		}
	]
}`

func newTestGoogleClient(baseURL string) *googleGeocodingClient {
	return &googleGeocodingClient{
		BaseUrl:    baseURL,
		APIKey:     "test-key",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Log:        zap.NewNop(),
	}
}

func TestGeocodeAddress(t *testing.T) {
	t.Run("Extracts City From Locality", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Connaught Place", r.URL.Query().Get("address"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			w.Write([]byte(googleGeocodeFixture))
		}))
		defer server.Close()

		client := newTestGoogleClient(server.URL)
		location, err := client.GeocodeAddress(context.Background(), "Connaught Place")

		assert.NoError(t, err)
		assert.Equal(t, "New Delhi", location.City)
		assert.Equal(t, 28.6315, location.Latitude)
		assert.Equal(t, 77.2167, location.Longitude)
		assert.Equal(t, "Connaught Place, New Delhi, Delhi 110001, India", location.FormattedAddress)
	})

	t.Run("No Results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
		}))
		defer server.Close()

		client := newTestGoogleClient(server.URL)
		location, err := client.GeocodeAddress(context.Background(), "nowhere at all")

		assert.NoError(t, err)
		assert.Nil(t, location)
	})

	t.Run("Missing API Key", func(t *testing.T) {
		client := newTestGoogleClient("http://unused.invalid")
		client.APIKey = ""

		_, err := client.GeocodeAddress(context.Background(), "Connaught Place")
		assert.Error(t, err)
	})

	t.Run("Upstream Failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := newTestGoogleClient(server.URL)
		_, err := client.GeocodeAddress(context.Background(), "Connaught Place")

		assert.Error(t, err)
	})
}

func TestResolveCityFromPoint(t *testing.T) {
	t.Run("Reads Locality Component", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NotEmpty(t, r.URL.Query().Get("latlng"))
			w.Write([]byte(googleGeocodeFixture))
		}))
		defer server.Close()

		client := newTestGoogleClient(server.URL)
		city, err := client.ResolveCityFromPoint(context.Background(), 28.6315, 77.2167)

		assert.NoError(t, err)
		assert.Equal(t, "New Delhi", city)
	})

	t.Run("No Usable Component", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"status": "OK",
				"results": [{"formatted_address": "Somewhere", "address_components": [], "geometry": {"location": {"lat": 1, "lng": 2}}}]
			}`))
		}))
		defer server.Close()

		client := newTestGoogleClient(server.URL)
		city, err := client.ResolveCityFromPoint(context.Background(), 1, 2)

		assert.NoError(t, err)
		assert.Empty(t, city)
	})
}
