package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func newTestNominatimClient(baseURL string) *nominatimClient {
	return &nominatimClient{
		BaseUrl:    baseURL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Log:        zap.NewNop(),
	}
}

func TestSearchCity(t *testing.T) {
	t.Run("Reorders Bounding Box For Overpass", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Delhi", r.URL.Query().Get("city"))
			assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
			w.Write([]byte(`[{
				"lat": "28.6139",
				"lon": "77.2090",
				"display_name": "Delhi, India",
				"boundingbox": ["28.40", "28.88", "76.84", "77.35"],
				"address": {"state": "Delhi"}
			}]`))
		}))
		defer server.Close()

		client := newTestNominatimClient(server.URL)
		area, err := client.SearchCity(context.Background(), "Delhi")

		assert.NoError(t, err)
		assert.Equal(t, 28.6139, area.Latitude)
		assert.Equal(t, 77.2090, area.Longitude)

		assert.NotNil(t, area.BBox)
		assert.Equal(t, 28.40, area.BBox.South)
		assert.Equal(t, 76.84, area.BBox.West)
		assert.Equal(t, 28.88, area.BBox.North)
		assert.Equal(t, 77.35, area.BBox.East)
	})

	t.Run("Unknown City", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestNominatimClient(server.URL)
		area, err := client.SearchCity(context.Background(), "Atlantis")

		assert.NoError(t, err)
		assert.Nil(t, area)
	})
}

func TestReversePoint(t *testing.T) {
	t.Run("City Fallback Chain", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"display_name": "Hinjewadi, Pune, Maharashtra, India",
				"address": {"suburb": "Hinjewadi", "state": "Maharashtra"}
			}`))
		}))
		defer server.Close()

		client := newTestNominatimClient(server.URL)
		location, err := client.ReversePoint(context.Background(), 18.5913, 73.7389)

		assert.NoError(t, err)
		assert.Equal(t, "Hinjewadi", location.City, "suburb is the last fallback when city, town and village are absent")
		assert.Equal(t, "Maharashtra", location.State)
	})

	t.Run("Town Beats Suburb", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"display_name": "Somewhere",
				"address": {"town": "Alibag", "suburb": "Old Town"}
			}`))
		}))
		defer server.Close()

		client := newTestNominatimClient(server.URL)
		location, err := client.ReversePoint(context.Background(), 18.64, 72.87)

		assert.NoError(t, err)
		assert.Equal(t, "Alibag", location.City)
	})
}
