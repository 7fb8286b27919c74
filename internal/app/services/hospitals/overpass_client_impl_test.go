package hospitals

import (
	"context"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/geo"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const overpassFixture = `{
	"elements": [
		{"id": 1, "lat": 28.61, "lon": 77.21, "tags": {"name": "City Hospital", "addr:street": "MG Road", "addr:city": "Delhi", "addr:state": "Delhi", "addr:suburb": "Karol Bagh", "contact:phone": "+91 11 2345 6789"}},
		{"id": 2, "lat": 28.61, "lon": 77.21, "tags": {"name": "City Hospital", "addr:street": "MG Road", "addr:city": "Delhi", "addr:state": "Delhi", "addr:suburb": "Karol Bagh"}},
		{"id": 3, "tags": {"amenity": "clinic"}, "center": {"lat": 28.62, "lon": 77.22}}
	]
}`

func newTestOverpassClient(endpoints []string) *overpassClient {
	return &overpassClient{
		Endpoints:  endpoints,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		Log:        zap.NewNop(),
	}
}

func TestFetchFacilitiesByBBox(t *testing.T) {
	box := geo.BBoxFromCenter(28.6139, 77.2090, 8)

	t.Run("Deduplicates And Normalizes", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.NoError(t, r.ParseForm())
			assert.Contains(t, r.PostForm.Get("data"), `"amenity"~"hospital|clinic"`)
			w.Write([]byte(overpassFixture))
		}))
		defer server.Close()

		client := newTestOverpassClient([]string{server.URL})
		facilities, err := client.FetchFacilitiesByBBox(context.Background(), box)

		assert.NoError(t, err)
		assert.Len(t, facilities, 2, "duplicate elements should collapse")

		assert.Equal(t, "1", facilities[0].ID, "provider element id should survive normalization")
		assert.Equal(t, "City Hospital", facilities[0].Name)
		assert.Equal(t, "MG Road, Karol Bagh, Delhi, Delhi", facilities[0].Address)
		assert.Equal(t, "Delhi", facilities[0].State)
		assert.Equal(t, "Karol Bagh", facilities[0].Area)
		assert.Equal(t, "+91 11 2345 6789", facilities[0].Phone)
		assert.Equal(t, constvars.FacilityStatusAvailable, facilities[0].Status)

		assert.Equal(t, "3", facilities[1].ID)
		assert.Equal(t, constvars.FacilityUnnamedPlaceholder, facilities[1].Name)
		assert.Equal(t, 28.62, facilities[1].Latitude, "way elements fall back to center coordinates")
		assert.Equal(t, 77.22, facilities[1].Longitude)
	})

	t.Run("Falls Over To Next Endpoint", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusGatewayTimeout)
		}))
		defer broken.Close()

		healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(overpassFixture))
		}))
		defer healthy.Close()

		client := newTestOverpassClient([]string{broken.URL, healthy.URL})
		facilities, err := client.FetchFacilitiesByBBox(context.Background(), box)

		assert.NoError(t, err)
		assert.Len(t, facilities, 2)
	})

	t.Run("All Endpoints Down Degrades To Empty", func(t *testing.T) {
		broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer broken.Close()

		client := newTestOverpassClient([]string{broken.URL, broken.URL})
		facilities, err := client.FetchFacilitiesByBBox(context.Background(), box)

		assert.NoError(t, err)
		assert.Empty(t, facilities)
	})
}

func TestNormalizeElement(t *testing.T) {
	t.Run("Area Preference Order", func(t *testing.T) {
		element := overpassElement{
			Tags: map[string]string{
				"name":               "Clinic",
				"addr:neighbourhood": "Shivaji Nagar",
				"addr:city":          "Pune",
			},
		}

		facility := normalizeElement(element)
		assert.Equal(t, "Shivaji Nagar", facility.Area, "neighbourhood wins over city when suburb is absent")
	})

	t.Run("City As Last Area Resort", func(t *testing.T) {
		element := overpassElement{
			Tags: map[string]string{"name": "Clinic", "addr:city": "Pune"},
		}

		facility := normalizeElement(element)
		assert.Equal(t, "Pune", facility.Area)
	})
}
