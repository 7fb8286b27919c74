package hospitals

import (
	"context"
	"fmt"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"
	"healthlink-service/internal/pkg/geo"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type overpassClient struct {
	Endpoints  []string
	HTTPClient *http.Client
	Log        *zap.Logger
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Tags   map[string]string `json:"tags"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func NewOverpassClient(cfg *config.InternalConfig, logger *zap.Logger) OverpassClient {
	return &overpassClient{
		Endpoints: cfg.Overpass.Endpoints,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Overpass.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *overpassClient) FetchFacilitiesByBBox(ctx context.Context, box geo.BoundingBox) ([]models.Facility, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("overpassClient.FetchFacilitiesByBBox called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	query := fmt.Sprintf(constvars.OverpassFacilityQueryFormat, box.South, box.West, box.North, box.East)
	form := url.Values{"data": []string{query}}.Encode()

	// Mirrors are interchangeable; the first one that answers wins. When
	// every mirror is down the search degrades to an empty result instead
	// of failing the request.
	for _, endpoint := range c.Endpoints {
		response, err := c.post(ctx, endpoint, form)
		if err != nil {
			c.Log.Warn("overpassClient.FetchFacilitiesByBBox endpoint failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String("endpoint", endpoint),
				zap.Error(err),
			)
			continue
		}
		return normalizeElements(response.Elements), nil
	}

	c.Log.Warn("overpassClient.FetchFacilitiesByBBox all endpoints failed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return []models.Facility{}, nil
}

func (c *overpassClient) post(ctx context.Context, endpoint, form string) (*overpassResponse, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, strings.NewReader(form))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationFormCharsetUTF8)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGeocodingUpstream(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	response := new(overpassResponse)
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return response, nil
}

func normalizeElements(elements []overpassElement) []models.Facility {
	seen := make(map[string]bool, len(elements))
	facilities := make([]models.Facility, 0, len(elements))

	for _, element := range elements {
		facility := normalizeElement(element)
		key := facility.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		facilities = append(facilities, facility)
	}
	return facilities
}

func normalizeElement(element overpassElement) models.Facility {
	tags := element.Tags

	name := tags["name"]
	if name == "" {
		name = constvars.FacilityUnnamedPlaceholder
	}

	addressParts := make([]string, 0, 5)
	for _, tag := range []string{"addr:housenumber", "addr:street", "addr:suburb", "addr:city", "addr:state"} {
		if tags[tag] != "" {
			addressParts = append(addressParts, tags[tag])
		}
	}

	area := tags["addr:suburb"]
	if area == "" {
		area = tags["addr:neighbourhood"]
	}
	if area == "" {
		area = tags["addr:city"]
	}

	phone := tags["phone"]
	if phone == "" {
		phone = tags["contact:phone"]
	}

	lat, lon := element.Lat, element.Lon
	if lat == 0 && lon == 0 && element.Center != nil {
		lat, lon = element.Center.Lat, element.Center.Lon
	}

	return models.Facility{
		ID:        strconv.FormatInt(element.ID, 10),
		Name:      name,
		Address:   strings.Join(addressParts, ", "),
		City:      tags["addr:city"],
		State:     tags["addr:state"],
		Area:      area,
		Phone:     phone,
		Latitude:  lat,
		Longitude: lon,
		Status:    constvars.FacilityStatusAvailable,
		Source:    "overpass",
	}
}
