package geocoding

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
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// nominatimClient paces its calls to one per second, which is the usage
// policy of the public OpenStreetMap instance.
type nominatimClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Log        *zap.Logger
}

type nominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	Suburb  string `json:"suburb"`
	State   string `json:"state"`
}

type nominatimReverseResponse struct {
	DisplayName string           `json:"display_name"`
	Address     nominatimAddress `json:"address"`
}

type nominatimSearchItem struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	DisplayName string           `json:"display_name"`
	BoundingBox []string         `json:"boundingbox"`
	Address     nominatimAddress `json:"address"`
}

func NewNominatimClient(cfg *config.InternalConfig, logger *zap.Logger) NominatimClient {
	return &nominatimClient{
		BaseUrl: cfg.Geocoding.NominatimBaseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Geocoding.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Every(time.Second), 1),
		Log:     logger,
	}
}

func (c *nominatimClient) SearchCity(ctx context.Context, city string) (*models.CityArea, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("nominatimClient.SearchCity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("city", city),
	)

	requestURL := fmt.Sprintf("%s/search?format=jsonv2&limit=1&city=%s", c.BaseUrl, url.QueryEscape(city))
	var items []nominatimSearchItem
	if err := c.fetch(ctx, requestURL, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	item := items[0]
	lat, err := strconv.ParseFloat(item.Lat, 64)
	if err != nil {
		return nil, exceptions.ErrGeocodingUpstream(err)
	}
	lon, err := strconv.ParseFloat(item.Lon, 64)
	if err != nil {
		return nil, exceptions.ErrGeocodingUpstream(err)
	}

	area := &models.CityArea{
		City:        city,
		State:       item.Address.State,
		DisplayName: item.DisplayName,
		Latitude:    lat,
		Longitude:   lon,
	}

	// Nominatim reports south, north, west, east; Overpass wants
	// south, west, north, east.
	if len(item.BoundingBox) == 4 {
		south, errS := strconv.ParseFloat(item.BoundingBox[0], 64)
		north, errN := strconv.ParseFloat(item.BoundingBox[1], 64)
		west, errW := strconv.ParseFloat(item.BoundingBox[2], 64)
		east, errE := strconv.ParseFloat(item.BoundingBox[3], 64)
		if errS == nil && errN == nil && errW == nil && errE == nil {
			area.BBox = &geo.BoundingBox{South: south, West: west, North: north, East: east}
		}
	}
	return area, nil
}

func (c *nominatimClient) ReversePoint(ctx context.Context, lat, lng float64) (*models.Location, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("nominatimClient.ReversePoint called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	requestURL := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%s&lon=%s",
		c.BaseUrl,
		url.QueryEscape(strconv.FormatFloat(lat, 'f', -1, 64)),
		url.QueryEscape(strconv.FormatFloat(lng, 'f', -1, 64)),
	)
	response := new(nominatimReverseResponse)
	if err := c.fetch(ctx, requestURL, response); err != nil {
		return nil, err
	}

	city := response.Address.City
	if city == "" {
		city = response.Address.Town
	}
	if city == "" {
		city = response.Address.Village
	}
	if city == "" {
		city = response.Address.Suburb
	}

	return &models.Location{
		Latitude:         lat,
		Longitude:        lng,
		City:             city,
		State:            response.Address.State,
		FormattedAddress: response.DisplayName,
	}, nil
}

func (c *nominatimClient) fetch(ctx context.Context, requestURL string, out interface{}) error {
	if err := c.Limiter.Wait(ctx); err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return exceptions.ErrGeocodingUpstream(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
