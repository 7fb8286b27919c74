package geocoding

import (
	"context"
	"fmt"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/models"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type googleGeocodingClient struct {
	BaseUrl    string
	APIKey     string
	HTTPClient *http.Client
	Log        *zap.Logger
}

type googleGeocodeResponse struct {
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

func NewGoogleGeocodingClient(cfg *config.InternalConfig, logger *zap.Logger) GoogleGeocodingClient {
	return &googleGeocodingClient{
		BaseUrl: cfg.Geocoding.GoogleBaseUrl,
		APIKey:  cfg.Geocoding.GoogleAPIKey,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Geocoding.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *googleGeocodingClient) GeocodeAddress(ctx context.Context, query string) (*models.Location, error) {
	requestURL := fmt.Sprintf("%s?address=%s&key=%s", c.BaseUrl, url.QueryEscape(query), url.QueryEscape(c.APIKey))
	response, err := c.fetch(ctx, "GeocodeAddress", requestURL)
	if err != nil {
		return nil, err
	}
	if len(response.Results) == 0 {
		return nil, nil
	}

	result := response.Results[0]
	location := &models.Location{
		Latitude:         result.Geometry.Location.Lat,
		Longitude:        result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
	}
	for _, component := range result.AddressComponents {
		if containsAny(component.Types, "locality", "administrative_area_level_2") {
			location.City = component.LongName
			break
		}
	}
	return location, nil
}

func (c *googleGeocodingClient) ResolveCityFromPoint(ctx context.Context, lat, lng float64) (string, error) {
	latlng := url.QueryEscape(fmt.Sprintf("%f,%f", lat, lng))
	requestURL := fmt.Sprintf("%s?latlng=%s&key=%s", c.BaseUrl, latlng, url.QueryEscape(c.APIKey))
	response, err := c.fetch(ctx, "ResolveCityFromPoint", requestURL)
	if err != nil {
		return "", err
	}
	if len(response.Results) == 0 {
		return "", nil
	}

	for _, component := range response.Results[0].AddressComponents {
		if containsAny(component.Types, "locality", "administrative_area_level_2") {
			return component.LongName, nil
		}
	}
	return "", nil
}

func (c *googleGeocodingClient) fetch(ctx context.Context, operation, requestURL string) (*googleGeocodeResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("googleGeocodingClient."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if c.APIKey == "" {
		return nil, exceptions.ErrGeocodingNotConfigured(nil)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("googleGeocodingClient."+operation+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGeocodingUpstream(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	response := new(googleGeocodeResponse)
	if err := json.NewDecoder(resp.Body).Decode(response); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return response, nil
}

func containsAny(haystack []string, needles ...string) bool {
	for _, value := range haystack {
		for _, needle := range needles {
			if value == needle {
				return true
			}
		}
	}
	return false
}
