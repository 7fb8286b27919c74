package symptoms

import (
	"context"
	"fmt"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/pkg/constvars"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// translateClient uses the keyless gtx endpoint. Translation is cosmetic
// here, so every failure path returns the untranslated input.
type translateClient struct {
	BaseUrl    string
	HTTPClient *http.Client
	Log        *zap.Logger
}

// languageCodes maps the language names the clients send to ISO codes the
// endpoint understands. Unknown names pass through unchanged.
var languageCodes = map[string]string{
	"english":    "en",
	"hindi":      "hi",
	"bengali":    "bn",
	"tamil":      "ta",
	"telugu":     "te",
	"marathi":    "mr",
	"gujarati":   "gu",
	"kannada":    "kn",
	"malayalam":  "ml",
	"punjabi":    "pa",
	"urdu":       "ur",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"portuguese": "pt",
	"arabic":     "ar",
	"chinese":    "zh",
	"japanese":   "ja",
	"indonesian": "id",
}

func NewTranslateClient(cfg *config.InternalConfig, logger *zap.Logger) TranslateClient {
	return &translateClient{
		BaseUrl: cfg.Translate.BaseUrl,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Translate.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *translateClient) Translate(ctx context.Context, text, targetLanguage string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	target := languageCode(targetLanguage)
	requestURL := fmt.Sprintf("%s/translate_a/single?client=gtx&sl=auto&tl=%s&dt=t&q=%s",
		c.BaseUrl, url.QueryEscape(target), url.QueryEscape(text))

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return text
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Warn("translateClient.Translate request failed", zap.Error(err))
		return text
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		c.Log.Warn("translateClient.Translate unexpected status", zap.Int("status", resp.StatusCode))
		return text
	}

	// The gtx response is a nested array; the first element holds segment
	// pairs of [translated, original, ...].
	var payload []interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || len(payload) == 0 {
		return text
	}
	segments, ok := payload[0].([]interface{})
	if !ok {
		return text
	}

	var builder strings.Builder
	for _, segment := range segments {
		pair, ok := segment.([]interface{})
		if !ok || len(pair) == 0 {
			continue
		}
		if translated, ok := pair[0].(string); ok {
			builder.WriteString(translated)
		}
	}
	if builder.Len() == 0 {
		return text
	}
	return builder.String()
}

func languageCode(language string) string {
	normalized := strings.ToLower(strings.TrimSpace(language))
	if code, ok := languageCodes[normalized]; ok {
		return code
	}
	return normalized
}
