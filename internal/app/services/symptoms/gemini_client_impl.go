package symptoms

import (
	"bytes"
	"context"
	"fmt"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type geminiClient struct {
	BaseUrl    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
	Log        *zap.Logger

	// sleep is swappable so tests do not wait out real retry delays.
	sleep func(time.Duration)
}

type geminiGenerateRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
}

type geminiGenerateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Type       string `json:"@type"`
			RetryDelay string `json:"retryDelay"`
		} `json:"details"`
	} `json:"error"`
}

func NewGeminiClient(cfg *config.InternalConfig, logger *zap.Logger) GeminiClient {
	return &geminiClient{
		BaseUrl: cfg.Gemini.BaseUrl,
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.Gemini.RequestTimeoutInSeconds) * time.Second,
		},
		Log:   logger,
		sleep: time.Sleep,
	}
}

// GenerateContent retries exactly once on a rate limit, honoring the
// RetryInfo delay the provider reports.
func (c *geminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("geminiClient.GenerateContent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if c.APIKey == "" {
		return "", exceptions.ErrGeminiNotConfigured(nil)
	}

	text, retryDelay, err := c.generate(ctx, prompt)
	if err != nil {
		return "", err
	}
	if retryDelay > 0 {
		c.Log.Warn("geminiClient.GenerateContent rate limited, retrying once",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Duration("retry_delay", retryDelay),
		)
		c.sleep(retryDelay)

		text, retryDelay, err = c.generate(ctx, prompt)
		if err != nil {
			return "", err
		}
		if retryDelay > 0 {
			return "", exceptions.ErrGeminiRateLimited(nil)
		}
	}
	return text, nil
}

// generate returns a non-zero retry delay instead of an error when the
// provider answers 429.
func (c *geminiClient) generate(ctx context.Context, prompt string) (string, time.Duration, error) {
	payload := geminiGenerateRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: constvars.GeminiMaxOutputTokens,
			Temperature:     constvars.GeminiTemperature,
			TopP:            constvars.GeminiTopP,
			TopK:            constvars.GeminiTopK,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", 0, exceptions.ErrCannotMarshalJSON(err)
	}

	requestURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.BaseUrl, c.Model, c.APIKey)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, requestURL, bytes.NewBuffer(body))
	if err != nil {
		return "", 0, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, exceptions.ErrGeminiUpstream(err)
	}

	if resp.StatusCode == constvars.StatusTooManyRequests {
		return "", parseRetryDelay(responseBody), nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return "", 0, exceptions.ErrGeminiUpstream(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	response := new(geminiGenerateResponse)
	if err := json.Unmarshal(responseBody, response); err != nil {
		return "", 0, exceptions.ErrCannotParseJSON(err)
	}
	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", 0, nil
	}
	return response.Candidates[0].Content.Parts[0].Text, 0, nil
}

func parseRetryDelay(body []byte) time.Duration {
	fallback := constvars.GeminiDefaultRetryDelayInSeconds * time.Second

	response := new(geminiErrorResponse)
	if err := json.Unmarshal(body, response); err != nil {
		return fallback
	}
	for _, detail := range response.Error.Details {
		if !strings.Contains(detail.Type, "RetryInfo") || detail.RetryDelay == "" {
			continue
		}
		seconds, err := strconv.Atoi(strings.TrimSuffix(detail.RetryDelay, "s"))
		if err != nil || seconds <= 0 {
			return fallback
		}
		return time.Duration(seconds) * time.Second
	}
	return fallback
}
