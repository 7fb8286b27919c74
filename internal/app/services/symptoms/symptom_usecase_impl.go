package symptoms

import (
	"context"
	"fmt"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type symptomUsecase struct {
	GeminiClient    GeminiClient
	TranslateClient TranslateClient
	Logger          *zap.Logger
}

var firstJSONObjectRegex = regexp.MustCompile(constvars.RegexFirstJSONObject)

func NewSymptomUsecase(
	geminiClient GeminiClient,
	translateClient TranslateClient,
	logger *zap.Logger,
) SymptomUsecase {
	return &symptomUsecase{
		GeminiClient:    geminiClient,
		TranslateClient: translateClient,
		Logger:          logger,
	}
}

func (uc *symptomUsecase) AnalyzeSymptoms(ctx context.Context, request *requests.SymptomCheck) (*responses.SymptomAnalysis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Logger.Info("symptomUsecase.AnalyzeSymptoms called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("language", request.Language),
	)

	language := request.Language
	if language == "" {
		language = constvars.SymptomCanonicalLanguage
	}

	// The model is prompted in English regardless of the input language.
	symptoms := uc.TranslateClient.Translate(ctx, request.Symptoms, constvars.SymptomCanonicalLangCode)

	prompt := fmt.Sprintf(constvars.SymptomAnalysisPromptFormat, symptoms)
	text, err := uc.GeminiClient.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	analysis := parseAnalysis(text)

	// Translate structured fields back, one by one; a field that fails
	// simply stays in English.
	if !strings.EqualFold(language, constvars.SymptomCanonicalLanguage) {
		analysis.Condition = uc.TranslateClient.Translate(ctx, analysis.Condition, language)
		for i, tip := range analysis.FirstAid {
			analysis.FirstAid[i] = uc.TranslateClient.Translate(ctx, tip, language)
		}
		for i, situation := range analysis.WhenToSeeDoctor {
			analysis.WhenToSeeDoctor[i] = uc.TranslateClient.Translate(ctx, situation, language)
		}
	}

	return analysis, nil
}

// parseAnalysis tries strict JSON first, then the first brace-delimited
// substring, and finally falls back to handing the raw text to the caller.
func parseAnalysis(text string) *responses.SymptomAnalysis {
	analysis := new(responses.SymptomAnalysis)
	if err := json.Unmarshal([]byte(text), analysis); err == nil {
		return analysis
	}

	if match := firstJSONObjectRegex.FindString(text); match != "" {
		analysis = new(responses.SymptomAnalysis)
		if err := json.Unmarshal([]byte(match), analysis); err == nil {
			return analysis
		}
	}

	return &responses.SymptomAnalysis{RawResponse: text}
}
