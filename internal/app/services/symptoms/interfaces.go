package symptoms

import (
	"context"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/dto/responses"
)

type SymptomUsecase interface {
	AnalyzeSymptoms(ctx context.Context, request *requests.SymptomCheck) (*responses.SymptomAnalysis, error)
}

// GeminiClient sends a prompt to the generative model and returns the raw
// text of the first candidate.
type GeminiClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// TranslateClient translates text to a target language. It never fails the
// caller: when the provider is unreachable the original text comes back.
type TranslateClient interface {
	Translate(ctx context.Context, text, targetLanguage string) string
}
