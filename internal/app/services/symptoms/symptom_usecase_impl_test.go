package symptoms

import (
	"context"
	"healthlink-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeGeminiClient struct {
	text string
	err  error
}

func (f *fakeGeminiClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	return f.text, f.err
}

type fakeTranslateClient struct {
	calls []string
}

func (f *fakeTranslateClient) Translate(ctx context.Context, text, targetLanguage string) string {
	f.calls = append(f.calls, targetLanguage)
	if targetLanguage == "en" {
		return text
	}
	return "[" + targetLanguage + "] " + text
}

const analysisFixture = `{
	"condition": "Common Cold",
	"confidence": "Medium",
	"firstAid": ["Rest", "Drink fluids"],
	"whenToSeeDoctor": ["Fever above 39C"]
}`

func TestAnalyzeSymptoms(t *testing.T) {
	t.Run("English Input Skips Translate-Back", func(t *testing.T) {
		translate := &fakeTranslateClient{}
		uc := NewSymptomUsecase(&fakeGeminiClient{text: analysisFixture}, translate, zap.NewNop())

		analysis, err := uc.AnalyzeSymptoms(context.Background(), &requests.SymptomCheck{Symptoms: "runny nose and sneezing"})

		assert.NoError(t, err)
		assert.Equal(t, "Common Cold", analysis.Condition)
		assert.Equal(t, "Medium", analysis.Confidence)
		assert.Equal(t, []string{"Rest", "Drink fluids"}, analysis.FirstAid)
		assert.Equal(t, []string{"en"}, translate.calls, "only the symptom text should be translated")
	})

	t.Run("Non-English Input Translates Every Field Back", func(t *testing.T) {
		translate := &fakeTranslateClient{}
		uc := NewSymptomUsecase(&fakeGeminiClient{text: analysisFixture}, translate, zap.NewNop())

		analysis, err := uc.AnalyzeSymptoms(context.Background(), &requests.SymptomCheck{
			Symptoms: "nazla aur cheenk",
			Language: "Hindi",
		})

		assert.NoError(t, err)
		assert.Equal(t, "[Hindi] Common Cold", analysis.Condition)
		assert.Equal(t, "[Hindi] Rest", analysis.FirstAid[0])
		assert.Equal(t, "[Hindi] Fever above 39C", analysis.WhenToSeeDoctor[0])
		assert.Equal(t, "Medium", analysis.Confidence, "confidence stays untranslated")
	})

	t.Run("Model Error Propagates", func(t *testing.T) {
		uc := NewSymptomUsecase(&fakeGeminiClient{err: assert.AnError}, &fakeTranslateClient{}, zap.NewNop())

		_, err := uc.AnalyzeSymptoms(context.Background(), &requests.SymptomCheck{Symptoms: "headache"})
		assert.Error(t, err)
	})
}

func TestParseAnalysis(t *testing.T) {
	t.Run("Strict JSON", func(t *testing.T) {
		analysis := parseAnalysis(analysisFixture)
		assert.Equal(t, "Common Cold", analysis.Condition)
		assert.Empty(t, analysis.RawResponse)
	})

	t.Run("JSON Wrapped In Prose", func(t *testing.T) {
		analysis := parseAnalysis("Here is my assessment:\n```json\n" + analysisFixture + "\n```\nTake care!")
		assert.Equal(t, "Common Cold", analysis.Condition)
		assert.Empty(t, analysis.RawResponse)
	})

	t.Run("Unparseable Text Comes Back Raw", func(t *testing.T) {
		analysis := parseAnalysis("I cannot help with that.")
		assert.Empty(t, analysis.Condition)
		assert.Equal(t, "I cannot help with that.", analysis.RawResponse)
	})
}
