package responses

type SymptomAnalysis struct {
	Condition       string   `json:"condition,omitempty"`
	Confidence      string   `json:"confidence,omitempty"`
	FirstAid        []string `json:"firstAid,omitempty"`
	WhenToSeeDoctor []string `json:"whenToSeeDoctor,omitempty"`
	RawResponse     string   `json:"rawResponse,omitempty"`
}
