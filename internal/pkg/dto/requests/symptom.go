package requests

type SymptomCheck struct {
	Symptoms string `json:"symptoms" validate:"required,min=3,max=1000"`
	Language string `json:"language" validate:"omitempty,max=50"`
}
