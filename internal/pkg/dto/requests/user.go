package requests

type UpdateProfile struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone   string `json:"phone" validate:"omitempty,min=7,max=20"`
	Address string `json:"address" validate:"omitempty,max=255"`
	City    string `json:"city" validate:"omitempty,max=100"`
}

type CompleteProfile struct {
	Age        int      `json:"age" validate:"required,gt=0,lte=120"`
	Gender     string   `json:"gender" validate:"required,oneof=male female other"`
	BloodGroup string   `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Allergies  []string `json:"allergies" validate:"omitempty,dive,max=100"`
	Conditions []string `json:"conditions" validate:"omitempty,dive,max=100"`
}
