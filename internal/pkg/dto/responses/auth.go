package responses

type RegisterUser struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	ProfileCompleted bool   `json:"profile_completed"`
}

type LoginUser struct {
	Token            string `json:"token"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	ProfileCompleted bool   `json:"profile_completed"`
}
