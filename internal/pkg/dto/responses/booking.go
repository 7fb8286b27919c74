package responses

type Booking struct {
	Token         string `json:"token"`
	ClinicName    string `json:"clinic_name"`
	EtaMinutes    int    `json:"eta_minutes"`
	QueuePosition int    `json:"queue_position"`
	Emergency     bool   `json:"emergency"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
