package responses

type Hospital struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	Area      string  `json:"area,omitempty"`
	Phone     string  `json:"phone,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Status    string  `json:"status"`
	Source    string  `json:"source"`
}

type NearbyHospitals struct {
	Hospitals []Hospital `json:"hospitals"`
	RadiusKm  float64    `json:"radius_km"`
	Widened   bool       `json:"widened"`
}
