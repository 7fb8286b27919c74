package requests

// BookingEvent is what gets published to the notification queue whenever a
// ticket changes state. A downstream worker turns these into SMS messages.
type BookingEvent struct {
	Type       string `json:"type"`
	Token      string `json:"token"`
	ClinicName string `json:"clinic_name"`
	Email      string `json:"email"`
	EtaMinutes int    `json:"eta_minutes"`
}

const (
	BookingEventBooked      = "booked"
	BookingEventCancelled   = "cancelled"
	BookingEventRescheduled = "rescheduled"
)

type CreateBooking struct {
	ClinicName string `json:"clinic_name" validate:"required,min=2,max=150"`
	Symptoms   string `json:"symptoms" validate:"omitempty,max=500"`
	Emergency  bool   `json:"emergency"`
}
