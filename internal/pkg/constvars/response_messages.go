package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// User-related messages
	CreateUserSuccessMessage      = "user created successfully"
	UpdateUserSuccessMessage      = "user updated successfully"
	GetProfileSuccessMessage      = "get profile successfully"
	CompleteProfileSuccessMessage = "profile completed"

	// Auth messages
	LoginSuccessMessage  = "successfully login"
	LogoutSuccessMessage = "successfully logout"

	// Geocoding messages
	GeocodeSuccessMessage        = "location resolved successfully"
	ReverseGeocodeSuccessMessage = "city resolved successfully"

	// Hospital messages
	GetHospitalsSuccessMessage       = "get hospitals successfully"
	GetNearbyHospitalsSuccessMessage = "get nearby hospitals successfully"

	// Booking messages
	CreateBookingSuccessMessage     = "token booked successfully"
	CancelBookingSuccessMessage     = "token cancelled successfully"
	RescheduleBookingSuccessMessage = "token rescheduled successfully"
	GetBookingsSuccessMessage       = "get bookings successfully"

	// Symptom checker messages
	SymptomAnalysisSuccessMessage = "symptoms analyzed successfully"
)
