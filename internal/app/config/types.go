package config

type InternalConfig struct {
	App       App
	JWT       JWT
	Geocoding Geocoding
	Overpass  Overpass
	Gemini    Gemini
	Translate Translate
	Discovery Discovery
	Booking   Booking
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Geocoding struct {
	GoogleBaseUrl           string
	GoogleAPIKey            string
	NominatimBaseUrl        string
	RequestTimeoutInSeconds int
}

type Overpass struct {
	// Endpoints is an ordered list of interchangeable interpreter mirrors.
	Endpoints               []string
	RequestTimeoutInSeconds int
}

type Gemini struct {
	BaseUrl                 string
	APIKey                  string
	Model                   string
	RequestTimeoutInSeconds int
}

type Translate struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
}

type Discovery struct {
	DefaultRadiusKm float64
	WidenedRadiusKm float64
}

type Booking struct {
	NotificationQueue  string
	ListExpiryInHours  int
	RescheduleShiftMin int
}
