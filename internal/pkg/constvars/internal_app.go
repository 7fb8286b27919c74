package constvars

type ContextKey string

const (
	ResourceUsers     = "users"
	ResourceAuth      = "auth"
	ResourceHospitals = "hospitals"
	ResourceBookings  = "bookings"
	ResourceSymptoms  = "symptom-checker"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLNK_SVC_"
)

const (
	// Token series for queue tickets.
	BookingSeriesEmergency = "E"
	BookingSeriesRegular   = "A"

	// Token numbers are drawn uniformly from [1, BookingTokenNumberMax].
	// Collisions inside the small range are an accepted limitation of the
	// simulated queue.
	BookingTokenNumberMax = 100

	// Emergency tickets get a fixed short ETA; regular tickets are
	// randomized in [BookingEtaMinMinutes, BookingEtaMinMinutes+BookingEtaSpreadMinutes).
	BookingEmergencyEtaMinutes = 5
	BookingEtaMinMinutes       = 5
	BookingEtaSpreadMinutes    = 30

	// Queue position is drawn independently of token number and ETA.
	BookingQueuePositionMax = 12

	BookingRedisKeyFormat = "bookings:%s"
)

const (
	SessionRedisKeyFormat = "session:%s"
)

const (
	// KilometersPerLatitudeDegree is the conversion used for bounding-box
	// math; longitude degrees shrink by cos(latitude).
	KilometersPerLatitudeDegree = 111.0
)

const (
	OverpassFacilityQueryFormat = `
[out:json][timeout:25];
(
  node["amenity"~"hospital|clinic"](%[1]f,%[2]f,%[3]f,%[4]f);
  way["amenity"~"hospital|clinic"](%[1]f,%[2]f,%[3]f,%[4]f);
  relation["amenity"~"hospital|clinic"](%[1]f,%[2]f,%[3]f,%[4]f);
);
out center;`

	FacilityUnnamedPlaceholder = "Unnamed Facility"
	FacilityStatusAvailable    = "Available"
	FacilityDirectoryLimit     = 50
)

const (
	SymptomCanonicalLanguage = "English"
	SymptomCanonicalLangCode = "en"

	// Prompt sent to the generative model. The response is expected to be a
	// JSON object with condition, confidence, firstAid and whenToSeeDoctor.
	SymptomAnalysisPromptFormat = `
You are a professional medical assistant AI.
Analyze the following symptoms and respond strictly in JSON format.
Text: %s

JSON format:
{
  "condition": "<probable condition>",
  "confidence": "<confidence level like 'High (85%%)'>",
  "firstAid": ["<tip1>", "<tip2>", "<tip3>"],
  "whenToSeeDoctor": ["<situation1>", "<situation2>"]
}`

	GeminiDefaultRetryDelayInSeconds = 10
	GeminiMaxOutputTokens            = 500
	GeminiTemperature                = 0.7
	GeminiTopP                       = 0.8
	GeminiTopK                       = 40
)
