package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"latitude": "must be a valid latitude",
	"longitude": "must be a valid longitude",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"gt":      true,
	"gte":     true,
	"lt":      true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientGeocodingNotConfigured        = "location lookup is not available right now"
	ErrClientUpstreamUnavailable           = "an external service we depend on is unavailable, please try again"
	ErrClientSymptomCheckerBusy            = "the symptom checker is busy, please try again in a moment"
	ErrClientNoHospitalsFound              = "no hospitals found"
	ErrClientBookingNotFound               = "booking not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseQueryParam    = "cannot parse query parameter %s"
	ErrDevFailedToHashPassword     = "failed to hash password"
	ErrDevInvalidCredentials       = "invalid credentials"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevServerProcess            = "error while processing the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"

	// Usecase messages
	ErrDevEmailAlreadyExists = "email already exists"
	ErrDevUserNotExists      = "user not exists in our system"
	ErrDevBookingNotFound    = "booking token not found for this user"

	// Validation messages
	ErrDevValidationFailed = "validation failed"

	// Authentication messages
	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthGenerateToken         = "failed to generate token"

	// Mongo DB messages
	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBStringNotObjectID        = "given string is not a valid ObjectID"

	// Redis messages
	ErrDevRedisGetNoData      = "no data found in redis for key %s"
	ErrDevRedisGetData        = "failed to get data from redis"
	ErrDevRedisSetData        = "failed to set data to redis"
	ErrDevRedisDeleteData     = "failed to delete data from redis"
	ErrDevRedisStoreSession   = "failed to store session data to redis"

	// RabbitMQ messages
	ErrDevRabbitMQPublish = "failed to publish message to queue %s"

	// Upstream messages
	ErrDevGeocodingNotConfigured   = "geocoding API key is not configured"
	ErrDevGeocodingUpstreamFailure = "geocoding provider returned a failure"
	ErrDevGeminiNotConfigured      = "generative AI API key is not configured"
	ErrDevGeminiUpstreamFailure    = "generative AI provider returned a failure"
	ErrDevGeminiRateLimited        = "generative AI provider rate limited the request twice"
)
