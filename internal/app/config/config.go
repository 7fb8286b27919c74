package config

import (
	"healthlink-service/internal/pkg/utils"
	"strings"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "healthlink"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Geocoding: Geocoding{
			GoogleBaseUrl:           utils.GetEnvString("GEOCODING_GOOGLE_BASE_URL", "https://maps.googleapis.com/maps/api/geocode/json"),
			GoogleAPIKey:            utils.GetEnvString("GOOGLE_MAPS_API_KEY", ""),
			NominatimBaseUrl:        utils.GetEnvString("GEOCODING_NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
			RequestTimeoutInSeconds: utils.GetEnvInt("GEOCODING_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Overpass: Overpass{
			Endpoints: strings.Split(utils.GetEnvString(
				"OVERPASS_ENDPOINTS",
				"https://overpass-api.de/api/interpreter,https://overpass.kumi.systems/api/interpreter,https://z.overpass-api.de/api/interpreter",
			), ","),
			RequestTimeoutInSeconds: utils.GetEnvInt("OVERPASS_REQUEST_TIMEOUT_IN_SECONDS", 25),
		},
		Gemini: Gemini{
			BaseUrl:                 utils.GetEnvString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
			APIKey:                  utils.GetEnvString("GEMINI_API_KEY", ""),
			Model:                   utils.GetEnvString("GEMINI_MODEL", "gemini-2.0-flash-001"),
			RequestTimeoutInSeconds: utils.GetEnvInt("GEMINI_REQUEST_TIMEOUT_IN_SECONDS", 30),
		},
		Translate: Translate{
			BaseUrl:                 utils.GetEnvString("TRANSLATE_BASE_URL", "https://translate.googleapis.com"),
			RequestTimeoutInSeconds: utils.GetEnvInt("TRANSLATE_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		Discovery: Discovery{
			DefaultRadiusKm: utils.GetEnvFloat("DISCOVERY_SEARCH_RADIUS_KM", 8),
			WidenedRadiusKm: utils.GetEnvFloat("DISCOVERY_WIDENED_RADIUS_KM", 12),
		},
		Booking: Booking{
			NotificationQueue:  utils.GetEnvString("BOOKING_NOTIFICATION_QUEUE", "booking_notifications"),
			ListExpiryInHours:  utils.GetEnvInt("BOOKING_LIST_EXPIRY_IN_HOURS", 24),
			RescheduleShiftMin: utils.GetEnvInt("BOOKING_RESCHEDULE_SHIFT_IN_MINUTES", 10),
		},
	}
}
