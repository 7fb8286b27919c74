package main

import (
	"context"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/delivery/http/middlewares"
	"healthlink-service/internal/app/delivery/http/routers"
	"healthlink-service/internal/app/drivers/database"
	"healthlink-service/internal/app/drivers/logger"
	"healthlink-service/internal/app/drivers/messaging"
	"healthlink-service/internal/app/services/auth"
	"healthlink-service/internal/app/services/bookings"
	"healthlink-service/internal/app/services/geocoding"
	"healthlink-service/internal/app/services/hospitals"
	"healthlink-service/internal/app/services/shared/notifications"
	"healthlink-service/internal/app/services/shared/redis"
	"healthlink-service/internal/app/services/symptoms"
	"healthlink-service/internal/app/services/users"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error while closing app dependencies: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)

	// Notifications
	notificationService, err := notifications.NewNotificationService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Booking.NotificationQueue)
	if err != nil {
		logrus.Fatalf("Failed to initialize notification service: %v", err)
	}

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	userUseCase := users.NewUserUsecase(userMongoRepository, bootstrap.Logger)
	userController := users.NewUserController(userUseCase, bootstrap.Logger)

	// Auth
	authUseCase := auth.NewAuthUsecase(userMongoRepository, redisRepository, bootstrap.InternalConfig, bootstrap.Logger)
	authController := auth.NewAuthController(authUseCase, bootstrap.Logger)

	// Geocoding
	googleGeocodingClient := geocoding.NewGoogleGeocodingClient(bootstrap.InternalConfig, bootstrap.Logger)
	nominatimClient := geocoding.NewNominatimClient(bootstrap.InternalConfig, bootstrap.Logger)
	geocodingUseCase := geocoding.NewGeocodingUsecase(googleGeocodingClient, nominatimClient, bootstrap.Logger)
	geocodingController := geocoding.NewGeocodingController(geocodingUseCase, bootstrap.Logger)

	// Hospitals
	hospitalMongoRepository := hospitals.NewHospitalMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	overpassClient := hospitals.NewOverpassClient(bootstrap.InternalConfig, bootstrap.Logger)
	hospitalUseCase := hospitals.NewHospitalUsecase(hospitalMongoRepository, overpassClient, nominatimClient, bootstrap.InternalConfig, bootstrap.Logger)
	hospitalController := hospitals.NewHospitalController(hospitalUseCase, bootstrap.Logger)

	// Bookings
	bookingRedisRepository := bookings.NewBookingRedisRepository(redisRepository, bootstrap.InternalConfig)
	tokenMongoRepository := bookings.NewTokenMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	bookingUseCase := bookings.NewBookingUsecase(bookingRedisRepository, tokenMongoRepository, notificationService, bootstrap.InternalConfig, bootstrap.Logger)
	bookingController := bookings.NewBookingController(bookingUseCase, bootstrap.Logger)

	// Symptom checker
	geminiClient := symptoms.NewGeminiClient(bootstrap.InternalConfig, bootstrap.Logger)
	translateClient := symptoms.NewTranslateClient(bootstrap.InternalConfig, bootstrap.Logger)
	symptomUseCase := symptoms.NewSymptomUsecase(geminiClient, translateClient, bootstrap.Logger)
	symptomController := symptoms.NewSymptomController(symptomUseCase, bootstrap.Logger)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		geocodingController,
		hospitalController,
		bookingController,
		symptomController,
	)
}
