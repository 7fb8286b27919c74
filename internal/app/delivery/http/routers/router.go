package routers

import (
	"fmt"
	"healthlink-service/internal/app/config"
	"healthlink-service/internal/app/delivery/http/middlewares"
	"healthlink-service/internal/app/services/auth"
	"healthlink-service/internal/app/services/bookings"
	"healthlink-service/internal/app/services/geocoding"
	"healthlink-service/internal/app/services/hospitals"
	"healthlink-service/internal/app/services/symptoms"
	"healthlink-service/internal/app/services/users"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	geocodingController *geocoding.GeocodingController,
	hospitalController *hospitals.HospitalController,
	bookingController *bookings.BookingController,
	symptomController *symptoms.SymptomController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			attachGeocodingRoutes(r, geocodingController)

			r.Route("/hospitals", func(r chi.Router) {
				attachHospitalRoutes(r, hospitalController)
			})

			r.Route("/bookings", func(r chi.Router) {
				attachBookingRoutes(r, middlewares, bookingController)
			})

			r.Route("/symptom-checker", func(r chi.Router) {
				attachSymptomRoutes(r, symptomController)
			})
		})
	})
}
