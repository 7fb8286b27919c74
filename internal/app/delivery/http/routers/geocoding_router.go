package routers

import (
	"healthlink-service/internal/app/services/geocoding"

	"github.com/go-chi/chi/v5"
)

func attachGeocodingRoutes(router chi.Router, geocodingController *geocoding.GeocodingController) {
	router.Get("/geocode", geocodingController.GeocodeAddress)
	router.Get("/reverse-geocode", geocodingController.ReverseGeocode)
}
