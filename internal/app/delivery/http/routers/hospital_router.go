package routers

import (
	"healthlink-service/internal/app/services/hospitals"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, hospitalController *hospitals.HospitalController) {
	router.Get("/", hospitalController.GetHospitals)
	router.Get("/nearby", hospitalController.GetNearbyHospitals)
}
