package routers

import (
	"healthlink-service/internal/app/services/symptoms"

	"github.com/go-chi/chi/v5"
)

func attachSymptomRoutes(router chi.Router, symptomController *symptoms.SymptomController) {
	router.Post("/", symptomController.AnalyzeSymptoms)
}
