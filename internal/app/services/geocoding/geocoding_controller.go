package geocoding

import (
	"context"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/exceptions"
	"healthlink-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type GeocodingController struct {
	GeocodingUsecase GeocodingUsecase
	Logger           *zap.Logger
}

func NewGeocodingController(geocodingUsecase GeocodingUsecase, logger *zap.Logger) *GeocodingController {
	return &GeocodingController{
		GeocodingUsecase: geocodingUsecase,
		Logger:           logger,
	}
}

func (ctrl *GeocodingController) GeocodeAddress(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.WrapWithoutError(constvars.StatusBadRequest, "q is required", constvars.ErrDevInvalidInput))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.GeocodingUsecase.GeocodeAddress(ctx, query)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GeocodeSuccessMessage, response)
}

func (ctrl *GeocodingController) ReverseGeocode(w http.ResponseWriter, r *http.Request) {
	lat, err := utils.ParseFloatQueryParam(r, "lat")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}
	lng, err := utils.ParseFloatQueryParam(r, "lng")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.GeocodingUsecase.ReverseGeocodeCity(ctx, lat, lng)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReverseGeocodeSuccessMessage, response)
}
