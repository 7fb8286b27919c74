package hospitals

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

type HospitalController struct {
	HospitalUsecase HospitalUsecase
	Logger          *zap.Logger
}

func NewHospitalController(hospitalUsecase HospitalUsecase, logger *zap.Logger) *HospitalController {
	return &HospitalController{
		HospitalUsecase: hospitalUsecase,
		Logger:          logger,
	}
}

func (ctrl *HospitalController) GetHospitals(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	if city == "" {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.WrapWithoutError(constvars.StatusBadRequest, "city is required", constvars.ErrDevInvalidInput))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 40*time.Second)
	defer cancel()

	response, err := ctrl.HospitalUsecase.GetHospitalsByCity(ctx, city)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHospitalsSuccessMessage, response)
}

func (ctrl *HospitalController) GetNearbyHospitals(w http.ResponseWriter, r *http.Request) {
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

	var radiusKm float64
	if raw := r.URL.Query().Get("radius"); raw != "" {
		radiusKm, err = utils.ParseFloatQueryParam(r, "radius")
		if err != nil {
			utils.BuildErrorResponse(ctrl.Logger, w, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 40*time.Second)
	defer cancel()

	response, err := ctrl.HospitalUsecase.GetNearbyHospitals(ctx, lat, lng, radiusKm)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNearbyHospitalsSuccessMessage, response)
}
