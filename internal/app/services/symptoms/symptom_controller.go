package symptoms

import (
	"context"
	"healthlink-service/internal/pkg/constvars"
	"healthlink-service/internal/pkg/dto/requests"
	"healthlink-service/internal/pkg/exceptions"
	"healthlink-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SymptomController struct {
	SymptomUsecase SymptomUsecase
	Logger         *zap.Logger
}

func NewSymptomController(symptomUsecase SymptomUsecase, logger *zap.Logger) *SymptomController {
	return &SymptomController{
		SymptomUsecase: symptomUsecase,
		Logger:         logger,
	}
}

func (ctrl *SymptomController) AnalyzeSymptoms(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.SymptomCheck)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Sanitize request
	utils.SanitizeSymptomCheckRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrInputValidation(err))
		return
	}

	// The analysis can legitimately take a while: translation, the model
	// call with a possible rate-limit retry, then translation back.
	ctx, cancel := context.WithTimeout(r.Context(), 40*time.Second)
	defer cancel()

	response, err := ctrl.SymptomUsecase.AnalyzeSymptoms(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Logger, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Logger, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SymptomAnalysisSuccessMessage, response)
}
