package carewizard

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/exceptions"
	"carehub-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CareWizardController struct {
	Log               *zap.Logger
	CareWizardUsecase contracts.CareWizardUsecase
}

func NewCareWizardController(logger *zap.Logger, careWizardUsecase contracts.CareWizardUsecase) *CareWizardController {
	return &CareWizardController{
		Log:               logger,
		CareWizardUsecase: careWizardUsecase,
	}
}

func (ctrl *CareWizardController) SubmitCareWizard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CareWizardSubmission{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CreatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.CareWizardUsecase.SubmitCareWizard(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CareWizardSubmitSuccess, result)
}
