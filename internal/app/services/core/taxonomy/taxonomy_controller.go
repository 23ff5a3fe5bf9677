package taxonomy

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/exceptions"
	"carehub-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type TaxonomyController struct {
	Log             *zap.Logger
	TaxonomyUsecase contracts.TaxonomyUsecase
}

func NewTaxonomyController(logger *zap.Logger, taxonomyUsecase contracts.TaxonomyUsecase) *TaxonomyController {
	return &TaxonomyController{
		Log:             logger,
		TaxonomyUsecase: taxonomyUsecase,
	}
}

func (ctrl *TaxonomyController) FindAllRedFlagTypes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TaxonomyUsecase.FindAllRedFlagTypes(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRedFlagTypesSuccess, result)
}

func (ctrl *TaxonomyController) FindAllBarrierTypes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TaxonomyUsecase.FindAllBarrierTypes(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBarrierTypesSuccess, result)
}

func (ctrl *TaxonomyController) FindAllCarePlanTypes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.TaxonomyUsecase.FindAllCarePlanTypes(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCarePlanTypesSuccess, result)
}
