package barriers

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/exceptions"
	"carehub-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type BarrierController struct {
	Log            *zap.Logger
	BarrierUsecase contracts.BarrierUsecase
}

func NewBarrierController(logger *zap.Logger, barrierUsecase contracts.BarrierUsecase) *BarrierController {
	return &BarrierController{
		Log:            logger,
		BarrierUsecase: barrierUsecase,
	}
}

func (ctrl *BarrierController) CreateBarrier(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateBarrier{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CreatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.BarrierUsecase.CreateBarrier(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BarrierCreatedSuccess, result)
}

func (ctrl *BarrierController) UpdateBarrier(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.UpdateBarrier{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.BarrierID = chi.URLParam(r, "barrierID")
	request.UpdatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.BarrierUsecase.UpdateBarrier(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BarrierUpdatedSuccess, result)
}

func (ctrl *BarrierController) FindBarriersByMemberID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.FindBarriersByMember{
		MemberID: chi.URLParam(r, "memberID"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.BarrierUsecase.FindBarriersByMemberID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBarriersSuccess, result)
}
