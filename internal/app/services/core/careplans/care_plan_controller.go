package careplans

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

type CarePlanController struct {
	Log             *zap.Logger
	CarePlanUsecase contracts.CarePlanUsecase
}

func NewCarePlanController(logger *zap.Logger, carePlanUsecase contracts.CarePlanUsecase) *CarePlanController {
	return &CarePlanController{
		Log:             logger,
		CarePlanUsecase: carePlanUsecase,
	}
}

func (ctrl *CarePlanController) CreateCarePlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateCarePlan{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CreatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.CarePlanUsecase.CreateCarePlan(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CarePlanCreatedSuccess, result)
}

func (ctrl *CarePlanController) UpdateCarePlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.UpdateCarePlan{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CarePlanID = chi.URLParam(r, "carePlanID")
	request.UpdatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.CarePlanUsecase.UpdateCarePlan(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CarePlanUpdatedSuccess, result)
}

func (ctrl *CarePlanController) DeleteCarePlan(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.DeleteCarePlan{
		CarePlanID:       chi.URLParam(r, "carePlanID"),
		RequestingUserID: r.Header.Get(constvars.HeaderXUserID),
	}
	if request.CarePlanID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, "carePlanID"))
		return
	}

	result, err := ctrl.CarePlanUsecase.DeleteCarePlan(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CarePlanDeletedSuccess, result)
}

func (ctrl *CarePlanController) FindCarePlansByMemberID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.FindCarePlansByMember{
		MemberID: chi.URLParam(r, "memberID"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.CarePlanUsecase.FindCarePlansByMemberID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCarePlansSuccess, result)
}
