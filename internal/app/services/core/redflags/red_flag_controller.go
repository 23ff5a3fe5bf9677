package redflags

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

type RedFlagController struct {
	Log            *zap.Logger
	RedFlagUsecase contracts.RedFlagUsecase
}

func NewRedFlagController(logger *zap.Logger, redFlagUsecase contracts.RedFlagUsecase) *RedFlagController {
	return &RedFlagController{
		Log:            logger,
		RedFlagUsecase: redFlagUsecase,
	}
}

func (ctrl *RedFlagController) CreateRedFlag(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.CreateRedFlag{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.CreatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.RedFlagUsecase.CreateRedFlag(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RedFlagCreatedSuccess, result)
}

func (ctrl *RedFlagController) UpdateRedFlag(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.UpdateRedFlag{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.RedFlagID = chi.URLParam(r, "redFlagID")
	request.UpdatedBy = r.Header.Get(constvars.HeaderXUserID)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.RedFlagUsecase.UpdateRedFlag(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RedFlagUpdatedSuccess, result)
}

func (ctrl *RedFlagController) FindRedFlagsByMemberID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := &requests.FindRedFlagsByMember{
		MemberID: chi.URLParam(r, "memberID"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	result, err := ctrl.RedFlagUsecase.FindRedFlagsByMemberID(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRedFlagsSuccess, result)
}
