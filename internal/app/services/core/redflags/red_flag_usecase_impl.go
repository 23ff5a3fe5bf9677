package redflags

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type redFlagUsecase struct {
	RedFlagRepository  contracts.RedFlagRepository
	TaxonomyRepository contracts.TaxonomyRepository
	MemberClient       contracts.MemberClient
	CareEventService   contracts.CareEventService
	Log                *zap.Logger
}

var (
	redFlagUsecaseInstance contracts.RedFlagUsecase
	onceRedFlagUsecase     sync.Once
)

func NewRedFlagUsecase(
	redFlagRepository contracts.RedFlagRepository,
	taxonomyRepository contracts.TaxonomyRepository,
	memberClient contracts.MemberClient,
	careEventService contracts.CareEventService,
	logger *zap.Logger,
) contracts.RedFlagUsecase {
	onceRedFlagUsecase.Do(func() {
		instance := &redFlagUsecase{
			RedFlagRepository:  redFlagRepository,
			TaxonomyRepository: taxonomyRepository,
			MemberClient:       memberClient,
			CareEventService:   careEventService,
			Log:                logger,
		}
		redFlagUsecaseInstance = instance
	})
	return redFlagUsecaseInstance
}

func (uc *redFlagUsecase) CreateRedFlag(ctx context.Context, request *requests.CreateRedFlag) (*responses.CreatedRedFlag, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("redFlagUsecase.CreateRedFlag called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
		zap.String(constvars.LoggingTypeIDKey, request.TypeID),
	)

	member, err := uc.MemberClient.FindMemberByID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, exceptions.ErrMemberNotFound(nil)
	}

	redFlagType, err := uc.TaxonomyRepository.FindRedFlagTypeByID(ctx, request.TypeID)
	if err != nil {
		return nil, err
	}
	if redFlagType == nil {
		return nil, exceptions.ErrRedFlagTypeNotFound(nil)
	}

	now := time.Now().UTC()
	redFlag := &models.RedFlag{
		MemberID:  request.MemberID,
		TypeID:    request.TypeID,
		Notes:     request.Notes,
		CreatedBy: request.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	redFlagID, err := uc.RedFlagRepository.CreateRedFlag(ctx, redFlag)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.EventActionCreated, request.MemberID, redFlagID)

	uc.Log.Info("redFlagUsecase.CreateRedFlag succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedFlagIDKey, redFlagID),
	)
	return &responses.CreatedRedFlag{ID: redFlagID}, nil
}

func (uc *redFlagUsecase) UpdateRedFlag(ctx context.Context, request *requests.UpdateRedFlag) (*responses.RedFlag, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("redFlagUsecase.UpdateRedFlag called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedFlagIDKey, request.RedFlagID),
	)

	redFlag, err := uc.RedFlagRepository.FindByID(ctx, request.RedFlagID)
	if err != nil {
		return nil, err
	}
	if redFlag == nil {
		return nil, exceptions.ErrRedFlagNotFound(nil)
	}

	statusChanged := false
	if request.Notes != nil {
		redFlag.Notes = *request.Notes
	}
	if request.Status != nil {
		target := models.CareStatus(*request.Status)
		if redFlag.Status != "" && !redFlag.Status.CanTransitionTo(target) {
			return nil, exceptions.ErrStatusReversalNotAllowed(nil)
		}
		statusChanged = redFlag.Status != target
		redFlag.Status = target
	}
	redFlag.UpdatedAt = time.Now().UTC()

	err = uc.RedFlagRepository.UpdateRedFlag(ctx, redFlag)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		uc.publishEvent(ctx, constvars.EventActionStatusChanged, redFlag.MemberID, redFlag.ID)
	}

	response := redFlag.ConvertIntoResponse()
	return &response, nil
}

func (uc *redFlagUsecase) FindRedFlagsByMemberID(ctx context.Context, request *requests.FindRedFlagsByMember) ([]responses.RedFlag, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("redFlagUsecase.FindRedFlagsByMemberID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
	)

	redFlags, err := uc.RedFlagRepository.FindByMemberID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.RedFlag, len(redFlags))
	for i, eachRedFlag := range redFlags {
		response[i] = eachRedFlag.ConvertIntoResponse()
	}
	return response, nil
}

// publishEvent is best effort: the alerting subsystem observing these
// events must not affect the clinical write path.
func (uc *redFlagUsecase) publishEvent(ctx context.Context, action, memberID, redFlagID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.CareEventService.Publish(ctx, &models.CareEvent{
		Entity:   constvars.EntityRedFlag,
		Action:   action,
		MemberID: memberID,
		EntityID: redFlagID,
	})
	if err != nil {
		uc.Log.Error("redFlagUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedFlagIDKey, redFlagID),
			zap.Error(err),
		)
	}
}
