package barriers

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

type barrierUsecase struct {
	BarrierRepository  contracts.BarrierRepository
	RedFlagRepository  contracts.RedFlagRepository
	TaxonomyRepository contracts.TaxonomyRepository
	CareEventService   contracts.CareEventService
	Log                *zap.Logger
}

var (
	barrierUsecaseInstance contracts.BarrierUsecase
	onceBarrierUsecase     sync.Once
)

func NewBarrierUsecase(
	barrierRepository contracts.BarrierRepository,
	redFlagRepository contracts.RedFlagRepository,
	taxonomyRepository contracts.TaxonomyRepository,
	careEventService contracts.CareEventService,
	logger *zap.Logger,
) contracts.BarrierUsecase {
	onceBarrierUsecase.Do(func() {
		instance := &barrierUsecase{
			BarrierRepository:  barrierRepository,
			RedFlagRepository:  redFlagRepository,
			TaxonomyRepository: taxonomyRepository,
			CareEventService:   careEventService,
			Log:                logger,
		}
		barrierUsecaseInstance = instance
	})
	return barrierUsecaseInstance
}

func (uc *barrierUsecase) CreateBarrier(ctx context.Context, request *requests.CreateBarrier) (*responses.CreatedBarrier, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("barrierUsecase.CreateBarrier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
		zap.String(constvars.LoggingTypeIDKey, request.TypeID),
	)

	// A barrier only exists in the context of a red flag owned by the
	// same member.
	redFlag, err := uc.RedFlagRepository.FindByIDAndMemberID(ctx, request.RedFlagID, request.MemberID)
	if err != nil {
		return nil, err
	}
	if redFlag == nil {
		return nil, exceptions.ErrRedFlagNotFound(nil)
	}

	barrierType, err := uc.TaxonomyRepository.FindBarrierTypeByID(ctx, request.TypeID)
	if err != nil {
		return nil, err
	}
	if barrierType == nil {
		return nil, exceptions.ErrBarrierTypeNotFound(nil)
	}

	now := time.Now().UTC()
	barrier := &models.Barrier{
		MemberID:  request.MemberID,
		TypeID:    request.TypeID,
		RedFlagID: request.RedFlagID,
		Notes:     request.Notes,
		Status:    models.CareStatusActive,
		CreatedBy: request.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	barrierID, err := uc.BarrierRepository.CreateBarrier(ctx, barrier)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.EventActionCreated, request.MemberID, barrierID)

	uc.Log.Info("barrierUsecase.CreateBarrier succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBarrierIDKey, barrierID),
	)
	return &responses.CreatedBarrier{ID: barrierID}, nil
}

func (uc *barrierUsecase) UpdateBarrier(ctx context.Context, request *requests.UpdateBarrier) (*responses.Barrier, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("barrierUsecase.UpdateBarrier called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBarrierIDKey, request.BarrierID),
	)

	barrier, err := uc.BarrierRepository.FindByID(ctx, request.BarrierID)
	if err != nil {
		return nil, err
	}
	if barrier == nil {
		return nil, exceptions.ErrBarrierNotFound(nil)
	}

	statusChanged := false
	if request.Notes != nil {
		barrier.Notes = *request.Notes
	}
	if request.Status != nil {
		target := models.CareStatus(*request.Status)
		if !barrier.Status.CanTransitionTo(target) {
			return nil, exceptions.ErrStatusReversalNotAllowed(nil)
		}
		statusChanged = barrier.Status != target
		barrier.Status = target
	}
	barrier.UpdatedAt = time.Now().UTC()

	err = uc.BarrierRepository.UpdateBarrier(ctx, barrier)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		uc.publishEvent(ctx, constvars.EventActionStatusChanged, barrier.MemberID, barrier.ID)
	}

	response := barrier.ConvertIntoResponse()
	return &response, nil
}

func (uc *barrierUsecase) FindBarriersByMemberID(ctx context.Context, request *requests.FindBarriersByMember) ([]responses.Barrier, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("barrierUsecase.FindBarriersByMemberID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
	)

	barriers, err := uc.BarrierRepository.FindByMemberID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.Barrier, len(barriers))
	for i, eachBarrier := range barriers {
		response[i] = eachBarrier.ConvertIntoResponse()
	}
	return response, nil
}

// publishEvent is best effort: failures are logged and never surfaced
// to the caller.
func (uc *barrierUsecase) publishEvent(ctx context.Context, action, memberID, barrierID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.CareEventService.Publish(ctx, &models.CareEvent{
		Entity:   constvars.EntityBarrier,
		Action:   action,
		MemberID: memberID,
		EntityID: barrierID,
	})
	if err != nil {
		uc.Log.Error("barrierUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBarrierIDKey, barrierID),
			zap.Error(err),
		)
	}
}
