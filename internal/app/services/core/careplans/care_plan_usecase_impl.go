package careplans

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

type carePlanUsecase struct {
	CarePlanRepository contracts.CarePlanRepository
	BarrierRepository  contracts.BarrierRepository
	TaxonomyRepository contracts.TaxonomyRepository
	CareEventService   contracts.CareEventService
	Log                *zap.Logger
}

var (
	carePlanUsecaseInstance contracts.CarePlanUsecase
	onceCarePlanUsecase     sync.Once
)

func NewCarePlanUsecase(
	carePlanRepository contracts.CarePlanRepository,
	barrierRepository contracts.BarrierRepository,
	taxonomyRepository contracts.TaxonomyRepository,
	careEventService contracts.CareEventService,
	logger *zap.Logger,
) contracts.CarePlanUsecase {
	onceCarePlanUsecase.Do(func() {
		instance := &carePlanUsecase{
			CarePlanRepository: carePlanRepository,
			BarrierRepository:  barrierRepository,
			TaxonomyRepository: taxonomyRepository,
			CareEventService:   careEventService,
			Log:                logger,
		}
		carePlanUsecaseInstance = instance
	})
	return carePlanUsecaseInstance
}

func (uc *carePlanUsecase) CreateCarePlan(ctx context.Context, request *requests.CreateCarePlan) (*responses.CreatedCarePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.CreateCarePlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
		zap.String(constvars.LoggingTypeIDKey, request.TypeID),
	)

	// A care plan only exists in the context of a barrier owned by the
	// same member.
	barrier, err := uc.BarrierRepository.FindByIDAndMemberID(ctx, request.BarrierID, request.MemberID)
	if err != nil {
		return nil, err
	}
	if barrier == nil {
		return nil, exceptions.ErrBarrierNotFound(nil)
	}

	carePlanType, err := uc.TaxonomyRepository.FindCarePlanTypeByID(ctx, request.TypeID)
	if err != nil {
		return nil, err
	}
	if carePlanType == nil {
		return nil, exceptions.ErrCarePlanTypeNotFound(nil)
	}

	now := time.Now().UTC()
	carePlan := &models.CarePlan{
		MemberID:  request.MemberID,
		TypeID:    request.TypeID,
		BarrierID: request.BarrierID,
		Notes:     request.Notes,
		DueDate:   request.DueDate,
		Status:    models.CareStatusActive,
		CreatedBy: request.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	carePlanID, err := uc.CarePlanRepository.CreateCarePlan(ctx, carePlan)
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constvars.EventActionCreated, request.MemberID, carePlanID)

	uc.Log.Info("carePlanUsecase.CreateCarePlan succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCarePlanIDKey, carePlanID),
	)
	return &responses.CreatedCarePlan{ID: carePlanID}, nil
}

func (uc *carePlanUsecase) UpdateCarePlan(ctx context.Context, request *requests.UpdateCarePlan) (*responses.CarePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.UpdateCarePlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCarePlanIDKey, request.CarePlanID),
	)

	carePlan, err := uc.CarePlanRepository.FindByID(ctx, request.CarePlanID)
	if err != nil {
		return nil, err
	}
	if carePlan == nil {
		return nil, exceptions.ErrCarePlanNotFound(nil)
	}

	statusChanged := false
	if request.Notes != nil {
		carePlan.Notes = *request.Notes
	}
	if request.DueDate != nil {
		carePlan.DueDate = request.DueDate
	}
	if request.Status != nil {
		target := models.CareStatus(*request.Status)
		if !carePlan.Status.CanTransitionTo(target) {
			return nil, exceptions.ErrStatusReversalNotAllowed(nil)
		}
		statusChanged = carePlan.Status != target
		carePlan.Status = target
	}
	carePlan.UpdatedAt = time.Now().UTC()

	err = uc.CarePlanRepository.UpdateCarePlan(ctx, carePlan)
	if err != nil {
		return nil, err
	}

	if statusChanged {
		uc.publishEvent(ctx, constvars.EventActionStatusChanged, carePlan.MemberID, carePlan.ID)
	}

	response := carePlan.ConvertIntoResponse()
	return &response, nil
}

func (uc *carePlanUsecase) DeleteCarePlan(ctx context.Context, request *requests.DeleteCarePlan) (*responses.DeletedCarePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.DeleteCarePlan called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCarePlanIDKey, request.CarePlanID),
	)

	carePlan, err := uc.CarePlanRepository.FindByID(ctx, request.CarePlanID)
	if err != nil {
		return nil, err
	}
	if carePlan == nil {
		return nil, exceptions.ErrCarePlanNotFound(nil)
	}

	deleted, err := uc.CarePlanRepository.DeleteByID(ctx, request.CarePlanID)
	if err != nil {
		return nil, err
	}

	if deleted {
		uc.publishEvent(ctx, constvars.EventActionDeleted, carePlan.MemberID, carePlan.ID)
	}

	return &responses.DeletedCarePlan{Deleted: deleted}, nil
}

func (uc *carePlanUsecase) FindCarePlansByMemberID(ctx context.Context, request *requests.FindCarePlansByMember) ([]responses.CarePlan, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("carePlanUsecase.FindCarePlansByMemberID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
	)

	carePlans, err := uc.CarePlanRepository.FindByMemberID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}

	response := make([]responses.CarePlan, len(carePlans))
	for i, eachCarePlan := range carePlans {
		response[i] = eachCarePlan.ConvertIntoResponse()
	}
	return response, nil
}

// publishEvent is best effort: failures are logged and never surfaced
// to the caller.
func (uc *carePlanUsecase) publishEvent(ctx context.Context, action, memberID, carePlanID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.CareEventService.Publish(ctx, &models.CareEvent{
		Entity:   constvars.EntityCarePlan,
		Action:   action,
		MemberID: memberID,
		EntityID: carePlanID,
	})
	if err != nil {
		uc.Log.Error("carePlanUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingCarePlanIDKey, carePlanID),
			zap.Error(err),
		)
	}
}
