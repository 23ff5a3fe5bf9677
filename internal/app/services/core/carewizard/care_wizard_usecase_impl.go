package carewizard

import (
	"carehub-service/internal/app/config"
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type careWizardUsecase struct {
	RedFlagRepository  contracts.RedFlagRepository
	BarrierRepository  contracts.BarrierRepository
	CarePlanRepository contracts.CarePlanRepository
	TaxonomyRepository contracts.TaxonomyRepository
	TaxonomyUsecase    contracts.TaxonomyUsecase
	MemberClient       contracts.MemberClient
	CareEventService   contracts.CareEventService
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	careWizardUsecaseInstance contracts.CareWizardUsecase
	onceCareWizardUsecase     sync.Once
)

func NewCareWizardUsecase(
	redFlagRepository contracts.RedFlagRepository,
	barrierRepository contracts.BarrierRepository,
	carePlanRepository contracts.CarePlanRepository,
	taxonomyRepository contracts.TaxonomyRepository,
	taxonomyUsecase contracts.TaxonomyUsecase,
	memberClient contracts.MemberClient,
	careEventService contracts.CareEventService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.CareWizardUsecase {
	onceCareWizardUsecase.Do(func() {
		instance := &careWizardUsecase{
			RedFlagRepository:  redFlagRepository,
			BarrierRepository:  barrierRepository,
			CarePlanRepository: carePlanRepository,
			TaxonomyRepository: taxonomyRepository,
			TaxonomyUsecase:    taxonomyUsecase,
			MemberClient:       memberClient,
			CareEventService:   careEventService,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
		careWizardUsecaseInstance = instance
	})
	return careWizardUsecaseInstance
}

// SubmitCareWizard persists one red flag together with its barriers and
// care plans. The red flag is written first; barriers then fan out
// concurrently, each barrier fanning out again over its care plans. On
// the first failure remaining work is cancelled and already written
// documents are kept, so a submission may land partially.
func (uc *careWizardUsecase) SubmitCareWizard(ctx context.Context, request *requests.CareWizardSubmission) (*responses.CareWizardResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("careWizardUsecase.SubmitCareWizard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMemberIDKey, request.MemberID),
		zap.Int("barrier_count", len(request.RedFlag.Barriers)),
	)

	if _, err := primitive.ObjectIDFromHex(request.MemberID); err != nil {
		return nil, exceptions.ErrInvalidMemberID(err)
	}

	if len(request.RedFlag.Barriers) > uc.InternalConfig.App.MaxBarriersPerSubmission {
		return nil, exceptions.ErrWizardLimitExceeded(nil)
	}
	for _, eachBarrier := range request.RedFlag.Barriers {
		if len(eachBarrier.CarePlans) > uc.InternalConfig.App.MaxCarePlansPerBarrier {
			return nil, exceptions.ErrWizardLimitExceeded(nil)
		}
	}

	member, err := uc.MemberClient.FindMemberByID(ctx, request.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, exceptions.ErrMemberNotFound(nil)
	}

	redFlagType, err := uc.TaxonomyRepository.FindRedFlagTypeByID(ctx, request.RedFlag.TypeID)
	if err != nil {
		return nil, err
	}
	if redFlagType == nil {
		return nil, exceptions.ErrRedFlagTypeNotFound(nil)
	}

	now := time.Now().UTC()
	redFlag := &models.RedFlag{
		MemberID:  request.MemberID,
		TypeID:    request.RedFlag.TypeID,
		Notes:     request.RedFlag.Notes,
		CreatedBy: request.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	redFlagID, err := uc.RedFlagRepository.CreateRedFlag(ctx, redFlag)
	if err != nil {
		return nil, err
	}
	uc.publishEvent(ctx, constvars.EntityRedFlag, constvars.EventActionCreated, request.MemberID, redFlagID)

	var (
		mu          sync.Mutex
		carePlanIDs []string
	)

	group, groupCtx := errgroup.WithContext(ctx)
	for _, eachBarrier := range request.RedFlag.Barriers {
		wizardBarrier := eachBarrier
		group.Go(func() error {
			barrierID, err := uc.createBarrier(groupCtx, request, redFlagID, &wizardBarrier, now)
			if err != nil {
				return err
			}

			planGroup, planCtx := errgroup.WithContext(groupCtx)
			for _, eachCarePlan := range wizardBarrier.CarePlans {
				wizardCarePlan := eachCarePlan
				planGroup.Go(func() error {
					carePlanID, err := uc.createCarePlan(planCtx, request, barrierID, &wizardCarePlan, now)
					if err != nil {
						return err
					}
					mu.Lock()
					carePlanIDs = append(carePlanIDs, carePlanID)
					mu.Unlock()
					return nil
				})
			}
			return planGroup.Wait()
		})
	}
	if err := group.Wait(); err != nil {
		uc.Log.Error("careWizardUsecase.SubmitCareWizard failed after red flag write",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedFlagIDKey, redFlagID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("careWizardUsecase.SubmitCareWizard succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedFlagIDKey, redFlagID),
		zap.Int("care_plan_count", len(carePlanIDs)),
	)
	return &responses.CareWizardResult{IDs: carePlanIDs}, nil
}

func (uc *careWizardUsecase) createBarrier(ctx context.Context, request *requests.CareWizardSubmission, redFlagID string, wizardBarrier *requests.WizardBarrier, now time.Time) (string, error) {
	barrierType, err := uc.TaxonomyRepository.FindBarrierTypeByID(ctx, wizardBarrier.TypeID)
	if err != nil {
		return "", err
	}
	if barrierType == nil {
		return "", exceptions.ErrBarrierTypeNotFound(nil)
	}

	barrier := &models.Barrier{
		MemberID:  request.MemberID,
		TypeID:    wizardBarrier.TypeID,
		RedFlagID: redFlagID,
		Notes:     wizardBarrier.Notes,
		Status:    models.CareStatusActive,
		CreatedBy: request.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	barrierID, err := uc.BarrierRepository.CreateBarrier(ctx, barrier)
	if err != nil {
		return "", err
	}

	uc.publishEvent(ctx, constvars.EntityBarrier, constvars.EventActionCreated, request.MemberID, barrierID)
	return barrierID, nil
}

func (uc *careWizardUsecase) createCarePlan(ctx context.Context, request *requests.CareWizardSubmission, barrierID string, wizardCarePlan *requests.WizardCarePlan, now time.Time) (string, error) {
	typeID, err := uc.TaxonomyUsecase.ResolveCarePlanType(ctx, wizardCarePlan.Type)
	if err != nil {
		return "", err
	}

	carePlan := &models.CarePlan{
		MemberID:  request.MemberID,
		TypeID:    typeID,
		BarrierID: barrierID,
		Notes:     wizardCarePlan.Notes,
		DueDate:   wizardCarePlan.DueDate,
		Status:    models.CareStatusActive,
		CreatedBy: request.CreatedBy,
		CreatedAt: now,
		UpdatedAt: now,
	}
	carePlanID, err := uc.CarePlanRepository.CreateCarePlan(ctx, carePlan)
	if err != nil {
		return "", err
	}

	uc.publishEvent(ctx, constvars.EntityCarePlan, constvars.EventActionCreated, request.MemberID, carePlanID)
	return carePlanID, nil
}

// publishEvent is best effort: failures are logged and never surfaced
// to the caller.
func (uc *careWizardUsecase) publishEvent(ctx context.Context, entity, action, memberID, entityID string) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.CareEventService.Publish(ctx, &models.CareEvent{
		Entity:   entity,
		Action:   action,
		MemberID: memberID,
		EntityID: entityID,
	})
	if err != nil {
		uc.Log.Error("careWizardUsecase.publishEvent failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEntityKey, entity),
			zap.Error(err),
		)
	}
}
