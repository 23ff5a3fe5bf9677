package taxonomy

import (
	"carehub-service/internal/app/contracts"
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/constvars"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"carehub-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type taxonomyUsecase struct {
	TaxonomyRepository contracts.TaxonomyRepository
	RedisRepository    contracts.RedisRepository
	Log                *zap.Logger
}

var (
	taxonomyUsecaseInstance contracts.TaxonomyUsecase
	onceTaxonomyUsecase     sync.Once
)

func NewTaxonomyUsecase(
	taxonomyRepository contracts.TaxonomyRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) contracts.TaxonomyUsecase {
	onceTaxonomyUsecase.Do(func() {
		instance := &taxonomyUsecase{
			TaxonomyRepository: taxonomyRepository,
			RedisRepository:    redisRepository,
			Log:                logger,
		}
		taxonomyUsecaseInstance = instance
	})
	return taxonomyUsecaseInstance
}

func (uc *taxonomyUsecase) FindAllRedFlagTypes(ctx context.Context) ([]responses.RedFlagType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("taxonomyUsecase.FindAllRedFlagTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var types []models.RedFlagType
	err := uc.findCachedList(ctx, constvars.RedisKeyRedFlagTypeList, &types, func(ctx context.Context) (interface{}, error) {
		return uc.TaxonomyRepository.FindAllRedFlagTypes(ctx)
	})
	if err != nil {
		return nil, err
	}

	response := make([]responses.RedFlagType, len(types))
	for i, eachType := range types {
		response[i] = responses.RedFlagType{
			ID:          eachType.ID,
			Description: eachType.Description,
		}
	}
	return response, nil
}

func (uc *taxonomyUsecase) FindAllBarrierTypes(ctx context.Context) ([]responses.BarrierType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("taxonomyUsecase.FindAllBarrierTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var barrierTypes []models.BarrierType
	err := uc.findCachedList(ctx, constvars.RedisKeyBarrierTypeList, &barrierTypes, func(ctx context.Context) (interface{}, error) {
		return uc.TaxonomyRepository.FindAllBarrierTypes(ctx)
	})
	if err != nil {
		return nil, err
	}

	var carePlanTypes []models.CarePlanType
	err = uc.findCachedList(ctx, constvars.RedisKeyCarePlanTypeList, &carePlanTypes, func(ctx context.Context) (interface{}, error) {
		return uc.TaxonomyRepository.FindAllCarePlanTypes(ctx)
	})
	if err != nil {
		return nil, err
	}

	carePlanTypesByID := make(map[string]models.CarePlanType, len(carePlanTypes))
	for _, eachType := range carePlanTypes {
		carePlanTypesByID[eachType.ID] = eachType
	}

	response := make([]responses.BarrierType, len(barrierTypes))
	for i, eachType := range barrierTypes {
		allowed := make([]responses.CarePlanType, 0, len(eachType.CarePlanTypeIDs))
		for _, carePlanTypeID := range eachType.CarePlanTypeIDs {
			carePlanType, ok := carePlanTypesByID[carePlanTypeID]
			if !ok {
				continue
			}
			allowed = append(allowed, responses.CarePlanType{
				ID:          carePlanType.ID,
				Description: carePlanType.Description,
				IsCustom:    carePlanType.IsCustom,
			})
		}
		response[i] = responses.BarrierType{
			ID:            eachType.ID,
			Description:   eachType.Description,
			Domain:        eachType.Domain,
			CarePlanTypes: allowed,
		}
	}
	return response, nil
}

func (uc *taxonomyUsecase) FindAllCarePlanTypes(ctx context.Context) ([]responses.CarePlanType, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("taxonomyUsecase.FindAllCarePlanTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var types []models.CarePlanType
	err := uc.findCachedList(ctx, constvars.RedisKeyCarePlanTypeList, &types, func(ctx context.Context) (interface{}, error) {
		return uc.TaxonomyRepository.FindAllCarePlanTypes(ctx)
	})
	if err != nil {
		return nil, err
	}

	response := make([]responses.CarePlanType, len(types))
	for i, eachType := range types {
		response[i] = responses.CarePlanType{
			ID:          eachType.ID,
			Description: eachType.Description,
			IsCustom:    eachType.IsCustom,
		}
	}
	return response, nil
}

func (uc *taxonomyUsecase) ResolveCarePlanType(ctx context.Context, reference requests.CarePlanTypeReference) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("taxonomyUsecase.ResolveCarePlanType called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !reference.IsValid() {
		return "", exceptions.ErrInvalidTaxonomyReference(nil)
	}

	if reference.ExistingID != "" {
		carePlanType, err := uc.TaxonomyRepository.FindCarePlanTypeByID(ctx, reference.ExistingID)
		if err != nil {
			return "", err
		}
		if carePlanType == nil {
			return "", exceptions.ErrCarePlanTypeNotFound(nil)
		}
		return carePlanType.ID, nil
	}

	carePlanType, err := uc.TaxonomyRepository.UpsertCustomCarePlanType(ctx, reference.CustomDescription)
	if err != nil {
		return "", err
	}

	// The catalog changed; drop the cached list so readers see the new entry.
	err = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCarePlanTypeList)
	if err != nil {
		uc.Log.Error("taxonomyUsecase.ResolveCarePlanType error invalidating care plan type cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("taxonomyUsecase.ResolveCarePlanType resolved custom type",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTypeIDKey, carePlanType.ID),
	)
	return carePlanType.ID, nil
}

// findCachedList loads a taxonomy list through the redis cache, falling
// back to MongoDB and repopulating the cache on a miss.
func (uc *taxonomyUsecase) findCachedList(ctx context.Context, redisKey string, dest interface{}, fetch func(ctx context.Context) (interface{}, error)) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cachedData, err := uc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return err
	}

	if cachedData == "" {
		fetched, err := fetch(ctx)
		if err != nil {
			return err
		}

		err = uc.RedisRepository.Set(ctx, redisKey, fetched, 0)
		if err != nil {
			return err
		}

		raw, err := json.Marshal(fetched)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		err = json.Unmarshal(raw, dest)
		if err != nil {
			return exceptions.ErrCannotParseJSON(err)
		}

		uc.Log.Info("taxonomyUsecase.findCachedList fetched and cached data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, redisKey),
		)
		return nil
	}

	err = json.Unmarshal([]byte(cachedData), dest)
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}
