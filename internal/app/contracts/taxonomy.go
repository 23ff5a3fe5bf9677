package contracts

import (
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"context"
)

type TaxonomyUsecase interface {
	FindAllRedFlagTypes(ctx context.Context) ([]responses.RedFlagType, error)
	FindAllBarrierTypes(ctx context.Context) ([]responses.BarrierType, error)
	FindAllCarePlanTypes(ctx context.Context) ([]responses.CarePlanType, error)
	// ResolveCarePlanType turns a discriminated type reference into a
	// concrete catalog id, creating a custom entry when needed.
	ResolveCarePlanType(ctx context.Context, reference requests.CarePlanTypeReference) (string, error)
}

type TaxonomyRepository interface {
	FindAllRedFlagTypes(ctx context.Context) ([]models.RedFlagType, error)
	FindRedFlagTypeByID(ctx context.Context, typeID string) (*models.RedFlagType, error)
	FindAllBarrierTypes(ctx context.Context) ([]models.BarrierType, error)
	FindBarrierTypeByID(ctx context.Context, typeID string) (*models.BarrierType, error)
	FindAllCarePlanTypes(ctx context.Context) ([]models.CarePlanType, error)
	FindCarePlanTypeByID(ctx context.Context, typeID string) (*models.CarePlanType, error)
	// UpsertCustomCarePlanType atomically finds or creates the custom
	// entry whose description exactly matches.
	UpsertCustomCarePlanType(ctx context.Context, description string) (*models.CarePlanType, error)
}
