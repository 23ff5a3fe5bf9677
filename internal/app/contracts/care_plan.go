package contracts

import (
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"context"
)

type CarePlanUsecase interface {
	CreateCarePlan(ctx context.Context, request *requests.CreateCarePlan) (*responses.CreatedCarePlan, error)
	UpdateCarePlan(ctx context.Context, request *requests.UpdateCarePlan) (*responses.CarePlan, error)
	DeleteCarePlan(ctx context.Context, request *requests.DeleteCarePlan) (*responses.DeletedCarePlan, error)
	FindCarePlansByMemberID(ctx context.Context, request *requests.FindCarePlansByMember) ([]responses.CarePlan, error)
}

type CarePlanRepository interface {
	CreateCarePlan(ctx context.Context, carePlan *models.CarePlan) (carePlanID string, err error)
	FindByID(ctx context.Context, carePlanID string) (*models.CarePlan, error)
	FindByMemberID(ctx context.Context, memberID string) ([]models.CarePlan, error)
	UpdateCarePlan(ctx context.Context, carePlan *models.CarePlan) error
	DeleteByID(ctx context.Context, carePlanID string) (bool, error)
	DeleteByMemberID(ctx context.Context, memberID string) error
}
