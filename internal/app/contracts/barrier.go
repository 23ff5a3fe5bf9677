package contracts

import (
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"context"
)

type BarrierUsecase interface {
	CreateBarrier(ctx context.Context, request *requests.CreateBarrier) (*responses.CreatedBarrier, error)
	UpdateBarrier(ctx context.Context, request *requests.UpdateBarrier) (*responses.Barrier, error)
	FindBarriersByMemberID(ctx context.Context, request *requests.FindBarriersByMember) ([]responses.Barrier, error)
}

type BarrierRepository interface {
	CreateBarrier(ctx context.Context, barrier *models.Barrier) (barrierID string, err error)
	FindByID(ctx context.Context, barrierID string) (*models.Barrier, error)
	FindByIDAndMemberID(ctx context.Context, barrierID, memberID string) (*models.Barrier, error)
	FindByMemberID(ctx context.Context, memberID string) ([]models.Barrier, error)
	UpdateBarrier(ctx context.Context, barrier *models.Barrier) error
	DeleteByMemberID(ctx context.Context, memberID string) error
}
