package contracts

import (
	"carehub-service/internal/app/models"
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"context"
)

type RedFlagUsecase interface {
	CreateRedFlag(ctx context.Context, request *requests.CreateRedFlag) (*responses.CreatedRedFlag, error)
	UpdateRedFlag(ctx context.Context, request *requests.UpdateRedFlag) (*responses.RedFlag, error)
	FindRedFlagsByMemberID(ctx context.Context, request *requests.FindRedFlagsByMember) ([]responses.RedFlag, error)
}

type RedFlagRepository interface {
	CreateRedFlag(ctx context.Context, redFlag *models.RedFlag) (redFlagID string, err error)
	FindByID(ctx context.Context, redFlagID string) (*models.RedFlag, error)
	FindByIDAndMemberID(ctx context.Context, redFlagID, memberID string) (*models.RedFlag, error)
	FindByMemberID(ctx context.Context, memberID string) ([]models.RedFlag, error)
	UpdateRedFlag(ctx context.Context, redFlag *models.RedFlag) error
	DeleteByMemberID(ctx context.Context, memberID string) error
}
