package contracts

import (
	"carehub-service/internal/app/models"
	"context"
)

// MemberClient looks members up in the external member service.
// FindMemberByID returns (nil, nil) when the member does not exist.
type MemberClient interface {
	FindMemberByID(ctx context.Context, memberID string) (*models.Member, error)
}
