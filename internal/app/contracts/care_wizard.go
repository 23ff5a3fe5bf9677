package contracts

import (
	"carehub-service/internal/pkg/dto/requests"
	"carehub-service/internal/pkg/dto/responses"
	"context"
)

type CareWizardUsecase interface {
	SubmitCareWizard(ctx context.Context, request *requests.CareWizardSubmission) (*responses.CareWizardResult, error)
}
