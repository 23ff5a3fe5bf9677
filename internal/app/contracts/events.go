package contracts

import (
	"carehub-service/internal/app/models"
	"context"
)

// CareEventService publishes entity life cycle events for the external
// alerting subsystem. Publishing is best effort: callers log failures
// and never fail the originating operation on them.
type CareEventService interface {
	Publish(ctx context.Context, event *models.CareEvent) error
}
