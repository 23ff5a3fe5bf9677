package routers

import (
	"carehub-service/internal/app/services/core/carewizard"

	"github.com/go-chi/chi/v5"
)

func attachCareWizardRoutes(router chi.Router, careWizardController *carewizard.CareWizardController) {
	router.Post("/", careWizardController.SubmitCareWizard)
}
