package routers

import (
	"carehub-service/internal/app/services/core/taxonomy"

	"github.com/go-chi/chi/v5"
)

func attachTaxonomyRoutes(router chi.Router, taxonomyController *taxonomy.TaxonomyController) {
	router.Get("/red-flag-types", taxonomyController.FindAllRedFlagTypes)
	router.Get("/barrier-types", taxonomyController.FindAllBarrierTypes)
	router.Get("/care-plan-types", taxonomyController.FindAllCarePlanTypes)
}
