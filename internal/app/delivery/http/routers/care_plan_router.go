package routers

import (
	"carehub-service/internal/app/services/core/careplans"

	"github.com/go-chi/chi/v5"
)

func attachCarePlanRoutes(router chi.Router, carePlanController *careplans.CarePlanController) {
	router.Post("/", carePlanController.CreateCarePlan)
	router.Patch("/{carePlanID}", carePlanController.UpdateCarePlan)
	router.Delete("/{carePlanID}", carePlanController.DeleteCarePlan)
}
