package routers

import (
	"carehub-service/internal/app/services/core/barriers"

	"github.com/go-chi/chi/v5"
)

func attachBarrierRoutes(router chi.Router, barrierController *barriers.BarrierController) {
	router.Post("/", barrierController.CreateBarrier)
	router.Patch("/{barrierID}", barrierController.UpdateBarrier)
}
