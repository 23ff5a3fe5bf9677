package routers

import (
	"carehub-service/internal/app/services/core/barriers"
	"carehub-service/internal/app/services/core/careplans"
	"carehub-service/internal/app/services/core/redflags"

	"github.com/go-chi/chi/v5"
)

func attachMemberCareRoutes(
	router chi.Router,
	redFlagController *redflags.RedFlagController,
	barrierController *barriers.BarrierController,
	carePlanController *careplans.CarePlanController,
) {
	router.Get("/{memberID}/red-flags", redFlagController.FindRedFlagsByMemberID)
	router.Get("/{memberID}/barriers", barrierController.FindBarriersByMemberID)
	router.Get("/{memberID}/care-plans", carePlanController.FindCarePlansByMemberID)
}
