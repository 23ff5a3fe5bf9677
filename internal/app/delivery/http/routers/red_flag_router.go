package routers

import (
	"carehub-service/internal/app/services/core/redflags"

	"github.com/go-chi/chi/v5"
)

func attachRedFlagRoutes(router chi.Router, redFlagController *redflags.RedFlagController) {
	router.Post("/", redFlagController.CreateRedFlag)
	router.Patch("/{redFlagID}", redFlagController.UpdateRedFlag)
}
