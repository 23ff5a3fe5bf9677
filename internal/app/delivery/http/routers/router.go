package routers

import (
	"carehub-service/internal/app/config"
	"carehub-service/internal/app/delivery/http/middlewares"
	"carehub-service/internal/app/services/core/barriers"
	"carehub-service/internal/app/services/core/careplans"
	"carehub-service/internal/app/services/core/carewizard"
	"carehub-service/internal/app/services/core/redflags"
	"carehub-service/internal/app/services/core/taxonomy"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	careWizardController *carewizard.CareWizardController,
	redFlagController *redflags.RedFlagController,
	barrierController *barriers.BarrierController,
	carePlanController *careplans.CarePlanController,
	taxonomyController *taxonomy.TaxonomyController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-User-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.UserContextMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/care-wizard", func(r chi.Router) {
				attachCareWizardRoutes(r, careWizardController)
			})

			r.Route("/red-flags", func(r chi.Router) {
				attachRedFlagRoutes(r, redFlagController)
			})

			r.Route("/barriers", func(r chi.Router) {
				attachBarrierRoutes(r, barrierController)
			})

			r.Route("/care-plans", func(r chi.Router) {
				attachCarePlanRoutes(r, carePlanController)
			})

			r.Route("/members", func(r chi.Router) {
				attachMemberCareRoutes(r, redFlagController, barrierController, carePlanController)
			})

			attachTaxonomyRoutes(r, taxonomyController)
		})
	})
}
