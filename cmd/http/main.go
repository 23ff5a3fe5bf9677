package main

import (
	"carehub-service/internal/app/config"
	"carehub-service/internal/app/delivery/http/middlewares"
	"carehub-service/internal/app/delivery/http/routers"
	"carehub-service/internal/app/drivers/database"
	"carehub-service/internal/app/drivers/logger"
	"carehub-service/internal/app/drivers/messaging"
	"carehub-service/internal/app/services/core/barriers"
	"carehub-service/internal/app/services/core/careplans"
	"carehub-service/internal/app/services/core/carewizard"
	"carehub-service/internal/app/services/core/redflags"
	"carehub-service/internal/app/services/core/taxonomy"
	"carehub-service/internal/app/services/members"
	"carehub-service/internal/app/services/shared/careevents"
	"carehub-service/internal/app/services/shared/redis"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	processLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		processLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap, processLog)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			processLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		processLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		processLog.Fatalf("Failed to close connections cleanly: %v", err)
	}

	processLog.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap, processLog *logrus.Logger) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Care events
	careEventService, err := careevents.NewCareEventService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.App.CareEventQueue)
	if err != nil {
		processLog.Fatalf("Failed to set up care event publisher: %v", err)
	}

	// Member service client
	memberClient := members.NewMemberClient(bootstrap.InternalConfig.MemberService.BaseUrl)

	// Taxonomy
	taxonomyMongoRepository := taxonomy.NewTaxonomyMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	taxonomyUsecase := taxonomy.NewTaxonomyUsecase(taxonomyMongoRepository, redisRepository, bootstrap.Logger)
	taxonomyController := taxonomy.NewTaxonomyController(bootstrap.Logger, taxonomyUsecase)

	// Red flags
	redFlagMongoRepository := redflags.NewRedFlagMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	redFlagUsecase := redflags.NewRedFlagUsecase(redFlagMongoRepository, taxonomyMongoRepository, memberClient, careEventService, bootstrap.Logger)
	redFlagController := redflags.NewRedFlagController(bootstrap.Logger, redFlagUsecase)

	// Barriers
	barrierMongoRepository := barriers.NewBarrierMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	barrierUsecase := barriers.NewBarrierUsecase(barrierMongoRepository, redFlagMongoRepository, taxonomyMongoRepository, careEventService, bootstrap.Logger)
	barrierController := barriers.NewBarrierController(bootstrap.Logger, barrierUsecase)

	// Care plans
	carePlanMongoRepository := careplans.NewCarePlanMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	carePlanUsecase := careplans.NewCarePlanUsecase(carePlanMongoRepository, barrierMongoRepository, taxonomyMongoRepository, careEventService, bootstrap.Logger)
	carePlanController := careplans.NewCarePlanController(bootstrap.Logger, carePlanUsecase)

	// Care wizard
	careWizardUsecase := carewizard.NewCareWizardUsecase(
		redFlagMongoRepository,
		barrierMongoRepository,
		carePlanMongoRepository,
		taxonomyMongoRepository,
		taxonomyUsecase,
		memberClient,
		careEventService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	careWizardController := carewizard.NewCareWizardController(bootstrap.Logger, careWizardUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		careWizardController,
		redFlagController,
		barrierController,
		carePlanController,
		taxonomyController,
	)
}
