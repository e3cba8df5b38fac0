package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"

	"petsitter/config"
	"petsitter/cron"
	"petsitter/database"
	bookingRepoPkg "petsitter/database/repository/booking"
	listingRepoPkg "petsitter/database/repository/listing"
	"petsitter/handlers"
	"petsitter/middleware"
	"petsitter/routes"
	"petsitter/services/booking"
	"petsitter/services/catalog"
	"petsitter/services/mailer"
	"petsitter/services/petapi"
	"petsitter/services/preferences"
	"petsitter/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// async mail pipeline.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer asynqClient.Close()

	var sender mailer.Sender
	if config.AppConfig.EmailAPIKey != "" {
		sender = mailer.NewHTTPSender(
			config.AppConfig.EmailAPIKey,
			config.AppConfig.EmailFromAddr,
			config.AppConfig.EmailFromName,
		)
	} else {
		sender = mailer.LogSender{Logger: logger}
	}
	cron.InitMailWorker(sender)

	// services.
	listingService := catalog.NewDefaultListingService(
		listingRepo,
		catalog.NewRedisFavoriteStore(utils.GetPrefsCacheClient()),
		logger,
	)
	ledgerService := booking.NewDefaultLedgerService(bookingRepo, logger)
	sessionService := booking.NewDefaultSessionService(
		booking.NewRedisDraftStore(utils.GetDraftCacheClient()),
		ledgerService,
		mailer.NewEnqueuer(asynqClient),
		logger,
	)
	breedService := petapi.NewDefaultBreedService(
		config.AppConfig.DogAPIURL,
		config.AppConfig.CatAPIURL,
		utils.GetBreedCacheClient(),
		logger,
	)
	prefService := preferences.NewDefaultPreferenceService(utils.GetPrefsCacheClient(), logger)

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(
		listingService,
		sessionService,
		ledgerService,
		breedService,
		prefService,
	)
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
