// File: hirewire/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hirewire/config"
	"hirewire/cron"
	"hirewire/database"
	slotgroupRepo "hirewire/database/repository/slotgroup"
	"hirewire/handlers"
	"hirewire/middleware"
	"hirewire/routes"
	"hirewire/services/interview"
	"hirewire/services/notification"
	"hirewire/services/scheduling"
	"hirewire/services/tasks"
	"hirewire/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	businessDays, err := scheduling.NewBusinessCalendar(config.AppConfig.Holidays)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid HOLIDAYS: %v", err)
	}

	// repositories.
	var repo slotgroupRepo.SlotGroupRepository
	if config.UseMemoryStorage() {
		logger.Sugar().Warn("main: STORAGE_DRIVER=memory, slot groups will not survive a restart")
		repo = slotgroupRepo.NewMemorySlotGroupRepo()
	} else {
		db, err := database.InitDB()
		if err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		repo = slotgroupRepo.NewMongoSlotGroupRepo(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure slot group indexes: %v", err)
		}
	}

	utils.InitDraftCache()

	// event queue.
	asynqClient := asynq.NewClient(cron.EventQueueRedisOpt())
	defer asynqClient.Close()

	notificationService, err := notification.NewDefaultNotificationService(notification.LogSender{Logger: logger})
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	worker := cron.InitEventWorker(ctx, notificationService)

	// services.
	interviewService := interview.NewDefaultInterviewService(
		repo,
		tasks.NewAsynqPublisher(asynqClient),
		businessDays,
		config.AppConfig.SlotDuration,
		logger,
	)
	draftService := interview.NewDefaultDraftService(
		utils.GetDraftCacheClient(),
		interviewService,
		config.AppConfig.DraftTTL,
		logger,
	)

	utils.StartHealthMonitor(ctx, time.Minute, []*redis.Client{utils.GetDraftCacheClient()}, database.MongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	interviewHandler := handlers.NewInterviewHandler(interviewService, draftService, logger)
	routes.RegisterRoutes(router, handlers.NewHandlerBundle(interviewHandler))

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
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	worker.Shutdown()
	if err := database.CloseDB(shutdownCtx); err != nil {
		logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
	}
	_ = logger.Sync()

	logger.Sugar().Info("main: server stopped gracefully")
}
