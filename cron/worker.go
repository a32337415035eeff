package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hirewire/config"
	"hirewire/models"
	"hirewire/services/notification"
	"hirewire/services/tasks"
	"hirewire/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// EventQueueRedisOpt is the asynq connection shared by the publisher and the worker.
func EventQueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.EventQueueDB,
	}
}

// NewEventMux routes every interview task type to the notification service.
func NewEventMux(notifSvc notification.NotificationService) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	handler := handleInterviewEventTask(notifSvc)
	mux.HandleFunc(models.EventSlotsProposed, handler)
	mux.HandleFunc(models.EventSlotConfirmed, handler)
	mux.HandleFunc(models.EventGroupRejected, handler)
	mux.HandleFunc(tasks.TypeInterviewReminder, handler)
	return mux
}

// InitEventWorker runs the async worker in background and returns the server
// so the caller can shut it down.
func InitEventWorker(ctx context.Context, notifSvc notification.NotificationService) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		EventQueueRedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewEventMux(notifSvc)

	// Start Redis health monitor
	go monitorRedisConnection(ctx, logger)

	// Start async worker with retry logic
	go func() {
		logger.Info("[EventWorker] Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Warn("[EventWorker] Failed to start worker",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[EventWorker] Max retry attempts reached, events will not be delivered")
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(time.Duration(attempts*2) * time.Second):
			}
		}
	}()

	return srv
}

func handleInterviewEventTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var event models.InterviewEvent
		if err := json.Unmarshal(task.Payload(), &event); err != nil {
			logger.Error("[EventHandler] Invalid payload", zap.String("type", task.Type()), zap.Error(err))
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		if event.Type == "" {
			event.Type = task.Type()
		}

		logger.Info("[EventHandler] Delivering interview event",
			zap.String("type", event.Type),
			zap.String("slotGroupId", event.SlotGroupID))

		if err := notifSvc.NotifyInterviewEvent(ctx, event); err != nil {
			logger.Warn("[EventHandler] Failed to send notification", zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection(ctx context.Context, logger *zap.Logger) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.EventQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("[EventWorker] Redis connection lost", zap.Error(err))
			}
		}
	}
}
