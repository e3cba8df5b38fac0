package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"petsitter/config"
	"petsitter/models"
	"petsitter/services/mailer"
)

// InitMailWorker runs the async confirmation-mail worker in background.
func InitMailWorker(sender mailer.Sender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(mailer.TypeBookingConfirmation, handleConfirmationTask(sender))

	go func() {
		log.Println("[MailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(sender mailer.Sender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var booking models.Booking
		if err := json.Unmarshal(task.Payload(), &booking); err != nil {
			log.Printf("[MailWorker] invalid payload: %v", err)
			return err
		}

		msg := mailer.ComposeBookingConfirmation(&booking)
		if err := sender.Send(ctx, msg); err != nil {
			log.Printf("[MailWorker] failed to send confirmation for booking %d: %v", booking.ID, err)
			return err
		}
		return nil
	}
}
