package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"slotify/config"
	"slotify/services/reservation"

	"github.com/hibiken/asynq"
)

// InitExpiryWorker runs the async worker in background. The worker is pure
// housekeeping: ledger expiry is lazy, so a lost or late task never affects
// correctness, it only leaves a dead token index entry a little longer.
func InitExpiryWorker(ledger reservation.Ledger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeReservationExpire, handleExpireTask(ledger))

	// Start async worker with retry logic
	go func() {
		log.Println("[ExpiryWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ExpiryWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ExpiryWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleExpireTask(ledger reservation.Ledger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ExpirePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ExpiryWorker] Invalid payload: %v", err)
			return err
		}

		// Release is an idempotent no-op when the hold already expired,
		// was confirmed, or was released by the client.
		if err := ledger.Release(ctx, p.Token); err != nil {
			log.Printf("[ExpiryWorker] Failed to clean up hold %s: %v", p.Token, err)
			return err
		}
		return nil
	}
}
