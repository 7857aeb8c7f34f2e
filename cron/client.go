package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"slotify/config"

	"github.com/hibiken/asynq"
)

const TypeReservationExpire = "reservation:expire"

// ExpirePayload is the task payload for delayed hold cleanup.
type ExpirePayload struct {
	Token string `json:"token"`
}

// AsynqExpiryScheduler enqueues delayed cleanup tasks for reservation holds.
type AsynqExpiryScheduler struct {
	client *asynq.Client
}

// NewExpiryScheduler constructs a scheduler backed by the queue Redis DB.
func NewExpiryScheduler() *AsynqExpiryScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqExpiryScheduler{client: client}
}

// ScheduleCleanup implements scheduling.ExpiryScheduler.
func (s *AsynqExpiryScheduler) ScheduleCleanup(ctx context.Context, token string, delay time.Duration) error {
	payload, err := json.Marshal(ExpirePayload{Token: token})
	if err != nil {
		return fmt.Errorf("failed to marshal expire payload: %w", err)
	}
	task := asynq.NewTask(TypeReservationExpire, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessIn(delay)); err != nil {
		return fmt.Errorf("failed to enqueue expire task: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqExpiryScheduler) Close() error {
	return s.client.Close()
}
