package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/SachinKokare07/partner-app/config"
	"github.com/SachinKokare07/partner-app/services/mail"

	"github.com/hibiken/asynq"
)

const TypeWelcomeEmail = "email:welcome"

// WelcomeEmailPayload is the task body for a queued welcome email.
type WelcomeEmailPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// EmailQueue enqueues transactional emails for background delivery with
// queue-level retries.
type EmailQueue struct {
	client *asynq.Client
}

// NewEmailQueue creates a queue client on the configured Redis.
func NewEmailQueue() *EmailQueue {
	return &EmailQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPass,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

// EnqueueWelcomeEmail queues a welcome email for the freshly verified account.
func (q *EmailQueue) EnqueueWelcomeEmail(email, name string) error {
	payload, err := json.Marshal(WelcomeEmailPayload{Email: email, Name: name})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeWelcomeEmail, payload)
	_, err = q.client.Enqueue(task, asynq.MaxRetry(5), asynq.Timeout(30*time.Second))
	return err
}

// InitEmailWorker runs the async worker in background.
func InitEmailWorker(mailer mail.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeWelcomeEmail, handleWelcomeEmailTask(mailer))

	go func() {
		log.Println("[EmailWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleWelcomeEmailTask(mailer mail.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p WelcomeEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] invalid payload: %v", err)
			return err
		}

		if err := mailer.SendWelcomeEmail(p.Email, p.Name); err != nil {
			log.Printf("[EmailWorker] failed to send welcome email to %s: %v", p.Email, err)
			return err
		}
		return nil
	}
}
