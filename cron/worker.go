package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"scheduly/config"
	"scheduly/services/session"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeSessionCleanup = "session:cleanup"

// InitCleanupWorker schedules and runs the periodic session-cleanup task in
// the background. Backends with native TTLs report zero removals; the sweep
// matters for the memory and database stores.
func InitCleanupWorker(store session.Store) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	}

	interval := config.AppConfig.SessionCleanupMinutes
	if interval <= 0 {
		interval = 60
	}

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register(
		fmt.Sprintf("@every %dm", interval),
		asynq.NewTask(TypeSessionCleanup, nil),
	); err != nil {
		log.Printf("[CleanupWorker] Failed to register cleanup schedule: %v", err)
		return
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionCleanup, handleCleanupTask(store))

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[CleanupWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[CleanupWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[CleanupWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Println("[CleanupWorker] Max retry attempts reached. Sessions will expire lazily.")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleCleanupTask(store session.Store) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		removed, err := store.CleanupExpired(ctx)
		if err != nil {
			log.Printf("[CleanupWorker] Cleanup failed: %v", err)
			return err
		}
		if removed > 0 {
			log.Printf("[CleanupWorker] Removed %d expired sessions", removed)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[CleanupWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
