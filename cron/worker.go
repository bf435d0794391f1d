package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"luxora/config"
	"luxora/models"
	"luxora/services/reconcile"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const (
	TypeReconcilePurge     = "reconcile:purge"
	TypeReconcileNormalize = "reconcile:normalize"
)

// SweepPayload scopes one reconciliation task to a company. Apply=false
// tasks only log the report.
type SweepPayload struct {
	CompanyID string `json:"companyId"`
	Apply     bool   `json:"apply"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewSweepClient returns an asynq client for enqueueing sweeps.
func NewSweepClient() *asynq.Client {
	return asynq.NewClient(redisOpts())
}

// EnqueueSweep schedules both reconciliation sweeps for one company.
func EnqueueSweep(client *asynq.Client, companyID string, apply bool) error {
	payload, err := json.Marshal(SweepPayload{CompanyID: companyID, Apply: apply})
	if err != nil {
		return err
	}
	if _, err := client.Enqueue(asynq.NewTask(TypeReconcilePurge, payload)); err != nil {
		return err
	}
	_, err = client.Enqueue(asynq.NewTask(TypeReconcileNormalize, payload))
	return err
}

// InitReconcileWorker runs the async worker in background.
func InitReconcileWorker(guard *reconcile.Guard) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReconcilePurge, handlePurgeTask(guard))
	mux.HandleFunc(TypeReconcileNormalize, handleNormalizeTask(guard))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePurgeTask(guard *reconcile.Guard) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p SweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileWorker] invalid payload: %v", err)
			return err
		}
		report, err := guard.PurgeOrphanedPayouts(ctx, models.Scope{CompanyID: p.CompanyID}, p.Apply)
		if err != nil {
			log.Printf("[ReconcileWorker] purge failed for %s: %v", p.CompanyID, err)
			return err
		}
		log.Printf("[ReconcileWorker] purge %s: %d deletions, %d upserts, %d unresolved (applied=%v)",
			p.CompanyID, report.Deletions, report.Upserts, report.Unresolved, report.Applied)
		return nil
	}
}

func handleNormalizeTask(guard *reconcile.Guard) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p SweepPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReconcileWorker] invalid payload: %v", err)
			return err
		}
		report, err := guard.NormalizeDirectory(ctx, models.Scope{CompanyID: p.CompanyID}, p.Apply)
		if err != nil {
			log.Printf("[ReconcileWorker] normalize failed for %s: %v", p.CompanyID, err)
			return err
		}
		log.Printf("[ReconcileWorker] normalize %s: %d upserts, %d deletions, %d unresolved (applied=%v)",
			p.CompanyID, report.Upserts, report.Deletions, report.Unresolved, report.Applied)
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
