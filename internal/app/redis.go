package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"faregateway/internal/config"
)

// NewRedisClient connects the client backing the shared rate-limit counters
// and the idempotency response store, instrumenting it with New Relic when an
// application is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if nrApp != nil {
		client.AddHook(&nrRedisHook{app: nrApp})
	}

	// Verify connection.
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// nrRedisHook implements redis.Hook, recording a datastore segment per
// command. Single commands come from the idempotency response store; the
// rate limiter issues its INCR/EXPIRE pair as a pipeline, so both process
// hooks are needed.
type nrRedisHook struct {
	app *newrelic.Application
}

func (h *nrRedisHook) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h *nrRedisHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		txn := newrelic.FromContext(ctx)
		if txn != nil {
			segment := newrelic.DatastoreSegment{
				StartTime:  txn.StartSegmentNow(),
				Product:    newrelic.DatastoreRedis,
				Operation:  cmd.Name(),
				Collection: "redis",
			}
			defer segment.End()
		}
		return next(ctx, cmd)
	}
}

func (h *nrRedisHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		txn := newrelic.FromContext(ctx)
		if txn != nil {
			segment := newrelic.DatastoreSegment{
				StartTime:  txn.StartSegmentNow(),
				Product:    newrelic.DatastoreRedis,
				Operation:  "pipeline:" + pipelineOperation(cmds),
				Collection: "redis",
			}
			defer segment.End()
		}
		return next(ctx, cmds)
	}
}

// pipelineOperation joins the command names of a pipeline so the rate
// limiter's incr/expire pair shows up as one readable segment name.
func pipelineOperation(cmds []redis.Cmder) string {
	names := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		names = append(names, cmd.Name())
	}
	return strings.Join(names, ",")
}
