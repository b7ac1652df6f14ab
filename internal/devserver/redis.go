package devserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"parceldash/internal/config"
)

// NewRedisClient connects the client backing the rider location index and the
// idempotency cache. With a New Relic application attached, every command is
// reported as a datastore segment attributed to the store it serves.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, nrApp *newrelic.Application) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if nrApp != nil {
		client.AddHook(storeTelemetryHook{})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// storeTelemetryHook reports commands as New Relic datastore segments named
// after the devserver store they touch: the rider location GEO index or the
// idempotency cache.
type storeTelemetryHook struct{}

func (storeTelemetryHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (storeTelemetryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		end := startStoreSegment(ctx, cmd.Name(), storeCollection(cmd))
		defer end()
		return next(ctx, cmd)
	}
}

func (storeTelemetryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		collection := "redis"
		if len(cmds) > 0 {
			collection = storeCollection(cmds[0])
		}
		end := startStoreSegment(ctx, "pipeline", collection)
		defer end()
		return next(ctx, cmds)
	}
}

// startStoreSegment opens a datastore segment on the transaction carried in
// ctx, if any, and returns its close func.
func startStoreSegment(ctx context.Context, operation, collection string) func() {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	segment := &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    newrelic.DatastoreRedis,
		Operation:  operation,
		Collection: collection,
	}
	return segment.End
}

// storeCollection names the devserver store a command operates on, keyed by
// the command's first key argument.
func storeCollection(cmd redis.Cmder) string {
	args := cmd.Args()
	if len(args) < 2 {
		return "redis"
	}
	key, ok := args[1].(string)
	if !ok {
		return "redis"
	}
	switch {
	case key == riderLocationKey:
		return "rider_locations"
	case strings.HasPrefix(key, idempotencyPrefix):
		return "idempotency"
	default:
		return "redis"
	}
}
