package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "sduclouddb:events:"

// Actions carried by Event.Action.
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionRestored = "restored"
)

// Event announces a committed change to one row.
type Event struct {
	Table  string    `json:"table"`
	Action string    `json:"action"`
	ID     int64     `json:"id"`
	At     time.Time `json:"at"`
}

// Publisher sends change events. Publishing is best effort and never fails
// the write that triggered it.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// Channel returns the pub/sub channel for table.
func Channel(table string) string {
	return channelPrefix + table
}

// RedisPublisher publishes events on Redis pub/sub.
type RedisPublisher struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisPublisher(client *redis.Client, logger *zap.Logger) *RedisPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisPublisher{client: client, logger: logger}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	data, err := json.Marshal(ev)
	if err != nil {
		p.logger.Error("failed to encode change event", zap.Error(err))
		return
	}
	if err := p.client.Publish(ctx, Channel(ev.Table), data).Err(); err != nil {
		p.logger.Warn("failed to publish change event",
			zap.String("table", ev.Table),
			zap.String("action", ev.Action),
			zap.Int64("id", ev.ID),
			zap.Error(err),
		)
	}
}

// NopPublisher drops every event. It is used when REDIS_ADDR is empty.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
