package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Publisher is the subset of the redis client used for pub/sub delivery.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisNotifier publishes events as JSON on a redis channel.
type RedisNotifier struct {
	client  Publisher
	channel string
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// NewRedisNotifier creates a notifier publishing on channel.
func NewRedisNotifier(client Publisher, channel string, logger *zap.SugaredLogger) *RedisNotifier {
	return &RedisNotifier{
		client:  client,
		channel: channel,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Notify implements Notifier.
func (n *RedisNotifier) Notify(ctx context.Context, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		n.logger.Errorw("failed to encode event", "kind", string(ev.Kind), "error", err)
		return
	}

	// Detached from the request so a finished request does not cancel delivery.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), n.timeout)
	defer cancel()

	if err := n.client.Publish(pubCtx, n.channel, payload).Err(); err != nil {
		n.logger.Warnw("failed to publish event", "kind", string(ev.Kind), "channel", n.channel, "error", err)
	}
}
