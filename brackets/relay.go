package brackets

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const relayPattern = "tournament:*:changed"

func relayChannel(tournamentID int) string {
	return fmt.Sprintf("tournament:%d:changed", tournamentID)
}

// RedisRelay fans "tournament changed" notifications out to every instance:
// publishers go through Redis, each instance forwards to its own Hub.
type RedisRelay struct {
	rdb    *redis.Client
	hub    *Hub
	logger *slog.Logger
}

func NewRedisRelay(rdb *redis.Client, hub *Hub, logger *slog.Logger) *RedisRelay {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisRelay{rdb: rdb, hub: hub, logger: logger}
}

func (r *RedisRelay) TournamentChanged(ctx context.Context, tournamentID int) error {
	if err := r.rdb.Publish(ctx, relayChannel(tournamentID), strconv.Itoa(tournamentID)).Err(); err != nil {
		return fmt.Errorf("failed to publish change for tournament %d: %w", tournamentID, err)
	}
	return nil
}

// Start subscribes synchronously and forwards messages in the background until ctx is done.
func (r *RedisRelay) Start(ctx context.Context) error {
	sub := r.rdb.PSubscribe(ctx, relayPattern)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("failed to subscribe to %s: %w", relayPattern, err)
	}

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				r.forward(ctx, msg)
			}
		}
	}()
	return nil
}

func (r *RedisRelay) forward(ctx context.Context, msg *redis.Message) {
	id, err := strconv.Atoi(strings.TrimSpace(msg.Payload))
	if err != nil {
		r.logger.Warn("relay: ignoring malformed payload", slog.String("channel", msg.Channel), slog.String("payload", msg.Payload))
		return
	}
	_ = r.hub.TournamentChanged(ctx, id)
}
