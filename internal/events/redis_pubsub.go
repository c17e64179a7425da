package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisPublisher struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisPublisher(client *redis.Client, log *zap.Logger) *RedisPublisher {
	return &RedisPublisher{client: client, log: log}
}

func (p *RedisPublisher) Publish(ctx context.Context, stream string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.client.Publish(ctx, stream, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", stream, err)
	}
	return nil
}

type RedisSubscriber struct {
	client *redis.Client
	log    *zap.Logger
}

func NewRedisSubscriber(client *redis.Client, log *zap.Logger) *RedisSubscriber {
	return &RedisSubscriber{client: client, log: log}
}

// Subscribe confirms the subscription before returning, then feeds events to
// handler from a goroutine until ctx is cancelled. Malformed payloads are
// dropped with a warning.
func (s *RedisSubscriber) Subscribe(ctx context.Context, stream string, handler func(Event)) error {
	sub := s.client.Subscribe(ctx, stream)
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", stream, err)
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
				var event Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					s.log.Warn("dropping malformed event",
						zap.String("stream", stream), zap.Error(err))
					continue
				}
				handler(event)
			}
		}
	}()

	return nil
}
