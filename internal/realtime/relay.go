package realtime

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"fair-api/internal/metrics"
)

// RelayChannel is the redis pub/sub channel shared by all replicas
const RelayChannel = "crowd-status"

// RedisRelay publishes frames to redis and forwards frames received from
// redis to the local hub, so every replica's clients see every broadcast.
type RedisRelay struct {
	client  *redis.Client
	hub     *Hub
	metrics *metrics.Metrics
	logger  *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRedisRelay creates a relay. Start must be called to receive.
func NewRedisRelay(client *redis.Client, hub *Hub, m *metrics.Metrics, logger *zap.Logger) *RedisRelay {
	return &RedisRelay{
		client:  client,
		hub:     hub,
		metrics: m,
		logger:  logger,
	}
}

// Publish encodes the frame once and hands it to redis
func (r *RedisRelay) Publish(ctx context.Context, destination string, body interface{}) error {
	frame, err := EncodeFrame(destination, body)
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, RelayChannel, frame).Err(); err != nil {
		return fmt.Errorf("publish to redis: %w", err)
	}
	r.metrics.RecordRelayMessage("out")
	return nil
}

// Start subscribes and forwards messages until Stop
func (r *RedisRelay) Start(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, RelayChannel)
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return fmt.Errorf("subscribe to %s: %w", RelayChannel, err)
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer pubsub.Close()
		r.forward(ctx, pubsub.Channel())
	}()

	r.logger.Info("Redis relay subscribed", zap.String("channel", RelayChannel))
	return nil
}

func (r *RedisRelay) forward(ctx context.Context, messages <-chan *redis.Message) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Recovered from panic in redis relay", zap.Any("panic", rec))
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			r.metrics.RecordRelayMessage("in")
			if !r.hub.Broadcast([]byte(msg.Payload)) {
				return
			}
		}
	}
}

// Stop ends the subscription and waits for the forwarder to exit
func (r *RedisRelay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}
