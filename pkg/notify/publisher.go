package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/statusguard/pkg/logger"
	"github.com/dmitrymomot/statusguard/pkg/transition"
)

var (
	ErrEmptyChannel    = errors.New("notify: channel name cannot be empty")
	ErrFailedToEncode  = errors.New("notify: failed to encode event")
	ErrFailedToPublish = errors.New("notify: failed to publish event")
	ErrFailedToAppend  = errors.New("notify: failed to append event to stream")
	ErrNilRedisClient  = errors.New("notify: redis client cannot be nil")
)

// Option configures a RedisPublisher.
type Option func(*RedisPublisher)

// WithStream also appends every event to the named Redis stream, trimmed to
// roughly maxLen entries (0 keeps everything).
func WithStream(name string, maxLen int64) Option {
	return func(p *RedisPublisher) {
		p.stream = name
		p.streamMaxLen = maxLen
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(p *RedisPublisher) {
		if log != nil {
			p.logger = log
		}
	}
}

// WithClock overrides the event timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *RedisPublisher) {
		if now != nil {
			p.now = now
		}
	}
}

// RedisPublisher publishes transition events to a Redis pub/sub channel.
type RedisPublisher struct {
	client       redis.UniversalClient
	channel      string
	stream       string
	streamMaxLen int64
	logger       *slog.Logger
	now          func() time.Time
}

func NewRedisPublisher(client redis.UniversalClient, channel string, opts ...Option) (*RedisPublisher, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	p := &RedisPublisher{
		client:  client,
		channel: channel,
		logger:  logger.Discard(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(logger.Component("notify"), logger.Channel(channel))

	return p, nil
}

// Publish sends e to the channel and, when configured, appends it to the stream.
func (p *RedisPublisher) Publish(ctx context.Context, e Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}

	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.logger.ErrorContext(ctx, "publish transition event", logger.EventID(e.ID), logger.Error(err))
		return errors.Join(ErrFailedToPublish, err)
	}

	if p.stream != "" {
		args := &redis.XAddArgs{
			Stream: p.stream,
			Values: map[string]any{"event": data},
		}
		if p.streamMaxLen > 0 {
			args.MaxLen = p.streamMaxLen
			args.Approx = true
		}
		if err := p.client.XAdd(ctx, args).Err(); err != nil {
			p.logger.ErrorContext(ctx, "append transition event", logger.EventID(e.ID), logger.Error(err))
			return errors.Join(ErrFailedToAppend, err)
		}
	}

	p.logger.DebugContext(ctx, "transition event published",
		logger.EventID(e.ID),
		logger.Field(e.Field),
		logger.FromState(e.From),
		logger.ToState(e.To),
		logger.Outcome(e.Valid),
	)
	return nil
}

// Callback adapts the publisher to a transition callback.
func (p *RedisPublisher) Callback() transition.Callback {
	return func(ctx context.Context, tr transition.Transition, _ transition.ValidationContext, payload transition.Payload) error {
		return p.Publish(ctx, NewEvent(tr, payload, p.now()))
	}
}
