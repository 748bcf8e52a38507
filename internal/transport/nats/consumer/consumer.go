// Package natscons pulls record messages from a JetStream stream and hands
// them to a handler with bounded concurrency.
package natscons

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"
)

// Message is the part of jetstream.Msg the consumer relies on.
type Message interface {
	Subject() string
	Data() []byte
	Ack() error
	Nak() error
	Term() error
}

type Handler func(ctx context.Context, msg Message) error

// Fetcher is satisfied by jetstream.Consumer.
type Fetcher interface {
	Fetch(batch int, opts ...jetstream.FetchOpt) (jetstream.MessageBatch, error)
}

type Config struct {
	Durable string
	Slots   int
	MaxWait time.Duration
}

type Consumer struct {
	cons    Fetcher
	handler Handler
	log     *zap.Logger

	maxWait  time.Duration
	maxBatch int

	slots chan struct{}

	mu     sync.Mutex
	runCtx context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewConsumer creates or updates a durable pull consumer on stream.
func NewConsumer(ctx context.Context, stream jetstream.Stream, cfg Config, handler Handler, log *zap.Logger) (*Consumer, error) {
	if cfg.Slots <= 0 {
		return nil, errors.New("slots must be > 0")
	}

	cons, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       cfg.Durable,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxAckPending: cfg.Slots,
	})
	if err != nil {
		return nil, err
	}

	return New(cons, cfg, handler, log)
}

func New(cons Fetcher, cfg Config, handler Handler, log *zap.Logger) (*Consumer, error) {
	if handler == nil {
		return nil, errors.New("handler is nil")
	}
	if cfg.Slots <= 0 {
		return nil, errors.New("slots must be > 0")
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = 2 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}

	c := &Consumer{
		cons:     cons,
		handler:  handler,
		log:      log,
		maxWait:  cfg.MaxWait,
		maxBatch: 1,
		slots:    make(chan struct{}, cfg.Slots),
	}
	for i := 0; i < cfg.Slots; i++ {
		c.slots <- struct{}{}
	}

	return c, nil
}

func (c *Consumer) Run(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return errors.New("consumer already running")
	}
	c.runCtx, c.cancel = context.WithCancel(ctx)
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		c.loop()
	}()

	return nil
}

func (c *Consumer) Stop(ctx context.Context) error {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (c *Consumer) loop() {
	for {
		select {
		case <-c.runCtx.Done():
			return
		case <-c.slots:
		}

		batch, err := c.cons.Fetch(c.maxBatch, jetstream.FetchMaxWait(c.maxWait))
		if err != nil {
			c.slots <- struct{}{}
			c.log.Warn("fetch failed", zap.Error(err))

			select {
			case <-c.runCtx.Done():
				return
			case <-time.After(c.maxWait):
			}
			continue
		}

		got := false
		for msg := range batch.Messages() {
			got = true

			c.wg.Add(1)
			go func(m Message) {
				defer c.wg.Done()
				defer func() { c.slots <- struct{}{} }()
				c.dispatch(m)
			}(msg)
		}

		if !got {
			c.slots <- struct{}{}
		}
	}
}

func (c *Consumer) dispatch(m Message) {
	err := c.handler(c.runCtx, m)
	switch {
	case err == nil:
		err = m.Ack()
	case errors.Is(err, ErrMalformed):
		c.log.Warn("dropping malformed message", zap.String("subject", m.Subject()), zap.Error(err))
		err = m.Term()
	default:
		c.log.Warn("message handling failed", zap.String("subject", m.Subject()), zap.Error(err))
		err = m.Nak()
	}
	if err != nil {
		c.log.Debug("cannot settle message", zap.String("subject", m.Subject()), zap.Error(err))
	}
}
