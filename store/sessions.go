package store

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Handle is a database handle borrowed for the duration of one request.
type Handle struct {
	Collection *mongo.Collection

	once    sync.Once
	release func(ctx context.Context) error
}

func NewHandle(collection *mongo.Collection, release func(ctx context.Context) error) *Handle {
	return &Handle{
		Collection: collection,
		release:    release,
	}
}

// Release returns the handle. Only the first call has any effect.
func (h *Handle) Release(ctx context.Context) error {
	var err error
	h.once.Do(func() {
		if h.release != nil {
			err = h.release(ctx)
		}
	})
	return err
}

// Sessions hands out handles to the clinicas collection. Every successful
// Acquire must be paired with a Release of the returned handle.
type Sessions interface {
	Acquire(ctx context.Context) (*Handle, error)
	Close(ctx context.Context) error
}

func NewSessions(cfg *Config, logger *zap.SugaredLogger, lifecycle fx.Lifecycle) (Sessions, error) {
	var sessions Sessions
	switch cfg.Mode {
	case ModeConnection:
		sessions = NewConnectionSessions(cfg, logger)
	case ModeShared:
		ctx, cancel := NewDbContext()
		defer cancel()

		shared, err := NewSharedSessions(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		sessions = shared
	default:
		return nil, fmt.Errorf("unsupported connection mode %q", cfg.Mode)
	}

	lifecycle.Append(fx.Hook{
		OnStop: sessions.Close,
	})

	return sessions, nil
}

type connectionSessions struct {
	cfg    *Config
	logger *zap.SugaredLogger
}

// NewConnectionSessions returns sessions which open a new client for each
// Acquire and disconnect it on Release.
func NewConnectionSessions(cfg *Config, logger *zap.SugaredLogger) Sessions {
	return &connectionSessions{
		cfg:    cfg,
		logger: logger,
	}
}

func (c *connectionSessions) Acquire(ctx context.Context) (*Handle, error) {
	client, err := NewClient(ctx, c.cfg.URI)
	if err != nil {
		return nil, err
	}

	collection := client.Database(c.cfg.DatabaseName).Collection(c.cfg.CollectionName)
	return NewHandle(collection, func(ctx context.Context) error {
		c.logger.Debugw("disconnecting request client", "database", c.cfg.DatabaseName)
		return client.Disconnect(ctx)
	}), nil
}

func (c *connectionSessions) Close(ctx context.Context) error {
	return nil
}

type sharedSessions struct {
	client *mongo.Client
	cfg    *Config
	logger *zap.SugaredLogger
}

// NewSharedSessions connects one client up front. Handles borrow it and
// releasing them is a no-op; the client is disconnected on Close.
func NewSharedSessions(ctx context.Context, cfg *Config, logger *zap.SugaredLogger) (Sessions, error) {
	client, err := NewClient(ctx, cfg.URI)
	if err != nil {
		return nil, err
	}

	return &sharedSessions{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

func (s *sharedSessions) Acquire(ctx context.Context) (*Handle, error) {
	collection := s.client.Database(s.cfg.DatabaseName).Collection(s.cfg.CollectionName)
	return NewHandle(collection, nil), nil
}

func (s *sharedSessions) Close(ctx context.Context) error {
	s.logger.Infow("disconnecting shared client", "database", s.cfg.DatabaseName)
	return s.client.Disconnect(ctx)
}
