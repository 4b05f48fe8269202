package client

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"evently/pkg/logger"
)

// Manager owns the process-wide MongoDB connection. The first successful
// Connect establishes and caches the client; later calls return the same
// client without reconnecting. A failed attempt is never cached, so the
// next call retries from scratch.
type Manager struct {
	mu          sync.Mutex
	uri         string
	connTimeout time.Duration
	log         *logger.Logger
	client      *mongo.Client
}

func NewManager(log *logger.Logger, mongoURI string, connTimeout time.Duration) *Manager {
	return &Manager{
		uri:         mongoURI,
		connTimeout: connTimeout,
		log:         log,
	}
}

func (m *Manager) Connect(ctx context.Context) (*mongo.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		return m.client, nil
	}

	connCtx, cancel := context.WithTimeout(ctx, m.connTimeout)
	defer cancel()

	client, err := mongo.Connect(connCtx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(connCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	m.log.Info("Successfully connected to MongoDB")
	m.client = client
	return m.client, nil
}

// Mongo returns the cached client, or nil if Connect has not succeeded yet.
func (m *Manager) Mongo() *mongo.Client {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client
}

// Disconnect closes the cached connection, if any, and clears the cache.
func (m *Manager) Disconnect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client == nil {
		return nil
	}

	err := m.client.Disconnect(ctx)
	m.client = nil
	return err
}
