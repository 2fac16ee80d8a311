package mqtt

import (
	"context"
	"errors"
	"sync"

	coremqtt "github.com/kilianp07/batterycf/core/mqtt"
)

// Publisher mirrors the core mqtt.Publisher interface.
type Publisher = coremqtt.Publisher

// NewPublisher returns a connected PahoClient when cfg is enabled and a
// NopPublisher otherwise.
func NewPublisher(cfg Config) (Publisher, error) {
	if !cfg.Enabled {
		return coremqtt.NopPublisher{}, nil
	}
	return NewPahoClient(cfg)
}

// MockPublisher records published messages in memory.
type MockPublisher struct {
	Messages []coremqtt.ResultMessage
	Fail     bool
	Closed   bool
	mu       sync.Mutex
}

// NewMockPublisher creates a new MockPublisher.
func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

// Publish records msg or returns an error if configured to fail.
func (m *MockPublisher) Publish(_ context.Context, msg coremqtt.ResultMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail {
		return errors.New("publish failed")
	}
	m.Messages = append(m.Messages, msg)
	return nil
}

// Close marks the publisher closed.
func (m *MockPublisher) Close() {
	m.mu.Lock()
	m.Closed = true
	m.mu.Unlock()
}
