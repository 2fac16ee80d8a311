package mqtt

import (
	"context"
	"time"

	"github.com/kilianp07/batterycf/core/replacement"
)

// ResultMessage is the payload published once an evaluation completes.
type ResultMessage struct {
	RunID       string             `json:"run_id"`
	Model       string             `json:"model"`
	GeneratedAt time.Time          `json:"generated_at"`
	Result      replacement.Result `json:"result"`
}

// Publisher delivers evaluation results to a broker.
type Publisher interface {
	// Publish sends msg, retrying transient failures until ctx is done.
	Publish(ctx context.Context, msg ResultMessage) error
	// Close releases the connection.
	Close()
}

// NopPublisher discards every message.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ResultMessage) error { return nil }
func (NopPublisher) Close()                                       {}
