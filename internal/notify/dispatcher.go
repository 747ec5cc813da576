// Package notify delivers user-visible transient messages. Messages flow
// through a buffered channel to a single worker that records them in a
// bounded recent list and fans them out to subscribers. Nothing here is
// persisted; a dropped message is gone.
package notify

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cccc-2705/Mercado/internal/api/metrics"
	"github.com/cccc-2705/Mercado/internal/core/domain"
)

const (
	channelBuffer = 64
	recentLimit   = 50
)

type Dispatcher struct {
	ch  chan domain.Notification
	log zerolog.Logger

	mu     sync.Mutex
	recent []domain.Notification
	subs   []chan domain.Notification
}

func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		ch:  make(chan domain.Notification, channelBuffer),
		log: log,
	}
}

// Start launches the delivery worker. The worker stops when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	go d.run(ctx)
}

// Publish enqueues a message. Blocks only when the buffer is full.
func (d *Dispatcher) Publish(message string, severity domain.Severity) {
	d.ch <- domain.Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
	}
}

// Recent returns the most recent notifications, newest last.
func (d *Dispatcher) Recent() []domain.Notification {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]domain.Notification, len(d.recent))
	copy(out, d.recent)
	return out
}

// Subscribe registers a delivery channel. Slow subscribers miss messages
// rather than stall the worker.
func (d *Dispatcher) Subscribe() <-chan domain.Notification {
	ch := make(chan domain.Notification, channelBuffer)
	d.mu.Lock()
	d.subs = append(d.subs, ch)
	d.mu.Unlock()
	return ch
}

func (d *Dispatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.ch:
			if !ok {
				return
			}
			d.deliver(n)
		}
	}
}

func (d *Dispatcher) deliver(n domain.Notification) {
	metrics.NotificationsTotal.WithLabelValues(string(n.Severity)).Inc()
	d.log.Info().
		Str("severity", string(n.Severity)).
		Str("message", n.Message).
		Msg("notification")

	d.mu.Lock()
	d.recent = append(d.recent, n)
	if len(d.recent) > recentLimit {
		d.recent = d.recent[len(d.recent)-recentLimit:]
	}
	subs := d.subs
	d.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub <- n:
		default:
		}
	}
}
