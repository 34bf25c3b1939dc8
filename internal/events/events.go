// file: internal/events/events.go
package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// ===============================
// EVENT CONTRACT
// ===============================

// Event is a domain event published on the bus.
type Event interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides the common event fields.
type BaseEvent struct {
	ID   string    `json:"event_id"`
	Type string    `json:"event_type"`
	Time time.Time `json:"occurred_at"`
}

func (e BaseEvent) EventID() string       { return e.ID }
func (e BaseEvent) EventType() string     { return e.Type }
func (e BaseEvent) OccurredAt() time.Time { return e.Time }

// NewBaseEvent creates the common fields for a new event.
func NewBaseEvent(eventType string) BaseEvent {
	id := ""
	if u, err := uuid.NewV4(); err == nil {
		id = u.String()
	} else {
		id = fmt.Sprintf("evt-%d", time.Now().UnixNano())
	}
	return BaseEvent{
		ID:   id,
		Type: eventType,
		Time: time.Now().UTC(),
	}
}

// Handler processes a single event. Handler errors are logged, never
// propagated to the publisher.
type Handler func(ctx context.Context, event Event) error

// EventBus delivers events to subscribed handlers asynchronously.
type EventBus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType string, handler Handler)
	Start()
	Stop(ctx context.Context) error
}

// ===============================
// IN-MEMORY BUS
// ===============================

type memoryBus struct {
	logger   *zap.Logger
	workers  int
	queue    chan Event
	handlers map[string][]Handler

	mu      sync.RWMutex
	started bool
	wg      sync.WaitGroup
}

// NewMemoryBus creates an in-process event bus with a worker pool.
func NewMemoryBus(logger *zap.Logger, workers, queueSize int) EventBus {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 256
	}
	return &memoryBus{
		logger:   logger,
		workers:  workers,
		queue:    make(chan Event, queueSize),
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for an event type. Subscriptions must
// happen before Start.
func (b *memoryBus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Start launches the worker pool.
func (b *memoryBus) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return
	}
	b.started = true

	for i := 0; i < b.workers; i++ {
		b.wg.Add(1)
		go b.worker()
	}
	b.logger.Info("Event bus started", zap.Int("workers", b.workers))
}

// Publish enqueues an event for asynchronous delivery. A full queue
// drops the event with a warning rather than blocking the caller.
func (b *memoryBus) Publish(ctx context.Context, event Event) error {
	select {
	case b.queue <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		b.logger.Warn("Event queue full, dropping event",
			zap.String("event_type", event.EventType()),
			zap.String("event_id", event.EventID()),
		)
		return fmt.Errorf("event queue full")
	}
}

// Stop drains the queue and waits for the workers, bounded by ctx.
func (b *memoryBus) Stop(ctx context.Context) error {
	b.mu.Lock()
	if !b.started {
		b.mu.Unlock()
		return nil
	}
	b.started = false
	b.mu.Unlock()

	close(b.queue)

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("Event bus stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus shutdown timed out: %w", ctx.Err())
	}
}

func (b *memoryBus) worker() {
	defer b.wg.Done()
	for event := range b.queue {
		b.dispatch(event)
	}
}

func (b *memoryBus) dispatch(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			b.logger.Error("Event handler failed",
				zap.String("event_type", event.EventType()),
				zap.String("event_id", event.EventID()),
				zap.Error(err),
			)
		}
	}
}
