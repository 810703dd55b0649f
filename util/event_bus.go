// console/util/event_bus.go

package util

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

// Domain events published by the services after a successful mutation.
const (
	EventBuildingChanged = "building.changed"
	EventFlatChanged     = "flat.changed"
	EventContractChanged = "contract.changed"
	EventPaymentChanged  = "payment.changed"
	EventExpenseChanged  = "expense.changed"
	EventDuesChanged     = "dues.changed"
	EventSessionEnded    = "session.ended"
	EventLoginRedirect   = "session.loginRedirect"
	EventSessionStarted  = "session.started"
	EventGatewayFailure  = "gateway.failure"
	EventMaintenanceRun  = "maintenance.completed"
)

// Event represents an event in the system
type Event struct {
	Type    string
	Payload interface{}
}

// EventHandler is a function that handles an event
type EventHandler func(context.Context, Event) error

type subscription struct {
	id      int
	handler EventHandler
}

// EventBus manages event subscriptions and publications
type EventBus struct {
	subscribers map[string][]subscription
	nextID      int
	mu          sync.RWMutex
	errorChan   chan error
	wg          sync.WaitGroup
}

// NewEventBus creates a new EventBus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]subscription),
		errorChan:   make(chan error, 100),
	}
}

// Subscribe adds a handler for an event type and returns a function that
// removes it again.
func (eb *EventBus) Subscribe(eventType string, handler EventHandler) func() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	id := eb.nextID
	eb.nextID++
	eb.subscribers[eventType] = append(eb.subscribers[eventType], subscription{id: id, handler: handler})

	return func() {
		eb.unsubscribe(eventType, id)
	}
}

// Publish sends an event to all subscribers, each on its own goroutine.
func (eb *EventBus) Publish(ctx context.Context, eventType string, payload interface{}) {
	event := Event{Type: eventType, Payload: payload}
	for _, sub := range eb.subscriptions(eventType) {
		eb.wg.Add(1)
		go func(h EventHandler) {
			defer eb.wg.Done()
			eb.dispatch(ctx, h, event)
		}(sub.handler)
	}
}

// PublishSync runs every subscriber on the caller's goroutine and returns
// once all of them have finished. Handlers must not publish synchronously
// back into the bus.
func (eb *EventBus) PublishSync(ctx context.Context, eventType string, payload interface{}) {
	event := Event{Type: eventType, Payload: payload}
	for _, sub := range eb.subscriptions(eventType) {
		eb.dispatch(ctx, sub.handler, event)
	}
}

func (eb *EventBus) subscriptions(eventType string) []subscription {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return append([]subscription(nil), eb.subscribers[eventType]...)
}

func (eb *EventBus) dispatch(ctx context.Context, h EventHandler, event Event) {
	if err := h(ctx, event); err != nil {
		select {
		case eb.errorChan <- fmt.Errorf("event handler error for %s: %w", event.Type, err):
		default:
			logger.Error("Error channel full, logging event handler error",
				zap.Error(err),
				zap.String("eventType", event.Type))
		}
	}
}

// Wait blocks until every handler started so far has returned.
func (eb *EventBus) Wait() {
	eb.wg.Wait()
}

// Start begins processing handler errors until ctx is done.
func (eb *EventBus) Start(ctx context.Context) {
	go eb.processErrors(ctx)
}

func (eb *EventBus) processErrors(ctx context.Context) {
	for {
		select {
		case err := <-eb.errorChan:
			logger.Error("Event handler error", zap.Error(err))
		case <-ctx.Done():
			return
		}
	}
}

func (eb *EventBus) unsubscribe(eventType string, id int) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[eventType]
	for i, s := range subs {
		if s.id == id {
			eb.subscribers[eventType] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(eb.subscribers[eventType]) == 0 {
		delete(eb.subscribers, eventType)
	}
}
