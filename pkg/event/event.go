// Package event carries one-way notifications from the simulation core to
// its consumers (HUD, logging, tests).
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

const (
	AgentCollected Type = "agent_collected"
	LevelEntered   Type = "level_entered"
	Victory        Type = "victory"
	WorldReset     Type = "world_reset"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() any
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    any
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() any {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	id        uint64
	eventType Type
}

type entry struct {
	id      uint64
	handler Handler
}

// Bus dispatches events synchronously, in subscription order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[Type][]entry
	nextID   uint64
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]entry),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{id: b.nextID, eventType: eventType}
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], entry{id: sub.id, handler: handler})
	return sub
}

// Unsubscribe removes a handler. Unknown or nil subscriptions are ignored.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[sub.eventType]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[sub.eventType] = append(entries[:i:i], entries[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	entries := b.handlers[ev.GetType()]
	b.mu.RUnlock()

	for _, e := range entries {
		e.handler(ev)
	}
}

// HandlerCount reports how many handlers listen for eventType.
func (b *Bus) HandlerCount(eventType Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[eventType])
}
