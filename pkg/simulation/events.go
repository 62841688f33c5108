package simulation

import (
	"github.com/lao-tseu-is-alive/go-electron-funnel/pkg/event"
)

// CollectedEvent is published once per removed agent.
type CollectedEvent struct {
	event.BaseEvent
	AgentID     ID
	CollectorID ID
	Score       int
}

func NewCollectedEvent(source any, agent, collector ID, score int) *CollectedEvent {
	return &CollectedEvent{
		BaseEvent:   event.BaseEvent{EventType: event.AgentCollected, Source: source},
		AgentID:     agent,
		CollectorID: collector,
		Score:       score,
	}
}

// LevelEvent is published when a level is entered. Entering Victory also
// publishes an event.Victory.
type LevelEvent struct {
	event.BaseEvent
	Level Level
	Score int
}

func NewLevelEvent(source any, level Level, score int) *LevelEvent {
	return &LevelEvent{
		BaseEvent: event.BaseEvent{EventType: event.LevelEntered, Source: source},
		Level:     level,
		Score:     score,
	}
}
