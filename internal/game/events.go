package game

import (
	"time"

	"github.com/lox/blackjacktable/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for round domain events
const (
	EventTypeRoundStart   EventType = "round_start"
	EventTypeRoundEnd     EventType = "round_end"
	EventTypePlayerAction EventType = "player_action"
	EventTypeDealerAction EventType = "dealer_action"
	EventTypeSettlement   EventType = "settlement"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a round
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundStartEvent is published once bets are collected and cards dealt
type RoundStartEvent struct {
	Seats        []string
	Wagers       map[string]int // staked pot per seat name
	DealerUpcard deck.Card
	timestamp    time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published when a seat takes an action
type PlayerActionEvent struct {
	Seat      string
	Action    Action
	Card      deck.Card // dealt card for hit/double, zero otherwise
	HardTotal int
	SoftTotal int
	Busted    bool
	Reasoning string
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// DealerActionEvent is published for each step of the dealer's loop
type DealerActionEvent struct {
	Action    Action
	Cards     []deck.Card
	HardTotal int
	SoftTotal int
	Busted    bool
	timestamp time.Time
}

func (e DealerActionEvent) EventType() EventType { return EventTypeDealerAction }
func (e DealerActionEvent) Timestamp() time.Time { return e.timestamp }

// SettlementEvent is published when a seat's wager resolves
type SettlementEvent struct {
	Seat         string
	SeatTotal    int
	DealerTotal  int
	Pot          int
	PlayerProfit int
	DealerProfit int
	timestamp    time.Time
}

func (e SettlementEvent) EventType() EventType { return EventTypeSettlement }
func (e SettlementEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published after cleanup, once transient seats are folded
// and hands scrapped
type RoundEndEvent struct {
	DealerTotal int
	ShoeCards   int
	ScrapCards  int
	Reshuffled  bool
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to round events
type EventSubscriber interface {
	HandleGameEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a basic in-memory, synchronous event bus
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, s := range bus.subscribers {
		if s == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribers in subscription order
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, s := range bus.subscribers {
		s.HandleGameEvent(event)
	}
}
