package ability

import "github.com/yamato-games/sengoku-arena/internal/model"

// EventType names a lifecycle event emitted by the Processor.
type EventType int8

const (
	EventUsed EventType = iota
	EventCooldownStarted
	EventCooldownEnded
	EventLevelUp
)

func (t EventType) String() string {
	switch t {
	case EventUsed:
		return "ability_used"
	case EventCooldownStarted:
		return "ability_cooldown_started"
	case EventCooldownEnded:
		return "ability_cooldown_ended"
	case EventLevelUp:
		return "ability_level_up"
	default:
		return "unknown"
	}
}

// Event is one lifecycle notification, consumed by host telemetry/replay.
// Events surface in the order the tick produced them.
type Event struct {
	Type      EventType
	Caster    model.EntityID
	AbilityID string
	Duration  float32 // cooldown duration for EventCooldownStarted
	Level     int     // new level for EventLevelUp
}
