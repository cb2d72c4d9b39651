package ability

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// World is the port the ability engine drives when applying effects or
// evaluating conditions. The engine never depends on a concrete host; any
// implementation with consistent semantics suffices. It is passed by the
// host into each tick, which keeps ownership with the ECS.
type World interface {
	// Position returns an entity's world position, false if unknown.
	Position(e model.EntityID) (mgl32.Vec2, bool)

	// SetPosition moves an entity.
	SetPosition(e model.EntityID, pos mgl32.Vec2)

	// EntitiesInRange enumerates entities within radius of center.
	EntitiesInRange(center mgl32.Vec2, radius float32) []model.EntityID

	// CreateEntity spawns a fresh entity and returns its id.
	CreateEntity() model.EntityID

	// ApplyDamage deals damage of a type to a target.
	ApplyDamage(target model.EntityID, amount float32, damageType DamageType)

	// ApplyBuff applies stat deltas to a target for a duration.
	// Duration 0 means the buff lasts until removed by the host.
	ApplyBuff(target model.EntityID, statDeltas map[string]float32, duration float32)
}
