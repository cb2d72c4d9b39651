package ability

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// DamageType classifies how damage interacts with defenses.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
	DamagePure     DamageType = "pure"
	DamageTrue     DamageType = "true"
)

// Target selectors understood by the effect applier.
const (
	SelectorSelf       = "self"
	SelectorTarget     = "target"
	SelectorAllEnemies = "all_enemies"
	SelectorAllAllies  = "all_allies"
)

// StatSummonLifetime is the stat key carrying a temporary summon's
// remaining lifetime in seconds. The host's expiry pass despawns the
// unit when the buff runs out.
const StatSummonLifetime = "summon_lifetime"

// Effect is one declarative request to mutate the world. Handlers produce
// effect lists; the applier translates them into World port calls. Effects
// carry no engine state, so they can be replayed and inspected freely.
type Effect interface {
	effect()
}

// Damage hits one concrete entity for a flat amount.
type Damage struct {
	Target model.EntityID
	Amount float32
}

// InstantDamage hits whatever the selector resolves to.
type InstantDamage struct {
	TargetSelector string
	Amount         float32
	DamageType     DamageType
}

// Buff applies stat deltas to the selected targets for a duration.
type Buff struct {
	TargetSelector string
	Duration       float32
	StatDeltas     map[string]float32
}

// Summon spawns count units of a type at a position, optionally expiring.
type Summon struct {
	Position mgl32.Vec2
	UnitType string
	Count    int
	Duration *float32
}

// AreaEffect affects a disc for a duration, ticking sub-effects.
// EffectType names the gameplay effect for the host's visual layer; Damage,
// when set, is dealt to every entity inside the disc on each tick.
type AreaEffect struct {
	Center       mgl32.Vec2
	Radius       float32
	Duration     float32
	TickInterval float32
	EffectType   string
	Damage       *float32
	SubEffects   []Effect
}

// Projectile travels from start to target and applies its payload on hit.
type Projectile struct {
	Start  mgl32.Vec2
	Target mgl32.Vec2
	Speed  float32
	OnHit  []Effect
}

// Transform switches the selected target into another form.
type Transform struct {
	TargetSelector string
	TransformID    string
	Duration       *float32
}

// StatusModifier adjusts a single named stat on a concrete entity.
// A nil duration means the modifier lasts until explicitly removed
// (toggle abilities rely on this).
type StatusModifier struct {
	Target       model.EntityID
	ModifierType string
	Value        float32
	Duration     *float32
}

func (Damage) effect()         {}
func (InstantDamage) effect()  {}
func (Buff) effect()           {}
func (Summon) effect()         {}
func (AreaEffect) effect()     {}
func (Projectile) effect()     {}
func (Transform) effect()      {}
func (StatusModifier) effect() {}

// Float32Ptr is a convenience for optional effect fields.
func Float32Ptr(v float32) *float32 { return &v }
