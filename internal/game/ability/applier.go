package ability

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// Applier translates effect lists into World port calls. Projectiles and
// transforms need host machinery the port does not model, so they are
// handed to injected callbacks; without one they are logged and dropped.
type Applier struct {
	// onProjectile receives projectiles for the host's projectile system.
	onProjectile func(caster model.EntityID, p Projectile)

	// onTransform receives transforms for the host's form system.
	onTransform func(caster model.EntityID, t Transform)
}

// ApplierOption configures an Applier.
type ApplierOption func(*Applier)

// WithProjectileSink routes Projectile effects to the host.
func WithProjectileSink(fn func(caster model.EntityID, p Projectile)) ApplierOption {
	return func(a *Applier) { a.onProjectile = fn }
}

// WithTransformSink routes Transform effects to the host.
func WithTransformSink(fn func(caster model.EntityID, t Transform)) ApplierOption {
	return func(a *Applier) { a.onTransform = fn }
}

// NewApplier creates an applier with the given host callbacks.
func NewApplier(opts ...ApplierOption) *Applier {
	a := &Applier{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Apply walks an effect list and mutates the world through the port.
// The world reference is borrowed for the duration of the call only.
func (a *Applier) Apply(world World, caster model.EntityID, effects []Effect) {
	for _, effect := range effects {
		a.applyOne(world, caster, effect)
	}
}

func (a *Applier) applyOne(world World, caster model.EntityID, effect Effect) {
	switch e := effect.(type) {
	case Damage:
		world.ApplyDamage(e.Target, e.Amount, DamagePhysical)

	case InstantDamage:
		for _, target := range a.resolveSelector(world, caster, e.TargetSelector) {
			world.ApplyDamage(target, e.Amount, e.DamageType)
		}

	case Buff:
		for _, target := range a.resolveSelector(world, caster, e.TargetSelector) {
			world.ApplyBuff(target, e.StatDeltas, e.Duration)
		}

	case StatusModifier:
		duration := float32(0)
		if e.Duration != nil {
			duration = *e.Duration
		}
		world.ApplyBuff(e.Target, map[string]float32{e.ModifierType: e.Value}, duration)

	case Summon:
		a.applySummon(world, e)

	case AreaEffect:
		a.applyArea(world, caster, e)

	case Projectile:
		if a.onProjectile != nil {
			a.onProjectile(caster, e)
			return
		}
		slog.Debug("projectile effect dropped, no sink", "caster", caster)

	case Transform:
		if a.onTransform != nil {
			a.onTransform(caster, e)
			return
		}
		slog.Debug("transform effect dropped, no sink",
			"caster", caster, "transform", e.TransformID)
	}
}

// applySummon spawns count units near the position. Multiple summons fan
// out on a small ring so they do not stack on one point. Temporary summons
// carry their lifetime as a timed buff for the host's expiry pass.
func (a *Applier) applySummon(world World, e Summon) {
	for i := 0; i < e.Count; i++ {
		spawned := world.CreateEntity()
		pos := e.Position
		if e.Count > 1 {
			pos = ringOffset(e.Position, float32(i), float32(e.Count))
		}
		world.SetPosition(spawned, pos)
		if e.Duration != nil {
			world.ApplyBuff(spawned, map[string]float32{StatSummonLifetime: *e.Duration}, *e.Duration)
		}
	}
}

// applyArea deals the area's own damage to everything in the disc, then
// applies sub-effects recursively. Tick repetition over the duration is the
// host's job; the engine commits the first tick.
func (a *Applier) applyArea(world World, caster model.EntityID, e AreaEffect) {
	if e.Damage != nil {
		for _, target := range world.EntitiesInRange(e.Center, e.Radius) {
			world.ApplyDamage(target, *e.Damage, DamageMagical)
		}
	}
	for _, sub := range e.SubEffects {
		a.applyOne(world, caster, sub)
	}
}

// resolveSelector maps a target selector string onto concrete entities.
func (a *Applier) resolveSelector(world World, caster model.EntityID, selector string) []model.EntityID {
	switch selector {
	case SelectorSelf, "":
		return []model.EntityID{caster}
	default:
		// Enemy/ally classification lives in the host; without it the
		// selector falls back to the caster.
		return []model.EntityID{caster}
	}
}

func ringOffset(center mgl32.Vec2, index, count float32) mgl32.Vec2 {
	const ringRadius = 100.0
	angle := index / count * 2 * 3.14159265
	return center.Add(mgl32.Vec2{
		ringRadius * cos32(angle),
		ringRadius * sin32(angle),
	})
}
