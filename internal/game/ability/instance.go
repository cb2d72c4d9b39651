package ability

import (
	"github.com/yamato-games/sengoku-arena/internal/model"
)

// State classifies what an instance can currently do.
type State int8

const (
	StateReady State = iota
	StateCooldown
	StateChanneling
	StateDisabled
	StateNoCharges
	StateInsufficientMana
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateCooldown:
		return "cooldown"
	case StateChanneling:
		return "channeling"
	case StateDisabled:
		return "disabled"
	case StateNoCharges:
		return "no_charges"
	case StateInsufficientMana:
		return "insufficient_mana"
	default:
		return "unknown"
	}
}

// Instance is the per-(unit, ability) runtime state. Created when a unit
// learns the ability, mutated only by the Processor's tick and by
// activation, destroyed with the owning entity.
type Instance struct {
	AbilityID string
	Owner     model.EntityID

	CurrentLevel int // 0 = not learned
	MaxLevel     int

	State             State
	CooldownRemaining float32
	Charges           int
	MaxCharges        int
	LastUsedTime      float32

	IsToggled   bool // ability is a toggle
	ToggleState bool // toggle currently active

	IsChanneling         bool
	ChannelTimeRemaining float32

	runtimeData map[string]Value
}

// NewInstance creates an unlearned instance for an owner.
func NewInstance(abilityID string, owner model.EntityID, maxLevel int) *Instance {
	if maxLevel < 1 {
		maxLevel = 1
	}
	return &Instance{
		AbilityID:   abilityID,
		Owner:       owner,
		MaxLevel:    maxLevel,
		State:       StateDisabled,
		Charges:     1,
		MaxCharges:  1,
		runtimeData: make(map[string]Value),
	}
}

// NewInstanceFromConfig creates an instance shaped by a config: max level,
// toggle flag and charge capacity come from the descriptor.
func NewInstanceFromConfig(cfg *Config, owner model.EntityID) *Instance {
	inst := NewInstance(cfg.ID, owner, cfg.MaxLevel())
	inst.IsToggled = cfg.IsToggle()
	if len(cfg.Levels) > 0 {
		if c := cfg.Levels[0].Charges; c != nil && *c > 1 {
			inst.Charges = *c
			inst.MaxCharges = *c
		}
	}
	return inst
}

// IsReady reports whether the ability can be activated right now.
func (in *Instance) IsReady() bool {
	return in.State == StateReady &&
		in.CurrentLevel > 0 &&
		in.CooldownRemaining <= 0 &&
		(in.Charges > 0 || in.IsToggled)
}

// IsOnCooldown reports whether any cooldown is still running.
func (in *Instance) IsOnCooldown() bool {
	return in.CooldownRemaining > 0
}

// IsToggleActive reports whether a toggle ability is currently on.
func (in *Instance) IsToggleActive() bool {
	return in.IsToggled && in.ToggleState
}

// Use activates the ability: toggles flip their flag (deactivation applies
// no cooldown), everything else consumes a charge and starts the cooldown.
// Returns false when the instance is not ready.
func (in *Instance) Use(cooldown, now float32) bool {
	if !in.IsReady() {
		return false
	}

	if in.IsToggled {
		in.ToggleState = !in.ToggleState
		if !in.ToggleState {
			// Toggling off never starts a cooldown.
			in.LastUsedTime = now
			return true
		}
	} else {
		in.Charges--
		if in.Charges < 0 {
			in.Charges = 0
		}
		in.CooldownRemaining = cooldown
	}

	in.LastUsedTime = now
	in.recomputeState()
	return true
}

// Update advances timers by dt and reclassifies the state.
// Both timers clamp at zero.
func (in *Instance) Update(dt, now float32) {
	if in.CooldownRemaining > 0 {
		in.CooldownRemaining -= dt
		if in.CooldownRemaining < 0 {
			in.CooldownRemaining = 0
		}
	}

	if in.IsChanneling {
		in.ChannelTimeRemaining -= dt
		if in.ChannelTimeRemaining <= 0 {
			in.ChannelTimeRemaining = 0
			in.IsChanneling = false
		}
	}

	in.recomputeState()
}

// recomputeState derives State from the timers and counters. Idempotent:
// disabled overrides all, channel beats cooldown, cooldown beats charges.
func (in *Instance) recomputeState() {
	switch {
	case in.CurrentLevel <= 0:
		in.State = StateDisabled
	case in.IsChanneling:
		in.State = StateChanneling
	case in.CooldownRemaining > 0:
		in.State = StateCooldown
	case in.Charges <= 0 && !in.IsToggled:
		in.State = StateNoCharges
	default:
		in.State = StateReady
	}
}

// Recompute re-derives the state classification. Exposed so the processor
// can recover from impossible states instead of panicking.
func (in *Instance) Recompute() {
	in.recomputeState()
}

// StartChannel puts the instance into channeling for a duration.
func (in *Instance) StartChannel(duration float32) {
	in.IsChanneling = true
	in.ChannelTimeRemaining = duration
	in.recomputeState()
}

// InterruptChannel cancels an active channel synchronously.
func (in *Instance) InterruptChannel() {
	in.IsChanneling = false
	in.ChannelTimeRemaining = 0
	in.recomputeState()
}

// RestoreCharges refills up to MaxCharges and reclassifies.
func (in *Instance) RestoreCharges(n int) {
	in.Charges += n
	if in.Charges > in.MaxCharges {
		in.Charges = in.MaxCharges
	}
	in.recomputeState()
}

// LevelUp increments the level if below MaxLevel and reports whether it
// happened. Learning (0 → 1) enables the ability.
func (in *Instance) LevelUp() bool {
	if in.CurrentLevel >= in.MaxLevel {
		return false
	}
	in.CurrentLevel++
	in.recomputeState()
	return true
}

// SetRuntimeData stores handler scratch under a key.
func (in *Instance) SetRuntimeData(key string, v Value) {
	in.runtimeData[key] = v
}

// RuntimeData reads handler scratch.
func (in *Instance) RuntimeData(key string) (Value, bool) {
	v, ok := in.runtimeData[key]
	return v, ok
}
