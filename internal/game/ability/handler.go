package ability

// Handler is the executable side of one ability, registered against its
// stable string id. Execute is pure with respect to engine state: it reads
// its inputs and produces effects; all state transitions happen in the
// Processor afterwards.
type Handler interface {
	// AbilityID returns the id this handler serves.
	AbilityID() string

	// Execute produces the effect list for a validated request.
	Execute(req *Request, cfg *Config, lvl *LevelData) []Effect

	// CanExecute gates a request against config and runtime state. Most
	// handlers call DefaultCanExecute; toggles and other special casts
	// compose the individual checks instead.
	CanExecute(req *Request, cfg *Config, inst *Instance) bool
}

// DefaultCanExecute is the standard gate: cooldown, charges, mana, range and
// target, all against the actual level data for the instance's level. The
// checks are free functions so handlers compose rather than inherit.
func DefaultCanExecute(req *Request, cfg *Config, inst *Instance) bool {
	lvl, ok := cfg.LevelData(inst.CurrentLevel)
	if !ok {
		return false
	}
	return CheckCooldown(inst) &&
		CheckCharges(inst) &&
		CheckMana(req, lvl) &&
		CheckRange(req, lvl) &&
		CheckTarget(req, cfg)
}

// CheckCooldown passes when no cooldown is running.
func CheckCooldown(inst *Instance) bool {
	return inst.CooldownRemaining <= 0
}

// CheckCharges passes when a use token is available. Toggles never consume
// charges, so they always pass.
func CheckCharges(inst *Instance) bool {
	return inst.Charges > 0 || inst.IsToggled
}

// CheckMana compares the level's mana cost against the caster's current
// mana when the request carries one (the host snapshots it under
// "current_mana"). Requests without a snapshot pass: the host settles
// resource spend when it applies the effects.
func CheckMana(req *Request, lvl *LevelData) bool {
	if lvl.ManaCost <= 0 {
		return true
	}
	v, ok := req.Param("current_mana")
	if !ok {
		return true
	}
	mana, ok := v.Number()
	if !ok {
		return true
	}
	return float32(mana) >= lvl.ManaCost
}

// CheckRange verifies the target position is within the level's cast range.
// Requests without positional targeting pass.
func CheckRange(req *Request, lvl *LevelData) bool {
	if lvl.Range <= 0 || req.TargetPosition == nil {
		return true
	}
	v, ok := req.Param("caster_position_x")
	if !ok {
		return true
	}
	x, _ := v.Number()
	v, ok = req.Param("caster_position_y")
	if !ok {
		return true
	}
	y, _ := v.Number()

	dx := req.TargetPosition.X() - float32(x)
	dy := req.TargetPosition.Y() - float32(y)
	return dx*dx+dy*dy <= lvl.Range*lvl.Range
}

// CheckTarget enforces the config's target type policy: none/self always
// pass, point needs a position, unit needs an entity, area and direction
// need at least one of the two.
func CheckTarget(req *Request, cfg *Config) bool {
	switch cfg.TargetType {
	case TargetNone, TargetSelf:
		return true
	case TargetPoint:
		return req.TargetPosition != nil
	case TargetUnit:
		return req.TargetEntity != nil
	case TargetArea, TargetDirection:
		return req.TargetPosition != nil || req.TargetEntity != nil
	default:
		return true
	}
}

// CustomValue reads a float tunable from level data, with a fallback.
func CustomValue(lvl *LevelData, key string, fallback float32) float32 {
	if v, ok := lvl.CustomValue(key); ok {
		return float32(v)
	}
	return fallback
}

// CustomInt reads an integer tunable from level data, with a fallback.
func CustomInt(lvl *LevelData, key string, fallback int) int {
	if v, ok := lvl.CustomValue(key); ok {
		return int(v)
	}
	return fallback
}
