package ability

// MatchlockGunHandler is Date Masamune's ultimate: a timed weapon-swap that
// grants ranged-stance bonuses for its duration.
type MatchlockGunHandler struct{}

// AbilityID returns "matchlock_gun".
func (MatchlockGunHandler) AbilityID() string { return "matchlock_gun" }

// Execute emits a timed StatusModifier per granted bonus plus the transform
// itself. Every modifier shares the stance duration.
func (h MatchlockGunHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	duration := CustomValue(lvl, "duration", 45)
	if lvl.Duration != nil {
		duration = *lvl.Duration
	}

	effects := []Effect{Transform{
		TargetSelector: SelectorSelf,
		TransformID:    "matchlock_gun",
		Duration:       Float32Ptr(duration),
	}}

	if v, ok := lvl.CustomValue("range_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "attack_range_bonus",
			Value:        float32(v),
			Duration:     Float32Ptr(duration),
		})
	}
	if v, ok := lvl.CustomValue("damage_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "base_damage_bonus",
			Value:        float32(v),
			Duration:     Float32Ptr(duration),
		})
	}
	if v, ok := lvl.CustomValue("attack_speed_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "attack_speed_bonus",
			Value:        float32(v),
			Duration:     Float32Ptr(duration),
		})
	}

	return effects
}

// CanExecute uses the default gate.
func (h MatchlockGunHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	return DefaultCanExecute(req, cfg, inst)
}
