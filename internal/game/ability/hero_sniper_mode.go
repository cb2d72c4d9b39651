package ability

// SniperModeHandler implements Saika Magoichi's toggle: longer range and
// harder hits traded for attack and movement speed. No cooldown, charges or
// mana — it can flip at any time.
type SniperModeHandler struct{}

// AbilityID returns "sniper_mode".
func (SniperModeHandler) AbilityID() string { return "sniper_mode" }

// Execute emits one StatusModifier per stance stat. Speed penalties are
// expressed as multipliers (-0.3 becomes the 0.7 factor the host applies).
// All modifiers are open-ended: they last until the toggle flips back.
func (h SniperModeHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	var effects []Effect

	if v, ok := lvl.CustomValue("range_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "range_bonus",
			Value:        float32(v),
		})
	}
	if v, ok := lvl.CustomValue("damage_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "damage_bonus",
			Value:        float32(v),
		})
	}
	if v, ok := lvl.CustomValue("attack_speed_penalty"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "attack_speed_multiplier",
			Value:        1 + float32(v),
		})
	}
	if v, ok := lvl.CustomValue("move_speed_penalty"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "move_speed_multiplier",
			Value:        1 + float32(v),
		})
	}
	if v, ok := lvl.CustomValue("accuracy_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "accuracy_bonus",
			Value:        float32(v),
		})
	}

	return effects
}

// CanExecute only checks the target policy: toggles ignore cooldown,
// charges and mana.
func (h SniperModeHandler) CanExecute(req *Request, cfg *Config, _ *Instance) bool {
	return CheckTarget(req, cfg)
}
