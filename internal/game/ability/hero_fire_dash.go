package ability

// FireDashHandler dashes the caster toward the target point, scorching a
// trail that burns anything caught in it.
type FireDashHandler struct{}

// dashTrailWidth is the burning path width in world units.
const dashTrailWidth = 150.0

// AbilityID returns "fire_dash".
func (FireDashHandler) AbilityID() string { return "fire_dash" }

// Execute produces the dash movement modifier and the trail area effect.
func (h FireDashHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	if req.TargetPosition == nil {
		return nil
	}

	damagePerTick := CustomValue(lvl, "damage_per_tick", 50)
	dashDuration := CustomValue(lvl, "dash_duration", 0.5)

	effects := []Effect{
		StatusModifier{
			Target:       req.Caster,
			ModifierType: "dash_to_position",
			Value:        0,
			Duration:     Float32Ptr(dashDuration),
		},
		AreaEffect{
			Center:       *req.TargetPosition,
			Radius:       dashTrailWidth / 2,
			Duration:     dashDuration,
			TickInterval: 0.1,
			EffectType:   "fire_dash_trail",
			Damage:       Float32Ptr(damagePerTick),
		},
	}

	if v, ok := lvl.CustomValue("speed_bonus"); ok {
		effects = append(effects, StatusModifier{
			Target:       req.Caster,
			ModifierType: "move_speed_bonus",
			Value:        float32(v),
			Duration:     Float32Ptr(dashDuration),
		})
	}

	return effects
}

// CanExecute uses the default gate.
func (h FireDashHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	return DefaultCanExecute(req, cfg, inst)
}
