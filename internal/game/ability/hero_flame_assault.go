package ability

// FlameAssaultHandler detonates a flame burst at the target point: an
// instant explosion plus a short area stun over the same disc.
type FlameAssaultHandler struct{}

// AbilityID returns "flame_assault".
func (FlameAssaultHandler) AbilityID() string { return "flame_assault" }

// Execute produces the explosion area effect and the stun area effect.
func (h FlameAssaultHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	if req.TargetPosition == nil {
		return nil
	}

	damage := CustomValue(lvl, "damage", 200)
	stunDuration := CustomValue(lvl, "stun_duration", 0.3)
	radius := CustomValue(lvl, "radius", 500)
	if lvl.Radius != nil {
		radius = *lvl.Radius
	}

	return []Effect{
		AreaEffect{
			Center:     *req.TargetPosition,
			Radius:     radius,
			Duration:   0.2,
			EffectType: "flame_assault_explosion",
			Damage:     Float32Ptr(damage),
		},
		AreaEffect{
			Center:     *req.TargetPosition,
			Radius:     radius,
			Duration:   stunDuration,
			EffectType: "flame_assault_stun",
		},
	}
}

// CanExecute uses the default gate.
func (h FlameAssaultHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	return DefaultCanExecute(req, cfg, inst)
}
