package ability

// RainIronCannonHandler drops a sustained bombardment on a target area.
// Total damage is split evenly across the ticks of the barrage.
type RainIronCannonHandler struct{}

// AbilityID returns "rain_iron_cannon".
func (RainIronCannonHandler) AbilityID() string { return "rain_iron_cannon" }

// Execute produces one ticking AreaEffect at the target position.
func (h RainIronCannonHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	if req.TargetPosition == nil {
		return nil
	}

	damage := CustomValue(lvl, "damage", 80)
	if lvl.Damage != nil {
		damage = *lvl.Damage
	}
	radius := CustomValue(lvl, "radius", 300)
	if lvl.Radius != nil {
		radius = *lvl.Radius
	}
	duration := CustomValue(lvl, "duration", 3)
	if lvl.Duration != nil {
		duration = *lvl.Duration
	}
	tickInterval := CustomValue(lvl, "tick_interval", 0.2)
	totalTicks := CustomInt(lvl, "total_ticks", 15)
	if totalTicks < 1 {
		totalTicks = 1
	}
	perTick := damage / float32(totalTicks)

	return []Effect{AreaEffect{
		Center:       *req.TargetPosition,
		Radius:       radius,
		Duration:     duration,
		TickInterval: tickInterval,
		EffectType:   "rain_iron_cannon",
		Damage:       Float32Ptr(perTick),
	}}
}

// CanExecute uses the default gate.
func (h RainIronCannonHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	return DefaultCanExecute(req, cfg, inst)
}
