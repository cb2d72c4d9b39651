package ability

// FlameBladeHandler is Date Masamune's forward slash. Against a point it
// burns a small disc on the blade's arc; against a unit it hits directly.
type FlameBladeHandler struct{}

// bladeWidth is the slash arc width in world units.
const bladeWidth = 200.0

// AbilityID returns "flame_blade".
func (FlameBladeHandler) AbilityID() string { return "flame_blade" }

// Execute produces an AreaEffect for point targets or a Damage effect for
// unit targets. Requests with neither produce nothing.
func (h FlameBladeHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	damage := CustomValue(lvl, "damage", 200)

	switch {
	case req.TargetPosition != nil:
		return []Effect{AreaEffect{
			Center:     *req.TargetPosition,
			Radius:     bladeWidth / 2,
			Duration:   0.1,
			EffectType: "flame_blade_slash",
			Damage:     Float32Ptr(damage),
		}}
	case req.TargetEntity != nil:
		return []Effect{Damage{
			Target: *req.TargetEntity,
			Amount: damage,
		}}
	default:
		return nil
	}
}

// CanExecute composes the standard checks with a relaxed target policy:
// the blade accepts either a point or a unit.
func (h FlameBladeHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	lvl, ok := cfg.LevelData(inst.CurrentLevel)
	if !ok {
		return false
	}
	return CheckCooldown(inst) &&
		CheckCharges(inst) &&
		CheckMana(req, lvl) &&
		CheckRange(req, lvl) &&
		h.checkTarget(req, cfg)
}

func (h FlameBladeHandler) checkTarget(req *Request, cfg *Config) bool {
	switch cfg.TargetType {
	case TargetPoint:
		return req.TargetPosition != nil
	case TargetUnit:
		return req.TargetEntity != nil
	default:
		return true
	}
}
