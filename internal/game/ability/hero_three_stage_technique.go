package ability

// ThreeStageTechniqueHandler fires a rapid volley at a single target.
// Each hit is a separate Damage effect so the host can animate and
// mitigate them independently.
type ThreeStageTechniqueHandler struct{}

// AbilityID returns "three_stage_technique".
func (ThreeStageTechniqueHandler) AbilityID() string { return "three_stage_technique" }

// Execute produces one Damage effect per volley hit.
func (h ThreeStageTechniqueHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	if req.TargetEntity == nil {
		return nil
	}

	perHit := CustomValue(lvl, "damage_per_hit", 50)
	hits := CustomInt(lvl, "hit_count", 3)

	effects := make([]Effect, 0, hits)
	for i := 0; i < hits; i++ {
		effects = append(effects, Damage{
			Target: *req.TargetEntity,
			Amount: perHit,
		})
	}
	return effects
}

// CanExecute uses the default gate.
func (h ThreeStageTechniqueHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	return DefaultCanExecute(req, cfg, inst)
}
