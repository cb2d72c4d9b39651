package ability

import "github.com/go-gl/mathgl/mgl32"

// SaikaReinforcementsHandler summons Saika gunners at the target point, or
// at the caster's feet when the request has no position.
type SaikaReinforcementsHandler struct{}

// AbilityID returns "saika_reinforcements".
func (SaikaReinforcementsHandler) AbilityID() string { return "saika_reinforcements" }

// Execute produces one Summon effect sized by the level tunables.
func (h SaikaReinforcementsHandler) Execute(req *Request, _ *Config, lvl *LevelData) []Effect {
	position := mgl32.Vec2{}
	if req.TargetPosition != nil {
		position = *req.TargetPosition
	}

	count := CustomInt(lvl, "summon_count", 1)
	summon := Summon{
		Position: position,
		UnitType: "saika_gunner",
		Count:    count,
		Duration: lvl.Duration,
	}
	if v, ok := lvl.CustomValue("summon_duration"); ok {
		summon.Duration = Float32Ptr(float32(v))
	}

	return []Effect{summon}
}

// CanExecute uses the default gate.
func (h SaikaReinforcementsHandler) CanExecute(req *Request, cfg *Config, inst *Instance) bool {
	return DefaultCanExecute(req, cfg, inst)
}
