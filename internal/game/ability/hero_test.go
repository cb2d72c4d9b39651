package ability

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func sniperLevel() *LevelData {
	return &LevelData{
		Level: 1,
		Extra: map[string]float64{
			"range_bonus":          200,
			"damage_bonus":         0.25,
			"attack_speed_penalty": -0.3,
			"move_speed_penalty":   -0.5,
			"accuracy_bonus":       0.1,
		},
	}
}

func TestSniperModeStanceModifiers(t *testing.T) {
	h := SniperModeHandler{}
	req := NewRequest(1, "sniper_mode")

	effects := h.Execute(&req, nil, sniperLevel())
	if len(effects) != 5 {
		t.Fatalf("effects = %d, want 5 stance modifiers", len(effects))
	}

	want := map[string]float32{
		"range_bonus":             200,
		"damage_bonus":            0.25,
		"attack_speed_multiplier": 0.7,
		"move_speed_multiplier":   0.5,
		"accuracy_bonus":          0.1,
	}
	for _, e := range effects {
		mod, ok := e.(StatusModifier)
		if !ok {
			t.Fatalf("effect %T, want StatusModifier", e)
		}
		wantValue, ok := want[mod.ModifierType]
		if !ok {
			t.Errorf("unexpected modifier %q", mod.ModifierType)
			continue
		}
		if !floatNear(mod.Value, wantValue) {
			t.Errorf("%s = %v, want %v", mod.ModifierType, mod.Value, wantValue)
		}
		if mod.Duration != nil {
			t.Errorf("%s carries a duration; stance modifiers last until the toggle flips", mod.ModifierType)
		}
		if mod.Target != 1 {
			t.Errorf("%s targets %d, want the caster", mod.ModifierType, mod.Target)
		}
		delete(want, mod.ModifierType)
	}
	if len(want) != 0 {
		t.Errorf("missing modifiers: %v", want)
	}
}

func TestFlameBladePointTarget(t *testing.T) {
	h := FlameBladeHandler{}
	lvl := &LevelData{Level: 1, Extra: map[string]float64{"damage": 200}}
	req := NewRequest(1, "flame_blade").WithPosition(mgl32.Vec2{500, 300})

	effects := h.Execute(&req, nil, lvl)
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	area, ok := effects[0].(AreaEffect)
	if !ok {
		t.Fatalf("effect %T, want AreaEffect", effects[0])
	}
	if area.Center != (mgl32.Vec2{500, 300}) {
		t.Errorf("Center = %v, want (500, 300)", area.Center)
	}
	if area.Radius != 100 {
		t.Errorf("Radius = %v, want 100 (half the blade width)", area.Radius)
	}
	if area.EffectType != "flame_blade_slash" {
		t.Errorf("EffectType = %q, want flame_blade_slash", area.EffectType)
	}
	if area.Damage == nil || *area.Damage != 200 {
		t.Errorf("Damage = %v, want 200", area.Damage)
	}
	if !floatNear(area.Duration, 0.1) {
		t.Errorf("Duration = %v, want 0.1", area.Duration)
	}
}

func TestFlameBladeUnitTarget(t *testing.T) {
	h := FlameBladeHandler{}
	lvl := &LevelData{Level: 1, Extra: map[string]float64{"damage": 200}}
	req := NewRequest(1, "flame_blade").WithTarget(42)

	effects := h.Execute(&req, nil, lvl)
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	dmg, ok := effects[0].(Damage)
	if !ok {
		t.Fatalf("effect %T, want Damage", effects[0])
	}
	if dmg.Target != 42 || dmg.Amount != 200 {
		t.Errorf("Damage = %+v, want target 42 amount 200", dmg)
	}
}

func TestFlameBladeNoTarget(t *testing.T) {
	h := FlameBladeHandler{}
	lvl := &LevelData{Level: 1}
	req := NewRequest(1, "flame_blade")

	if effects := h.Execute(&req, nil, lvl); effects != nil {
		t.Errorf("effects = %v, want nil for a request with no target", effects)
	}
}

func TestThreeStageTechniqueVolley(t *testing.T) {
	h := ThreeStageTechniqueHandler{}
	lvl := &LevelData{Level: 1, Extra: map[string]float64{"damage_per_hit": 50, "hit_count": 3}}
	req := NewRequest(1, "three_stage_technique").WithTarget(9)

	effects := h.Execute(&req, nil, lvl)
	if len(effects) != 3 {
		t.Fatalf("effects = %d, want 3 hits", len(effects))
	}
	for i, e := range effects {
		dmg, ok := e.(Damage)
		if !ok {
			t.Fatalf("effect[%d] %T, want Damage", i, e)
		}
		if dmg.Target != 9 || dmg.Amount != 50 {
			t.Errorf("hit %d = %+v, want target 9 amount 50", i, dmg)
		}
	}
}

func TestSaikaReinforcementsSummon(t *testing.T) {
	h := SaikaReinforcementsHandler{}
	dur := float32(30)
	lvl := &LevelData{Level: 1, Duration: &dur, Extra: map[string]float64{"summon_count": 2}}
	req := NewRequest(1, "saika_reinforcements").WithPosition(mgl32.Vec2{100, 100})

	effects := h.Execute(&req, nil, lvl)
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	summon, ok := effects[0].(Summon)
	if !ok {
		t.Fatalf("effect %T, want Summon", effects[0])
	}
	if summon.UnitType != "saika_gunner" || summon.Count != 2 {
		t.Errorf("Summon = %+v, want 2 saika_gunner", summon)
	}
	if summon.Duration == nil || *summon.Duration != 30 {
		t.Errorf("Duration = %v, want 30", summon.Duration)
	}
}

func TestRainIronCannonSplitsDamageAcrossTicks(t *testing.T) {
	h := RainIronCannonHandler{}
	lvl := &LevelData{Level: 1, Extra: map[string]float64{
		"damage":        450,
		"radius":        300,
		"duration":      3,
		"tick_interval": 0.2,
		"total_ticks":   15,
	}}
	req := NewRequest(1, "rain_iron_cannon").WithPosition(mgl32.Vec2{800, 0})

	effects := h.Execute(&req, nil, lvl)
	if len(effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(effects))
	}
	area := effects[0].(AreaEffect)
	if area.Damage == nil || !floatNear(*area.Damage, 30) {
		t.Errorf("per-tick damage = %v, want 30 (450 over 15 ticks)", area.Damage)
	}
	if !floatNear(area.TickInterval, 0.2) {
		t.Errorf("TickInterval = %v, want 0.2", area.TickInterval)
	}
}

func TestHeroRegistryCoversAllHeroAbilities(t *testing.T) {
	reg := NewHeroRegistry()
	ids := []string{
		"sniper_mode", "saika_reinforcements", "rain_iron_cannon",
		"three_stage_technique", "flame_blade", "fire_dash",
		"flame_assault", "matchlock_gun",
	}
	for _, id := range ids {
		if _, ok := reg.Get(id); !ok {
			t.Errorf("registry missing %q", id)
		}
	}
	if reg.Len() != len(ids) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(ids))
	}
}

func floatNear(got, want float32) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d < 1e-5
}
