package ability

import "testing"

func TestInstanceCooldownTick(t *testing.T) {
	inst := NewInstance("three_stage_technique", 1, 3)
	inst.LevelUp()

	if !inst.Use(5.0, 0) {
		t.Fatal("Use() on a ready instance should succeed")
	}
	if inst.State != StateCooldown {
		t.Fatalf("State = %v, want %v", inst.State, StateCooldown)
	}

	// Three ticks of 2s: 5 → 3 → 1 → 0 (clamped).
	inst.Update(2.0, 2.0)
	if inst.CooldownRemaining != 3.0 {
		t.Errorf("CooldownRemaining = %v, want 3.0", inst.CooldownRemaining)
	}
	inst.Update(2.0, 4.0)
	if inst.CooldownRemaining != 1.0 {
		t.Errorf("CooldownRemaining = %v, want 1.0", inst.CooldownRemaining)
	}
	inst.Update(2.0, 6.0)
	if inst.CooldownRemaining != 0 {
		t.Errorf("CooldownRemaining = %v, want 0 (clamped)", inst.CooldownRemaining)
	}
	if inst.State != StateReady {
		t.Errorf("State after cooldown = %v, want %v", inst.State, StateReady)
	}
}

func TestInstanceNotLearned(t *testing.T) {
	inst := NewInstance("flame_blade", 1, 4)

	if inst.IsReady() {
		t.Error("unlearned instance must not be ready")
	}
	if inst.State != StateDisabled {
		t.Errorf("State = %v, want %v", inst.State, StateDisabled)
	}
	if inst.Use(1.0, 0) {
		t.Error("Use() on an unlearned instance must fail")
	}
}

func TestInstanceChargesExhaustion(t *testing.T) {
	inst := NewInstance("saika_reinforcements", 1, 2)
	inst.LevelUp()
	inst.Charges = 2
	inst.MaxCharges = 2

	if !inst.Use(0, 0) {
		t.Fatal("first use should succeed")
	}
	if inst.Charges != 1 {
		t.Fatalf("Charges = %d, want 1", inst.Charges)
	}
	if !inst.Use(0, 1) {
		t.Fatal("second use should succeed")
	}
	if inst.Charges != 0 {
		t.Fatalf("Charges = %d, want 0", inst.Charges)
	}
	if inst.State != StateNoCharges {
		t.Errorf("State = %v, want %v", inst.State, StateNoCharges)
	}
	if inst.Use(0, 2) {
		t.Error("use without charges must fail")
	}

	inst.RestoreCharges(1)
	if inst.State != StateReady {
		t.Errorf("State after restore = %v, want %v", inst.State, StateReady)
	}
	if !inst.Use(0, 3) {
		t.Error("use after restore should succeed")
	}
}

func TestInstanceToggle(t *testing.T) {
	inst := NewInstance("sniper_mode", 1, 2)
	inst.IsToggled = true
	inst.LevelUp()
	inst.Charges = 1

	// Toggle on: no charge consumed.
	if !inst.Use(0, 0) {
		t.Fatal("toggle on should succeed")
	}
	if !inst.IsToggleActive() {
		t.Error("toggle should be active after first use")
	}
	if inst.Charges != 1 {
		t.Errorf("Charges = %d, want 1 (toggles never consume charges)", inst.Charges)
	}

	// Toggle off: no cooldown started.
	if !inst.Use(10.0, 1.0) {
		t.Fatal("toggle off should succeed")
	}
	if inst.IsToggleActive() {
		t.Error("toggle should be inactive after second use")
	}
	if inst.CooldownRemaining != 0 {
		t.Errorf("CooldownRemaining = %v, want 0 (deactivation applies no cooldown)", inst.CooldownRemaining)
	}
	if !inst.IsReady() {
		t.Error("toggle must stay usable after deactivation")
	}
}

func TestInstanceChannel(t *testing.T) {
	inst := NewInstance("rain_iron_cannon", 1, 1)
	inst.LevelUp()

	inst.StartChannel(3.0)
	if inst.State != StateChanneling {
		t.Fatalf("State = %v, want %v", inst.State, StateChanneling)
	}

	inst.Update(1.0, 1.0)
	if inst.ChannelTimeRemaining != 2.0 {
		t.Errorf("ChannelTimeRemaining = %v, want 2.0", inst.ChannelTimeRemaining)
	}

	inst.InterruptChannel()
	if inst.IsChanneling {
		t.Error("channel should stop after interrupt")
	}
	if inst.ChannelTimeRemaining != 0 {
		t.Errorf("ChannelTimeRemaining = %v, want 0", inst.ChannelTimeRemaining)
	}
}

func TestInstanceZeroDurationChannelClears(t *testing.T) {
	inst := NewInstance("rain_iron_cannon", 1, 1)
	inst.LevelUp()

	inst.StartChannel(0)
	inst.Update(0.1, 0.1)
	if inst.IsChanneling {
		t.Error("zero-duration channel should clear on the next tick")
	}
	if inst.State != StateReady {
		t.Errorf("State = %v, want %v", inst.State, StateReady)
	}
}

func TestInstanceStatePriority(t *testing.T) {
	inst := NewInstance("flame_assault", 1, 1)
	inst.LevelUp()

	// Channeling beats cooldown.
	inst.CooldownRemaining = 5.0
	inst.StartChannel(1.0)
	if inst.State != StateChanneling {
		t.Errorf("State = %v, want %v (channel beats cooldown)", inst.State, StateChanneling)
	}

	// Cooldown beats missing charges.
	inst.InterruptChannel()
	inst.Charges = 0
	inst.Recompute()
	if inst.State != StateCooldown {
		t.Errorf("State = %v, want %v (cooldown beats charges)", inst.State, StateCooldown)
	}

	// Unlearned beats everything.
	inst.CurrentLevel = 0
	inst.Recompute()
	if inst.State != StateDisabled {
		t.Errorf("State = %v, want %v", inst.State, StateDisabled)
	}
}

func TestInstanceLevelUp(t *testing.T) {
	inst := NewInstance("matchlock_gun", 1, 2)

	if !inst.LevelUp() {
		t.Fatal("learn (0 → 1) should succeed")
	}
	if inst.State != StateReady {
		t.Errorf("State after learn = %v, want %v", inst.State, StateReady)
	}
	if !inst.LevelUp() {
		t.Fatal("level 1 → 2 should succeed")
	}
	if inst.LevelUp() {
		t.Error("level up past MaxLevel must fail")
	}
	if inst.CurrentLevel != 2 {
		t.Errorf("CurrentLevel = %d, want 2", inst.CurrentLevel)
	}
}

// Replaying the same sequence of calls must yield the same final state.
func TestInstanceDeterministicReplay(t *testing.T) {
	run := func() *Instance {
		inst := NewInstance("fire_dash", 7, 3)
		inst.LevelUp()
		inst.Use(4.0, 0)
		inst.Update(1.5, 1.5)
		inst.Update(1.5, 3.0)
		inst.LevelUp()
		inst.Update(1.5, 4.5)
		return inst
	}

	a, b := run(), run()
	if a.State != b.State || a.CooldownRemaining != b.CooldownRemaining ||
		a.Charges != b.Charges || a.CurrentLevel != b.CurrentLevel {
		t.Errorf("replay diverged: %+v vs %+v", a, b)
	}
}
