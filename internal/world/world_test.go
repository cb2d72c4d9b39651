package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/game/ability"
	"github.com/yamato-games/sengoku-arena/internal/game/vision"
)

func TestWorldSpawnAndPosition(t *testing.T) {
	w := New()

	id := w.Spawn(mgl32.Vec2{3, 4})
	pos, ok := w.Position(id)
	if !ok {
		t.Fatal("spawned entity has no position")
	}
	if pos != (mgl32.Vec2{3, 4}) {
		t.Errorf("Position = %v, want (3, 4)", pos)
	}

	w.SetPosition(id, mgl32.Vec2{7, 8})
	pos, _ = w.Position(id)
	if pos != (mgl32.Vec2{7, 8}) {
		t.Errorf("Position after move = %v, want (7, 8)", pos)
	}

	w.Remove(id)
	if _, ok := w.Position(id); ok {
		t.Error("removed entity still has a position")
	}
}

func TestWorldDistinctIDs(t *testing.T) {
	w := New()
	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Errorf("CreateEntity returned %d twice", a)
	}
}

func TestWorldEntitiesInRange(t *testing.T) {
	w := New()
	near := w.Spawn(mgl32.Vec2{1, 0})
	edge := w.Spawn(mgl32.Vec2{5, 0})
	far := w.Spawn(mgl32.Vec2{20, 0})

	got := w.EntitiesInRange(mgl32.Vec2{0, 0}, 5)
	if len(got) != 2 {
		t.Fatalf("EntitiesInRange = %v, want 2 entities", got)
	}
	for _, id := range got {
		if id == far {
			t.Error("entity outside the radius included")
		}
	}
	_ = near
	_ = edge
}

func TestWorldDamageAndBuffRecords(t *testing.T) {
	w := New()
	target := w.Spawn(mgl32.Vec2{0, 0})

	w.ApplyDamage(target, 200, ability.DamagePhysical)
	w.ApplyBuff(target, map[string]float32{"range_bonus": 200}, 0)

	damage := w.DrainDamage()
	if len(damage) != 1 || damage[0].Amount != 200 {
		t.Errorf("DrainDamage = %+v, want one 200 record", damage)
	}
	if len(w.DrainDamage()) != 0 {
		t.Error("drain should clear the damage log")
	}

	buffs := w.DrainBuffs()
	if len(buffs) != 1 || buffs[0].Stats["range_bonus"] != 200 {
		t.Errorf("DrainBuffs = %+v, want one range_bonus record", buffs)
	}
}

func TestWorldObstacles(t *testing.T) {
	w := New()
	w.AddObstacle(vision.Obstacle{
		ID:         "rock",
		Position:   mgl32.Vec2{3, 0},
		Shape:      vision.Circle{Radius: 1},
		Properties: vision.Properties{BlocksCompletely: true},
	})

	obstacles := w.Obstacles()
	if len(obstacles) != 1 || obstacles[0].ID != "rock" {
		t.Fatalf("Obstacles = %+v, want the registered rock", obstacles)
	}

	// The returned slice is a snapshot, not an alias.
	obstacles[0].ID = "mutated"
	if w.Obstacles()[0].ID != "rock" {
		t.Error("mutating the snapshot leaked into the world")
	}
}
