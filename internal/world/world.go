package world

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/game/ability"
	"github.com/yamato-games/sengoku-arena/internal/game/vision"
	"github.com/yamato-games/sengoku-arena/internal/model"
)

// DamageRecord captures one damage application, for downstream combat
// resolution and tests.
type DamageRecord struct {
	Target model.EntityID
	Amount float32
	Type   ability.DamageType
}

// BuffRecord captures one buff application.
type BuffRecord struct {
	Target   model.EntityID
	Stats    map[string]float32
	Duration float32
}

// World is the in-memory entity store backing the game loop. It implements
// the ability engine's world port and feeds obstacles to the vision
// refresher. All methods are safe for concurrent use.
type World struct {
	mu        sync.RWMutex
	positions map[model.EntityID]mgl32.Vec2
	obstacles []vision.Obstacle

	damage []DamageRecord
	buffs  []BuffRecord
}

func New() *World {
	return &World{
		positions: make(map[model.EntityID]mgl32.Vec2),
	}
}

// CreateEntity allocates a fresh entity id at the origin.
func (w *World) CreateEntity() model.EntityID {
	id := model.NextEntityID()
	w.mu.Lock()
	w.positions[id] = mgl32.Vec2{}
	w.mu.Unlock()
	return id
}

// Spawn creates an entity at pos.
func (w *World) Spawn(pos mgl32.Vec2) model.EntityID {
	id := model.NextEntityID()
	w.mu.Lock()
	w.positions[id] = pos
	w.mu.Unlock()
	return id
}

// Remove deletes an entity.
func (w *World) Remove(id model.EntityID) {
	w.mu.Lock()
	delete(w.positions, id)
	w.mu.Unlock()
}

func (w *World) Position(id model.EntityID) (mgl32.Vec2, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	pos, ok := w.positions[id]
	return pos, ok
}

func (w *World) SetPosition(id model.EntityID, pos mgl32.Vec2) {
	w.mu.Lock()
	w.positions[id] = pos
	w.mu.Unlock()
}

// EntitiesInRange returns every entity within radius of center, in
// unspecified order.
func (w *World) EntitiesInRange(center mgl32.Vec2, radius float32) []model.EntityID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	var out []model.EntityID
	for id, pos := range w.positions {
		if pos.Sub(center).Len() <= radius {
			out = append(out, id)
		}
	}
	return out
}

func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.positions)
}

// ApplyDamage records a damage application against target.
func (w *World) ApplyDamage(target model.EntityID, amount float32, dmgType ability.DamageType) {
	w.mu.Lock()
	w.damage = append(w.damage, DamageRecord{Target: target, Amount: amount, Type: dmgType})
	w.mu.Unlock()
}

// ApplyBuff records a stat modification against target.
func (w *World) ApplyBuff(target model.EntityID, stats map[string]float32, duration float32) {
	w.mu.Lock()
	w.buffs = append(w.buffs, BuffRecord{Target: target, Stats: stats, Duration: duration})
	w.mu.Unlock()
}

// DrainDamage returns and clears the accumulated damage records.
func (w *World) DrainDamage() []DamageRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.damage
	w.damage = nil
	return out
}

// DrainBuffs returns and clears the accumulated buff records.
func (w *World) DrainBuffs() []BuffRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.buffs
	w.buffs = nil
	return out
}

// AddObstacle registers a vision blocker.
func (w *World) AddObstacle(o vision.Obstacle) {
	w.mu.Lock()
	w.obstacles = append(w.obstacles, o)
	w.mu.Unlock()
}

// Obstacles returns a snapshot of the registered blockers.
func (w *World) Obstacles() []vision.Obstacle {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]vision.Obstacle, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}
