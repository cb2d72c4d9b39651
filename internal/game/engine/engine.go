// Package engine drives the fixed-step game loop: ability requests are
// processed per tick, their effects applied to the world, and visibility
// snapshots refreshed.
package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/game/ability"
	"github.com/yamato-games/sengoku-arena/internal/game/vision"
	"github.com/yamato-games/sengoku-arena/internal/model"
	"github.com/yamato-games/sengoku-arena/internal/world"
)

// Engine owns one match's simulation state.
type Engine struct {
	world     *world.World
	processor *ability.Processor
	applier   *ability.Applier
	refresher *vision.Refresher
	cache     *vision.ResultCache

	visionMaxAge float64
	now          float64
	tick         uint64
}

// Options configures engine construction.
type Options struct {
	Store    *ability.ConfigStore
	Registry *ability.Registry
	// VisionInterval is the refresher ticker period used by standalone
	// vision loops; the engine itself refreshes every tick.
	VisionInterval time.Duration
	// VisionMaxAge is the cache expiry window in seconds.
	VisionMaxAge float64
}

func New(opts Options) *Engine {
	w := world.New()
	cache := vision.NewResultCache()

	interval := opts.VisionInterval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	maxAge := opts.VisionMaxAge
	if maxAge <= 0 {
		maxAge = 0.2
	}

	registry := opts.Registry
	if registry == nil {
		registry = ability.NewHeroRegistry()
	}

	return &Engine{
		world:        w,
		processor:    ability.NewProcessor(opts.Store, registry),
		applier:      ability.NewApplier(),
		refresher:    vision.NewRefresher(cache, w.Position, w.Obstacles, interval, maxAge),
		cache:        cache,
		visionMaxAge: maxAge,
	}
}

func (e *Engine) World() *world.World              { return e.world }
func (e *Engine) Processor() *ability.Processor    { return e.processor }
func (e *Engine) VisionCache() *vision.ResultCache { return e.cache }
func (e *Engine) Refresher() *vision.Refresher     { return e.refresher }

// Now returns the accumulated simulation time in seconds.
func (e *Engine) Now() float64 { return e.now }

// EnqueueAbility queues an ability request for the next tick.
func (e *Engine) EnqueueAbility(req ability.Request) {
	e.processor.Enqueue(req)
}

// AddObserver spawns an entity and registers it for vision updates.
func (e *Engine) AddObserver(pos mgl32.Vec2, visionRange float32) model.EntityID {
	id := e.world.Spawn(pos)
	e.refresher.Register(id, vision.NewCircularVision(visionRange, 0))
	return id
}

// RemoveEntity drops an entity from the world, the ability state store and
// the vision layer.
func (e *Engine) RemoveEntity(id model.EntityID) {
	e.world.Remove(id)
	e.processor.RemoveEntity(id)
	e.refresher.Unregister(id)
}

// Step advances the simulation by dt seconds: process queued ability
// requests, apply the resulting effects, refresh vision, expire stale
// snapshots.
func (e *Engine) Step(dt float32) []ability.TickResult {
	e.now += float64(dt)
	e.tick++

	results := e.processor.Tick(dt, float32(e.now))
	for i := range results {
		r := &results[i]
		if r.Result.Kind != ability.ResultSuccess {
			continue
		}
		e.applier.Apply(e.world, r.Request.Caster, r.Result.Effects)
	}

	e.refresher.Refresh(e.now)
	e.cache.CleanupExpired(e.now, e.visionMaxAge)

	return results
}

// Run executes fixed-step ticks until ctx is cancelled.
func (e *Engine) Run(ctx context.Context, step time.Duration) error {
	ticker := time.NewTicker(step)
	defer ticker.Stop()

	dt := float32(step.Seconds())
	slog.Info("engine loop started", "step", step)

	for {
		select {
		case <-ctx.Done():
			slog.Info("engine loop stopping", "ticks", e.tick)
			return ctx.Err()
		case <-ticker.C:
			results := e.Step(dt)
			if n := len(results); n > 0 {
				slog.Debug("tick processed", "tick", e.tick, "requests", n)
			}
		}
	}
}
