package ability

import (
	"log/slog"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// Processor drives the ability engine: it consumes queued requests once per
// tick, gates them through handler checks and instance state, commits state
// transitions and returns the produced effects for downstream application.
// Single-writer: only the tick mutates instances.
type Processor struct {
	store    *ConfigStore
	registry *Registry

	instances map[model.EntityID]map[string]*Instance

	queues     map[model.EntityID][]Request
	queueOrder []model.EntityID

	events []Event
}

// NewProcessor creates a processor over a config store and handler registry.
func NewProcessor(store *ConfigStore, registry *Registry) *Processor {
	return &Processor{
		store:     store,
		registry:  registry,
		instances: make(map[model.EntityID]map[string]*Instance),
		queues:    make(map[model.EntityID][]Request),
	}
}

// TickResult pairs a consumed request with its outcome.
type TickResult struct {
	Request Request
	Result  Result
}

// Enqueue appends a request to its caster's FIFO queue.
func (p *Processor) Enqueue(req Request) {
	if _, ok := p.queues[req.Caster]; !ok {
		p.queueOrder = append(p.queueOrder, req.Caster)
	}
	p.queues[req.Caster] = append(p.queues[req.Caster], req)
}

// Tick consumes all pending requests and advances every instance by dt.
// Requests from a single caster resolve in arrival order; the order across
// casters is the enqueue order and is not observable externally.
func (p *Processor) Tick(dt, now float32) []TickResult {
	var results []TickResult

	for _, caster := range p.queueOrder {
		for i := range p.queues[caster] {
			req := p.queues[caster][i]
			results = append(results, TickResult{
				Request: req,
				Result:  p.process(&req, now),
			})
		}
		delete(p.queues, caster)
	}
	p.queueOrder = p.queueOrder[:0]

	p.advance(dt, now)

	return results
}

// process resolves one request against config, handler and instance state.
func (p *Processor) process(req *Request, now float32) Result {
	cfg, ok := p.store.Get(req.AbilityID)
	if !ok {
		return Failed(ReasonUnknownAbility)
	}
	handler, ok := p.registry.Get(req.AbilityID)
	if !ok {
		return Failed(ReasonUnknownAbility)
	}

	inst := p.instance(req.Caster, cfg)

	// Unlearned abilities are rejected before any handler override runs.
	if inst.CurrentLevel <= 0 {
		return Failed(ReasonNotLearned)
	}

	lvl, ok := cfg.LevelData(inst.CurrentLevel)
	if !ok {
		return Failed(ReasonNoLevelData)
	}

	if !handler.CanExecute(req, cfg, inst) {
		return p.rejectionReason(req, inst, lvl)
	}

	effects := handler.Execute(req, cfg, lvl)

	inst.Use(lvl.Cooldown, now)
	if cfg.AbilityType == TypeChanneled || cfg.CastType == CastChanneled {
		duration := lvl.CastTime
		if lvl.Duration != nil {
			duration = *lvl.Duration
		}
		inst.StartChannel(duration)
	}

	p.emit(Event{Type: EventUsed, Caster: req.Caster, AbilityID: req.AbilityID})
	if inst.CooldownRemaining > 0 {
		p.emit(Event{
			Type:      EventCooldownStarted,
			Caster:    req.Caster,
			AbilityID: req.AbilityID,
			Duration:  inst.CooldownRemaining,
		})
	}

	slog.Debug("ability used",
		"caster", req.Caster,
		"ability", req.AbilityID,
		"level", inst.CurrentLevel,
		"effects", len(effects))

	return Success(effects)
}

// rejectionReason maps a failed gate to the most specific result.
func (p *Processor) rejectionReason(req *Request, inst *Instance, lvl *LevelData) Result {
	if inst.CooldownRemaining > 0 {
		return OnCooldown(inst.CooldownRemaining)
	}
	if !CheckMana(req, lvl) || !CheckCharges(inst) {
		return InsufficientResources()
	}
	return Failed(ReasonInvalidTarget)
}

// advance updates every instance at the end of a tick, emitting
// cooldown-ended events where a timer crossed zero.
func (p *Processor) advance(dt, now float32) {
	for owner, byID := range p.instances {
		for id, inst := range byID {
			wasCooling := inst.CooldownRemaining > 0
			inst.Update(dt, now)
			if wasCooling && inst.CooldownRemaining == 0 {
				p.emit(Event{Type: EventCooldownEnded, Caster: owner, AbilityID: id})
			}
		}
	}
}

// instance returns the caster's instance for an ability, creating an
// unlearned one on first touch.
func (p *Processor) instance(owner model.EntityID, cfg *Config) *Instance {
	byID, ok := p.instances[owner]
	if !ok {
		byID = make(map[string]*Instance)
		p.instances[owner] = byID
	}
	inst, ok := byID[cfg.ID]
	if !ok {
		inst = NewInstanceFromConfig(cfg, owner)
		byID[cfg.ID] = inst
	}
	return inst
}

// Instance exposes the runtime state for inspection.
func (p *Processor) Instance(owner model.EntityID, abilityID string) (*Instance, bool) {
	inst, ok := p.instances[owner][abilityID]
	return inst, ok
}

// Learn raises the ability one level (0 → 1 on first call), creating the
// instance if needed. Returns false past max level or for unknown ids.
func (p *Processor) Learn(owner model.EntityID, abilityID string) bool {
	cfg, ok := p.store.Get(abilityID)
	if !ok {
		return false
	}
	inst := p.instance(owner, cfg)
	if !inst.LevelUp() {
		return false
	}
	p.emit(Event{
		Type:      EventLevelUp,
		Caster:    owner,
		AbilityID: abilityID,
		Level:     inst.CurrentLevel,
	})
	return true
}

// InterruptChannel cancels an active channel on a caster's ability.
func (p *Processor) InterruptChannel(owner model.EntityID, abilityID string) {
	if inst, ok := p.instances[owner][abilityID]; ok {
		inst.InterruptChannel()
	}
}

// RemoveEntity drops all instances and pending requests for an entity.
// Called when the owning entity leaves the world.
func (p *Processor) RemoveEntity(owner model.EntityID) {
	delete(p.instances, owner)
	delete(p.queues, owner)
	for i, e := range p.queueOrder {
		if e == owner {
			p.queueOrder = append(p.queueOrder[:i], p.queueOrder[i+1:]...)
			break
		}
	}
}

// DrainEvents returns the events accumulated since the last drain.
func (p *Processor) DrainEvents() []Event {
	out := p.events
	p.events = nil
	return out
}

func (p *Processor) emit(ev Event) {
	p.events = append(p.events, ev)
}
