package ability

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/yamato-games/sengoku-arena/internal/model"
)

// Request is one ability activation, created by the input layer and
// consumed exactly once by the Processor.
type Request struct {
	Caster         model.EntityID
	AbilityID      string
	Level          int
	TargetPosition *mgl32.Vec2
	TargetEntity   *model.EntityID
	Params         map[string]Value
}

// NewRequest creates a bare activation request.
func NewRequest(caster model.EntityID, abilityID string) Request {
	return Request{Caster: caster, AbilityID: abilityID, Level: 1}
}

// WithTarget sets the target entity.
func (r Request) WithTarget(target model.EntityID) Request {
	r.TargetEntity = &target
	return r
}

// WithPosition sets the target position.
func (r Request) WithPosition(pos mgl32.Vec2) Request {
	r.TargetPosition = &pos
	return r
}

// WithParam attaches an additional parameter.
func (r Request) WithParam(key string, v Value) Request {
	if r.Params == nil {
		r.Params = make(map[string]Value)
	}
	r.Params[key] = v
	return r
}

// Param reads an additional parameter.
func (r *Request) Param(key string) (Value, bool) {
	v, ok := r.Params[key]
	return v, ok
}

// ResultKind discriminates activation outcomes.
type ResultKind int8

const (
	ResultSuccess ResultKind = iota
	ResultFailed
	ResultCooldown
	ResultInsufficientResources
)

// Failure reasons carried by ResultFailed.
const (
	ReasonUnknownAbility = "unknown_ability"
	ReasonNoLevelData    = "no_level_data"
	ReasonNotLearned     = "not_learned"
	ReasonInvalidTarget  = "invalid_target"
)

// Result is the per-request outcome. Failures are data, never panics: the
// tick that produced them always completes.
type Result struct {
	Kind      ResultKind
	Effects   []Effect // set on success
	Reason    string   // set on failure
	Remaining float32  // set on cooldown rejection
}

// Success wraps an effect list.
func Success(effects []Effect) Result {
	return Result{Kind: ResultSuccess, Effects: effects}
}

// Failed wraps a structured failure reason.
func Failed(reason string) Result {
	return Result{Kind: ResultFailed, Reason: reason}
}

// OnCooldown reports the remaining cooldown.
func OnCooldown(remaining float32) Result {
	return Result{Kind: ResultCooldown, Remaining: remaining}
}

// InsufficientResources rejects for missing mana or charges.
func InsufficientResources() Result {
	return Result{Kind: ResultInsufficientResources}
}
