package ability

// Registry maps ability id → handler. Read-only after startup registration.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register keys a handler by its own AbilityID. Later registrations replace
// earlier ones.
func (r *Registry) Register(h Handler) {
	r.handlers[h.AbilityID()] = h
}

// Get returns the handler for an ability id.
func (r *Registry) Get(abilityID string) (Handler, bool) {
	h, ok := r.handlers[abilityID]
	return h, ok
}

// IDs returns all registered ability ids.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}

// NewHeroRegistry returns a registry with every built-in hero handler
// registered.
func NewHeroRegistry() *Registry {
	r := NewRegistry()
	r.Register(SniperModeHandler{})
	r.Register(SaikaReinforcementsHandler{})
	r.Register(RainIronCannonHandler{})
	r.Register(ThreeStageTechniqueHandler{})
	r.Register(FlameBladeHandler{})
	r.Register(FireDashHandler{})
	r.Register(FlameAssaultHandler{})
	r.Register(MatchlockGunHandler{})
	return r
}
