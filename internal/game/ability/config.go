package ability

// AbilityType determines how an ability activates.
type AbilityType string

const (
	TypeActive    AbilityType = "active"
	TypePassive   AbilityType = "passive"
	TypeToggle    AbilityType = "toggle"
	TypeChanneled AbilityType = "channeled"
	TypeUltimate  AbilityType = "ultimate"
)

// TargetType determines what kind of target an ability requires.
type TargetType string

const (
	TargetNone      TargetType = "none"
	TargetSelf      TargetType = "self"
	TargetUnit      TargetType = "unit"
	TargetPoint     TargetType = "point"
	TargetDirection TargetType = "direction"
	TargetArea      TargetType = "area"
)

// CastType determines the cast flow of an ability.
type CastType string

const (
	CastInstant   CastType = "instant"
	CastChanneled CastType = "channeled"
	CastCharged   CastType = "charged"
	CastToggle    CastType = "toggle"
)

// ConditionType names a precondition predicate evaluated before execution.
type ConditionType string

const (
	ConditionHasBuff     ConditionType = "has_buff"
	ConditionHealthBelow ConditionType = "health_below"
	ConditionHealthAbove ConditionType = "health_above"
	ConditionInRange     ConditionType = "in_range"
	ConditionHasMana     ConditionType = "has_mana"
)

// Condition is a declarative precondition attached to a config.
type Condition struct {
	Type  ConditionType `yaml:"type" json:"type"`
	Value Value         `yaml:"value" json:"value"`
}

// LevelData holds the per-level numbers of an ability. Extra carries
// handler-specific tunables keyed by name.
type LevelData struct {
	Level    int                `yaml:"level" json:"level"`
	Cooldown float32            `yaml:"cooldown" json:"cooldown"`
	ManaCost float32            `yaml:"mana_cost" json:"mana_cost"`
	CastTime float32            `yaml:"cast_time" json:"cast_time"`
	Range    float32            `yaml:"range" json:"range"`
	Damage   *float32           `yaml:"damage,omitempty" json:"damage,omitempty"`
	Duration *float32           `yaml:"duration,omitempty" json:"duration,omitempty"`
	Radius   *float32           `yaml:"radius,omitempty" json:"radius,omitempty"`
	Charges  *int               `yaml:"charges,omitempty" json:"charges,omitempty"`
	Extra    map[string]float64 `yaml:"extra,omitempty" json:"extra,omitempty"`
}

// CustomValue reads a handler tunable from Extra.
func (d *LevelData) CustomValue(key string) (float64, bool) {
	v, ok := d.Extra[key]
	return v, ok
}

// Config is the immutable descriptor of one ability. Shared across all
// casters — never modified after load.
type Config struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`

	AbilityType AbilityType `yaml:"ability_type" json:"ability_type"`
	TargetType  TargetType  `yaml:"target_type" json:"target_type"`
	CastType    CastType    `yaml:"cast_type" json:"cast_type"`

	Levels []LevelData `yaml:"levels" json:"levels"`

	// Declarative effect templates. Most abilities build effects in their
	// handler instead, so this is often empty.
	Effects []EffectTemplate `yaml:"effects,omitempty" json:"effects,omitempty"`

	Conditions   []Condition      `yaml:"conditions,omitempty" json:"conditions,omitempty"`
	CustomParams map[string]Value `yaml:"custom_params,omitempty" json:"custom_params,omitempty"`
}

// LevelData returns the descriptor whose Level field matches.
// Missing levels return false; callers fall back or reject the request.
func (c *Config) LevelData(level int) (*LevelData, bool) {
	for i := range c.Levels {
		if c.Levels[i].Level == level {
			return &c.Levels[i], true
		}
	}
	return nil, false
}

// MaxLevel returns the highest level present in Levels, at least 1.
func (c *Config) MaxLevel() int {
	maxLvl := 1
	for i := range c.Levels {
		if c.Levels[i].Level > maxLvl {
			maxLvl = c.Levels[i].Level
		}
	}
	return maxLvl
}

// IsToggle reports whether the ability flips an on/off flag instead of
// consuming charges and cooldown.
func (c *Config) IsToggle() bool {
	return c.AbilityType == TypeToggle || c.CastType == CastToggle
}

// EffectTemplate is a declarative effect carried in config files. The
// processor hands templates to handlers untouched; the default handler
// scales them with level data.
type EffectTemplate struct {
	Type       string             `yaml:"type" json:"type"`
	Target     string             `yaml:"target,omitempty" json:"target,omitempty"`
	DamageType DamageType         `yaml:"damage_type,omitempty" json:"damage_type,omitempty"`
	Params     map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
}
