package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/skirmish/actor"
	"github.com/milk9111/skirmish/variant"
	"gopkg.in/yaml.v3"
)

var ErrUnknownVariant = errors.New("prefabs: unknown variant")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// VariantKind selects the behaviour bound to an archetype.
type VariantKind string

const (
	VariantPlayer   VariantKind = "player"
	VariantEnemy    VariantKind = "enemy"
	VariantScripted VariantKind = "scripted"
)

// ActorSpec is one archetype's tuning as written in YAML.
type ActorSpec struct {
	Name          string         `yaml:"name"`
	Variant       VariantKind    `yaml:"variant"`
	Stats         StatsSpec      `yaml:"stats"`
	StartShield   float64        `yaml:"start_shield"`
	CooldownUnits float64        `yaml:"cooldown_units"`
	MoveEpsilon   float64        `yaml:"move_epsilon"`
	FlashDuration float64        `yaml:"flash_duration"`
	FacingScale   float64        `yaml:"facing_scale"`
	Size          SizeSpec       `yaml:"size"`
	Color         *YAMLColor     `yaml:"color"`
	Glyph         string         `yaml:"glyph"`
	Projectile    ProjectileSpec `yaml:"projectile"`
	AI            AISpec         `yaml:"ai"`
	Script        string         `yaml:"script"`
	Scenes        ScenesSpec     `yaml:"scenes"`
}

type StatsSpec struct {
	MaxLife          float64 `yaml:"max_life"`
	MaxShield        float64 `yaml:"max_shield"`
	MaxMovementSpeed float64 `yaml:"max_movement_speed"`
	MovementSpeed    float64 `yaml:"movement_speed"`
	MaxAttackSpeed   float64 `yaml:"max_attack_speed"`
	AttackSpeed      float64 `yaml:"attack_speed"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ProjectileSpec struct {
	Speed    float64 `yaml:"speed"`
	Damage   float64 `yaml:"damage"`
	Radius   float64 `yaml:"radius"`
	Lifetime float64 `yaml:"lifetime"`
}

type AISpec struct {
	FollowRange  float64 `yaml:"follow_range"`
	AttackRange  float64 `yaml:"attack_range"`
	StopDistance float64 `yaml:"stop_distance"`
	Damage       float64 `yaml:"damage"`
}

type ScenesSpec struct {
	Victory     string  `yaml:"victory"`
	Defeat      string  `yaml:"defeat"`
	DefeatDelay float64 `yaml:"defeat_delay"`
}

// LoadActorSpec loads name, with or without the .yaml suffix, and checks it
// would build a valid actor.
func LoadActorSpec(name string) (*ActorSpec, error) {
	filename := specFile(name)
	spec, err := LoadSpec[ActorSpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// Validate reports a spec that cannot be spawned.
func (s *ActorSpec) Validate() error {
	switch s.Variant {
	case VariantPlayer, VariantEnemy:
	case VariantScripted:
		if strings.TrimSpace(s.Script) == "" {
			return fmt.Errorf("%w: scripted without script", ErrUnknownVariant)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVariant, s.Variant)
	}
	cfg := s.Config()
	return cfg.Validate()
}

// Config converts the spec into actor tuning. Zero fields take the actor
// package defaults.
func (s *ActorSpec) Config() actor.Config {
	cfg := actor.DefaultConfig()
	cfg.Name = s.Name
	cfg.MaxLife = s.Stats.MaxLife
	cfg.MaxShield = s.Stats.MaxShield
	cfg.StartShield = s.StartShield
	cfg.MaxMovementSpeed = s.Stats.MaxMovementSpeed
	cfg.MovementSpeed = s.Stats.MovementSpeed
	cfg.MaxAttackSpeed = s.Stats.MaxAttackSpeed
	cfg.AttackSpeed = s.Stats.AttackSpeed
	if s.CooldownUnits > 0 {
		cfg.CooldownUnits = s.CooldownUnits
	}
	if s.MoveEpsilon > 0 {
		cfg.MoveEpsilon = s.MoveEpsilon
	}
	if s.FlashDuration > 0 {
		cfg.FlashDuration = s.FlashDuration
	}
	if s.FacingScale != 0 {
		cfg.FacingScale = s.FacingScale
	}
	return cfg
}

// Tuning returns the AI ranges, filling gaps from variant.DefaultTuning.
func (s *ActorSpec) Tuning() variant.Tuning {
	t := variant.DefaultTuning()
	if s.AI.FollowRange > 0 {
		t.FollowRange = s.AI.FollowRange
	}
	if s.AI.AttackRange > 0 {
		t.AttackRange = s.AI.AttackRange
	}
	if s.AI.StopDistance > 0 {
		t.StopDistance = s.AI.StopDistance
	}
	if s.AI.Damage > 0 {
		t.Damage = s.AI.Damage
	}
	return t
}

// SceneNames returns the scenes a player requests, filling gaps from
// variant.DefaultScenes.
func (s *ActorSpec) SceneNames() variant.Scenes {
	sc := variant.DefaultScenes()
	if s.Scenes.Victory != "" {
		sc.Victory = s.Scenes.Victory
	}
	if s.Scenes.Defeat != "" {
		sc.Defeat = s.Scenes.Defeat
	}
	if s.Scenes.DefeatDelay > 0 {
		sc.DefeatDelay = s.Scenes.DefeatDelay
	}
	return sc
}

// Tint is the spec colour, or fallback when none is set.
func (s *ActorSpec) Tint(fallback color.Color) color.Color {
	if s.Color == nil || s.Color.Color == nil {
		return fallback
	}
	return s.Color.Color
}

type YAMLColor struct {
	color.Color
}

// UnmarshalYAML reads #rrggbb or #rrggbbaa.
func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	rgb, err := colorful.Hex("#" + s[:6])
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	a := uint8(255)
	if len(s) == 8 {
		v, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color alpha: %s", value.Value)
		}
		a = uint8(v)
	}

	r, g, b := rgb.RGB255()
	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

func specFile(name string) string {
	if isSpecFile(name) {
		return name
	}
	return name + ".yaml"
}
