package actor

import "errors"

var (
	ErrNilConfig          = errors.New("actor: config is nil")
	ErrNilVariant         = errors.New("actor: variant is nil")
	ErrNilPresentation    = errors.New("actor: presentation sink is nil")
	ErrNilScheduler       = errors.New("actor: scheduler is nil")
	ErrInvalidAttackSpeed = errors.New("actor: attack speed must be positive")
	ErrInvalidCooldown    = errors.New("actor: cooldown units must be positive")
	ErrInvalidMaxLife     = errors.New("actor: max life must be positive")
)

const (
	// DefaultCooldownUnits is the numerator of the attack cooldown period.
	DefaultCooldownUnits = 5
	// DefaultMoveEpsilon is the speed above which an actor counts as moving.
	DefaultMoveEpsilon = 0.1
	// DefaultFlashDuration is the length of the damage flash.
	DefaultFlashDuration = 0.25
)

// Config holds the externally supplied tuning for one archetype. Actors keep
// a pointer to it and never modify it.
type Config struct {
	Name string

	MaxLife     float64
	MaxShield   float64
	StartShield float64

	MaxMovementSpeed float64
	MovementSpeed    float64

	MaxAttackSpeed float64
	AttackSpeed    float64

	CooldownUnits float64
	MoveEpsilon   float64
	FlashDuration float64

	// FacingScale is the sprite x-scale when facing left; facing right
	// mirrors it.
	FacingScale float64
}

// DefaultConfig returns a config with the stock cooldown, epsilon and
// flash settings filled in and no stats.
func DefaultConfig() Config {
	return Config{
		CooldownUnits: DefaultCooldownUnits,
		MoveEpsilon:   DefaultMoveEpsilon,
		FlashDuration: DefaultFlashDuration,
		FacingScale:   1,
	}
}

// Validate reports configuration that would make the actor unusable.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.MaxLife <= 0 {
		return ErrInvalidMaxLife
	}
	if c.AttackSpeed <= 0 {
		return ErrInvalidAttackSpeed
	}
	if c.CooldownUnits <= 0 {
		return ErrInvalidCooldown
	}
	return nil
}

func (c *Config) maxMovementSpeed() float64 {
	if c.MaxMovementSpeed > 0 {
		return c.MaxMovementSpeed
	}
	return c.MovementSpeed
}

func (c *Config) maxAttackSpeed() float64 {
	if c.MaxAttackSpeed > 0 {
		return c.MaxAttackSpeed
	}
	return c.AttackSpeed
}

func (c *Config) facingScale() float64 {
	if c.FacingScale == 0 {
		return 1
	}
	return c.FacingScale
}
