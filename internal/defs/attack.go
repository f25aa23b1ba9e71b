// internal/defs/attack.go
package defs

import "fmt"

// AttackSpec describes a weapon and how it scales with the owning tower's level.
// It is a value type; copies never share state.
type AttackSpec struct {
	ID                  string  `yaml:"id"`
	Name                string  `yaml:"name"`
	Description         string  `yaml:"description"`
	BaseDamage          float64 `yaml:"base_damage"`
	BaseCooldown        float64 `yaml:"base_cooldown"`         // ticks
	BaseProjectileSpeed float64 `yaml:"base_projectile_speed"` // pixels per tick
}

// ScaledAttack holds the level-dependent values of an AttackSpec.
type ScaledAttack struct {
	Damage          float64
	Cooldown        float64
	ProjectileSpeed float64
}

// NewAttackSpec builds and validates an attack.
func NewAttackSpec(name, description string, baseDamage, baseCooldown, baseProjectileSpeed float64) (AttackSpec, error) {
	a := AttackSpec{
		ID:                  name,
		Name:                name,
		Description:         description,
		BaseDamage:          baseDamage,
		BaseCooldown:        baseCooldown,
		BaseProjectileSpeed: baseProjectileSpeed,
	}
	if err := a.Validate(); err != nil {
		return AttackSpec{}, err
	}
	return a, nil
}

// Validate checks that every base value is positive.
func (a AttackSpec) Validate() error {
	switch {
	case a.BaseDamage <= 0:
		return fmt.Errorf("%w %q: base damage %v must be positive", ErrInvalidAttack, a.Name, a.BaseDamage)
	case a.BaseCooldown <= 0:
		return fmt.Errorf("%w %q: base cooldown %v must be positive", ErrInvalidAttack, a.Name, a.BaseCooldown)
	case a.BaseProjectileSpeed <= 0:
		return fmt.Errorf("%w %q: base projectile speed %v must be positive", ErrInvalidAttack, a.Name, a.BaseProjectileSpeed)
	}
	return nil
}

// Damage returns BaseDamage * level.
func (a AttackSpec) Damage(level int) (float64, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	return a.BaseDamage * float64(level), nil
}

// Cooldown returns BaseCooldown / level: higher levels fire more often.
func (a AttackSpec) Cooldown(level int) (float64, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	return a.BaseCooldown / float64(level), nil
}

// ProjectileSpeed returns BaseProjectileSpeed * level.
func (a AttackSpec) ProjectileSpeed(level int) (float64, error) {
	if err := checkLevel(level); err != nil {
		return 0, err
	}
	return a.BaseProjectileSpeed * float64(level), nil
}

// Scale computes all level-dependent values at once.
func (a AttackSpec) Scale(level int) (ScaledAttack, error) {
	if err := checkLevel(level); err != nil {
		return ScaledAttack{}, fmt.Errorf("scale %q: %w", a.Name, err)
	}
	l := float64(level)
	return ScaledAttack{
		Damage:          a.BaseDamage * l,
		Cooldown:        a.BaseCooldown / l,
		ProjectileSpeed: a.BaseProjectileSpeed * l,
	}, nil
}

func checkLevel(level int) error {
	if level < 1 {
		return fmt.Errorf("%w: level %d, must be at least 1", ErrInvalidLevel, level)
	}
	return nil
}
