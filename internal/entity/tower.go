// internal/entity/tower.go
package entity

import (
	"fmt"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// Tower is a stationary attacker. It fires every attack whose cooldown has run out
// at its current target and queues the projectiles until the orchestrator collects them.
type Tower struct {
	Name        string
	Description string
	Level       int
	Radius      float64 // attack range in pixels
	Attacks     []defs.AttackSpec
	HitRadius   float64 // collision radius given to fired projectiles

	// Target is a weak reference; zero means no target.
	Target  types.EntityID
	Pending []*Projectile

	scaled    []defs.ScaledAttack
	cooldowns []component.Cooldown
	body      component.Body
}

var _ Actor = (*Tower)(nil)

// NewTower validates the level and attacks and places the tower at pos.
// All cooldowns start at zero, so a fresh tower fires as soon as it has a target.
func NewTower(name, description string, level int, radius float64, attacks []defs.AttackSpec, pos component.Position) (*Tower, error) {
	if level < 1 {
		return nil, fmt.Errorf("tower %q: %w: level %d", name, defs.ErrInvalidLevel, level)
	}
	if radius <= 0 {
		return nil, fmt.Errorf("tower %q: radius %v must be positive", name, radius)
	}
	scaled := make([]defs.ScaledAttack, len(attacks))
	for i, a := range attacks {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("tower %q: %w", name, err)
		}
		s, err := a.Scale(level)
		if err != nil {
			return nil, fmt.Errorf("tower %q: %w", name, err)
		}
		scaled[i] = s
	}
	t := &Tower{
		Name:        name,
		Description: description,
		Level:       level,
		Radius:      radius,
		Attacks:     append([]defs.AttackSpec(nil), attacks...),
		HitRadius:   config.ProjectileHitRadius,
		scaled:      scaled,
		cooldowns:   make([]component.Cooldown, len(attacks)),
	}
	t.body.Position = pos
	return t, nil
}

func (t *Tower) Kind() component.Kind         { return component.KindTower }
func (t *Tower) Body() *component.Body        { return &t.body }
func (t *Tower) Position() component.Position { return t.body.Position }

// Removable is always false: towers persist for the whole session.
func (t *Tower) Removable() bool { return false }

// InRange reports whether p lies strictly inside the attack radius.
func (t *Tower) InRange(p component.Position) bool {
	return t.body.Position.DistanceTo(p) < t.Radius
}

// CooldownRemaining returns the ticks left before attack i may fire again.
func (t *Tower) CooldownRemaining(i int) float64 {
	return t.cooldowns[i].Remaining
}

// Update fires ready attacks at the current target and counts down the others.
func (t *Tower) Update(l Lookup) {
	if t.Target == 0 {
		return
	}
	target, ok := l.Enemy(t.Target)
	if !ok {
		return
	}
	for i := range t.Attacks {
		if !t.cooldowns[i].Ready() {
			t.cooldowns[i].Tick()
			continue
		}
		p := NewProjectile(t.Attacks[i], t.Level, t.scaled[i], t.Target, t.body.Position, target.Position())
		p.HitRadius = t.HitRadius
		t.Pending = append(t.Pending, p)
		t.cooldowns[i].Remaining = t.scaled[i].Cooldown
	}
}

// DrainPending returns the projectiles queued since the last call and empties the queue.
func (t *Tower) DrainPending() []*Projectile {
	pending := t.Pending
	t.Pending = nil
	return pending
}
