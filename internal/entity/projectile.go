// internal/entity/projectile.go
package entity

import (
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/types"
)

// Projectile homes in on its target, re-aiming every tick, and damages it on contact.
type Projectile struct {
	Attack    defs.AttackSpec
	Level     int
	Damage    float64
	Speed     float64 // fixed at launch
	HitRadius float64

	// Target is a weak reference; the orchestrator retargets or removes the
	// projectile once it stops resolving to a living enemy.
	Target types.EntityID

	body    component.Body
	arrived bool // reached the target's position on the previous update
	hit     bool
	removed bool
}

var _ Actor = (*Projectile)(nil)

// NewProjectile launches a projectile from 'from' aimed at 'aim'.
func NewProjectile(attack defs.AttackSpec, level int, scaled defs.ScaledAttack, target types.EntityID, from, aim component.Position) *Projectile {
	p := &Projectile{
		Attack:    attack,
		Level:     level,
		Damage:    scaled.Damage,
		Speed:     scaled.ProjectileSpeed,
		HitRadius: config.ProjectileHitRadius,
		Target:    target,
	}
	p.body.Position = from
	p.aim(aim)
	return p
}

func (p *Projectile) Kind() component.Kind         { return component.KindProjectile }
func (p *Projectile) Body() *component.Body        { return &p.body }
func (p *Projectile) Position() component.Position { return p.body.Position }
func (p *Projectile) Removable() bool              { return p.removed }

// Hit reports whether the projectile has struck its target.
func (p *Projectile) Hit() bool { return p.hit }

// Arrived reports whether the projectile sits on its target's last position and will
// strike on the next update.
func (p *Projectile) Arrived() bool { return p.arrived }

// Retarget points the projectile at another enemy.
func (p *Projectile) Retarget(id types.EntityID) {
	p.Target = id
	p.arrived = false
}

// Discard flags the projectile for removal without dealing damage.
func (p *Projectile) Discard() {
	p.removed = true
}

func (p *Projectile) aim(at component.Position) float64 {
	dx, dy, dist := p.body.Position.Toward(at)
	p.body.Velocity = component.Velocity{X: dx * p.Speed, Y: dy * p.Speed}
	return dist
}

// Update damages the target when the previous update landed on it or when it is within
// HitRadius. Otherwise it re-aims at the target's current position and moves Speed pixels,
// landing on the target if it is closer than that.
// A dead or missing target leaves the projectile untouched for the orchestrator to handle.
func (p *Projectile) Update(l Lookup) {
	if p.removed {
		return
	}
	target, ok := l.Enemy(p.Target)
	if !ok || !target.Alive() {
		return
	}

	if p.arrived {
		p.strike(target)
		return
	}
	dist := p.aim(target.Position())
	if dist <= p.HitRadius {
		p.strike(target)
		return
	}
	if dist <= p.Speed {
		p.body.Position = target.Position()
		p.arrived = true
		return
	}
	p.body.Advance()
}

func (p *Projectile) strike(target *Enemy) {
	target.ApplyDamage(int(math.Round(p.Damage)))
	p.body.Velocity = component.Velocity{}
	p.arrived = false
	p.hit = true
	p.removed = true
}
