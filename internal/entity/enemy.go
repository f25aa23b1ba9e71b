// internal/entity/enemy.go
package entity

import (
	"go-tower-sim/internal/component"
)

// EnemyState is the lifecycle of an enemy. Dead and Escaped are terminal.
type EnemyState int

const (
	EnemyAlive EnemyState = iota
	EnemyDead
	EnemyEscaped
)

func (s EnemyState) String() string {
	switch s {
	case EnemyAlive:
		return "alive"
	case EnemyDead:
		return "dead"
	case EnemyEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}

// Enemy walks the shared waypoint path and takes damage from projectiles.
type Enemy struct {
	Name        string
	Description string
	Speed       float64 // pixels per tick
	Health      component.Health

	body     component.Body
	path     []component.Position // shared, never modified
	waypoint int
	state    EnemyState
}

var _ Actor = (*Enemy)(nil)

// NewEnemy places an enemy on the first waypoint, heading for the second.
// The path must hold at least one point.
func NewEnemy(name, description string, speed float64, health int, path []component.Position) *Enemy {
	if len(path) == 0 {
		panic("entity: enemy path cannot be empty")
	}
	e := &Enemy{
		Name:        name,
		Description: description,
		Speed:       speed,
		Health:      component.NewHealth(health),
		path:        path,
		waypoint:    1,
	}
	e.body.Position = path[0]
	if health <= 0 {
		e.state = EnemyDead
	}
	return e
}

func (e *Enemy) Kind() component.Kind         { return component.KindEnemy }
func (e *Enemy) Body() *component.Body        { return &e.body }
func (e *Enemy) Position() component.Position { return e.body.Position }
func (e *Enemy) State() EnemyState            { return e.state }
func (e *Enemy) Alive() bool                  { return e.state == EnemyAlive }
func (e *Enemy) Removable() bool              { return e.state != EnemyAlive }

// Waypoint returns the index of the waypoint the enemy is heading for.
// It equals len(path) once the enemy has escaped.
func (e *Enemy) Waypoint() int { return e.waypoint }

// ApplyDamage subtracts amount from health. Reports true if this hit killed the enemy.
func (e *Enemy) ApplyDamage(amount int) bool {
	if e.state != EnemyAlive {
		return false
	}
	e.Health.Value -= amount
	if e.Health.Value <= 0 {
		e.state = EnemyDead
		return true
	}
	return false
}

// Update moves the enemy Speed pixels toward its current waypoint. The waypoint counts as
// reached when it was no further than Speed before the step; the position is not clamped,
// so the enemy may overshoot by up to one step.
func (e *Enemy) Update(Lookup) {
	if e.state != EnemyAlive {
		return
	}
	if e.waypoint >= len(e.path) {
		e.state = EnemyEscaped
		return
	}

	dx, dy, dist := e.body.Position.Toward(e.path[e.waypoint])
	e.body.Velocity = component.Velocity{X: dx * e.Speed, Y: dy * e.Speed}
	e.body.Advance()

	if dist <= e.Speed {
		e.waypoint++
		if e.waypoint >= len(e.path) {
			e.state = EnemyEscaped
		}
	}
}
