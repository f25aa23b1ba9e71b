// internal/system/projectile.go
package system

import (
	"math"

	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// ProjectileSystem moves projectiles, reports hits and handles lost targets.
type ProjectileSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(world *entity.World, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update() {
	s.world.Projectiles.Each(func(id types.EntityID, p *entity.Projectile) {
		if p.Hit() {
			return
		}
		p.Update(s.world)
		if !p.Hit() {
			return
		}
		target, _ := s.world.Enemy(p.Target)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ProjectileHit,
			Data: event.HitData{
				Projectile: id,
				Target:     p.Target,
				Damage:     int(math.Round(p.Damage)),
				Killed:     !target.Alive(),
				Position:   target.Position(),
			},
		})
	})
}

// Retarget points projectiles whose target is dead or gone at the nearest alive enemy.
// Projectiles with nothing left to chase are discarded.
func (s *ProjectileSystem) Retarget() {
	s.world.Projectiles.Each(func(_ types.EntityID, p *entity.Projectile) {
		if p.Removable() {
			return
		}
		if _, ok := s.world.AliveEnemy(p.Target); ok {
			return
		}
		if id, ok := s.world.NearestEnemy(p.Position(), math.Inf(1)); ok {
			p.Retarget(id)
			return
		}
		p.Discard()
	})
}
