// internal/system/combat.go
package system

import (
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// CombatSystem runs tower cooldowns and moves issued attacks into the world as projectiles.
type CombatSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update advances every tower, which may queue attacks.
func (s *CombatSystem) Update() {
	s.world.Towers.Each(func(_ types.EntityID, t *entity.Tower) {
		t.Update(s.world)
	})
}

// Materialize adds every queued attack to the projectile table and clears the queues.
func (s *CombatSystem) Materialize() int {
	n := 0
	s.world.Towers.Each(func(towerID types.EntityID, t *entity.Tower) {
		for _, p := range t.DrainPending() {
			id := s.world.AddProjectile(p)
			n++
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.AttackIssued,
				Data: event.AttackData{Tower: towerID, Projectile: id, Target: p.Target, Attack: p.Attack.Name},
			})
		}
	})
	return n
}
