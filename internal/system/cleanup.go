// internal/system/cleanup.go
package system

import (
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// CleanupSystem removes finished entities and reports how each enemy left the field.
type CleanupSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewCleanupSystem(world *entity.World, eventDispatcher *event.Dispatcher) *CleanupSystem {
	return &CleanupSystem{world: world, eventDispatcher: eventDispatcher}
}

func (s *CleanupSystem) Update() {
	s.world.Enemies.RemoveIf(func(id types.EntityID, e *entity.Enemy) bool {
		var t event.EventType
		switch e.State() {
		case entity.EnemyDead:
			t = event.EnemyKilled
		case entity.EnemyEscaped:
			t = event.EnemyEscaped
		default:
			return false
		}
		s.eventDispatcher.Dispatch(event.Event{
			Type: t,
			Data: event.EnemyData{ID: id, Name: e.Name, Position: e.Position()},
		})
		return true
	})
	s.world.Projectiles.RemoveIf(func(_ types.EntityID, p *entity.Projectile) bool {
		return p.Removable()
	})
}
