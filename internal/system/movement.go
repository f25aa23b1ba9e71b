// internal/system/movement.go
package system

import (
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
)

// MovementSystem walks every enemy one step along the path.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

func (s *MovementSystem) Update() {
	s.world.Enemies.Each(func(_ types.EntityID, e *entity.Enemy) {
		e.Update(s.world)
	})
}
