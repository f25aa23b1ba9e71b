// internal/system/targeting.go
package system

import (
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/types"
)

// TargetingSystem maintains each tower's current target.
type TargetingSystem struct {
	world *entity.World
}

func NewTargetingSystem(world *entity.World) *TargetingSystem {
	return &TargetingSystem{world: world}
}

// Acquire keeps a tower's target while it is alive and strictly inside the radius,
// otherwise switches to the nearest alive enemy in range, or to none.
func (s *TargetingSystem) Acquire() {
	s.world.Towers.Each(func(_ types.EntityID, t *entity.Tower) {
		if e, ok := s.world.AliveEnemy(t.Target); ok && t.InRange(e.Position()) {
			return
		}
		t.Target, _ = s.world.NearestEnemy(t.Position(), t.Radius)
	})
}

// Revalidate clears targets that died during this tick so the next Acquire picks a new one.
func (s *TargetingSystem) Revalidate() {
	s.world.Towers.Each(func(_ types.EntityID, t *entity.Tower) {
		if t.Target == 0 {
			return
		}
		if _, ok := s.world.AliveEnemy(t.Target); !ok {
			t.Target = 0
		}
	})
}
