// internal/entity/actor.go
package entity

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

// Actor is the capability every simulated entity implements.
type Actor interface {
	Kind() component.Kind
	Body() *component.Body
	Update(l Lookup)
	Removable() bool
}

// Lookup resolves weak enemy references held by towers and projectiles.
// A missing entry means the enemy has been removed from the world.
type Lookup interface {
	Enemy(id types.EntityID) (*Enemy, bool)
}
