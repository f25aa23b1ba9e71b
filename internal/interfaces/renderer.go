// internal/interfaces/renderer.go
package interfaces

import "go-tower-sim/internal/component"

// Renderer draws one entity at its current position. overlayRadius > 0 asks for a range circle.
type Renderer interface {
	DrawEntity(kind component.Kind, pos component.Position, overlayRadius float64)
}

// Simulation is the part of the game the frontends drive.
type Simulation interface {
	Step()
	Draw(r Renderer)
}
