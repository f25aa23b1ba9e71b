// internal/component/movement.go
package component

import "go-tower-sim/internal/utils"

// Position is a world-pixel coordinate.
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two positions.
func (p Position) DistanceTo(q Position) float64 {
	return utils.Distance(p.X, p.Y, q.X, q.Y)
}

// Toward returns the unit vector from p to q and the distance between them.
// The vector is zero when the points coincide.
func (p Position) Toward(q Position) (dx, dy, dist float64) {
	return utils.Direction(p.X, p.Y, q.X, q.Y)
}

// Velocity is a per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Body is the positioned part shared by every simulated entity.
type Body struct {
	Position Position
	Velocity Velocity
}

// Advance moves the body by its velocity.
func (b *Body) Advance() {
	b.Position.X += b.Velocity.X
	b.Position.Y += b.Velocity.Y
}
