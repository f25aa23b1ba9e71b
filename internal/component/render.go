// internal/component/render.go
package component

// Kind tells a renderer what sort of entity it is drawing.
type Kind int

const (
	KindTower Kind = iota
	KindEnemy
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindTower:
		return "tower"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}
