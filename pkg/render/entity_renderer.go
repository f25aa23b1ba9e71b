// pkg/render/entity_renderer.go
package render

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/interfaces"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntitySizes are the drawn radii of each kind, in pixels.
type EntitySizes struct {
	Tower       float32
	Enemy       float32
	Projectile  float32
	RangeStroke float32
}

// EntityRenderer draws simulation entities onto an ebiten image.
type EntityRenderer struct {
	screen *ebiten.Image
	colors EntityColors
	sizes  EntitySizes
}

var _ interfaces.Renderer = (*EntityRenderer)(nil)

func NewEntityRenderer(colors EntityColors, sizes EntitySizes) *EntityRenderer {
	return &EntityRenderer{colors: colors, sizes: sizes}
}

// SetTarget selects the image the next DrawEntity calls paint on.
func (r *EntityRenderer) SetTarget(screen *ebiten.Image) {
	r.screen = screen
}

func (r *EntityRenderer) DrawEntity(kind component.Kind, pos component.Position, overlayRadius float64) {
	if r.screen == nil {
		return
	}
	x, y := float32(pos.X), float32(pos.Y)
	switch kind {
	case component.KindTower:
		if overlayRadius > 0 {
			vector.StrokeCircle(r.screen, x, y, float32(overlayRadius), r.sizes.RangeStroke, r.colors.RangeColor, true)
		}
		vector.DrawFilledCircle(r.screen, x, y, r.sizes.Tower, r.colors.TowerColor, true)
		vector.StrokeCircle(r.screen, x, y, r.sizes.Tower, 2, r.colors.TowerStrokeColor, true)
	case component.KindEnemy:
		vector.DrawFilledCircle(r.screen, x, y, r.sizes.Enemy, r.colors.EnemyColor, true)
	case component.KindProjectile:
		vector.DrawFilledCircle(r.screen, x, y, r.sizes.Projectile, r.colors.ProjectileColor, true)
	}
}
