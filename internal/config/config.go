// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1536 // 24 tiles of 64 px
	ScreenHeight = 960  // 15 tiles of 64 px
	WindowTitle  = "Tower Defense"

	DefaultTileSize = 64.0
	MapWidth        = 24
	MapHeight       = 15

	TicksPerSecond = 60

	// Tile identifiers used by the bundled levels.
	TileStart = 3
	TileEnd   = 4
	TilePath  = 2

	ProjectileHitRadius = 8.0 // pixels
	ProjectileRadius    = 5.0
	EnemyRadius         = 14.0
	TowerRadius         = 22.0
	RangeStrokeWidth    = 2.0

	DefaultLives    = 20
	DamagePerEscape = 1
	WavePauseTicks  = 3 * TicksPerSecond

	DefaultDefsPath  = "assets/defs.yaml"
	DefaultLevelPath = "assets/levels/level_1.yaml"

	IndicatorOffsetX   = 30
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 18.0
	PauseButtonOffsetX = 150
	PauseButtonSize    = 14.0
	WaveIndicatorY     = 70
	HUDLineHeight      = 16
)

// SpeedMultipliers are the ticks run per frame for each speed button state.
var SpeedMultipliers = []int{1, 2, 4}

var (
	BackgroundColor  = color.RGBA{100, 149, 237, 255} // cornflower blue
	GrassColor       = color.RGBA{70, 120, 70, 255}
	PathColor        = color.RGBA{194, 178, 128, 255}
	StartColor       = color.RGBA{0, 255, 0, 255}
	EndColor         = color.RGBA{255, 0, 0, 255}
	GridLineColor    = color.RGBA{40, 60, 40, 255}
	TowerColor       = color.RGBA{50, 100, 255, 255}
	TowerStrokeColor = color.RGBA{255, 255, 255, 255}
	RangeColor       = color.RGBA{255, 255, 255, 96}
	EnemyColor       = color.RGBA{20, 20, 30, 255}
	ProjectileColor  = color.RGBA{255, 140, 0, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	PauseOverlay     = color.RGBA{0, 0, 0, 128}
	PauseButtonColor = color.RGBA{200, 200, 200, 220}
	PlayButtonColor  = color.RGBA{80, 200, 120, 230}

	SpeedButtonColors = []color.Color{
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x4
	}
)
