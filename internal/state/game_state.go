// internal/state/game_state.go
package state

import (
	"log"

	"go-tower-sim/internal/app"
	"go-tower-sim/internal/audio"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/ui"
	"go-tower-sim/pkg/render"
	"go-tower-sim/pkg/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*GameState)(nil)

// GameState runs the simulation and draws it. Each frame runs as many steps as the speed button asks for.
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	tiles       *render.TileRenderer
	entities    *render.EntityRenderer
	speedButton *ui.SpeedButton
	pauseButton *ui.PauseButton
	waves       *ui.WaveIndicator
	hud         *ui.HUD
	spawnKind   string
}

// NewGameState wires a loaded game to the ebiten renderers. spawnKind is the enemy
// queued by the manual spawn key; empty disables the key.
func NewGameState(sm *StateMachine, g *app.Game, markers tilemap.Markers, sound *audio.SoundManager, spawnKind string) *GameState {
	tiles := render.NewTileRenderer(g.Grid, markers, g.Grid.TileSize(), render.MapColors{
		BackgroundColor: config.BackgroundColor,
		GrassColor:      config.GrassColor,
		PathColor:       config.PathColor,
		StartColor:      config.StartColor,
		EndColor:        config.EndColor,
		GridLineColor:   config.GridLineColor,
	})
	points := make([]tilemap.Point, len(g.Path))
	for i, p := range g.Path {
		points[i] = tilemap.Point{X: p.X, Y: p.Y}
	}
	tiles.SetPath(points)

	entities := render.NewEntityRenderer(render.EntityColors{
		TowerColor:       config.TowerColor,
		TowerStrokeColor: config.TowerStrokeColor,
		RangeColor:       config.RangeColor,
		EnemyColor:       config.EnemyColor,
		ProjectileColor:  config.ProjectileColor,
	}, render.EntitySizes{
		Tower:       config.TowerRadius,
		Enemy:       config.EnemyRadius,
		Projectile:  config.ProjectileRadius,
		RangeStroke: config.RangeStrokeWidth,
	})

	if sound != nil {
		sound.Subscribe(g.EventDispatcher)
	}

	_, cols := g.Grid.Dimensions()
	width := float32(float64(cols) * g.Grid.TileSize())
	return &GameState{
		sm:       sm,
		game:     g,
		tiles:    tiles,
		entities: entities,
		speedButton: ui.NewSpeedButton(width-config.SpeedButtonOffsetX, config.SpeedButtonY,
			config.SpeedButtonSize, config.SpeedButtonColors, config.SpeedMultipliers),
		pauseButton: ui.NewPauseButton(width-config.PauseButtonOffsetX, config.SpeedButtonY,
			config.PauseButtonSize, config.PauseButtonColor, config.PlayButtonColor),
		waves:     ui.NewWaveIndicator(int(width)-config.IndicatorOffsetX, config.WaveIndicatorY, config.TextLightColor),
		hud:       ui.NewHUD(10, 4, config.HUDLineHeight, config.TextLightColor),
		spawnKind: spawnKind,
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Exit() {}

func (s *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.pause()
		return nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if s.pauseButton.IsClicked(float32(mx), float32(my)) {
			s.pause()
			return nil
		}
		if s.speedButton.IsClicked(float32(mx), float32(my)) {
			s.speedButton.ToggleState()
		}
	}
	if s.spawnKind != "" && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		if err := s.game.RequestSpawn(s.spawnKind); err != nil {
			log.Printf("GameState: %v", err)
		}
	}

	for i := 0; i < s.speedButton.Multiplier(); i++ {
		s.game.Step()
	}
	return nil
}

func (s *GameState) pause() {
	s.pauseButton.TogglePause()
	s.sm.SetState(NewPauseState(s.sm, s, s.pauseButton))
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.tiles.Draw(screen)
	s.entities.SetTarget(screen)
	s.game.Draw(s.entities)
	s.speedButton.Draw(screen)
	s.pauseButton.Draw(screen)
	s.waves.Draw(screen, s.game.WaveSystem.Wave(), s.game.WaveSystem.Total())
	s.hud.Draw(screen, s.game.Snapshot(), s.speedButton.Multiplier())
	if s.game.Lost() {
		ui.DrawCentered(screen, "GAME OVER", config.TextLightColor)
	}
}

// Layout returns the map size in pixels.
func (s *GameState) Layout() (int, int) {
	rows, cols := s.game.Grid.Dimensions()
	size := s.game.Grid.TileSize()
	return int(float64(cols) * size), int(float64(rows) * size)
}
