// internal/app/game.go
package app

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/config"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/interfaces"
	"go-tower-sim/internal/system"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
	"go-tower-sim/pkg/tilemap"
)

// ErrUnknownEnemy is returned by RequestSpawn for a kind with no definition.
var ErrUnknownEnemy = system.ErrUnknownEnemy

// DamagePerEscape is the number of lives an escaped enemy costs.
const DamagePerEscape = config.DamagePerEscape

// Setup is everything a Game needs besides its towers.
type Setup struct {
	Grid    *tilemap.TileGrid // optional, used by frontends only
	Path    []component.Position
	Enemies map[string]defs.EnemyDefinition
	Waves   []defs.WaveDefinition
	Lives   int // zero means config.DefaultLives
	Seed    int64
}

// Game owns the world and runs one simulation tick per Step.
type Game struct {
	Grid            *tilemap.TileGrid
	Path            []component.Position
	World           *entity.World
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	Stats           *Stats

	SpawnSystem      *system.SpawnSystem
	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	TargetingSystem  *system.TargetingSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	CleanupSystem    *system.CleanupSystem

	tick int
	lost bool
}

var _ interfaces.Simulation = (*Game)(nil)

// NewGame initializes a game on an already planned path.
func NewGame(s Setup) *Game {
	if len(s.Path) == 0 {
		panic("path cannot be empty")
	}

	lives := s.Lives
	if lives == 0 {
		lives = config.DefaultLives
	}

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Grid:            s.Grid,
		Path:            s.Path,
		World:           world,
		EventDispatcher: eventDispatcher,
		Rng:             utils.NewPRNGService(s.Seed),
		Stats:           NewStats(lives),
	}
	g.SpawnSystem = system.NewSpawnSystem(world, s.Enemies, s.Path, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(world, g.SpawnSystem, g.Rng, eventDispatcher, s.Waves, config.WavePauseTicks)
	g.MovementSystem = system.NewMovementSystem(world)
	g.TargetingSystem = system.NewTargetingSystem(world)
	g.CombatSystem = system.NewCombatSystem(world, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(world, eventDispatcher)
	g.CleanupSystem = system.NewCleanupSystem(world, eventDispatcher)

	g.Stats.Subscribe(eventDispatcher)
	return g
}

// AddTower places a tower in the world.
func (g *Game) AddTower(t *entity.Tower) types.EntityID {
	return g.World.AddTower(t)
}

// RequestSpawn queues one enemy of the given kind at the path start. It appears on the next Step.
func (g *Game) RequestSpawn(kind string) error {
	return g.SpawnSystem.Request(kind)
}

// Step advances the simulation by one tick. The phase order is fixed: a target that dies
// during movement is never attacked in the same tick, and no projectile keeps pointing
// at a removed enemy once the step returns.
func (g *Game) Step() {
	if g.lost {
		return
	}

	g.WaveSystem.Update()
	g.SpawnSystem.Update()

	g.MovementSystem.Update()
	g.TargetingSystem.Acquire()
	g.CombatSystem.Update()
	g.CombatSystem.Materialize()
	g.ProjectileSystem.Update()
	g.TargetingSystem.Revalidate()
	g.ProjectileSystem.Retarget()
	g.CleanupSystem.Update()

	g.tick++
	if g.Stats.Lives <= 0 {
		g.lost = true
		g.EventDispatcher.Dispatch(event.Event{Type: event.GameLost, Data: event.LostData{Tick: g.tick}})
	}
}

// Tick returns the number of completed steps.
func (g *Game) Tick() int { return g.tick }

// Lost reports whether the base has run out of lives.
func (g *Game) Lost() bool { return g.lost }

// Finished reports whether the game is over, either lost or with every wave cleared.
func (g *Game) Finished() bool {
	return g.lost || (g.WaveSystem.Done() && g.World.Enemies.Len() == 0 && g.SpawnSystem.Pending() == 0)
}

// Draw hands every entity to r: towers with their range overlay, then enemies, then projectiles.
func (g *Game) Draw(r interfaces.Renderer) {
	for _, a := range g.World.Actors() {
		overlay := 0.0
		if t, ok := a.(*entity.Tower); ok {
			overlay = t.Radius
		}
		r.DrawEntity(a.Kind(), a.Body().Position, overlay)
	}
}
