// internal/system/spawn.go
package system

import (
	"errors"
	"fmt"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
)

// ErrUnknownEnemy is returned when a spawn is requested for a kind with no definition.
var ErrUnknownEnemy = errors.New("unknown enemy kind")

// SpawnSystem queues spawn requests and turns them into enemies at the start of the next tick.
type SpawnSystem struct {
	world           *entity.World
	enemies         map[string]defs.EnemyDefinition
	path            []component.Position
	eventDispatcher *event.Dispatcher
	queue           []string
}

func NewSpawnSystem(world *entity.World, enemies map[string]defs.EnemyDefinition, path []component.Position, eventDispatcher *event.Dispatcher) *SpawnSystem {
	return &SpawnSystem{
		world:           world,
		enemies:         enemies,
		path:            path,
		eventDispatcher: eventDispatcher,
	}
}

// Request queues one enemy of the given kind. Unknown kinds are rejected immediately.
func (s *SpawnSystem) Request(kind string) error {
	if _, ok := s.enemies[kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownEnemy, kind)
	}
	s.queue = append(s.queue, kind)
	return nil
}

// Pending returns the number of queued requests.
func (s *SpawnSystem) Pending() int {
	return len(s.queue)
}

// Update drains the queue in request order and returns the new enemy IDs.
func (s *SpawnSystem) Update() []types.EntityID {
	if len(s.queue) == 0 {
		return nil
	}
	spawned := make([]types.EntityID, 0, len(s.queue))
	for _, kind := range s.queue {
		def := s.enemies[kind]
		e := entity.NewEnemy(def.Name, def.Description, def.Speed, def.Health, s.path)
		id := s.world.AddEnemy(e)
		spawned = append(spawned, id)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemySpawned,
			Data: event.EnemyData{ID: id, Name: def.Name, Position: e.Position()},
		})
	}
	s.queue = s.queue[:0]
	return spawned
}
