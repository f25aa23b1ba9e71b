// internal/system/wave.go
package system

import (
	"log"

	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/utils"
)

// Spawner accepts spawn requests by enemy kind.
type Spawner interface {
	Request(kind string) error
}

// WaveSystem is the level's spawn trigger. It requests Count enemies per wave, IntervalTicks
// apart, picking kinds from the wave's weighted table. The next wave starts pauseTicks after
// the previous one has been fully spawned and cleared.
type WaveSystem struct {
	world           *entity.World
	spawner         Spawner
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	waves           []defs.WaveDefinition
	pauseTicks      int

	index   int
	active  bool
	spawned int
	timer   int
	pause   int
}

func NewWaveSystem(world *entity.World, spawner Spawner, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, waves []defs.WaveDefinition, pauseTicks int) *WaveSystem {
	return &WaveSystem{
		world:           world,
		spawner:         spawner,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		waves:           waves,
		pauseTicks:      pauseTicks,
	}
}

// Update advances the wave timers by one tick.
func (s *WaveSystem) Update() {
	if s.Done() {
		return
	}
	if !s.active {
		if s.pause > 0 {
			s.pause--
			return
		}
		s.startWave()
	}

	wave := s.waves[s.index]
	if s.spawned < wave.Count {
		if s.timer <= 0 {
			kind := s.rng.ChooseWeighted(wave.Enemies)
			if err := s.spawner.Request(kind); err != nil {
				log.Printf("WaveSystem: dropped spawn in wave %d: %v", s.index+1, err)
			}
			s.spawned++
			s.timer = wave.IntervalTicks
		}
		s.timer--
		return
	}

	if s.world.Enemies.Len() == 0 {
		s.endWave()
	}
}

func (s *WaveSystem) startWave() {
	s.active = true
	s.spawned = 0
	s.timer = 0
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveStarted,
		Data: event.WaveData{Index: s.index, Total: len(s.waves)},
	})
}

func (s *WaveSystem) endWave() {
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveData{Index: s.index, Total: len(s.waves)},
	})
	s.active = false
	s.index++
	s.pause = s.pauseTicks
}

// Wave returns the 1-based number of the current or upcoming wave.
func (s *WaveSystem) Wave() int {
	if s.Done() {
		return len(s.waves)
	}
	return s.index + 1
}

func (s *WaveSystem) Total() int { return len(s.waves) }

// Active reports whether a wave is being spawned or fought.
func (s *WaveSystem) Active() bool { return s.active }

// Done reports whether every wave has ended.
func (s *WaveSystem) Done() bool { return s.index >= len(s.waves) }
