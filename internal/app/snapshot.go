// internal/app/snapshot.go
package app

import "fmt"

// Snapshot is a read-only summary of the game for HUDs and reports.
type Snapshot struct {
	Tick        int
	Wave        int
	Waves       int
	Enemies     int
	Projectiles int
	Towers      int
	Spawned     int
	Kills       int
	Escapes     int
	Shots       int
	Hits        int
	Damage      int
	Lives       int
	Lost        bool
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Wave:        g.WaveSystem.Wave(),
		Waves:       g.WaveSystem.Total(),
		Enemies:     g.World.AliveEnemies(),
		Projectiles: g.World.Projectiles.Len(),
		Towers:      g.World.Towers.Len(),
		Spawned:     g.Stats.Spawned,
		Kills:       g.Stats.Kills,
		Escapes:     g.Stats.Escapes,
		Shots:       g.Stats.Shots,
		Hits:        g.Stats.Hits,
		Damage:      g.Stats.Damage,
		Lives:       g.Stats.Lives,
		Lost:        g.lost,
	}
}

// Accuracy returns hits per shot, or 0 before the first shot.
func (s Snapshot) Accuracy() float64 {
	if s.Shots == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Shots)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("tick %d wave %d/%d lives %d enemies %d kills %d escapes %d",
		s.Tick, s.Wave, s.Waves, s.Lives, s.Enemies, s.Kills, s.Escapes)
}
