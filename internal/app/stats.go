// internal/app/stats.go
package app

import (
	"go-tower-sim/internal/event"
)

// Stats keeps the running score of a session.
type Stats struct {
	Lives   int
	Kills   int
	Escapes int
	Shots   int
	Hits    int
	Damage  int
	Spawned int
}

func NewStats(lives int) *Stats {
	return &Stats{Lives: lives}
}

// Subscribe registers the stats for every event they count.
func (s *Stats) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(s, event.EnemySpawned, event.AttackIssued, event.ProjectileHit,
		event.EnemyKilled, event.EnemyEscaped)
}

func (s *Stats) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.Spawned++
	case event.AttackIssued:
		s.Shots++
	case event.ProjectileHit:
		s.Hits++
		if hit, ok := e.Data.(event.HitData); ok {
			s.Damage += hit.Damage
		}
	case event.EnemyKilled:
		s.Kills++
	case event.EnemyEscaped:
		s.Escapes++
		s.Lives -= DamagePerEscape
	}
}
