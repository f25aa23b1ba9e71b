// internal/event/types.go
package event

import (
	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

const (
	EnemySpawned  EventType = "EnemySpawned"
	AttackIssued  EventType = "AttackIssued"
	ProjectileHit EventType = "ProjectileHit"
	EnemyKilled   EventType = "EnemyKilled"
	EnemyEscaped  EventType = "EnemyEscaped"
	WaveStarted   EventType = "WaveStarted"
	WaveEnded     EventType = "WaveEnded"
	GameLost      EventType = "GameLost"
)

// EnemyData accompanies EnemySpawned, EnemyKilled and EnemyEscaped.
type EnemyData struct {
	ID       types.EntityID
	Name     string
	Position component.Position
}

// AttackData accompanies AttackIssued.
type AttackData struct {
	Tower      types.EntityID
	Projectile types.EntityID
	Target     types.EntityID
	Attack     string
}

// HitData accompanies ProjectileHit.
type HitData struct {
	Projectile types.EntityID
	Target     types.EntityID
	Damage     int
	Killed     bool
	Position   component.Position
}

// WaveData accompanies WaveStarted and WaveEnded. Index is zero-based.
type WaveData struct {
	Index int
	Total int
}

// LostData accompanies GameLost.
type LostData struct {
	Tick int
}
