// internal/entity/world.go
package entity

import (
	"math"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

// World owns every active entity. Towers and projectiles refer to enemies only by ID.
type World struct {
	NextID      types.EntityID
	Enemies     *Table[*Enemy]
	Towers      *Table[*Tower]
	Projectiles *Table[*Projectile]
}

var _ Lookup = (*World)(nil)

func NewWorld() *World {
	return &World{
		NextID:      1,
		Enemies:     NewTable[*Enemy](),
		Towers:      NewTable[*Tower](),
		Projectiles: NewTable[*Projectile](),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

func (w *World) AddEnemy(e *Enemy) types.EntityID {
	id := w.NewEntity()
	w.Enemies.Insert(id, e)
	return id
}

func (w *World) AddTower(t *Tower) types.EntityID {
	id := w.NewEntity()
	w.Towers.Insert(id, t)
	return id
}

func (w *World) AddProjectile(p *Projectile) types.EntityID {
	id := w.NewEntity()
	w.Projectiles.Insert(id, p)
	return id
}

// Enemy returns the enemy with the given id, dead or alive, while it is still in the world.
func (w *World) Enemy(id types.EntityID) (*Enemy, bool) {
	if id == 0 {
		return nil, false
	}
	return w.Enemies.Get(id)
}

// AliveEnemy returns the enemy only if it is present and alive.
func (w *World) AliveEnemy(id types.EntityID) (*Enemy, bool) {
	e, ok := w.Enemy(id)
	if !ok || !e.Alive() {
		return nil, false
	}
	return e, true
}

// NearestEnemy returns the alive enemy closest to from whose distance is strictly below maxDist.
// Ties go to the enemy inserted first. Pass math.Inf(1) for an unbounded search.
func (w *World) NearestEnemy(from component.Position, maxDist float64) (types.EntityID, bool) {
	var nearest types.EntityID
	minDistance := math.Inf(1)
	w.Enemies.Each(func(id types.EntityID, e *Enemy) {
		if !e.Alive() {
			return
		}
		d := from.DistanceTo(e.Position())
		if d < maxDist && d < minDistance {
			minDistance = d
			nearest = id
		}
	})
	return nearest, nearest != 0
}

// AliveEnemies counts enemies that have neither died nor escaped.
func (w *World) AliveEnemies() int {
	n := 0
	w.Enemies.Each(func(_ types.EntityID, e *Enemy) {
		if e.Alive() {
			n++
		}
	})
	return n
}

// Actors returns every entity in draw order: towers, then enemies, then projectiles.
func (w *World) Actors() []Actor {
	actors := make([]Actor, 0, w.Towers.Len()+w.Enemies.Len()+w.Projectiles.Len())
	w.Towers.Each(func(_ types.EntityID, t *Tower) { actors = append(actors, t) })
	w.Enemies.Each(func(_ types.EntityID, e *Enemy) { actors = append(actors, e) })
	w.Projectiles.Each(func(_ types.EntityID, p *Projectile) { actors = append(actors, p) })
	return actors
}

// Clear removes every entity but keeps the id counter running.
func (w *World) Clear() {
	w.Enemies.Clear()
	w.Towers.Clear()
	w.Projectiles.Clear()
}
