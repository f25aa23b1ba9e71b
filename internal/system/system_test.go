package system

import (
	"errors"
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/defs"
	"go-tower-sim/internal/entity"
	"go-tower-sim/internal/event"
	"go-tower-sim/internal/types"
	"go-tower-sim/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func listenAll(d *event.Dispatcher) *recorder {
	r := &recorder{}
	d.SubscribeAll(r,
		event.EnemySpawned, event.AttackIssued, event.ProjectileHit, event.EnemyKilled,
		event.EnemyEscaped, event.WaveStarted, event.WaveEnded, event.GameLost)
	return r
}

func line(xs ...float64) []component.Position {
	path := make([]component.Position, len(xs))
	for i, x := range xs {
		path[i] = component.Position{X: x}
	}
	return path
}

func newTower(t *testing.T, radius float64, pos component.Position) *entity.Tower {
	t.Helper()
	a, err := defs.NewAttackSpec("Fireball", "", 10, 3, 5)
	if err != nil {
		t.Fatalf("NewAttackSpec: %v", err)
	}
	tw, err := entity.NewTower("tower1", "", 1, radius, []defs.AttackSpec{a}, pos)
	if err != nil {
		t.Fatalf("NewTower: %v", err)
	}
	return tw
}

var gruntDefs = map[string]defs.EnemyDefinition{
	"grunt": {ID: "grunt", Name: "Grunt", Health: 50, Speed: 2},
}

func TestSpawnSystem_DrainsQueueInOrder(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	r := listenAll(d)
	path := line(32, 96)
	s := NewSpawnSystem(w, gruntDefs, path, d)

	for i := 0; i < 2; i++ {
		if err := s.Request("grunt"); err != nil {
			t.Fatalf("Request: %v", err)
		}
	}
	if w.Enemies.Len() != 0 {
		t.Fatal("expected requests to wait for Update")
	}
	ids := s.Update()
	if len(ids) != 2 || w.Enemies.Len() != 2 || s.Pending() != 0 {
		t.Fatalf("expected 2 spawned and empty queue, got %v, %d in world, %d pending", ids, w.Enemies.Len(), s.Pending())
	}
	e, _ := w.Enemy(ids[0])
	if e.Position() != path[0] || e.Name != "Grunt" || e.Health.Value != 50 {
		t.Fatalf("unexpected enemy %+v at %v", e, e.Position())
	}
	if r.count(event.EnemySpawned) != 2 {
		t.Fatalf("expected 2 EnemySpawned events, got %d", r.count(event.EnemySpawned))
	}
}

func TestSpawnSystem_RejectsUnknownKind(t *testing.T) {
	s := NewSpawnSystem(entity.NewWorld(), gruntDefs, line(0), event.NewDispatcher())

	err := s.Request("dragon")
	if !errors.Is(err, ErrUnknownEnemy) {
		t.Fatalf("expected ErrUnknownEnemy, got %v", err)
	}
	if s.Pending() != 0 {
		t.Fatal("expected rejected request not to be queued")
	}
}

type tickSpawner struct {
	tick  int
	ticks []int
	kinds []string
}

func (s *tickSpawner) Request(kind string) error {
	s.ticks = append(s.ticks, s.tick)
	s.kinds = append(s.kinds, kind)
	return nil
}

func TestWaveSystem_SpacesRequestsByInterval(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	r := listenAll(d)
	sp := &tickSpawner{}
	waves := []defs.WaveDefinition{
		{Count: 3, IntervalTicks: 5, Enemies: []defs.SpawnWeight{{Enemy: "grunt", Weight: 1}}},
		{Count: 1, IntervalTicks: 5, Enemies: []defs.SpawnWeight{{Enemy: "grunt", Weight: 1}}},
	}
	ws := NewWaveSystem(w, sp, utils.NewPRNGService(1), d, waves, 3)

	for sp.tick = 0; sp.tick < 30; sp.tick++ {
		ws.Update()
	}

	want := []int{0, 5, 10, 15}
	if len(sp.ticks) != len(want) {
		t.Fatalf("expected requests on ticks %v, got %v", want, sp.ticks)
	}
	for i := range want {
		if sp.ticks[i] != want[i] {
			t.Fatalf("expected requests on ticks %v, got %v", want, sp.ticks)
		}
	}
	if r.count(event.WaveStarted) != 2 || r.count(event.WaveEnded) != 2 {
		t.Fatalf("expected 2 starts and 2 ends, got %d and %d", r.count(event.WaveStarted), r.count(event.WaveEnded))
	}
	if !ws.Done() || ws.Wave() != 2 {
		t.Fatalf("expected all waves done, got done=%v wave=%d", ws.Done(), ws.Wave())
	}
}

func TestWaveSystem_WaitsForFieldToClear(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	r := listenAll(d)
	s := NewSpawnSystem(w, gruntDefs, line(0, 1000), d)
	waves := []defs.WaveDefinition{
		{Count: 1, IntervalTicks: 1, Enemies: []defs.SpawnWeight{{Enemy: "grunt", Weight: 1}}},
	}
	ws := NewWaveSystem(w, s, utils.NewPRNGService(1), d, waves, 0)

	for i := 0; i < 10; i++ {
		ws.Update()
		s.Update()
	}
	if r.count(event.WaveEnded) != 0 || !ws.Active() {
		t.Fatal("expected wave to stay active while its enemy is on the field")
	}

	w.Enemies.Clear()
	ws.Update()
	if r.count(event.WaveEnded) != 1 || !ws.Done() {
		t.Fatal("expected wave to end once the field is clear")
	}
}

func TestTargetingSystem_PicksNearestInRange(t *testing.T) {
	w := entity.NewWorld()
	tw := newTower(t, 100, component.Position{})
	w.AddTower(tw)
	w.AddEnemy(entity.NewEnemy("far", "", 1, 5, line(150, 1000)))
	near := w.AddEnemy(entity.NewEnemy("near", "", 1, 5, line(99, 1000)))
	ts := NewTargetingSystem(w)

	ts.Acquire()
	if tw.Target != near {
		t.Fatalf("expected target %d at distance 99, got %d", near, tw.Target)
	}
}

func TestTargetingSystem_NothingInRange(t *testing.T) {
	w := entity.NewWorld()
	tw := newTower(t, 100, component.Position{})
	w.AddTower(tw)
	w.AddEnemy(entity.NewEnemy("far", "", 1, 5, line(150, 1000)))

	NewTargetingSystem(w).Acquire()
	if tw.Target != 0 {
		t.Fatalf("expected no target, got %d", tw.Target)
	}
}

func TestTargetingSystem_KeepsCurrentTargetWhileInRange(t *testing.T) {
	w := entity.NewWorld()
	tw := newTower(t, 100, component.Position{})
	w.AddTower(tw)
	w.AddEnemy(entity.NewEnemy("near", "", 1, 5, line(10, 1000)))
	current := w.AddEnemy(entity.NewEnemy("current", "", 1, 5, line(80, 1000)))
	tw.Target = current

	ts := NewTargetingSystem(w)
	ts.Acquire()
	if tw.Target != current {
		t.Fatalf("expected tower to keep target %d, got %d", current, tw.Target)
	}
}

func TestTargetingSystem_RevalidateDropsDeadTarget(t *testing.T) {
	w := entity.NewWorld()
	tw := newTower(t, 100, component.Position{})
	w.AddTower(tw)
	e := entity.NewEnemy("grunt", "", 1, 5, line(10, 1000))
	tw.Target = w.AddEnemy(e)

	e.ApplyDamage(5)
	NewTargetingSystem(w).Revalidate()
	if tw.Target != 0 {
		t.Fatalf("expected target cleared, got %d", tw.Target)
	}
}

func TestCombatSystem_MaterializesQueuedAttacks(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	r := listenAll(d)
	tw := newTower(t, 100, component.Position{})
	w.AddTower(tw)
	tw.Target = w.AddEnemy(entity.NewEnemy("grunt", "", 1, 5, line(10, 1000)))
	cs := NewCombatSystem(w, d)

	cs.Update()
	if n := cs.Materialize(); n != 1 {
		t.Fatalf("expected 1 projectile, got %d", n)
	}
	if w.Projectiles.Len() != 1 || len(tw.Pending) != 0 {
		t.Fatalf("expected 1 projectile in world and empty queue, got %d and %d", w.Projectiles.Len(), len(tw.Pending))
	}
	if r.count(event.AttackIssued) != 1 {
		t.Fatalf("expected 1 AttackIssued, got %d", r.count(event.AttackIssued))
	}
}

func launchAt(w *entity.World, target types.EntityID, from component.Position) *entity.Projectile {
	a, _ := defs.NewAttackSpec("Fireball", "", 10, 3, 5)
	s, _ := a.Scale(1)
	p := entity.NewProjectile(a, 1, s, target, from, component.Position{})
	w.AddProjectile(p)
	return p
}

func TestProjectileSystem_RetargetsToNearestSurvivor(t *testing.T) {
	w := entity.NewWorld()
	dead := entity.NewEnemy("dead", "", 1, 5, line(10, 1000))
	deadID := w.AddEnemy(dead)
	w.AddEnemy(entity.NewEnemy("far", "", 1, 5, line(900, 1000)))
	near := w.AddEnemy(entity.NewEnemy("near", "", 1, 5, line(500, 1000)))
	p := launchAt(w, deadID, component.Position{})

	dead.ApplyDamage(5)
	NewProjectileSystem(w, event.NewDispatcher()).Retarget()
	if p.Target != near || p.Removable() {
		t.Fatalf("expected retarget to %d, got %d removable=%v", near, p.Target, p.Removable())
	}
}

func TestProjectileSystem_DiscardsWhenNoEnemyLeft(t *testing.T) {
	w := entity.NewWorld()
	e := entity.NewEnemy("grunt", "", 1, 5, line(10, 1000))
	p := launchAt(w, w.AddEnemy(e), component.Position{})

	e.ApplyDamage(5)
	NewProjectileSystem(w, event.NewDispatcher()).Retarget()
	if !p.Removable() {
		t.Fatal("expected projectile to be flagged for removal")
	}
}

func TestProjectileSystem_ReportsHit(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	r := listenAll(d)
	e := entity.NewEnemy("grunt", "", 1, 10, line(4, 1000))
	launchAt(w, w.AddEnemy(e), component.Position{})

	NewProjectileSystem(w, d).Update()
	if len(r.events) != 1 || r.events[0].Type != event.ProjectileHit {
		t.Fatalf("expected one ProjectileHit, got %v", r.events)
	}
	hit := r.events[0].Data.(event.HitData)
	if hit.Damage != 10 || !hit.Killed {
		t.Fatalf("expected a killing 10-damage hit, got %+v", hit)
	}
}

func TestCleanupSystem_RemovesAndReports(t *testing.T) {
	w := entity.NewWorld()
	d := event.NewDispatcher()
	r := listenAll(d)
	dead := entity.NewEnemy("dead", "", 1, 5, line(0, 1000))
	w.AddEnemy(dead)
	escaped := entity.NewEnemy("escaped", "", 10, 5, line(0, 5))
	w.AddEnemy(escaped)
	w.AddEnemy(entity.NewEnemy("alive", "", 1, 5, line(0, 1000)))
	spent := launchAt(w, 0, component.Position{})
	launchAt(w, 0, component.Position{})

	dead.ApplyDamage(5)
	escaped.Update(w)
	spent.Discard()
	NewCleanupSystem(w, d).Update()

	if w.Enemies.Len() != 1 || w.Projectiles.Len() != 1 {
		t.Fatalf("expected 1 enemy and 1 projectile left, got %d and %d", w.Enemies.Len(), w.Projectiles.Len())
	}
	if r.count(event.EnemyKilled) != 1 || r.count(event.EnemyEscaped) != 1 {
		t.Fatalf("expected one kill and one escape, got %d and %d", r.count(event.EnemyKilled), r.count(event.EnemyEscaped))
	}
}
