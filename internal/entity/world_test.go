package entity

import (
	"math"
	"testing"

	"go-tower-sim/internal/component"
	"go-tower-sim/internal/types"
)

func TestTable_IteratesInInsertionOrder(t *testing.T) {
	tbl := NewTable[string]()
	tbl.Insert(7, "a")
	tbl.Insert(3, "b")
	tbl.Insert(5, "c")
	tbl.Insert(3, "b2")

	var got []string
	tbl.Each(func(_ types.EntityID, v string) { got = append(got, v) })
	want := []string{"a", "b2", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestTable_RemoveIf(t *testing.T) {
	tbl := NewTable[int]()
	for id := types.EntityID(1); id <= 5; id++ {
		tbl.Insert(id, int(id))
	}

	removed := tbl.RemoveIf(func(_ types.EntityID, v int) bool { return v%2 == 0 })
	if len(removed) != 2 || removed[0] != 2 || removed[1] != 4 {
		t.Fatalf("expected ids [2 4] removed, got %v", removed)
	}
	ids := tbl.IDs()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 3 || ids[2] != 5 {
		t.Fatalf("expected remaining ids [1 3 5], got %v", ids)
	}
	if _, ok := tbl.Get(2); ok {
		t.Fatal("expected id 2 to be gone")
	}
}

func TestWorld_IDsAreNeverReused(t *testing.T) {
	w := NewWorld()
	path := straightPath(0, 10)
	a := w.AddEnemy(NewEnemy("grunt", "", 1, 5, path))
	w.Clear()
	b := w.AddEnemy(NewEnemy("grunt", "", 1, 5, path))

	if a == 0 || b == a {
		t.Fatalf("expected fresh non-zero ids, got %d then %d", a, b)
	}
	if _, ok := w.Enemy(0); ok {
		t.Fatal("expected id 0 to never resolve")
	}
}

func TestWorld_NearestEnemyRespectsRadius(t *testing.T) {
	w := NewWorld()
	far := w.AddEnemy(NewEnemy("grunt", "", 1, 5, straightPath(150, 1000)))
	near := w.AddEnemy(NewEnemy("grunt", "", 1, 5, straightPath(99, 1000)))

	id, ok := w.NearestEnemy(component.Position{}, 100)
	if !ok || id != near {
		t.Fatalf("expected enemy at 99 (%d), got %d ok=%v", near, id, ok)
	}

	w.Enemies.RemoveIf(func(id types.EntityID, _ *Enemy) bool { return id == near })
	if _, ok := w.NearestEnemy(component.Position{}, 100); ok {
		t.Fatal("expected enemy at 150 to be out of range")
	}
	if id, ok := w.NearestEnemy(component.Position{}, math.Inf(1)); !ok || id != far {
		t.Fatalf("expected unbounded search to find %d, got %d", far, id)
	}
}

func TestWorld_NearestEnemyTieGoesToFirstInserted(t *testing.T) {
	w := NewWorld()
	first := w.AddEnemy(NewEnemy("grunt", "", 1, 5, []component.Position{{X: 0, Y: 50}, {X: 0, Y: 1000}}))
	w.AddEnemy(NewEnemy("grunt", "", 1, 5, []component.Position{{X: 50, Y: 0}, {X: 1000, Y: 0}}))

	id, ok := w.NearestEnemy(component.Position{}, 100)
	if !ok || id != first {
		t.Fatalf("expected first inserted enemy %d, got %d", first, id)
	}
}

func TestWorld_NearestEnemySkipsDead(t *testing.T) {
	w := NewWorld()
	dead := NewEnemy("grunt", "", 1, 5, straightPath(10, 1000))
	w.AddEnemy(dead)
	alive := w.AddEnemy(NewEnemy("grunt", "", 1, 5, straightPath(40, 1000)))
	dead.ApplyDamage(5)

	id, ok := w.NearestEnemy(component.Position{}, 100)
	if !ok || id != alive {
		t.Fatalf("expected alive enemy %d, got %d", alive, id)
	}
	if w.AliveEnemies() != 1 {
		t.Fatalf("expected 1 alive enemy, got %d", w.AliveEnemies())
	}
}

func TestWorld_ActorsDrawOrder(t *testing.T) {
	w := NewWorld()
	a, _ := NewTower("tower1", "", 1, 100, nil, component.Position{})
	w.AddProjectile(&Projectile{})
	w.AddEnemy(NewEnemy("grunt", "", 1, 5, straightPath(0, 10)))
	w.AddTower(a)

	actors := w.Actors()
	want := []component.Kind{component.KindTower, component.KindEnemy, component.KindProjectile}
	if len(actors) != len(want) {
		t.Fatalf("expected %d actors, got %d", len(want), len(actors))
	}
	for i, k := range want {
		if actors[i].Kind() != k {
			t.Fatalf("actor %d: expected %v, got %v", i, k, actors[i].Kind())
		}
	}
}
