package board

import (
	"errors"
	"testing"

	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/motion"
)

type todo struct {
	Title string
	Done  bool
}

var bounds = geometry.NewRect(0, 780, 200, 680)

func newEntity(id string, x, y float64) Entity[todo] {
	return Entity[todo]{
		ID:      id,
		Pos:     geometry.Vector2D{X: x, Y: y},
		Vel:     geometry.Vector2D{X: 0.2, Y: -0.1},
		Payload: todo{Title: "task " + id},
	}
}

func ids(entities []Entity[todo]) []string {
	out := make([]string, len(entities))
	for i, e := range entities {
		out[i] = e.ID
	}
	return out
}

func TestStore_Insert(t *testing.T) {
	s := New[todo]()

	if err := s.Insert(newEntity("a", 10, 300)); err != nil {
		t.Fatalf("Insert(a) returned error: %v", err)
	}
	if err := s.Insert(newEntity("b", 400, 300)); err != nil {
		t.Fatalf("Insert(b) returned error: %v", err)
	}

	err := s.Insert(newEntity("a", 1, 1))
	if !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("Insert(a) twice error = %v, want ErrDuplicateID", err)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got, _ := s.Get("a"); got.Pos.X != 10 {
		t.Errorf("duplicate insert overwrote entity a: %+v", got)
	}

	if err := s.Insert(Entity[todo]{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("Insert(empty id) error = %v, want ErrEmptyID", err)
	}
}

func TestStore_Remove(t *testing.T) {
	s := New[todo]()
	for i, id := range []string{"a", "b", "c", "d"} {
		if err := s.Insert(newEntity(id, float64(i*200), 300)); err != nil {
			t.Fatalf("Insert(%s) returned error: %v", id, err)
		}
	}

	if err := s.Remove("b"); err != nil {
		t.Fatalf("Remove(b) returned error: %v", err)
	}

	got := ids(s.Snapshot())
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("ids after remove = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids after remove = %v, want %v", got, want)
		}
	}

	// the index must follow the shifted entities
	if e, ok := s.Get("d"); !ok || e.ID != "d" {
		t.Errorf("Get(d) after remove = %+v, %v", e, ok)
	}

	if err := s.Remove("b"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(b) twice error = %v, want ErrNotFound", err)
	}
	if err := s.Remove("zzz"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove(zzz) error = %v, want ErrNotFound", err)
	}

	// an id can come back once it is gone
	if err := s.Insert(newEntity("b", 5, 300)); err != nil {
		t.Errorf("Insert(b) after remove returned error: %v", err)
	}
}

func TestStore_ReplacePayloadKeepsMotion(t *testing.T) {
	s := New[todo]()
	e := newEntity("a", 123, 456)
	if err := s.Insert(e); err != nil {
		t.Fatalf("Insert returned error: %v", err)
	}

	if err := s.ReplacePayload("a", todo{Title: "renamed", Done: true}); err != nil {
		t.Fatalf("ReplacePayload returned error: %v", err)
	}

	got, _ := s.Get("a")
	if got.Payload.Title != "renamed" || !got.Payload.Done {
		t.Errorf("payload = %+v, want renamed/done", got.Payload)
	}
	if got.Pos != e.Pos || got.Vel != e.Vel {
		t.Errorf("motion changed by ReplacePayload: pos %v vel %v, want %v %v", got.Pos, got.Vel, e.Pos, e.Vel)
	}

	if err := s.ReplacePayload("nope", todo{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReplacePayload(nope) error = %v, want ErrNotFound", err)
	}
}

func TestStore_TickKeepsPayload(t *testing.T) {
	s := New[todo]()
	_ = s.Insert(newEntity("a", 100, 300))
	_ = s.Insert(newEntity("b", 500, 500))
	before := s.Snapshot()

	for i := 0; i < 100; i++ {
		s.Tick(bounds, motion.DefaultParams())
	}

	after := s.Snapshot()
	for i := range after {
		if after[i].Payload != before[i].Payload {
			t.Errorf("payload of %s changed: %+v -> %+v", after[i].ID, before[i].Payload, after[i].Payload)
		}
		if after[i].Pos == before[i].Pos {
			t.Errorf("entity %s did not move in 100 ticks", after[i].ID)
		}
		if !bounds.Contains(after[i].Pos) {
			t.Errorf("entity %s at %v outside %v", after[i].ID, after[i].Pos, bounds)
		}
	}
}

func TestStore_TickMatchesStep(t *testing.T) {
	s := New[todo]()
	_ = s.Insert(newEntity("a", 100, 300))
	_ = s.Insert(newEntity("b", 120, 300))
	_ = s.Insert(newEntity("c", 0, 400))

	bodies := make([]motion.Body, 0, s.Len())
	for _, e := range s.Snapshot() {
		bodies = append(bodies, e.Body())
	}
	want := motion.Step(bounds, bodies, motion.DefaultParams())

	s.Tick(bounds, motion.DefaultParams())

	for i, e := range s.Snapshot() {
		if e.Body() != want[i] {
			t.Errorf("entity %d = %+v, want %+v", i, e.Body(), want[i])
		}
	}
}

func TestStore_TickEmpty(t *testing.T) {
	s := New[todo]()
	s.Tick(bounds, motion.DefaultParams())
	if s.Len() != 0 {
		t.Errorf("Len() = %d after ticking an empty store", s.Len())
	}
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := New[todo]()
	_ = s.Insert(newEntity("a", 100, 300))

	snap := s.Snapshot()
	snap[0].Pos.X = -999
	snap[0].Payload.Title = "changed"

	got, _ := s.Get("a")
	if got.Pos.X != 100 || got.Payload.Title != "task a" {
		t.Errorf("store changed through its snapshot: %+v", got)
	}
}

func BenchmarkStore_Tick(b *testing.B) {
	s := New[todo]()
	spawner := motion.NewSpawner(motion.DefaultSpawnSpeed, nil)
	for i := 0; i < 50; i++ {
		body := spawner.NewBody(string(rune('A'+i)), bounds)
		_ = s.Insert(Entity[todo]{ID: body.ID, Pos: body.Pos, Vel: body.Vel})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Tick(bounds, motion.DefaultParams())
	}
}
