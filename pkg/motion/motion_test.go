package motion

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-neon-task/pkg/geometry"
)

var desktopBounds = geometry.NewRect(0, 780, 200, 680)

func TestStep_Empty(t *testing.T) {
	got := Step(desktopBounds, nil, DefaultParams())
	if len(got) != 0 {
		t.Fatalf("Step(nil) returned %d bodies, want 0", len(got))
	}
}

func TestStep_LeftWallBounce(t *testing.T) {
	bodies := []Body{
		{ID: "a", Pos: geometry.Vector2D{X: 0, Y: 400}, Vel: geometry.Vector2D{X: -0.4, Y: 0}},
	}

	got := Step(desktopBounds, bodies, DefaultParams())

	if got[0].Pos.X != 0 {
		t.Errorf("x after bounce = %v, want 0", got[0].Pos.X)
	}
	if got[0].Vel.X != 0.4 {
		t.Errorf("vx after bounce = %v, want 0.4", got[0].Vel.X)
	}
	if got[0].Pos.Y != 400 || got[0].Vel.Y != 0 {
		t.Errorf("y axis should be untouched, got pos %v vel %v", got[0].Pos, got[0].Vel)
	}
}

func TestStep_ReflectionLaw(t *testing.T) {
	tests := []struct {
		name    string
		pos     geometry.Vector2D
		vel     geometry.Vector2D
		wantPos geometry.Vector2D
		wantVel geometry.Vector2D
	}{
		{"left", geometry.Vector2D{X: 0.1, Y: 300}, geometry.Vector2D{X: -0.3, Y: 0.2}, geometry.Vector2D{X: 0, Y: 300.2}, geometry.Vector2D{X: 0.3, Y: 0.2}},
		{"right", geometry.Vector2D{X: 779.9, Y: 300}, geometry.Vector2D{X: 0.3, Y: 0.2}, geometry.Vector2D{X: 780, Y: 300.2}, geometry.Vector2D{X: -0.3, Y: 0.2}},
		{"top", geometry.Vector2D{X: 300, Y: 200.1}, geometry.Vector2D{X: 0.2, Y: -0.3}, geometry.Vector2D{X: 300.2, Y: 200}, geometry.Vector2D{X: 0.2, Y: 0.3}},
		{"bottom", geometry.Vector2D{X: 300, Y: 679.9}, geometry.Vector2D{X: 0.2, Y: 0.3}, geometry.Vector2D{X: 300.2, Y: 680}, geometry.Vector2D{X: 0.2, Y: -0.3}},
		{"corner", geometry.Vector2D{X: 779.9, Y: 679.9}, geometry.Vector2D{X: 0.4, Y: 0.4}, geometry.Vector2D{X: 780, Y: 680}, geometry.Vector2D{X: -0.4, Y: -0.4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Step(desktopBounds, []Body{{ID: tt.name, Pos: tt.pos, Vel: tt.vel}}, DefaultParams())[0]
			if !got.Pos.Eq(tt.wantPos) {
				t.Errorf("pos = %v, want %v", got.Pos, tt.wantPos)
			}
			if !got.Vel.Eq(tt.wantVel) {
				t.Errorf("vel = %v, want %v", got.Vel, tt.wantVel)
			}
		})
	}
}

func TestStep_PairPushedApart(t *testing.T) {
	bounds := geometry.NewRect(0, 1000, 0, 1000)
	p := DefaultParams()
	bodies := []Body{
		{ID: "a", Pos: geometry.Vector2D{X: 100, Y: 100}},
		{ID: "b", Pos: geometry.Vector2D{X: 120, Y: 100}},
	}

	got := Step(bounds, bodies, p)
	a, b := got[0], got[1]

	// a moves first: half of (160-20) to the left, then b sees a at x=30
	// and moves half of (160-90) to the right.
	if a.Pos.X != 30 || a.Pos.Y != 100 {
		t.Errorf("a.Pos = %v, want (30, 100)", a.Pos)
	}
	if b.Pos.X != 155 || b.Pos.Y != 100 {
		t.Errorf("b.Pos = %v, want (155, 100)", b.Pos)
	}

	if !floatEq(a.Vel.Len(), p.BounceStrength) || !floatEq(b.Vel.Len(), p.BounceStrength) {
		t.Errorf("speeds after push = %v, %v, want %v", a.Vel.Len(), b.Vel.Len(), p.BounceStrength)
	}
	if a.Vel.X >= 0 || b.Vel.X <= 0 {
		t.Errorf("velocities should point away from each other, got a=%v b=%v", a.Vel, b.Vel)
	}
	if a.Vel.Y != 0 || b.Vel.Y != 0 {
		t.Errorf("push along x must not create y velocity, got a=%v b=%v", a.Vel, b.Vel)
	}
}

func TestStep_AlmostSeparatedPair(t *testing.T) {
	bounds := geometry.NewRect(0, 1000, 0, 1000)
	p := DefaultParams()
	bodies := []Body{
		{ID: "a", Pos: geometry.Vector2D{X: 100, Y: 100}},
		{ID: "b", Pos: geometry.Vector2D{X: 100 + p.MinDistance - 1, Y: 100}},
	}

	got := Step(bounds, bodies, p)
	dist := got[0].Pos.DistanceTo(got[1].Pos)

	if dist <= p.MinDistance-1 {
		t.Errorf("distance after tick = %v, want more than %v", dist, p.MinDistance-1)
	}
	if dist > p.MinDistance {
		t.Errorf("distance after tick = %v, corrections should not overshoot %v", dist, p.MinDistance)
	}
}

func TestStep_CoincidentBodiesUntouched(t *testing.T) {
	bounds := geometry.NewRect(0, 1000, 0, 1000)
	bodies := []Body{
		{ID: "a", Pos: geometry.Vector2D{X: 300, Y: 300}},
		{ID: "b", Pos: geometry.Vector2D{X: 300, Y: 300}},
	}

	got := Step(bounds, bodies, DefaultParams())

	for _, b := range got {
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			t.Fatalf("body %s has non finite state pos=%v vel=%v", b.ID, b.Pos, b.Vel)
		}
		if b.Pos != (geometry.Vector2D{X: 300, Y: 300}) || b.Vel != (geometry.Vector2D{}) {
			t.Errorf("body %s moved: pos=%v vel=%v", b.ID, b.Pos, b.Vel)
		}
	}
}

func TestStep_OrderMatters(t *testing.T) {
	bounds := geometry.NewRect(0, 1000, 0, 1000)
	a := Body{ID: "a", Pos: geometry.Vector2D{X: 100, Y: 100}}
	b := Body{ID: "b", Pos: geometry.Vector2D{X: 120, Y: 100}}

	ab := Step(bounds, []Body{a, b}, DefaultParams())
	ba := Step(bounds, []Body{b, a}, DefaultParams())

	// a then b: a goes to 30. b then a: b goes to 190 and a only moves half of (160-90).
	if ab[0].Pos.X == ba[1].Pos.X {
		t.Errorf("expected processing order to change the outcome, both gave a.x=%v", ab[0].Pos.X)
	}
}

func TestStep_DoesNotMutateInput(t *testing.T) {
	bodies := []Body{
		{ID: "a", Pos: geometry.Vector2D{X: 100, Y: 300}, Vel: geometry.Vector2D{X: 0.3, Y: -0.1}},
		{ID: "b", Pos: geometry.Vector2D{X: 150, Y: 320}, Vel: geometry.Vector2D{X: -0.2, Y: 0.2}},
	}
	before := append([]Body(nil), bodies...)

	_ = Step(desktopBounds, bodies, DefaultParams())

	for i := range bodies {
		if bodies[i] != before[i] {
			t.Errorf("input body %d changed from %+v to %+v", i, before[i], bodies[i])
		}
	}
}

func TestStep_Deterministic(t *testing.T) {
	bodies := randomBodies(25, 42)

	first := Step(desktopBounds, bodies, DefaultParams())
	second := Step(desktopBounds, bodies, DefaultParams())

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tick is not deterministic at %d: %+v != %+v", i, first[i], second[i])
		}
	}
}

func TestStep_BoundaryContainment(t *testing.T) {
	bodies := randomBodies(30, 7)

	for tick := 0; tick < 600; tick++ {
		bodies = Step(desktopBounds, bodies, DefaultParams())
		for _, b := range bodies {
			if !b.Pos.IsFinite() {
				t.Fatalf("tick %d: body %s has non finite position %v", tick, b.ID, b.Pos)
			}
			if !desktopBounds.Contains(b.Pos) {
				t.Fatalf("tick %d: body %s at %v escaped %v", tick, b.ID, b.Pos, desktopBounds)
			}
		}
	}
}

func TestStep_SpeedStaysBounded(t *testing.T) {
	p := DefaultParams()
	bodies := randomBodies(30, 11)
	limit := math.Max(p.BounceStrength, DefaultSpawnSpeed*math.Sqrt2) + 1e-9

	for tick := 0; tick < 300; tick++ {
		bodies = Step(desktopBounds, bodies, p)
		for _, b := range bodies {
			if b.Vel.Len() > limit {
				t.Fatalf("tick %d: body %s speed %v above %v", tick, b.ID, b.Vel.Len(), limit)
			}
		}
	}
}

func TestBody_RepelFrom(t *testing.T) {
	p := Params{MinDistance: 10, BounceStrength: 2}

	t.Run("far enough", func(t *testing.T) {
		b := Body{Pos: geometry.Vector2D{X: 0, Y: 0}, Vel: geometry.Vector2D{X: 1, Y: 1}}
		if b.RepelFrom(geometry.Vector2D{X: 10, Y: 0}, p) {
			t.Error("body at exactly MinDistance should not be pushed")
		}
		if b.Vel != (geometry.Vector2D{X: 1, Y: 1}) {
			t.Errorf("velocity changed to %v", b.Vel)
		}
	})

	t.Run("pushed down", func(t *testing.T) {
		b := Body{Pos: geometry.Vector2D{X: 0, Y: 0}}
		if !b.RepelFrom(geometry.Vector2D{X: 0, Y: 4}, p) {
			t.Fatal("expected a push")
		}
		if !b.Pos.Eq(geometry.Vector2D{X: 0, Y: -3}) {
			t.Errorf("pos = %v, want (0, -3)", b.Pos)
		}
		if !b.Vel.Eq(geometry.Vector2D{X: 0, Y: -2}) {
			t.Errorf("vel = %v, want (0, -2)", b.Vel)
		}
	})
}

func BenchmarkStep(b *testing.B) {
	bodies := randomBodies(50, 1)
	p := DefaultParams()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StepInPlace(desktopBounds, bodies, p)
	}
}

func randomBodies(n int, seed uint64) []Body {
	s := NewSpawner(DefaultSpawnSpeed, rand.NewPCG(seed, seed))
	bodies := make([]Body, n)
	for i := range bodies {
		bodies[i] = s.NewBody(string(rune('a'+i%26))+string(rune('0'+i/26)), desktopBounds)
	}
	return bodies
}

func floatEq(a, b float64) bool {
	return math.Abs(a-b) <= geometry.Epsilon
}
