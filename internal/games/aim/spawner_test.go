package aim

import (
	"math/rand"
	"testing"
)

func TestSpawnerCeiling(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 3)
	p := Profile(Hard)

	for i := 0; i < 3; i++ {
		if _, ok := s.Spawn(p, 640, 384); !ok {
			t.Fatalf("spawn %d refused below the ceiling", i)
		}
	}
	if _, ok := s.Spawn(p, 640, 384); ok {
		t.Error("spawn above the ceiling should be refused")
	}
	if s.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", s.Count())
	}
}

func TestSpawnerPlacementStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSpawner(rand.New(rand.NewSource(42)), 1)

	for i := 0; i < 2000; i++ {
		p := Profiles()[i%3]
		// Mix of normal, tight and degenerate areas
		w := rng.Float64() * 700
		h := rng.Float64() * 400

		tg, ok := s.Spawn(p, w, h)
		if !ok {
			t.Fatal("spawn refused on empty spawner")
		}

		if tg.X < 0 || tg.Y < 0 {
			t.Fatalf("target at negative position (%v, %v)", tg.X, tg.Y)
		}
		if w >= p.Size && tg.X+tg.Size > w {
			t.Fatalf("target overflows width: x=%v size=%v w=%v", tg.X, tg.Size, w)
		}
		if h >= p.Size && tg.Y+tg.Size > h {
			t.Fatalf("target overflows height: y=%v size=%v h=%v", tg.Y, tg.Size, h)
		}
		s.Remove(tg.ID)
	}
}

func TestSpawnerDegenerateAreaPinsToOrigin(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(3)), 3)

	tests := []struct {
		name string
		w, h float64
		pinX bool
		pinY bool
	}{
		{"narrower than target", 30, 400, true, false},
		{"shorter than target", 400, 20, false, true},
		{"zero area", 0, 0, true, true},
		{"exactly target size", 46, 46, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				tg, _ := s.Spawn(Profile(Hard), tc.w, tc.h)
				if tc.pinX && tg.X != 0 {
					t.Fatalf("x = %v, expected pinned to 0", tg.X)
				}
				if tc.pinY && tg.Y != 0 {
					t.Fatalf("y = %v, expected pinned to 0", tg.Y)
				}
				s.Remove(tg.ID)
			}
		})
	}
}

func TestSpawnerUniqueIDsAndSize(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 3)
	seen := make(map[TargetID]bool)

	for i := 0; i < 10; i++ {
		tg, _ := s.Spawn(Profile(Easy), 640, 384)
		if seen[tg.ID] {
			t.Fatalf("duplicate target id %d", tg.ID)
		}
		seen[tg.ID] = true
		if tg.Size != 80 || tg.Difficulty != Easy {
			t.Errorf("target = %+v, expected easy profile size", tg)
		}
		s.Remove(tg.ID)
	}
}

func TestSpawnerMarkHit(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 3)
	tg, _ := s.Spawn(Profile(Hard), 640, 384)

	hit, ok := s.MarkHit(tg.ID)
	if !ok || !hit.Hit {
		t.Fatal("first MarkHit should succeed and flag the target")
	}
	if _, ok := s.MarkHit(tg.ID); ok {
		t.Error("second MarkHit on the same target should fail")
	}
	if _, ok := s.MarkHit(999); ok {
		t.Error("MarkHit on unknown id should fail")
	}
	// A hit target still occupies a slot until removed
	if s.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", s.Count())
	}
}

func TestSpawnerTargetAtTopmost(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 3)
	s.targets = []Target{
		{ID: 1, X: 0, Y: 0, Size: 50},
		{ID: 2, X: 25, Y: 25, Size: 50},
	}

	tests := []struct {
		name   string
		x, y   float64
		wantID TargetID
		wantOK bool
	}{
		{"only first", 10, 10, 1, true},
		{"overlap picks newest", 30, 30, 2, true},
		{"only second", 70, 70, 2, true},
		{"empty", 90, 5, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tg, ok := s.TargetAt(tc.x, tc.y)
			if ok != tc.wantOK || (ok && tg.ID != tc.wantID) {
				t.Errorf("TargetAt(%v, %v) = %d, %v; expected %d, %v", tc.x, tc.y, tg.ID, ok, tc.wantID, tc.wantOK)
			}
		})
	}
}

func TestSpawnerClear(t *testing.T) {
	s := NewSpawner(rand.New(rand.NewSource(1)), 3)
	for i := 0; i < 3; i++ {
		s.Spawn(Profile(Medium), 640, 384)
	}

	removed := s.Clear()
	if len(removed) != 3 {
		t.Errorf("Clear returned %d targets, expected 3", len(removed))
	}
	if s.Count() != 0 {
		t.Errorf("Count() after Clear = %d", s.Count())
	}
	if s.Remove(removed[0].ID) {
		t.Error("Remove after Clear should report false")
	}
}
