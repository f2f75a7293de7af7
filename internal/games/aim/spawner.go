package aim

import "math/rand"

// Spawner owns the live target population.
// It enforces the population ceiling and on-screen placement; whether a
// session is active is the controller's concern.
type Spawner struct {
	rng     *rand.Rand
	max     int
	targets []Target // Spawn order, newest last
	nextID  TargetID
}

// NewSpawner creates a spawner holding at most maxTargets live targets.
func NewSpawner(rng *rand.Rand, maxTargets int) *Spawner {
	return &Spawner{
		rng: rng,
		max: maxTargets,
	}
}

// Count returns the number of live targets, including ones already hit
// but not yet removed.
func (s *Spawner) Count() int {
	return len(s.targets)
}

// Full reports whether the population ceiling is reached.
func (s *Spawner) Full() bool {
	return len(s.targets) >= s.max
}

// Targets returns a copy of the live targets in spawn order.
func (s *Spawner) Targets() []Target {
	out := make([]Target, len(s.targets))
	copy(out, s.targets)
	return out
}

// Get returns the target with the given id.
func (s *Spawner) Get(id TargetID) (Target, bool) {
	if i := s.index(id); i >= 0 {
		return s.targets[i], true
	}
	return Target{}, false
}

// Spawn creates one target for the profile inside an areaW x areaH play area.
// Returns false without spawning when the ceiling is reached.
func (s *Spawner) Spawn(p DifficultyProfile, areaW, areaH float64) (Target, bool) {
	if s.Full() {
		return Target{}, false
	}

	x, y := s.place(p.Size, areaW, areaH)
	s.nextID++
	t := Target{
		ID:         s.nextID,
		X:          x,
		Y:          y,
		Size:       p.Size,
		Difficulty: p.ID,
	}
	s.targets = append(s.targets, t)
	return t, true
}

// place samples a uniform top-left corner keeping the whole target inside
// the area. An area smaller than the target collapses the range to [0,0].
func (s *Spawner) place(size, areaW, areaH float64) (float64, float64) {
	maxX := max(0, areaW-size)
	maxY := max(0, areaH-size)
	return s.rng.Float64() * maxX, s.rng.Float64() * maxY
}

// MarkHit flags a target as clicked. Returns false for unknown targets
// and for targets that were already hit.
func (s *Spawner) MarkHit(id TargetID) (Target, bool) {
	i := s.index(id)
	if i < 0 || s.targets[i].Hit {
		return Target{}, false
	}
	s.targets[i].Hit = true
	return s.targets[i], true
}

// Remove deletes a target. Returns false if it was not live.
func (s *Spawner) Remove(id TargetID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.targets = append(s.targets[:i], s.targets[i+1:]...)
	return true
}

// Clear removes every live target and returns them.
func (s *Spawner) Clear() []Target {
	removed := s.targets
	s.targets = nil
	return removed
}

// TargetAt returns the topmost target containing the point.
func (s *Spawner) TargetAt(x, y float64) (Target, bool) {
	for i := len(s.targets) - 1; i >= 0; i-- {
		if s.targets[i].Bounds().Contains(x, y) {
			return s.targets[i], true
		}
	}
	return Target{}, false
}

func (s *Spawner) index(id TargetID) int {
	for i, t := range s.targets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
