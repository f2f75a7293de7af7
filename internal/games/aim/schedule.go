package aim

import (
	"fmt"
	"time"
)

// TaskKind names a scheduled task.
type TaskKind int

const (
	// TaskCountdown is the recurring one-second session clock.
	TaskCountdown TaskKind = iota
	// TaskRespawn is the one-shot removal and replacement of a hit target.
	TaskRespawn
)

// String returns a human-readable name for the task kind.
func (k TaskKind) String() string {
	switch k {
	case TaskCountdown:
		return "countdown"
	case TaskRespawn:
		return "respawn"
	default:
		return fmt.Sprintf("TaskKind(%d)", int(k))
	}
}

// TaskID identifies a scheduled task so it can be cancelled.
type TaskID uint64

type task struct {
	id       TaskID
	kind     TaskKind
	due      time.Duration
	interval time.Duration // 0 for one-shot tasks
	fire     func()
}

// Scheduler runs named tasks against a virtual clock.
// Time only moves through Advance, which the platform calls with the
// wall time elapsed between frames. Tasks fire on the caller's goroutine,
// so the scheduler is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	tasks  []*task
	nextID TaskID
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's current virtual time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, delay from now.
func (s *Scheduler) After(kind TaskKind, delay time.Duration, fn func()) TaskID {
	return s.add(kind, max(delay, 0), 0, fn)
}

// Every schedules fn to run each interval, first at now+interval.
// Panics on a non-positive interval.
func (s *Scheduler) Every(kind TaskKind, interval time.Duration, fn func()) TaskID {
	if interval <= 0 {
		panic(fmt.Sprintf("aim: %s interval must be positive, got %v", kind, interval))
	}
	return s.add(kind, interval, interval, fn)
}

func (s *Scheduler) add(kind TaskKind, delay, interval time.Duration, fn func()) TaskID {
	s.nextID++
	s.tasks = append(s.tasks, &task{
		id:       s.nextID,
		kind:     kind,
		due:      s.now + delay,
		interval: interval,
		fire:     fn,
	})
	return s.nextID
}

// Cancel removes a pending task. Returns false if it already ran or was cancelled.
func (s *Scheduler) Cancel(id TaskID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Pending returns the number of scheduled tasks of the given kind.
func (s *Scheduler) Pending(kind TaskKind) int {
	n := 0
	for _, t := range s.tasks {
		if t.kind == kind {
			n++
		}
	}
	return n
}

// Advance moves the clock forward by dt and fires every task that falls due,
// earliest first. Ties run in scheduling order. Tasks may schedule or cancel
// other tasks while firing. Returns the number of tasks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + max(dt, 0)
	fired := 0

	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}

		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
		} else {
			s.Cancel(next.id)
		}

		next.fire()
		fired++
	}

	s.now = target
	return fired
}

// nextDue returns the earliest task due at or before limit.
func (s *Scheduler) nextDue(limit time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
