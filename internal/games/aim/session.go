// Package aim implements the aim trainer: timed sessions in which the player
// clicks randomly placed targets for points while misses cost a penalty.
//
// The package is pure game logic. Rendering goes through Presenter, the best
// score through BestScoreStore, and time through Controller.Advance, so a
// session can be driven entirely from tests.
package aim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-aimlab/internal/config"
)

// Session tuning. These are tuned values, not derived ones.
const (
	DefaultSessionDuration = 60 // Seconds
	DefaultMaxTargets      = 3
	DefaultRespawnDelay    = 120 * time.Millisecond
	CountdownInterval      = time.Second
)

// Phase is the controller's position in the Menu -> Active -> Ended loop.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseActive
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// EndReason records why a session ended.
type EndReason int

const (
	EndTimeout EndReason = iota // Countdown reached zero
	EndExit                     // Player asked to finish early
)

// String returns a human-readable name for the end reason.
func (r EndReason) String() string {
	switch r {
	case EndTimeout:
		return "timeout"
	case EndExit:
		return "exit"
	default:
		return fmt.Sprintf("EndReason(%d)", int(r))
	}
}

// SessionState is the mutable state of one play-through.
type SessionState struct {
	Score      int
	TimeLeft   int // Seconds
	Active     bool
	Difficulty DifficultyID
}

// Stats counts clicks in the current or last session. Kept in memory only.
type Stats struct {
	Hits   int
	Misses int
}

// Accuracy returns hits as a percentage of all clicks, 0 with no clicks.
func (s Stats) Accuracy() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(total)
}

// Options configures a controller.
type Options struct {
	SessionDuration int // Seconds
	MaxTargets      int
	RespawnDelay    time.Duration
	Difficulty      DifficultyID // Mode started by OnPlayRequested
	Seed            int64        // 0 = time based
}

// DefaultOptions returns the standard rules: 60 seconds, 3 targets, hard mode.
func DefaultOptions() Options {
	return Options{
		SessionDuration: DefaultSessionDuration,
		MaxTargets:      DefaultMaxTargets,
		RespawnDelay:    DefaultRespawnDelay,
		Difficulty:      Hard,
	}
}

// OptionsFromConfig builds options from a validated session config.
func OptionsFromConfig(cfg config.SessionConfig, seed int64) Options {
	opts := Options{
		SessionDuration: cfg.DurationSecs,
		MaxTargets:      cfg.MaxTargets,
		RespawnDelay:    cfg.RespawnDelay(),
		Difficulty:      DifficultyID(cfg.DefaultDifficulty),
		Seed:            seed,
	}
	if opts.Difficulty == "" {
		opts.Difficulty = Hard
	}
	return opts
}

// Controller owns a SessionState and drives the session lifecycle.
// All methods must be called from a single event loop.
type Controller struct {
	opts      Options
	presenter Presenter
	store     BestScoreStore
	sched     *Scheduler
	spawner   *Spawner

	state     SessionState
	phase     Phase
	stats     Stats
	best      int
	lastEnd   EndReason
	epoch     uint64 // Bumped on every start, guards respawns from older sessions
	countdown TaskID
}

// NewController creates a controller in the menu phase.
// The best score is read from the store once, here.
func NewController(opts Options, presenter Presenter, store BestScoreStore) *Controller {
	if opts.SessionDuration <= 0 {
		opts.SessionDuration = DefaultSessionDuration
	}
	if opts.MaxTargets <= 0 {
		opts.MaxTargets = DefaultMaxTargets
	}
	if opts.RespawnDelay < 0 {
		opts.RespawnDelay = 0
	}
	if opts.Difficulty == "" {
		opts.Difficulty = Hard
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if presenter == nil {
		presenter = NopPresenter{}
	}
	if store == nil {
		store = NewMemoryBestScore(0)
	}

	c := &Controller{
		opts:      opts,
		presenter: presenter,
		store:     store,
		sched:     NewScheduler(),
		spawner:   NewSpawner(rand.New(rand.NewSource(seed)), opts.MaxTargets),
		phase:     PhaseMenu,
		best:      max(store.Read(), 0),
	}
	c.state = c.idleState()

	c.presenter.DisplayBestScore(c.best)
	c.presenter.ShowMenu()
	c.presenter.UpdateHUD(c.state.Score, c.state.TimeLeft)
	return c
}

func (c *Controller) idleState() SessionState {
	return SessionState{
		TimeLeft:   c.opts.SessionDuration,
		Difficulty: c.opts.Difficulty,
	}
}

// StartSession begins a timed session with the given difficulty.
// An unknown difficulty panics.
func (c *Controller) StartSession(id DifficultyID) {
	Profile(id)

	if c.phase == PhaseActive {
		c.teardown()
	}

	c.epoch++
	c.state = SessionState{
		Score:      0,
		TimeLeft:   c.opts.SessionDuration,
		Active:     true,
		Difficulty: id,
	}
	c.stats = Stats{}
	c.phase = PhaseActive

	c.presenter.ShowActive()
	c.presenter.UpdateHUD(c.state.Score, c.state.TimeLeft)

	c.countdown = c.sched.Every(TaskCountdown, CountdownInterval, c.Tick)
	c.populate()
}

// Tick advances the session clock by one second.
// The countdown task calls it; it is a no-op while inactive.
func (c *Controller) Tick() {
	if !c.state.Active {
		return
	}

	c.state.TimeLeft--
	if c.state.TimeLeft < 0 {
		c.state.TimeLeft = 0
	}
	c.presenter.UpdateHUD(c.state.Score, c.state.TimeLeft)

	if c.state.TimeLeft == 0 {
		c.EndSession(EndTimeout)
	}
}

// RegisterHit scores a click on a live target and schedules its replacement.
// Clicks while inactive, on unknown targets, or on targets already hit are
// ignored and return false.
func (c *Controller) RegisterHit(id TargetID) bool {
	if !c.state.Active {
		return false
	}

	t, ok := c.spawner.MarkHit(id)
	if !ok {
		return false
	}

	c.state.Score += Profile(c.state.Difficulty).Points
	c.stats.Hits++
	c.presenter.RenderTarget(t)

	epoch := c.epoch
	c.sched.After(TaskRespawn, c.opts.RespawnDelay, func() {
		c.completeRespawn(id, epoch)
	})

	c.presenter.UpdateHUD(c.state.Score, c.state.TimeLeft)
	return true
}

// completeRespawn removes a hit target and requests one replacement, but only
// if the session that scheduled it is still running.
func (c *Controller) completeRespawn(id TargetID, epoch uint64) {
	if c.spawner.Remove(id) {
		c.presenter.RemoveTarget(id)
	}
	if !c.state.Active || epoch != c.epoch {
		return
	}
	c.SpawnOne()
}

// RegisterMiss applies half the profile penalty, never going below zero.
// Misses do not touch the target population.
func (c *Controller) RegisterMiss() bool {
	if !c.state.Active {
		return false
	}

	penalty := Profile(c.state.Difficulty).MissPenalty()
	c.state.Score = max(0, c.state.Score-penalty)
	c.stats.Misses++

	c.presenter.FlashMissFeedback()
	c.presenter.UpdateHUD(c.state.Score, c.state.TimeLeft)
	return true
}

// SpawnOne adds a single target for the active profile.
// Returns false while inactive or when the population is at its ceiling.
func (c *Controller) SpawnOne() bool {
	if !c.state.Active {
		return false
	}

	w, h := c.presenter.PlayArea()
	t, ok := c.spawner.Spawn(Profile(c.state.Difficulty), w, h)
	if !ok {
		return false
	}
	c.presenter.RenderTarget(t)
	return true
}

func (c *Controller) populate() {
	for !c.spawner.Full() {
		if !c.SpawnOne() {
			return
		}
	}
}

// EndSession stops an active session and shows the result. A new record is
// persisted and displayed. Calling it while inactive does nothing.
func (c *Controller) EndSession(reason EndReason) {
	if c.phase != PhaseActive {
		return
	}

	c.teardown()
	c.phase = PhaseEnded
	c.lastEnd = reason
	c.presenter.ShowEnded(c.state.Score)

	if c.state.Score > c.best {
		c.best = c.state.Score
		c.store.Write(c.best)
		c.presenter.DisplayBestScore(c.best)
	}
}

// ReturnToMenu tears down any session and shows the menu.
// The best score is left untouched.
func (c *Controller) ReturnToMenu() {
	c.teardown()
	c.phase = PhaseMenu
	c.state = c.idleState()
	c.presenter.ShowMenu()
	c.presenter.UpdateHUD(c.state.Score, c.state.TimeLeft)
}

// teardown deactivates the session, stops the countdown and clears targets.
// Pending respawns are left to their own guard.
func (c *Controller) teardown() {
	c.state.Active = false
	if c.countdown != 0 {
		c.sched.Cancel(c.countdown)
		c.countdown = 0
	}
	c.clearTargets()
}

func (c *Controller) clearTargets() {
	for _, t := range c.spawner.Clear() {
		c.presenter.RemoveTarget(t.ID)
	}
}

// Advance feeds elapsed wall time into the scheduler, firing countdown ticks
// and respawns that fall due.
func (c *Controller) Advance(dt time.Duration) {
	c.sched.Advance(dt)
}

// TargetAt returns the topmost live target under a play-area point.
func (c *Controller) TargetAt(x, y float64) (TargetID, bool) {
	t, ok := c.spawner.TargetAt(x, y)
	return t.ID, ok
}

// State returns a copy of the session state.
func (c *Controller) State() SessionState {
	return c.state
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Targets returns the live targets in spawn order.
func (c *Controller) Targets() []Target {
	return c.spawner.Targets()
}

// BestScore returns the best score known to this controller.
func (c *Controller) BestScore() int {
	return c.best
}

// Stats returns click statistics for the current or last session.
func (c *Controller) Stats() Stats {
	return c.stats
}

// LastEndReason returns why the most recent session ended.
func (c *Controller) LastEndReason() EndReason {
	return c.lastEnd
}

// Options returns the controller's effective options.
func (c *Controller) Options() Options {
	return c.opts
}

// CountdownRunning reports whether the session clock is scheduled.
func (c *Controller) CountdownRunning() bool {
	return c.sched.Pending(TaskCountdown) > 0
}

// PendingRespawns returns the number of hit targets awaiting replacement.
func (c *Controller) PendingRespawns() int {
	return c.sched.Pending(TaskRespawn)
}
