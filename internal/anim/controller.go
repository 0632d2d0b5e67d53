package anim

import (
	"math"
	"sync"
)

const (
	DefaultMaxDisplacement = 40.0
	DefaultDurationMs      = 3000.0
)

// Config holds the per-variant animation constants.
type Config struct {
	MaxDisplacement float64
	DurationMs      float64
	Easing          Easing
}

func DefaultConfig() Config {
	return Config{
		MaxDisplacement: DefaultMaxDisplacement,
		DurationMs:      DefaultDurationMs,
		Easing:          EaseOutCubic,
	}
}

// State is a snapshot of the controller. StartTime and StartDisplacement are
// meaningful only when HasStart is true.
type State struct {
	Displacement      float64
	IsPlaying         bool
	MaxDisplacement   float64
	HasStart          bool
	StartTime         float64
	StartDisplacement float64
}

// Normalized returns Displacement / MaxDisplacement in [0,1].
func (s State) Normalized() float64 {
	if s.MaxDisplacement <= 0 {
		return 0
	}
	return Clamp(s.Displacement/s.MaxDisplacement, 0, 1)
}

// Controller owns one animated displacement value.
type Controller struct {
	mu    sync.Mutex
	cfg   Config
	sched Scheduler

	displacement      float64
	playing           bool
	hasStart          bool
	startTime         float64
	startDisplacement float64

	gen     uint64
	pending FrameID
	closed  bool
}

// New creates a controller at rest. A nil scheduler is allowed; the host
// then drives the animation by calling Tick directly.
func New(cfg Config, sched Scheduler) *Controller {
	if cfg.MaxDisplacement < 0 || math.IsNaN(cfg.MaxDisplacement) {
		cfg.MaxDisplacement = 0
	}
	if cfg.Easing == nil {
		cfg.Easing = EaseOutCubic
	}
	return &Controller{cfg: cfg, sched: sched}
}

func (c *Controller) Config() Config { return c.cfg }

// State returns a snapshot without side effects.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) Displacement() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displacement
}

func (c *Controller) IsPlaying() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playing
}

// Play starts easing toward the maximum from the current displacement.
// A completed animation restarts from zero. Calling Play while already
// playing restarts the curve from the current value.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.displacement >= c.cfg.MaxDisplacement {
		c.displacement = 0
	}
	c.cancelLocked()
	c.playing = true
	c.hasStart = false
	c.requestLocked()
}

// Pause stops the animation and keeps the current displacement.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

// Reset stops the animation and returns displacement to zero.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.displacement = 0
}

// SetDisplacement assigns a clamped value. Direct manipulation always
// cancels a running animation.
func (c *Controller) SetDisplacement(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.displacement = Clamp(v, 0, c.cfg.MaxDisplacement)
}

// Tick advances the current animation to timestamp (milliseconds). It is a
// no-op when not playing.
func (c *Controller) Tick(timestamp float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked(c.gen, timestamp)
}

// Close cancels any pending frame and makes the controller inert to Play.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.closed = true
}

func (c *Controller) tickLocked(gen uint64, ts float64) {
	if gen != c.gen || !c.playing {
		return
	}
	c.pending = 0

	if !c.hasStart {
		c.hasStart = true
		c.startTime = ts
		c.startDisplacement = c.displacement
	}

	progress := 1.0
	if c.cfg.DurationMs > 0 {
		progress = math.Min(math.Max(ts-c.startTime, 0)/c.cfg.DurationMs, 1)
	}
	eased := c.cfg.Easing(progress)
	next := c.startDisplacement + (c.cfg.MaxDisplacement-c.startDisplacement)*eased
	if progress >= 1 {
		next = c.cfg.MaxDisplacement
	}
	// Monotonic even if a custom easing or a clock step backwards misbehaves.
	if next > c.displacement {
		c.displacement = Clamp(next, 0, c.cfg.MaxDisplacement)
	}

	if progress >= 1 {
		c.playing = false
		c.hasStart = false
		c.gen++
		return
	}
	c.requestLocked()
}

func (c *Controller) requestLocked() {
	if c.sched == nil {
		return
	}
	gen := c.gen
	c.pending = c.sched.RequestFrame(func(ts float64) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.tickLocked(gen, ts)
	})
}

func (c *Controller) cancelLocked() {
	if c.pending != 0 && c.sched != nil {
		c.sched.CancelFrame(c.pending)
	}
	c.pending = 0
	c.gen++
}

func (c *Controller) stopLocked() {
	c.cancelLocked()
	c.playing = false
	c.hasStart = false
	c.startTime = 0
	c.startDisplacement = 0
}

func (c *Controller) snapshot() State {
	return State{
		Displacement:      c.displacement,
		IsPlaying:         c.playing,
		MaxDisplacement:   c.cfg.MaxDisplacement,
		HasStart:          c.hasStart,
		StartTime:         c.startTime,
		StartDisplacement: c.startDisplacement,
	}
}
