package playback

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/faultsim/internal/anim"
)

var (
	ErrInvalidConfig = errors.New("playback: invalid configuration")
	ErrUnknownAction = errors.New("playback: unknown action")
)

// Config sets the virtual frame rate and how long to sample.
type Config struct {
	FPS      int
	LengthMs float64
}

type Sample struct {
	TimeMs       float64 `json:"time_ms"`
	Displacement float64 `json:"displacement"`
	Playing      bool    `json:"playing"`
}

type Result struct {
	Script  string
	Samples []Sample
}

func (r *Result) Times() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.TimeMs
	}
	return out
}

func (r *Result) Displacements() []float64 {
	out := make([]float64, len(r.Samples))
	for i, s := range r.Samples {
		out[i] = s.Displacement
	}
	return out
}

// Final returns the last sample, or the zero Sample if there is none.
func (r *Result) Final() Sample {
	if len(r.Samples) == 0 {
		return Sample{}
	}
	return r.Samples[len(r.Samples)-1]
}

// Observer is notified after every sampled frame.
type Observer interface {
	OnFrame(s Sample)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Sample)

func (f ObserverFunc) OnFrame(s Sample) { f(s) }

// Runner drives one controller with a virtual clock.
type Runner struct {
	queue     *anim.FrameQueue
	ctrl      *anim.Controller
	observers []Observer
}

func New(cfg anim.Config) *Runner {
	q := anim.NewFrameQueue()
	return &Runner{queue: q, ctrl: anim.New(cfg, q)}
}

func (r *Runner) Controller() *anim.Controller { return r.ctrl }

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run applies script events at their timestamps and fires one frame per
// virtual tick, sampling the controller after each. Events due at a tick are
// applied before that tick's frame fires.
func (r *Runner) Run(ctx context.Context, script *Script, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	if script == nil {
		script = DefaultScript()
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}

	frameMs := 1000 / float64(cfg.FPS)
	steps := int(cfg.LengthMs / frameMs)
	events := script.sorted()
	next := 0

	result := &Result{
		Script:  script.Name,
		Samples: make([]Sample, 0, steps+1),
	}

	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		ts := float64(i) * frameMs
		for next < len(events) && events[next].AtMs <= ts {
			r.apply(events[next])
			next++
		}
		r.queue.Fire(ts)

		st := r.ctrl.State()
		s := Sample{TimeMs: ts, Displacement: st.Displacement, Playing: st.IsPlaying}
		result.Samples = append(result.Samples, s)
		for _, o := range r.observers {
			o.OnFrame(s)
		}
	}

	return result, nil
}

func (r *Runner) apply(ev Event) {
	switch ev.Action {
	case ActionPlay:
		r.ctrl.Play()
	case ActionPause:
		r.ctrl.Pause()
	case ActionReset:
		r.ctrl.Reset()
	case ActionSet:
		r.ctrl.SetDisplacement(ev.Value)
	}
}

func validateConfig(cfg Config) error {
	if cfg.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, cfg.FPS)
	}
	if cfg.LengthMs <= 0 {
		return fmt.Errorf("%w: length must be positive, got %f", ErrInvalidConfig, cfg.LengthMs)
	}
	return nil
}
