package playback

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/faultsim/internal/anim"
)

func newRunner() *Runner {
	return New(anim.Config{MaxDisplacement: 40, DurationMs: 3000})
}

func sampleAt(t *testing.T, r *Result, ts float64) Sample {
	t.Helper()
	for _, s := range r.Samples {
		if s.TimeMs == ts {
			return s
		}
	}
	t.Fatalf("no sample at %v", ts)
	return Sample{}
}

func TestRunDefaultScript(t *testing.T) {
	result, err := newRunner().Run(context.Background(), nil, Config{FPS: 4, LengthMs: 3000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Samples) != 13 {
		t.Errorf("expected 13 samples, got %d", len(result.Samples))
	}
	if s := sampleAt(t, result, 0); s.Displacement != 0 || !s.Playing {
		t.Errorf("t=0: %+v", s)
	}
	if s := sampleAt(t, result, 1500); s.Displacement != 35 {
		t.Errorf("t=1500: displacement %v, want 35", s.Displacement)
	}
	final := result.Final()
	if final.Displacement != 40 || final.Playing {
		t.Errorf("final sample %+v, want 40 and stopped", final)
	}
}

func TestRunPauseResume(t *testing.T) {
	script := &Script{Name: "explain", Events: []Event{
		{AtMs: 0, Action: ActionPlay},
		{AtMs: 1500, Action: ActionPause},
		{AtMs: 2000, Action: ActionPlay},
	}}
	result, err := newRunner().Run(context.Background(), script, Config{FPS: 4, LengthMs: 5000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	paused := sampleAt(t, result, 1500)
	if paused.Playing {
		t.Error("should be paused at 1500")
	}
	if s := sampleAt(t, result, 1750); s.Displacement != paused.Displacement {
		t.Errorf("displacement moved while paused: %v -> %v", paused.Displacement, s.Displacement)
	}
	if s := sampleAt(t, result, 2000); s.Displacement != paused.Displacement || !s.Playing {
		t.Errorf("resume should start from the paused value, got %+v", s)
	}
	want := paused.Displacement + (40-paused.Displacement)*0.875
	if s := sampleAt(t, result, 3500); math.Abs(s.Displacement-want) > 1e-9 {
		t.Errorf("t=3500: %v, want %v", s.Displacement, want)
	}
	if final := result.Final(); final.Displacement != 40 {
		t.Errorf("final %v, want 40", final.Displacement)
	}

	prev := -1.0
	for _, s := range result.Samples {
		if s.Displacement < prev {
			t.Fatalf("displacement decreased at %v", s.TimeMs)
		}
		prev = s.Displacement
	}
}

func TestRunResetAndSet(t *testing.T) {
	script := &Script{Events: []Event{
		{AtMs: 0, Action: ActionPlay},
		{AtMs: 1000, Action: ActionReset},
		{AtMs: 1500, Action: ActionSet, Value: 99},
	}}
	var seen int
	r := newRunner()
	r.AddObserver(ObserverFunc(func(Sample) { seen++ }))

	result, err := r.Run(context.Background(), script, Config{FPS: 4, LengthMs: 2000})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if s := sampleAt(t, result, 1250); s.Displacement != 0 || s.Playing {
		t.Errorf("after reset: %+v", s)
	}
	if s := sampleAt(t, result, 1500); s.Displacement != 40 {
		t.Errorf("set should clamp to 40, got %v", s.Displacement)
	}
	if seen != len(result.Samples) {
		t.Errorf("observer saw %d frames, want %d", seen, len(result.Samples))
	}
}

func TestRunInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"zero fps", Config{FPS: 0, LengthMs: 1000}},
		{"negative fps", Config{FPS: -1, LengthMs: 1000}},
		{"zero length", Config{FPS: 30, LengthMs: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newRunner().Run(context.Background(), nil, tt.cfg)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestRunUnknownAction(t *testing.T) {
	script := &Script{Events: []Event{{Action: "rewind"}}}
	_, err := newRunner().Run(context.Background(), script, Config{FPS: 30, LengthMs: 100})
	if !errors.Is(err, ErrUnknownAction) {
		t.Errorf("expected ErrUnknownAction, got %v", err)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newRunner().Run(ctx, nil, Config{FPS: 30, LengthMs: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.yaml")
	data := `name: lesson
events:
  - at_ms: 500
    action: pause
  - at_ms: 0
    action: play
  - at_ms: 900
    action: set
    value: 12.5
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if s.Name != "lesson" || len(s.Events) != 3 {
		t.Fatalf("unexpected script %+v", s)
	}
	sorted := s.sorted()
	if sorted[0].Action != ActionPlay || sorted[2].Value != 12.5 {
		t.Errorf("events not sorted by time: %+v", sorted)
	}
}
