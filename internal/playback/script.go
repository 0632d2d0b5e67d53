package playback

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Action is a host event applied to the controller.
type Action string

const (
	ActionPlay  Action = "play"
	ActionPause Action = "pause"
	ActionReset Action = "reset"
	ActionSet   Action = "set"
)

// Event is one scripted action at a time offset in milliseconds.
type Event struct {
	AtMs   float64 `yaml:"at_ms"`
	Action Action  `yaml:"action"`
	Value  float64 `yaml:"value,omitempty"`
}

// Script is a timed sequence of slider and button events, e.g. a classroom
// walkthrough that plays, pauses mid-way to explain, then resumes.
type Script struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Events      []Event `yaml:"events"`
}

// DefaultScript presses play at t=0.
func DefaultScript() *Script {
	return &Script{Name: "play", Events: []Event{{AtMs: 0, Action: ActionPlay}}}
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Script) Validate() error {
	for i, ev := range s.Events {
		switch ev.Action {
		case ActionPlay, ActionPause, ActionReset, ActionSet:
		default:
			return fmt.Errorf("event %d: %w: %q", i+1, ErrUnknownAction, ev.Action)
		}
		if ev.AtMs < 0 {
			return fmt.Errorf("event %d: %w: negative at_ms %g", i+1, ErrInvalidConfig, ev.AtMs)
		}
	}
	return nil
}

// sorted returns the events in time order; ties keep script order.
func (s *Script) sorted() []Event {
	evs := append([]Event(nil), s.Events...)
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].AtMs < evs[j].AtMs })
	return evs
}
