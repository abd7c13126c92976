package core

import (
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/automoto/platformer-controller/shared/controller"
	"gopkg.in/yaml.v3"
)

// ScriptStep presses and releases actions at a point in simulated time.
type ScriptStep struct {
	At      float64  `yaml:"at"`
	Press   []string `yaml:"press"`
	Release []string `yaml:"release"`
}

// Script is a timeline of input changes for the headless simulation.
type Script struct {
	Steps []ScriptStep `yaml:"steps"`

	timeline []timedInput
}

type timedInput struct {
	at      float64
	press   []controller.ActionID
	release []controller.ActionID
}

// ParseScript decodes and validates a YAML input script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}

	for i, step := range s.Steps {
		if step.At < 0 {
			return nil, fmt.Errorf("script step %d: negative time %v", i, step.At)
		}
		press, err := parseActions(step.Press)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i, err)
		}
		release, err := parseActions(step.Release)
		if err != nil {
			return nil, fmt.Errorf("script step %d: %w", i, err)
		}
		s.timeline = append(s.timeline, timedInput{at: step.At, press: press, release: release})
	}

	sort.SliceStable(s.timeline, func(i, j int) bool {
		return s.timeline[i].at < s.timeline[j].at
	})
	return &s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func parseActions(names []string) ([]controller.ActionID, error) {
	ids := make([]controller.ActionID, 0, len(names))
	for _, name := range names {
		id, ok := controller.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Held returns which actions are held at time t. A nil script holds nothing.
func (s *Script) Held(t float64) [controller.ActionCount]bool {
	var held [controller.ActionCount]bool
	if s == nil {
		return held
	}
	for _, step := range s.timeline {
		if step.at > t {
			break
		}
		for _, id := range step.release {
			held[id] = false
		}
		for _, id := range step.press {
			held[id] = true
		}
	}
	return held
}

// Duration is the time of the last step.
func (s *Script) Duration() float64 {
	if s == nil || len(s.timeline) == 0 {
		return 0
	}
	return s.timeline[len(s.timeline)-1].at
}

// Ticks is the number of ticks at tickRate needed to play every step, plus
// settle extra seconds after the last one.
func (s *Script) Ticks(tickRate int, settle float64) int {
	return int(math.Ceil((s.Duration()+settle)*float64(tickRate))) + 1
}
