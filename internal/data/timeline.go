package data

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/world"
)

// StepKind is the world mutation a timeline step performs.
type StepKind int

const (
	StepSpawn StepKind = iota
	StepDestroy
	StepMove
	StepDamage
	StepStatus
	StepCredits
	StepPower
	StepTeamState
	StepReveal
	StepEnter
	StepEvacuate
	StepCapture
	StepReachPath
	StepSpecialPower
	StepUpgrade
	StepScience
	StepVideo
	StepSpeech
	StepAudio
	StepMusic
	StepCamera
	StepSetEnemy
	StepOffMap
)

var stepNames = [...]string{
	"spawn", "destroy", "move", "damage", "status", "credits", "power",
	"team_state", "reveal", "enter", "evacuate", "capture", "reach_path",
	"special_power", "upgrade", "science", "video", "speech", "audio",
	"music", "camera", "set_enemy", "off_map",
}

func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepNames) {
		return fmt.Sprintf("step(%d)", int(k))
	}
	return stepNames[k]
}

func ParseStepKind(s string) (StepKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range stepNames {
		if n == s {
			return StepKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown timeline step %q", s)
}

func (k *StepKind) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseStepKind(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*k = v
	return nil
}

// Stage wraps event.PowerStage for YAML ("triggered", "midway", "completed").
type Stage event.PowerStage

func (s *Stage) UnmarshalYAML(n *yaml.Node) error {
	switch strings.ToLower(n.Value) {
	case "triggered", "":
		*s = Stage(event.PowerTriggered)
	case "midway":
		*s = Stage(event.PowerMidway)
	case "completed":
		*s = Stage(event.PowerCompleted)
	default:
		return fmt.Errorf("line %d: unknown power stage %q", n.Line, n.Value)
	}
	return nil
}

// Step is one scheduled mutation. Which fields matter depends on Do:
// Target names the object acted on, Source the attacker or passenger,
// Subject the power, upgrade, science, media, team state, path or enemy
// player name. A power step sets extra production from Value and extra
// consumption from Amount.
type Step struct {
	Frame   uint32             `yaml:"frame"`
	Do      StepKind           `yaml:"do"`
	Object  *ObjectSpec        `yaml:"object,omitempty"`
	Target  string             `yaml:"target,omitempty"`
	Source  string             `yaml:"source,omitempty"`
	Player  string             `yaml:"player,omitempty"`
	Team    string             `yaml:"team,omitempty"`
	Subject string             `yaml:"subject,omitempty"`
	Stage   Stage              `yaml:"stage,omitempty"`
	Pos     world.Coord        `yaml:"pos,omitempty"`
	Status  world.ObjectStatus `yaml:"status,omitempty"`
	Clear   bool               `yaml:"clear,omitempty"`
	Amount  float64            `yaml:"amount,omitempty"`
	Value   int                `yaml:"value,omitempty"`
	Visible bool               `yaml:"visible,omitempty"`
}

// Timeline hands out steps in frame order. Steps sharing a frame keep
// their file order.
type Timeline struct {
	steps []Step
	next  int
}

func NewTimeline(steps []Step) *Timeline {
	s := append([]Step(nil), steps...)
	sort.SliceStable(s, func(i, j int) bool { return s[i].Frame < s[j].Frame })
	return &Timeline{steps: s}
}

// Due returns the steps scheduled at or before frame that were not handed
// out yet.
func (t *Timeline) Due(frame uint32) []Step {
	start := t.next
	for t.next < len(t.steps) && t.steps[t.next].Frame <= frame {
		t.next++
	}
	return t.steps[start:t.next]
}

// Remaining is the number of steps not handed out yet.
func (t *Timeline) Remaining() int { return len(t.steps) - t.next }
