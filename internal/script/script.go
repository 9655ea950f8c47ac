package script

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/zerohour/missiond/internal/condition"
	"github.com/zerohour/missiond/internal/world"
)

// ActionKind names what a fired script does to the bookkeeping.
type ActionKind int

const (
	ActionSetFlag ActionKind = iota
	ActionSetCounter
	ActionAddCounter
	ActionStartTimer
	ActionStopTimer
	ActionEnableScript
	ActionDisableScript
)

var actionNames = [...]string{
	"set_flag",
	"set_counter",
	"add_counter",
	"start_timer",
	"stop_timer",
	"enable_script",
	"disable_script",
}

func (k ActionKind) String() string {
	if k < 0 || int(k) >= len(actionNames) {
		return fmt.Sprintf("action(%d)", int(k))
	}
	return actionNames[k]
}

func ParseActionKind(s string) (ActionKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range actionNames {
		if n == s {
			return ActionKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

func (k *ActionKind) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseActionKind(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*k = v
	return nil
}

// Action is one step a script runs when its conditions hold. Name is the
// counter, flag, timer or script it targets; Value is the counter value,
// delta or timer length in frames; Flag is the value set_flag writes.
type Action struct {
	Kind  ActionKind `yaml:"do"`
	Name  string     `yaml:"name"`
	Value int        `yaml:"value,omitempty"`
	Flag  bool       `yaml:"flag,omitempty"`
}

// Script fires its actions when any clause holds; a clause holds when all of
// its conditions do. A script with no clauses fires whenever it is tested.
type Script struct {
	Name    string
	Owner   *world.Player
	Team    *world.Team
	Active  bool
	OneShot bool
	// Delay is the number of frames between evaluations; 0 tests every frame.
	Delay   uint32
	Clauses [][]*condition.Condition
	Actions []Action

	nextEval uint32
	fired    int
}

// Fired counts how often the script's actions ran.
func (s *Script) Fired() int { return s.fired }

func (s *Script) scope() condition.Scope {
	return condition.Scope{Owner: s.Owner, Team: s.Team}
}

// Test evaluates the clauses, short-circuiting on the first clause that
// holds and on the first false condition within a clause.
func (s *Script) Test(ev *condition.Evaluator) bool {
	if len(s.Clauses) == 0 {
		return true
	}
	scope := s.scope()
	for _, clause := range s.Clauses {
		ok := true
		for _, c := range clause {
			if !ev.Evaluate(c, scope) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func (s *Script) conditions(fn func(*condition.Condition)) {
	for _, clause := range s.Clauses {
		for _, c := range clause {
			fn(c)
		}
	}
}

// Engine evaluates the loaded scripts once per frame in load order.
type Engine struct {
	book  *Bookkeeping
	eval  *condition.Evaluator
	clock *world.Clock
	log   *zap.Logger

	scripts []*Script
	byName  map[string]*Script

	// OnFire, when set, is called after a script's actions have run.
	OnFire func(s *Script, frame uint32)
}

func NewEngine(book *Bookkeeping, eval *condition.Evaluator, clock *world.Clock, log *zap.Logger) *Engine {
	return &Engine{
		book:   book,
		eval:   eval,
		clock:  clock,
		log:    log,
		byName: make(map[string]*Script),
	}
}

func (e *Engine) Bookkeeping() *Bookkeeping { return e.book }

// Load replaces the script set. Every cached verdict is dropped.
func (e *Engine) Load(scripts []*Script) error {
	byName := make(map[string]*Script, len(scripts))
	for _, s := range scripts {
		key := e.book.fold(s.Name)
		if _, dup := byName[key]; dup {
			return fmt.Errorf("script %q: duplicate name", s.Name)
		}
		byName[key] = s
	}
	e.scripts, e.byName = scripts, byName
	e.ResetVerdicts()
	e.log.Info("scripts loaded", zap.Int("count", len(scripts)))
	return nil
}

func (e *Engine) Scripts() []*Script { return e.scripts }

func (e *Engine) Script(name string) *Script { return e.byName[e.book.fold(name)] }

// ResetVerdicts invalidates every condition's cached verdict and resolved
// player references.
func (e *Engine) ResetVerdicts() {
	for _, s := range e.scripts {
		s.conditions((*condition.Condition).Reset)
		s.nextEval = 0
	}
}

// Tick tests every active script that is due and runs the actions of those
// that hold. It returns the number of scripts fired.
func (e *Engine) Tick() int {
	frame := e.clock.Frame()
	fired := 0
	for _, s := range e.scripts {
		if !s.Active || frame < s.nextEval {
			continue
		}
		s.nextEval = frame + s.Delay
		if !s.Test(e.eval) {
			continue
		}
		s.fired++
		fired++
		if s.OneShot {
			s.Active = false
		}
		e.log.Debug("script fired", zap.String("script", s.Name), zap.Uint32("frame", frame))
		for _, a := range s.Actions {
			e.apply(s, a)
		}
		if e.OnFire != nil {
			e.OnFire(s, frame)
		}
	}
	return fired
}

func (e *Engine) apply(s *Script, a Action) {
	switch a.Kind {
	case ActionSetFlag:
		e.book.SetFlag(a.Name, a.Flag)
	case ActionSetCounter:
		e.book.SetCounter(a.Name, a.Value)
	case ActionAddCounter:
		e.book.AddCounter(a.Name, a.Value)
	case ActionStartTimer:
		e.book.StartTimer(a.Name, uint32(max(a.Value, 0)))
	case ActionStopTimer:
		e.book.StopTimer(a.Name)
	case ActionEnableScript, ActionDisableScript:
		target := e.Script(a.Name)
		if target == nil {
			e.log.Warn("action targets unknown script",
				zap.String("script", s.Name),
				zap.Stringer("action", a.Kind),
				zap.String("target", a.Name))
			return
		}
		target.Active = a.Kind == ActionEnableScript
		if target.Active {
			target.nextEval = 0
		}
	default:
		e.log.Warn("unknown action", zap.String("script", s.Name), zap.Int("action", int(a.Kind)))
	}
}
