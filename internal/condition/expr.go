package condition

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/zerohour/missiond/internal/world"
)

// ExprEnv is the environment expression conditions run against.
type ExprEnv struct {
	Frame int
	Owner string

	events EventLog
	reg    Registry
}

func (e ExprEnv) Counter(name string) int {
	if e.events == nil {
		return 0
	}
	return e.events.Counter(name)
}

func (e ExprEnv) Flag(name string) bool {
	if e.events == nil {
		return false
	}
	return e.events.Flag(name)
}

func (e ExprEnv) TimerExpired(name string) bool {
	if e.events == nil {
		return false
	}
	return e.events.TimerExpired(name)
}

// Credits is 0 for unknown players.
func (e ExprEnv) Credits(player string) int {
	if e.reg == nil {
		return 0
	}
	if p := e.reg.PlayerByName(player); p != nil {
		return p.Credits
	}
	return 0
}

// TeamSize counts the team's live members.
func (e ExprEnv) TeamSize(team string) int {
	if e.reg == nil {
		return 0
	}
	t := e.reg.TeamByName(team)
	if t == nil {
		return 0
	}
	n := 0
	t.Members(func(o *world.Object) bool {
		if !o.IsEffectivelyDead() {
			n++
		}
		return true
	})
	return n
}

func (e ExprEnv) Exists(unit string) bool {
	if e.reg == nil {
		return false
	}
	o := e.reg.ObjectByName(unit)
	return o != nil && !o.IsEffectivelyDead()
}

// Compile type-checks Source against ExprEnv. Safe to call repeatedly.
func (x *Expression) Compile() error {
	if x.program != nil {
		return nil
	}
	prog, err := expr.Compile(x.Source, expr.Env(ExprEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("compile expression %q: %w", x.Source, err)
	}
	x.program = prog
	return nil
}

func (x *Expression) run(env ExprEnv) (bool, error) {
	if err := x.Compile(); err != nil {
		return false, err
	}
	out, err := vm.Run(x.program, env)
	if err != nil {
		return false, fmt.Errorf("run expression %q: %w", x.Source, err)
	}
	b, _ := out.(bool)
	return b, nil
}
