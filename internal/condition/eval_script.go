package condition

import "go.uber.org/zap"

func (e *Evaluator) lua(b *Lua, s Scope) bool {
	if e.preds == nil {
		e.log.Warn("lua condition without a scripting engine", zap.String("function", b.Function))
		return false
	}
	owner := ""
	if s.Owner != nil {
		owner = s.Owner.Name()
	}
	ok, err := e.preds.Call(b.Function, e.clock.Frame(), owner, b.Args)
	if err != nil {
		e.log.Error("lua predicate failed", zap.String("function", b.Function), zap.Error(err))
		return false
	}
	return ok
}

func (e *Evaluator) expression(b *Expression, s Scope) bool {
	env := ExprEnv{Frame: int(e.clock.Frame()), events: e.events, reg: e.reg}
	if s.Owner != nil {
		env.Owner = s.Owner.Name()
	}
	ok, err := b.run(env)
	if err != nil {
		e.log.Error("expression condition failed", zap.Error(err))
		return false
	}
	return ok
}
