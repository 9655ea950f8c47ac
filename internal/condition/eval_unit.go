package condition

func (e *Evaluator) namedInsideArea(unit, area string) bool {
	o := e.facade.Unit(unit)
	a := e.facade.Area(area)
	return o != nil && a != nil && a.Contains(o.Position())
}

// namedDestroyed needs the name to have existed; after that a missing or
// dying object counts as destroyed.
func (e *Evaluator) namedDestroyed(b *NamedDestroyed) bool {
	if !e.reg.ObjectExistedHistorically(b.Unit) {
		return false
	}
	o := e.facade.Unit(b.Unit)
	return o == nil || o.IsEffectivelyDead()
}

func (e *Evaluator) namedAttackedByType(b *NamedAttackedByType) bool {
	o := e.facade.Unit(b.Unit)
	return o != nil && e.attackerIs(o, b.Template)
}

func (e *Evaluator) namedAttackedByPlayer(b *NamedAttackedByPlayer, s Scope) bool {
	o := e.facade.Unit(b.Unit)
	p := e.facade.Player(&b.Player, s)
	if o == nil || p == nil {
		return false
	}
	info, ok := o.LastDamage()
	return ok && info.SourcePlayer&p.Mask() != 0
}
