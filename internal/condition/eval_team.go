package condition

import (
	"strings"

	"github.com/zerohour/missiond/internal/world"
)

func equalFold(a, b string) bool { return strings.EqualFold(a, b) }

func (e *Evaluator) teamAndArea(p *TeamAreaParams, s Scope) (*world.Team, *world.PolygonTrigger) {
	return e.facade.Team(p.Team, s), e.facade.Area(p.Area)
}

func (e *Evaluator) teamInsideAreaPartially(p *TeamAreaParams, s Scope) bool {
	t, area := e.teamAndArea(p, s)
	return t != nil && area != nil && t.SomeInsideSomeOutside(area, p.KindOf)
}

func (e *Evaluator) teamInsideAreaEntirely(p *TeamAreaParams, s Scope) bool {
	t, area := e.teamAndArea(p, s)
	return t != nil && area != nil && t.AllInside(area, p.KindOf)
}

// teamOutsideAreaEntirely is defined as the complement of the two inside
// predicates so the three always partition the cases.
func (e *Evaluator) teamOutsideAreaEntirely(p *TeamAreaParams, s Scope) bool {
	return !e.teamInsideAreaEntirely(p, s) && !e.teamInsideAreaPartially(p, s)
}

func (e *Evaluator) teamArea(p *TeamAreaParams, s Scope, test func(*world.Team, *world.PolygonTrigger, world.KindOf) bool) bool {
	t, area := e.teamAndArea(p, s)
	return t != nil && area != nil && test(t, area, p.KindOf)
}

// attackerIs resolves the source of o's last damage; a destroyed source
// never matches.
func (e *Evaluator) attackerIs(o *world.Object, template string) bool {
	info, ok := o.LastDamage()
	if !ok || info.SourceID.IsZero() {
		return false
	}
	src := e.reg.ObjectByID(info.SourceID)
	if src == nil || src.Template() == nil {
		return false
	}
	return equalFold(src.Template().Name, template)
}

func (e *Evaluator) teamAttackedByType(b *TeamAttackedByType, s Scope) bool {
	t := e.facade.Team(b.Team, s)
	if t == nil {
		return false
	}
	hit := false
	t.Members(func(o *world.Object) bool {
		hit = e.attackerIs(o, b.Template)
		return !hit
	})
	return hit
}

func (e *Evaluator) teamAttackedByPlayer(b *TeamAttackedByPlayer, s Scope) bool {
	t := e.facade.Team(b.Team, s)
	p := e.facade.Player(&b.Player, s)
	if t == nil || p == nil {
		return false
	}
	hit := false
	t.Members(func(o *world.Object) bool {
		if info, ok := o.LastDamage(); ok && info.SourcePlayer&p.Mask() != 0 {
			hit = true
		}
		return !hit
	})
	return hit
}

// discoveredBy: o is alive, currently visible to p and not hidden by
// stealth.
func discoveredBy(o *world.Object, p *world.Player) bool {
	return !o.IsEffectivelyDead() &&
		o.ShroudFor(p.Index()) == world.ShroudClear &&
		!o.IsStealthedUndetected()
}

func (e *Evaluator) teamDiscovered(b *TeamDiscovered, s Scope) bool {
	t := e.facade.Team(b.Team, s)
	p := e.facade.Player(&b.Player, s)
	if t == nil || p == nil {
		return false
	}
	found := false
	t.Members(func(o *world.Object) bool {
		found = discoveredBy(o, p)
		return !found
	})
	return found
}

func (e *Evaluator) teamReachedWaypointsEnd(b *TeamReachedWaypointsEnd, s Scope) bool {
	t := e.facade.Team(b.Team, s)
	path := e.facade.Path(b.Path)
	if t == nil || path == nil {
		return false
	}
	reached := false
	t.Members(func(o *world.Object) bool {
		reached = !o.IsEffectivelyDead() && o.ReachedPathEnd(path.Name())
		return !reached
	})
	return reached
}

// teamStatus checks status bits over live members. With all set, every
// member must carry them and an empty team is false.
func (e *Evaluator) teamStatus(name string, status world.ObjectStatus, all bool, s Scope) bool {
	t := e.facade.Team(name, s)
	if t == nil || status == 0 {
		return false
	}
	seen, every, some := false, true, false
	t.Members(func(o *world.Object) bool {
		if o.IsEffectivelyDead() {
			return true
		}
		seen = true
		if o.Status().Has(status) {
			some = true
		} else {
			every = false
		}
		return true
	})
	if all {
		return seen && every
	}
	return some
}
