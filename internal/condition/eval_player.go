package condition

import (
	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/partition"
	"github.com/zerohour/missiond/internal/world"
)

func (e *Evaluator) playerAllDestroyed(b *PlayerAllDestroyed, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	return p != nil && !p.HasAnyObjects()
}

func (e *Evaluator) playerAllBuildFacilitiesDestroyed(b *PlayerAllBuildFacilitiesDestroyed, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	return p != nil && !p.HasAnyBuildFacility()
}

func (e *Evaluator) playerHasCredits(b *PlayerHasCredits, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	return p != nil && b.Op.Int(p.Credits, b.Value)
}

func (e *Evaluator) playerHasNOrFewerBuildings(c *Condition, b *PlayerHasNOrFewerBuildings, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	if p == nil {
		return false
	}
	return e.tracked(c, p, func() bool { return p.CountBuildings() <= b.Count })
}

func (e *Evaluator) playerHasNOrFewerFactionBuildings(c *Condition, b *PlayerHasNOrFewerFactionBuildings, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	if p == nil {
		return false
	}
	return e.tracked(c, p, func() bool { return p.CountFactionBuildings() <= b.Count })
}

func (e *Evaluator) playerHasPower(ref *PlayerRef, s Scope) bool {
	p := e.facade.Player(ref, s)
	return p != nil && p.HasSufficientPower()
}

func (e *Evaluator) playerPowerComparePercent(b *PlayerPowerComparePercent, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	return p != nil && b.Op.Float(p.PowerPercent(), float64(b.Percent))
}

func (e *Evaluator) playerExcessPowerCompare(b *PlayerExcessPowerCompare, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	return p != nil && b.Op.Int(p.ExcessPower(), b.Value)
}

func (e *Evaluator) playerHasObjectComparison(c *Condition, b *PlayerHasObjectComparison, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	if p == nil {
		return false
	}
	return e.tracked(c, p, func() bool { return b.Op.Int(p.CountTemplate(b.Template), b.Count) })
}

func (e *Evaluator) playerHasUnitTypeInArea(c *Condition, b *PlayerHasUnitTypeInArea, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	area := e.facade.Area(b.Area)
	if p == nil || area == nil {
		return false
	}
	return e.tracked(c, p, func() bool {
		n := e.countInArea(area, partition.OwnedBy(p.Mask()), partition.Template(b.Template))
		return b.Op.Int(n, b.Count)
	})
}

func (e *Evaluator) playerHasUnitKindInArea(c *Condition, b *PlayerHasUnitKindInArea, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	area := e.facade.Area(b.Area)
	if p == nil || area == nil {
		return false
	}
	return e.tracked(c, p, func() bool {
		n := e.countInArea(area, partition.OwnedBy(p.Mask()), partition.KindOf(b.KindOf, 0))
		return b.Op.Int(n, b.Count)
	})
}

// playerDestroyedNBuildings is true once Player has destroyed at least
// Count of Victim's structures.
func (e *Evaluator) playerDestroyedNBuildings(b *PlayerDestroyedNBuildingsOfPlayer, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	victim := e.facade.Player(&b.Victim, s)
	if p == nil || victim == nil {
		return false
	}
	return p.BuildingsDestroyedOf(victim) >= b.Count
}

func (e *Evaluator) specialPower(b *SpecialPowerParams, named bool, stage event.PowerStage, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	if p == nil {
		return false
	}
	source := ecs.InvalidID
	if named {
		o := e.facade.Unit(b.Unit)
		if o == nil {
			return false
		}
		source = o.ID()
	}
	return e.events.SpecialPowerUsed(p.Index(), b.Power, source, stage)
}

func (e *Evaluator) builtUpgrade(ref *PlayerRef, upgrade, unit string, named bool, s Scope) bool {
	p := e.facade.Player(ref, s)
	if p == nil {
		return false
	}
	source := ecs.InvalidID
	if named {
		o := e.facade.Unit(unit)
		if o == nil {
			return false
		}
		source = o.ID()
	}
	return e.events.UpgradeCompleted(p.Index(), upgrade, source)
}

func (e *Evaluator) buildingEnteredByPlayer(b *BuildingEnteredByPlayer, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	o := e.facade.Unit(b.Unit)
	if p == nil || o == nil || o.Contain() == nil {
		return false
	}
	return o.Contain().EnteredBy(p.Mask())
}

// sightChain is the common filter set for "unit sees something" queries.
func sightChain(viewer *world.Object, target *world.Player) partition.Chain {
	return partition.Chain{
		partition.Not(viewer.ID()),
		partition.Alive(),
		partition.SameMapStatus(viewer),
		partition.OwnedBy(target.Mask()),
		partition.NotStealthed(),
	}
}

func (e *Evaluator) enemySighted(b *EnemySighted, s Scope) bool {
	viewer := e.facade.Unit(b.Unit)
	p := e.facade.Player(&b.Player, s)
	if viewer == nil || p == nil || viewer.IsEffectivelyDead() || viewer.Owner() == nil {
		return false
	}
	chain := append(sightChain(viewer, p),
		partition.Relationship(viewer.Owner(), partition.RelationMaskOf(b.Relation)))
	return e.space.Closest(viewer.Position(), viewer.Template().VisionRange, chain) != nil
}

func (e *Evaluator) typeSighted(b *TypeSighted, s Scope) bool {
	viewer := e.facade.Unit(b.Unit)
	p := e.facade.Player(&b.Player, s)
	if viewer == nil || p == nil || viewer.IsEffectivelyDead() {
		return false
	}
	chain := append(sightChain(viewer, p), partition.Template(b.Template))
	return e.space.Closest(viewer.Position(), viewer.Template().VisionRange, chain) != nil
}

// alliedVictory: the local player's alliance survives and every player the
// local player is at war with is defeated.
func (e *Evaluator) alliedVictory() bool {
	local := e.reg.LocalPlayer()
	if local == nil {
		return false
	}
	alive, enemies := false, 0
	for _, q := range e.reg.Players() {
		switch local.RelationshipTo(q) {
		case world.Allies:
			alive = alive || !q.IsDefeated()
		case world.Enemies:
			enemies++
			if !q.IsDefeated() {
				return false
			}
		}
	}
	return alive && enemies > 0
}

// alliedDefeat: the local player and every ally are defeated.
func (e *Evaluator) alliedDefeat() bool {
	local := e.reg.LocalPlayer()
	if local == nil {
		return false
	}
	for _, q := range e.reg.Players() {
		if local.RelationshipTo(q) == world.Allies && !q.IsDefeated() {
			return false
		}
	}
	return true
}
