package condition

import (
	"github.com/zerohour/missiond/internal/partition"
	"github.com/zerohour/missiond/internal/world"
)

// nonUnits are never counted as a player's units.
const nonUnits = world.KindStructure | world.KindInert | world.KindProjectile

// skirmishUnitsInArea answers both "has units in area" (inside=true) and
// "is outside area" (inside=false). Each keeps its own cached verdict.
func (e *Evaluator) skirmishUnitsInArea(c *Condition, ref *PlayerRef, areaName string, inside bool, s Scope) bool {
	p := e.facade.Player(ref, s)
	area := e.facade.Area(areaName)
	if p == nil || area == nil {
		return false
	}
	return e.tracked(c, p, func() bool {
		found := e.anyInArea(area, partition.OwnedBy(p.Mask()), partition.KindOf(0, nonUnits))
		return found == inside
	})
}

func (e *Evaluator) skirmishDiscoveredPlayer(b *SkirmishPlayerHasDiscoveredPlayer, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	other := e.facade.Player(&b.Other, s)
	if p == nil || other == nil {
		return false
	}
	found := false
	other.Objects(func(o *world.Object) bool {
		found = !o.IsEffectivelyDead() && o.ShroudFor(p.Index()) != world.ShroudShrouded
		return !found
	})
	return found
}

// skirmishValueInArea compares the summed build cost of Player's objects
// inside Area.
func (e *Evaluator) skirmishValueInArea(c *Condition, b *SkirmishValueInArea, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	area := e.facade.Area(b.Area)
	if p == nil || area == nil {
		return false
	}
	return e.tracked(c, p, func() bool {
		it := e.space.IterateInRange(area.Center(), area.Radius(), partition.Chain{
			partition.Alive(),
			partition.OwnedBy(p.Mask()),
			partition.InsideArea(area),
		})
		defer it.Close()
		total := 0
		for o := it.Next(); o != nil; o = it.Next() {
			total += o.Template().BuildCost
		}
		return b.Op.Int(total, b.Value)
	})
}

// skirmishTechBuilding looks for a tech building not held by Player or its
// allies within Distance of Area's center.
func (e *Evaluator) skirmishTechBuilding(b *SkirmishTechBuildingWithinDistance, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	area := e.facade.Area(b.Area)
	if p == nil || area == nil {
		return false
	}
	return e.space.Closest(area.Center(), b.Distance, partition.Chain{
		partition.Alive(),
		partition.KindOf(world.KindTechBuilding, 0),
		partition.Relationship(p, partition.AllowNeutral|partition.AllowEnemies),
	}) != nil
}

func (e *Evaluator) skirmishSupplies(b *SkirmishSuppliesValueWithinDistance, s Scope) bool {
	p := e.facade.Player(&b.Player, s)
	area := e.facade.Area(b.Area)
	if p == nil || area == nil {
		return false
	}
	it := e.space.IterateInRange(area.Center(), b.Distance, partition.Chain{
		partition.Alive(),
		partition.KindOf(world.KindSupplySource, 0),
		partition.FilterFunc(func(o *world.Object) bool { return o.Supplies() >= b.Value }),
	})
	defer it.Close()
	return it.Next() != nil
}
