// Package partition provides composable object filters and pooled spatial
// queries over the world grid.
package partition

import (
	"strings"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/world"
)

// Filter is a single admission test.
type Filter interface {
	Allow(o *world.Object) bool
}

// FilterFunc adapts a function to Filter.
type FilterFunc func(o *world.Object) bool

func (f FilterFunc) Allow(o *world.Object) bool { return f(o) }

// Chain is the conjunction of its filters, tested in order.
type Chain []Filter

func (c Chain) Allow(o *world.Object) bool {
	for _, f := range c {
		if !f.Allow(o) {
			return false
		}
	}
	return true
}

// Alive rejects effectively dead objects. Crates are always admitted.
func Alive() Filter {
	return FilterFunc(func(o *world.Object) bool {
		return o.IsKindOf(world.KindCrate) || !o.IsEffectivelyDead()
	})
}

// NotStealthed rejects objects that are stealthed and not detected.
func NotStealthed() Filter {
	return FilterFunc(func(o *world.Object) bool { return !o.IsStealthedUndetected() })
}

// SameMapStatus admits objects on the same side of the map edge as ref.
func SameMapStatus(ref *world.Object) Filter {
	off := ref.IsOffMap()
	return FilterFunc(func(o *world.Object) bool { return o.IsOffMap() == off })
}

// RelationMask selects which relationships Relationship admits.
type RelationMask uint8

const (
	AllowEnemies RelationMask = 1 << iota
	AllowNeutral
	AllowAllies
)

// RelationMaskOf maps a single relationship to its mask bit.
func RelationMaskOf(r world.Relationship) RelationMask {
	switch r {
	case world.Enemies:
		return AllowEnemies
	case world.Allies:
		return AllowAllies
	}
	return AllowNeutral
}

// Relationship admits objects whose owner player regards with one of the
// allowed relationships. Unowned objects count as neutral.
func Relationship(player *world.Player, allow RelationMask) Filter {
	return FilterFunc(func(o *world.Object) bool {
		return allow&RelationMaskOf(player.RelationshipTo(o.Owner())) != 0
	})
}

func KindOf(mustBeSet, mustBeClear world.KindOf) Filter {
	return FilterFunc(func(o *world.Object) bool { return o.KindOf().Multi(mustBeSet, mustBeClear) })
}

func InsideArea(area *world.PolygonTrigger) Filter {
	return FilterFunc(func(o *world.Object) bool { return area.Contains(o.Position()) })
}

// OwnedBy admits objects whose owner is in mask.
func OwnedBy(mask world.PlayerMask) Filter {
	return FilterFunc(func(o *world.Object) bool {
		p := o.Owner()
		return p != nil && p.Mask()&mask != 0
	})
}

// Template matches the template name case-insensitively.
func Template(name string) Filter {
	return FilterFunc(func(o *world.Object) bool {
		return o.Template() != nil && strings.EqualFold(o.Template().Name, name)
	})
}

// Not excludes one object, usually the query origin.
func Not(id ecs.EntityID) Filter {
	return FilterFunc(func(o *world.Object) bool { return o.ID() != id })
}
