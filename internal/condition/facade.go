package condition

import (
	"strings"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/world"
)

// Registry is the world lookup surface conditions read. world.State
// implements it.
type Registry interface {
	Players() []*world.Player
	PlayerByMask(mask world.PlayerMask) *world.Player
	PlayerByName(name string) *world.Player
	LocalPlayer() *world.Player
	TeamByName(name string) *world.Team
	ObjectByName(name string) *world.Object
	ObjectByID(id ecs.EntityID) *world.Object
	ObjectExistedHistorically(name string) bool
	TriggerByName(name string) *world.PolygonTrigger
	WaypointPathByName(name string) *world.WaypointPath
}

// Scope is the evaluating script's context for sentinel references.
type Scope struct {
	Owner *world.Player
	Team  *world.Team
}

// Facade resolves names to borrowed handles. Missing referents come back
// nil; nothing here returns an error.
type Facade struct {
	reg Registry
}

func NewFacade(reg Registry) *Facade { return &Facade{reg: reg} }

// Player resolves ref. A stored mask short-circuits the name index; a
// successful non-volatile lookup stores one.
func (f *Facade) Player(ref *PlayerRef, scope Scope) *world.Player {
	if mask, ok := ref.Resolved(); ok {
		return f.reg.PlayerByMask(mask)
	}
	var p *world.Player
	switch {
	case strings.EqualFold(ref.Name, ThisPlayer):
		p = scope.Owner
	case strings.EqualFold(ref.Name, ThisPlayerEnemy):
		if scope.Owner != nil {
			p = scope.Owner.Enemy()
		}
	case strings.EqualFold(ref.Name, LocalPlayer):
		p = f.reg.LocalPlayer()
	default:
		p = f.reg.PlayerByName(ref.Name)
	}
	if p != nil && !ref.Volatile {
		ref.store(p.Mask())
	}
	return p
}

func (f *Facade) Team(name string, scope Scope) *world.Team {
	if strings.EqualFold(name, ThisTeam) {
		return scope.Team
	}
	return f.reg.TeamByName(name)
}

func (f *Facade) Unit(name string) *world.Object { return f.reg.ObjectByName(name) }

func (f *Facade) Area(name string) *world.PolygonTrigger { return f.reg.TriggerByName(name) }

func (f *Facade) Path(name string) *world.WaypointPath { return f.reg.WaypointPathByName(name) }
