package world

import "github.com/zerohour/missiond/internal/core/ecs"

// DamageInfo records the most recent hit an object took. SourceID may name
// an object that has since been destroyed; resolve it through State.
type DamageInfo struct {
	SourceID     ecs.EntityID
	SourcePlayer PlayerMask
	Amount       float64
	Frame        uint32
}

// Contain is the passenger/garrison slot state of a container object.
type Contain struct {
	capacity     int
	occupants    []ecs.EntityID
	enteredBy    PlayerMask
	emptiedFrame uint32
	everEmptied  bool
}

func (c *Contain) Capacity() int { return c.capacity }
func (c *Contain) Count() int    { return len(c.occupants) }

// FreeSlots is never negative.
func (c *Contain) FreeSlots() int {
	if n := c.capacity - len(c.occupants); n > 0 {
		return n
	}
	return 0
}

// EnteredBy reports whether any object owned by a player in mask has ever
// entered this container.
func (c *Contain) EnteredBy(mask PlayerMask) bool { return c.enteredBy&mask != 0 }

func (c *Contain) Occupants() []ecs.EntityID { return c.occupants }

func (c *Contain) remove(id ecs.EntityID) bool {
	for i, o := range c.occupants {
		if o == id {
			c.occupants = append(c.occupants[:i], c.occupants[i+1:]...)
			return true
		}
	}
	return false
}

type areaEdge struct {
	inside       bool
	enteredFrame uint32
	exitedFrame  uint32
	entered      bool
	exited       bool
}

// Object is a live game object. Fields are mutated only through State.
type Object struct {
	st *State

	id          ecs.EntityID
	name        string
	tmpl        *Template
	team        *Team
	pos         Coord
	status      ObjectStatus
	health      float64
	maxHealth   float64
	dead        bool
	offMap      bool
	captured    bool
	visibleTo   PlayerMask
	exploredBy  PlayerMask
	contain     *Contain
	containedBy ecs.EntityID
	lastDamage  DamageInfo
	damaged     bool
	supplies    int
	created     uint32

	pathsDone map[string]struct{}
	areas     map[*PolygonTrigger]*areaEdge
}

func (o *Object) ID() ecs.EntityID     { return o.id }
func (o *Object) Name() string         { return o.name }
func (o *Object) Template() *Template  { return o.tmpl }
func (o *Object) Team() *Team          { return o.team }
func (o *Object) Position() Coord      { return o.pos }
func (o *Object) Status() ObjectStatus { return o.status }
func (o *Object) Health() float64      { return o.health }
func (o *Object) MaxHealth() float64   { return o.maxHealth }
func (o *Object) IsOffMap() bool       { return o.offMap }
func (o *Object) IsCaptured() bool     { return o.captured }
func (o *Object) Supplies() int        { return o.supplies }
func (o *Object) CreatedFrame() uint32 { return o.created }

// Contain is nil for objects that cannot hold passengers.
func (o *Object) Contain() *Contain { return o.contain }

// IsContained reports whether the object is riding in or garrisoning another.
func (o *Object) IsContained() bool { return !o.containedBy.IsZero() }

// Owner is the player owning the object's team, or nil.
func (o *Object) Owner() *Player {
	if o.team == nil {
		return nil
	}
	return o.team.owner
}

func (o *Object) KindOf() KindOf {
	if o.tmpl == nil {
		return 0
	}
	return o.tmpl.KindOf
}

func (o *Object) IsKindOf(k KindOf) bool { return o.KindOf()&k != 0 }

// IsEffectivelyDead is true from the moment of death until the object is
// flushed from the world.
func (o *Object) IsEffectivelyDead() bool {
	return o.dead || o.status&StatusDestroyed != 0
}

// IsStealthedUndetected hides the object from enemy queries.
func (o *Object) IsStealthedUndetected() bool {
	return o.status&StatusStealthed != 0 && o.status&StatusDetected == 0
}

// HealthPercent is in [0,100]. Objects without max health report 100.
func (o *Object) HealthPercent() float64 {
	if o.maxHealth <= 0 {
		return 100
	}
	return o.health / o.maxHealth * 100
}

func (o *Object) LastDamage() (DamageInfo, bool) { return o.lastDamage, o.damaged }

// ShroudFor returns the object's visibility to the player at index.
func (o *Object) ShroudFor(index int) Shroud {
	switch {
	case o.visibleTo.Has(index):
		return ShroudClear
	case o.exploredBy.Has(index):
		return ShroudFogged
	}
	return ShroudShrouded
}

// ReachedPathEnd reports whether the object has ever completed the named path.
func (o *Object) ReachedPathEnd(path string) bool {
	_, ok := o.pathsDone[o.st.fold(path)]
	return ok
}

// IsInside is the last computed membership in area. Objects are only
// tracked against areas after the first UpdateTriggerAreas call.
func (o *Object) IsInside(area *PolygonTrigger) bool {
	e := o.areas[area]
	return e != nil && e.inside
}

// DidEnter reports whether the object crossed into area this frame.
func (o *Object) DidEnter(area *PolygonTrigger) bool {
	e := o.areas[area]
	return e != nil && e.entered && e.enteredFrame == o.st.clock.Frame()
}

// DidExit reports whether the object crossed out of area this frame.
func (o *Object) DidExit(area *PolygonTrigger) bool {
	e := o.areas[area]
	return e != nil && e.exited && e.exitedFrame == o.st.clock.Frame()
}

// EmptiedThisFrame is true on the frame the last occupant left.
func (o *Object) EmptiedThisFrame() bool {
	return o.contain != nil && o.contain.everEmptied && o.contain.emptiedFrame == o.st.clock.Frame()
}
