package world

// Team is a named group of objects owned by one player.
type Team struct {
	st *State

	id      int
	name    string
	owner   *Player
	state   string
	created bool
	members []*Object

	lastEnterExit uint32
	hasEdge       bool
}

func (t *Team) ID() int          { return t.id }
func (t *Team) Name() string     { return t.name }
func (t *Team) Owner() *Player   { return t.owner }
func (t *Team) State() string    { return t.state }
func (t *Team) IsCreated() bool  { return t.created }
func (t *Team) MemberCount() int { return len(t.members) }

// Members calls fn for each member in insertion order until fn returns false.
func (t *Team) Members(fn func(*Object) bool) {
	for _, o := range t.members {
		if !fn(o) {
			return
		}
	}
}

// HasAnyObjects counts every live member except inert ones.
func (t *Team) HasAnyObjects() bool {
	for _, o := range t.members {
		if !o.IsEffectivelyDead() && !o.IsKindOf(KindInert|KindProjectile) {
			return true
		}
	}
	return false
}

// HasAnyUnits is HasAnyObjects restricted to non-structures.
func (t *Team) HasAnyUnits() bool {
	for _, o := range t.members {
		if !o.IsEffectivelyDead() && !o.IsKindOf(KindInert|KindProjectile|KindStructure) {
			return true
		}
	}
	return false
}

// DidEnterOrExit is true if a member crossed a trigger area boundary or the
// membership changed on this frame or the previous one.
func (t *Team) DidEnterOrExit() bool {
	return t.hasEdge && t.st.clock.Recent(t.lastEnterExit)
}

func (t *Team) markEdge() {
	t.lastEnterExit = t.st.clock.Frame()
	t.hasEdge = true
	t.st.clock.MarkTeamEnterExit()
}

// considered visits live members matching kind; a zero kind matches all.
func (t *Team) considered(kind KindOf, fn func(*Object)) {
	for _, o := range t.members {
		if o.IsEffectivelyDead() || !o.KindOf().Any(kind) {
			continue
		}
		fn(o)
	}
}

func (t *Team) countInside(area *PolygonTrigger, kind KindOf) (in, out int) {
	t.considered(kind, func(o *Object) {
		if area.Contains(o.pos) {
			in++
		} else {
			out++
		}
	})
	return in, out
}

// AllInside is true when at least one member is considered and all
// considered members are inside area.
func (t *Team) AllInside(area *PolygonTrigger, kind KindOf) bool {
	in, out := t.countInside(area, kind)
	return in > 0 && out == 0
}

// SomeInsideSomeOutside needs at least one considered member on each side.
func (t *Team) SomeInsideSomeOutside(area *PolygonTrigger, kind KindOf) bool {
	in, out := t.countInside(area, kind)
	return in > 0 && out > 0
}

func (t *Team) AnyInside(area *PolygonTrigger, kind KindOf) bool {
	in, _ := t.countInside(area, kind)
	return in > 0
}

// DidAllEnter: every considered member is inside and at least one of them
// entered this frame.
func (t *Team) DidAllEnter(area *PolygonTrigger, kind KindOf) bool {
	seen, entered, allIn := false, false, true
	t.considered(kind, func(o *Object) {
		seen = true
		if o.DidEnter(area) {
			entered = true
		}
		if !o.IsInside(area) {
			allIn = false
		}
	})
	return seen && entered && allIn
}

func (t *Team) DidPartialEnter(area *PolygonTrigger, kind KindOf) bool {
	entered := false
	t.considered(kind, func(o *Object) {
		entered = entered || o.DidEnter(area)
	})
	return entered
}

// DidAllExit: every considered member is outside and at least one of them
// exited this frame.
func (t *Team) DidAllExit(area *PolygonTrigger, kind KindOf) bool {
	seen, exited, allOut := false, false, true
	t.considered(kind, func(o *Object) {
		seen = true
		if o.DidExit(area) {
			exited = true
		}
		if o.IsInside(area) {
			allOut = false
		}
	})
	return seen && exited && allOut
}

func (t *Team) DidPartialExit(area *PolygonTrigger, kind KindOf) bool {
	exited := false
	t.considered(kind, func(o *Object) {
		exited = exited || o.DidExit(area)
	})
	return exited
}

func (t *Team) add(o *Object) {
	t.members = append(t.members, o)
	t.created = true
	t.markEdge()
}

func (t *Team) remove(o *Object) {
	for i, m := range t.members {
		if m == o {
			t.members = append(t.members[:i], t.members[i+1:]...)
			t.markEdge()
			return
		}
	}
}
