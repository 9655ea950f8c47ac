package world

// Player is a side in the match. Counts and predicates walk the player's
// teams; nothing is cached here.
type Player struct {
	st *State

	index int
	name  string
	side  string

	Credits               int
	SciencePurchasePoints int
	StartPosition         int
	// ExtraProduction and ExtraConsumption adjust the power computed from
	// live objects.
	ExtraProduction  int
	ExtraConsumption int

	sciences    map[string]struct{}
	enemy       *Player
	relations   map[int]Relationship
	teams       []*Team
	defaultTeam *Team

	attackedBy         PlayerMask
	buildingsDestroyed [MaxPlayers]int
	lostTemplates      map[string]int
	builtTemplates     map[string]int
}

func (p *Player) Index() int       { return p.index }
func (p *Player) Name() string     { return p.name }
func (p *Player) Side() string     { return p.side }
func (p *Player) Mask() PlayerMask { return 1 << uint(p.index) }

// Enemy is the player's current enemy; it can change at any time.
func (p *Player) Enemy() *Player     { return p.enemy }
func (p *Player) SetEnemy(e *Player) { p.enemy = e }

func (p *Player) IsLocal() bool { return p.st.local == p }

// RelationshipTo defaults to Neutral; a player is always allied with itself.
func (p *Player) RelationshipTo(o *Player) Relationship {
	if o == nil {
		return Neutral
	}
	if o == p {
		return Allies
	}
	if r, ok := p.relations[o.index]; ok {
		return r
	}
	return Neutral
}

func (p *Player) SetRelationship(o *Player, r Relationship) {
	p.relations[o.index] = r
}

func (p *Player) Teams() []*Team     { return p.teams }
func (p *Player) DefaultTeam() *Team { return p.defaultTeam }

// DidAnyTeamEnterOrExit reports a recent membership edge on any owned team.
func (p *Player) DidAnyTeamEnterOrExit() bool {
	for _, t := range p.teams {
		if t.DidEnterOrExit() {
			return true
		}
	}
	return false
}

// Objects calls fn for every member of every owned team until fn returns
// false. Dead objects awaiting removal are included.
func (p *Player) Objects(fn func(*Object) bool) {
	for _, t := range p.teams {
		for _, o := range t.members {
			if !fn(o) {
				return
			}
		}
	}
}

func (p *Player) countLive(match func(*Object) bool) int {
	n := 0
	p.Objects(func(o *Object) bool {
		if !o.IsEffectivelyDead() && match(o) {
			n++
		}
		return true
	})
	return n
}

func (p *Player) HasAnyObjects() bool {
	for _, t := range p.teams {
		if t.HasAnyObjects() {
			return true
		}
	}
	return false
}

func (p *Player) HasAnyUnits() bool {
	for _, t := range p.teams {
		if t.HasAnyUnits() {
			return true
		}
	}
	return false
}

// HasAnyBuildFacility looks for a finished command center or factory, or a
// dozer that could put one up.
func (p *Player) HasAnyBuildFacility() bool {
	return p.countLive(func(o *Object) bool {
		if o.status&StatusUnderConstruction != 0 {
			return false
		}
		return o.IsKindOf(KindCommandCenter | KindFactory | KindDozer)
	}) > 0
}

// CountBuildings counts live structures, finished or not.
func (p *Player) CountBuildings() int {
	return p.countLive(func(o *Object) bool {
		return o.IsKindOf(KindStructure) && !o.IsKindOf(KindInert)
	})
}

// CountFactionBuildings counts live structures of the player's own side,
// so captured civilian and tech buildings are left out.
func (p *Player) CountFactionBuildings() int {
	return p.countLive(func(o *Object) bool {
		return o.IsKindOf(KindStructure) && !o.IsKindOf(KindInert|KindTechBuilding) &&
			o.tmpl.Side == p.side
	})
}

// CountTemplate counts live objects built from the named template.
func (p *Player) CountTemplate(name string) int {
	key := p.st.fold(name)
	return p.countLive(func(o *Object) bool {
		return o.tmpl != nil && p.st.fold(o.tmpl.Name) == key
	})
}

func (p *Player) CountCaptured() int {
	return p.countLive(func(o *Object) bool { return o.captured })
}

// CountGarrisoned counts owned structures holding at least one occupant.
func (p *Player) CountGarrisoned() int {
	return p.countLive(func(o *Object) bool {
		return o.IsKindOf(KindStructure) && o.contain != nil && o.contain.Count() > 0
	})
}

func (p *Player) power() (production, consumption int) {
	production, consumption = p.ExtraProduction, p.ExtraConsumption
	p.Objects(func(o *Object) bool {
		if o.IsEffectivelyDead() || o.status&(StatusUnderConstruction|StatusDisabledEMP|StatusDisabledHacked) != 0 {
			return true
		}
		switch e := o.tmpl.Energy; {
		case e > 0:
			production += e
		case e < 0:
			consumption -= e
		}
		return true
	})
	return production, consumption
}

func (p *Player) PowerProduction() int {
	prod, _ := p.power()
	return prod
}

func (p *Player) PowerConsumption() int {
	_, cons := p.power()
	return cons
}

// HasSufficientPower is production >= consumption.
func (p *Player) HasSufficientPower() bool {
	prod, cons := p.power()
	return prod >= cons
}

// PowerPercent is production as a percentage of consumption; with no
// consumption it is 100 when anything is produced.
func (p *Player) PowerPercent() float64 {
	prod, cons := p.power()
	if cons == 0 {
		if prod > 0 {
			return 100
		}
		return 0
	}
	return float64(prod) / float64(cons) * 100
}

func (p *Player) ExcessPower() int {
	prod, cons := p.power()
	return prod - cons
}

func (p *Player) HasScience(name string) bool {
	_, ok := p.sciences[p.st.fold(name)]
	return ok
}

func (p *Player) GrantScience(name string) {
	p.sciences[p.st.fold(name)] = struct{}{}
}

// WasAttackedBy reports whether any player in mask has ever damaged one of
// this player's objects.
func (p *Player) WasAttackedBy(mask PlayerMask) bool { return p.attackedBy&mask != 0 }

// BuildingsDestroyedOf is how many of victim's structures this player killed.
func (p *Player) BuildingsDestroyedOf(victim *Player) int {
	if victim == nil {
		return 0
	}
	return p.buildingsDestroyed[victim.index]
}

// HasLostTemplate reports whether an object of the template ever died.
func (p *Player) HasLostTemplate(name string) bool {
	return p.lostTemplates[p.st.fold(name)] > 0
}

// HasBuiltTemplate reports whether the player ever built the template.
func (p *Player) HasBuiltTemplate(name string) bool {
	return p.builtTemplates[p.st.fold(name)] > 0
}

// IsDefeated is true once nothing but inert objects remain.
func (p *Player) IsDefeated() bool { return !p.HasAnyObjects() }
