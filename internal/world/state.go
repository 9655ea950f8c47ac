package world

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"

	"golang.org/x/text/cases"

	"github.com/zerohour/missiond/internal/core/ecs"
)

// State is the in-memory world the script engine queries. Name indexes are
// case-folded. Accessed only from the frame loop goroutine, no locks.
type State struct {
	entities *ecs.World
	clock    *Clock
	grid     *Grid
	caser    cases.Caser

	templates map[string]*Template

	players       []*Player
	playersByName map[string]*Player
	local         *Player

	teams       []*Team
	teamsByName map[string]*Team

	objects       map[ecs.EntityID]*Object
	objectsByName map[string]ecs.EntityID
	historical    map[string]struct{}

	triggers       []*PolygonTrigger
	triggersByName map[string]*PolygonTrigger
	paths          map[string]*WaypointPath
}

var (
	ErrDuplicate    = errors.New("duplicate name")
	ErrTooMany      = errors.New("too many players")
	ErrNotContainer = errors.New("object cannot contain passengers")
	ErrContainFull  = errors.New("container is full")
)

func NewState(clock *Clock, cellSize float64) *State {
	if clock == nil {
		clock = &Clock{}
	}
	return &State{
		entities:       ecs.NewWorld(),
		clock:          clock,
		grid:           NewGrid(cellSize),
		caser:          cases.Fold(),
		templates:      make(map[string]*Template),
		playersByName:  make(map[string]*Player),
		teamsByName:    make(map[string]*Team),
		objects:        make(map[ecs.EntityID]*Object),
		objectsByName:  make(map[string]ecs.EntityID),
		historical:     make(map[string]struct{}),
		triggersByName: make(map[string]*PolygonTrigger),
		paths:          make(map[string]*WaypointPath),
	}
}

func (s *State) fold(name string) string { return s.caser.String(name) }

func (s *State) Clock() *Clock { return s.clock }
func (s *State) Grid() *Grid   { return s.grid }

// ==================== templates ====================

func (s *State) AddTemplate(t *Template) error {
	key := s.fold(t.Name)
	if _, ok := s.templates[key]; ok {
		return fmt.Errorf("template %q: %w", t.Name, ErrDuplicate)
	}
	s.templates[key] = t
	return nil
}

func (s *State) TemplateByName(name string) *Template { return s.templates[s.fold(name)] }

// ==================== players ====================

// AddPlayer registers a player together with its default team, named
// "team" + name.
func (s *State) AddPlayer(name, side string) (*Player, error) {
	if len(s.players) >= MaxPlayers {
		return nil, fmt.Errorf("player %q: %w", name, ErrTooMany)
	}
	key := s.fold(name)
	if _, ok := s.playersByName[key]; ok {
		return nil, fmt.Errorf("player %q: %w", name, ErrDuplicate)
	}
	p := &Player{
		st:             s,
		index:          len(s.players),
		name:           name,
		side:           side,
		sciences:       make(map[string]struct{}),
		relations:      make(map[int]Relationship),
		lostTemplates:  make(map[string]int),
		builtTemplates: make(map[string]int),
	}
	s.players = append(s.players, p)
	s.playersByName[key] = p
	team, err := s.NewTeam("team"+name, p)
	if err != nil {
		return nil, err
	}
	p.defaultTeam = team
	return p, nil
}

func (s *State) Players() []*Player { return s.players }

func (s *State) PlayerByIndex(i int) *Player {
	if i < 0 || i >= len(s.players) {
		return nil
	}
	return s.players[i]
}

// PlayerByMask returns the player for the lowest set bit of mask.
func (s *State) PlayerByMask(mask PlayerMask) *Player {
	if mask == 0 {
		return nil
	}
	return s.PlayerByIndex(bits.TrailingZeros32(uint32(mask)))
}

func (s *State) PlayerByName(name string) *Player { return s.playersByName[s.fold(name)] }

func (s *State) SetLocalPlayer(p *Player) { s.local = p }
func (s *State) LocalPlayer() *Player     { return s.local }

// ==================== teams ====================

func (s *State) NewTeam(name string, owner *Player) (*Team, error) {
	key := s.fold(name)
	if _, ok := s.teamsByName[key]; ok {
		return nil, fmt.Errorf("team %q: %w", name, ErrDuplicate)
	}
	t := &Team{st: s, id: len(s.teams) + 1, name: name, owner: owner}
	s.teams = append(s.teams, t)
	s.teamsByName[key] = t
	if owner != nil {
		owner.teams = append(owner.teams, t)
	}
	return t, nil
}

func (s *State) Teams() []*Team               { return s.teams }
func (s *State) TeamByName(name string) *Team { return s.teamsByName[s.fold(name)] }

func (s *State) SetTeamState(t *Team, state string) { t.state = state }

// MarkTeamCreated flags a team as created even before it has members.
func (s *State) MarkTeamCreated(t *Team) { t.created = true }

// ==================== objects ====================

// SpawnSpec describes a new object. A zero Health means full health.
type SpawnSpec struct {
	Template *Template
	Team     *Team
	Pos      Coord
	Name     string
	Health   float64
	Status   ObjectStatus
	Supplies int
	// Built records the template in the owner's built history.
	Built bool
}

func (s *State) Spawn(spec SpawnSpec) (*Object, error) {
	if spec.Template == nil {
		return nil, errors.New("spawn: nil template")
	}
	if spec.Team == nil {
		return nil, fmt.Errorf("spawn %s: nil team", spec.Template.Name)
	}
	if spec.Name != "" {
		if _, ok := s.objectsByName[s.fold(spec.Name)]; ok {
			return nil, fmt.Errorf("spawn %q: %w", spec.Name, ErrDuplicate)
		}
	}
	o := &Object{
		st:        s,
		id:        s.entities.CreateEntity(),
		name:      spec.Name,
		tmpl:      spec.Template,
		team:      spec.Team,
		pos:       spec.Pos,
		status:    spec.Status,
		maxHealth: spec.Template.MaxHealth,
		health:    spec.Health,
		supplies:  spec.Supplies,
		created:   s.clock.Frame(),
		areas:     make(map[*PolygonTrigger]*areaEdge),
	}
	if o.health <= 0 || o.health > o.maxHealth {
		o.health = o.maxHealth
	}
	if o.supplies == 0 {
		o.supplies = spec.Template.Supplies
	}
	if spec.Template.ContainCapacity > 0 {
		o.contain = &Contain{capacity: spec.Template.ContainCapacity}
	}
	s.objects[o.id] = o
	if o.name != "" {
		key := s.fold(o.name)
		s.objectsByName[key] = o.id
		s.historical[key] = struct{}{}
	}
	s.grid.Add(o.id, o.pos)
	spec.Team.add(o)
	if owner := spec.Team.owner; owner != nil && spec.Built {
		owner.builtTemplates[s.fold(spec.Template.Name)]++
	}
	s.clock.MarkPopulationChange()
	return o, nil
}

// ObjectByID returns nil for ids whose slot was freed, even if reused.
func (s *State) ObjectByID(id ecs.EntityID) *Object { return s.objects[id] }

// ObjectByName finds a live or dying object.
func (s *State) ObjectByName(name string) *Object {
	id, ok := s.objectsByName[s.fold(name)]
	if !ok {
		return nil
	}
	return s.objects[id]
}

// ObjectExistedHistorically reports whether an object with this name was
// ever spawned, alive or not.
func (s *State) ObjectExistedHistorically(name string) bool {
	_, ok := s.historical[s.fold(name)]
	return ok
}

// RememberNames seeds the historical name set, used when restoring a session.
func (s *State) RememberNames(names []string) {
	for _, n := range names {
		s.historical[s.fold(n)] = struct{}{}
	}
}

// HistoricalNames returns the folded names of every object ever spawned.
func (s *State) HistoricalNames() []string {
	out := make([]string, 0, len(s.historical))
	for n := range s.historical {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func (s *State) ObjectCount() int { return len(s.objects) }

// Objects visits every object team by team until fn returns false.
func (s *State) Objects(fn func(*Object) bool) {
	for _, t := range s.teams {
		for _, o := range t.members {
			if !fn(o) {
				return
			}
		}
	}
}

// ObjectsInRange appends the uncontained objects within radius of center to
// dst, ordered by id.
func (s *State) ObjectsInRange(dst []*Object, center Coord, radius float64, scratch []ecs.EntityID) ([]*Object, []ecs.EntityID) {
	scratch = s.grid.Candidates(scratch[:0], center, radius)
	start := len(dst)
	for _, id := range scratch {
		o := s.objects[id]
		if o == nil || o.pos.DistanceTo(center) > radius {
			continue
		}
		dst = append(dst, o)
	}
	found := dst[start:]
	sort.Slice(found, func(i, j int) bool { return found[i].id.Index() < found[j].id.Index() })
	return dst, scratch
}

func (s *State) Move(o *Object, pos Coord) {
	if !o.IsContained() {
		s.grid.Move(o.id, o.pos, pos)
	}
	o.pos = pos
}

func (s *State) SetStatus(o *Object, set, clear ObjectStatus) {
	o.status = (o.status | set) &^ clear
}

func (s *State) SetOffMap(o *Object, off bool) { o.offMap = off }

// Damage applies amount from source (nil for environmental damage) and
// kills the target at zero health.
func (s *State) Damage(target, source *Object, amount float64) {
	if target.IsEffectivelyDead() {
		return
	}
	info := DamageInfo{Amount: amount, Frame: s.clock.Frame()}
	if source != nil {
		info.SourceID = source.id
		if owner := source.Owner(); owner != nil {
			info.SourcePlayer = owner.Mask()
			if victim := target.Owner(); victim != nil && victim != owner {
				victim.attackedBy |= owner.Mask()
			}
		}
	}
	target.lastDamage = info
	target.damaged = true
	target.health -= amount
	if target.health <= 0 {
		s.Kill(target, source)
	}
}

// Kill marks o dying. It stays queryable as effectively dead until the next
// FlushDestroyed.
func (s *State) Kill(o, killer *Object) {
	if o.dead {
		return
	}
	o.dead = true
	o.health = 0
	if o.contain != nil {
		s.Evacuate(o)
	}
	if o.IsContained() {
		if c := s.objects[o.containedBy]; c != nil {
			s.exitContainer(c, o)
		}
	}
	victim := o.Owner()
	if victim != nil {
		victim.lostTemplates[s.fold(o.tmpl.Name)]++
	}
	if killer != nil && victim != nil && o.IsKindOf(KindStructure) {
		if k := killer.Owner(); k != nil && k != victim {
			k.buildingsDestroyed[victim.index]++
		}
	}
	s.entities.MarkForDestruction(o.id)
	s.clock.MarkPopulationChange()
}

// FlushDestroyed removes dying objects and returns how many went.
func (s *State) FlushDestroyed() int {
	n := s.entities.FlushDestroyQueue(func(id ecs.EntityID) {
		o := s.objects[id]
		if o == nil {
			return
		}
		if !o.IsContained() {
			s.grid.Remove(id, o.pos)
		}
		if o.team != nil {
			o.team.remove(o)
		}
		if o.name != "" {
			key := s.fold(o.name)
			if s.objectsByName[key] == id {
				delete(s.objectsByName, key)
			}
		}
		delete(s.objects, id)
	})
	if n > 0 {
		s.clock.MarkPopulationChange()
	}
	return n
}

// PendingDestroy is the number of dying objects awaiting FlushDestroyed.
func (s *State) PendingDestroy() int { return s.entities.Pending() }

// Transfer moves o to team. Changing owner marks the object captured.
func (s *State) Transfer(o *Object, team *Team) {
	if o.team == team {
		return
	}
	if o.team != nil {
		if o.team.owner != team.owner {
			o.captured = true
		}
		o.team.remove(o)
	}
	o.team = team
	team.add(o)
	s.clock.MarkPopulationChange()
}

// Reveal sets whether p currently sees o. Seeing it once leaves it fogged
// afterwards.
func (s *State) Reveal(o *Object, p *Player, visible bool) {
	if visible {
		o.visibleTo |= p.Mask()
		o.exploredBy |= p.Mask()
		return
	}
	o.visibleTo &^= p.Mask()
}

// Enter puts passenger into container.
func (s *State) Enter(container, passenger *Object) error {
	c := container.contain
	if c == nil {
		return fmt.Errorf("enter %s: %w", container.tmpl.Name, ErrNotContainer)
	}
	if c.FreeSlots() == 0 {
		return fmt.Errorf("enter %s: %w", container.tmpl.Name, ErrContainFull)
	}
	if passenger.IsContained() || passenger == container {
		return fmt.Errorf("enter %s: passenger already contained", container.tmpl.Name)
	}
	s.grid.Remove(passenger.id, passenger.pos)
	passenger.pos = container.pos
	passenger.containedBy = container.id
	c.occupants = append(c.occupants, passenger.id)
	if owner := passenger.Owner(); owner != nil {
		c.enteredBy |= owner.Mask()
	}
	s.leftField(passenger)
	return nil
}

// Evacuate releases every occupant and returns how many left.
func (s *State) Evacuate(container *Object) int {
	c := container.contain
	if c == nil {
		return 0
	}
	n := 0
	for len(c.occupants) > 0 {
		o := s.objects[c.occupants[0]]
		if o == nil {
			c.occupants = c.occupants[1:]
			continue
		}
		s.exitContainer(container, o)
		n++
	}
	return n
}

func (s *State) exitContainer(container, o *Object) {
	c := container.contain
	if c == nil || !c.remove(o.id) {
		return
	}
	o.containedBy = ecs.InvalidID
	o.pos = container.pos
	if !o.dead {
		s.grid.Add(o.id, o.pos)
	}
	if len(c.occupants) == 0 {
		c.emptiedFrame = s.clock.Frame()
		c.everEmptied = true
	}
	s.leftField(o)
}

// leftField records that o entered or left the spatial population through
// a container. Area counts skip contained objects, so this is a population
// change for every cached count.
func (s *State) leftField(o *Object) {
	s.clock.MarkPopulationChange()
	if o.team != nil {
		o.team.markEdge()
	}
}

func (s *State) ReachPathEnd(o *Object, path string) {
	if o.pathsDone == nil {
		o.pathsDone = make(map[string]struct{})
	}
	o.pathsDone[s.fold(path)] = struct{}{}
}

// ==================== trigger areas and paths ====================

func (s *State) AddTrigger(t *PolygonTrigger) error {
	key := s.fold(t.name)
	if _, ok := s.triggersByName[key]; ok {
		return fmt.Errorf("trigger %q: %w", t.name, ErrDuplicate)
	}
	s.triggers = append(s.triggers, t)
	s.triggersByName[key] = t
	return nil
}

func (s *State) Triggers() []*PolygonTrigger               { return s.triggers }
func (s *State) TriggerByName(name string) *PolygonTrigger { return s.triggersByName[s.fold(name)] }

func (s *State) AddWaypointPath(w *WaypointPath) error {
	key := s.fold(w.name)
	if _, ok := s.paths[key]; ok {
		return fmt.Errorf("waypoint path %q: %w", w.name, ErrDuplicate)
	}
	s.paths[key] = w
	return nil
}

func (s *State) WaypointPathByName(name string) *WaypointPath { return s.paths[s.fold(name)] }

// UpdateTriggerAreas recomputes every live object's membership in every
// trigger area, stamping enter/exit edges with the current frame and
// flagging the owning team. Contained objects keep their last state.
func (s *State) UpdateTriggerAreas() int {
	frame := s.clock.Frame()
	edges := 0
	s.Objects(func(o *Object) bool {
		if o.IsEffectivelyDead() || o.IsContained() {
			return true
		}
		for _, t := range s.triggers {
			e := o.areas[t]
			inside := t.Contains(o.pos)
			if e == nil {
				e = &areaEdge{}
				o.areas[t] = e
			}
			if e.inside == inside {
				continue
			}
			e.inside = inside
			if inside {
				e.entered, e.enteredFrame = true, frame
			} else {
				e.exited, e.exitedFrame = true, frame
			}
			o.team.markEdge()
			edges++
		}
		return true
	})
	return edges
}
