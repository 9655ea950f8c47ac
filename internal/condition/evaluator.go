package condition

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/partition"
	"github.com/zerohour/missiond/internal/world"
)

// EventLog is the script engine's bookkeeping of counters, flags, timers
// and edge-triggered events. Edge queries are true only on the frame the
// event was dispatched.
type EventLog interface {
	Counter(name string) int
	Flag(name string) bool
	TimerExpired(name string) bool
	MissionAttempts() int
	CameraMovementFinished() bool
	MediaFinished(kind event.MediaKind, name string) bool
	// SpecialPowerUsed matches any source when source is ecs.InvalidID.
	SpecialPowerUsed(player int, power string, source ecs.EntityID, stage event.PowerStage) bool
	// UpgradeCompleted matches any source when source is ecs.InvalidID.
	UpgradeCompleted(player int, upgrade string, source ecs.EntityID) bool
}

// Predicates runs user predicate functions.
type Predicates interface {
	Call(fn string, frame uint32, owner string, args []string) (bool, error)
}

type Options struct {
	Registry   Registry
	Clock      *world.Clock
	Space      *partition.Manager
	Events     EventLog
	Predicates Predicates // optional
	// Strict turns malformed conditions and evaluator panics into panics
	// instead of logged false results.
	Strict bool
	Log    *zap.Logger
}

// Evaluator is the condition dispatcher. Not safe for concurrent use.
type Evaluator struct {
	facade *Facade
	reg    Registry
	clock  *world.Clock
	space  *partition.Manager
	events EventLog
	preds  Predicates
	strict bool
	log    *zap.Logger
	ins    *instruments

	scans uint64
	hits  uint64
}

func NewEvaluator(opts Options) (*Evaluator, error) {
	if opts.Registry == nil || opts.Clock == nil || opts.Space == nil || opts.Events == nil {
		return nil, fmt.Errorf("condition evaluator: registry, clock, space and events are required")
	}
	ins, err := newInstruments()
	if err != nil {
		return nil, err
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Evaluator{
		facade: NewFacade(opts.Registry),
		reg:    opts.Registry,
		clock:  opts.Clock,
		space:  opts.Space,
		events: opts.Events,
		preds:  opts.Predicates,
		strict: opts.Strict,
		log:    log,
		ins:    ins,
	}, nil
}

func (e *Evaluator) Facade() *Facade { return e.facade }

// Scans is the number of population scans performed so far.
func (e *Evaluator) Scans() uint64 { return e.scans }

// CacheHits is the number of counting evaluations answered from a cached
// verdict.
func (e *Evaluator) CacheHits() uint64 { return e.hits }

// Evaluate returns the condition's truth in scope. It never propagates a
// failure: outside strict mode a panic or an unknown body yields false.
func (e *Evaluator) Evaluate(c *Condition, scope Scope) (result bool) {
	kind := c.Kind()
	e.ins.evaluation(kind)
	if !e.strict {
		defer func() {
			if r := recover(); r != nil {
				e.ins.failure(kind)
				e.log.Error("condition evaluation panicked",
					zap.Stringer("kind", kind),
					zap.Any("panic", r))
				result = false
			}
		}()
	}
	return e.dispatch(c, scope)
}

// fail reports a malformed condition.
func (e *Evaluator) fail(c *Condition, format string, args ...any) bool {
	msg := fmt.Sprintf(format, args...)
	if e.strict {
		panic("condition: " + msg)
	}
	e.ins.failure(c.Kind())
	e.log.Error("malformed condition", zap.Stringer("kind", c.Kind()), zap.String("error", msg))
	return false
}

// tracked answers a counting condition over player's population, reusing
// the cached verdict while nothing relevant changed.
func (e *Evaluator) tracked(c *Condition, player *world.Player, scan func() bool) bool {
	frame := e.clock.Frame()
	mask := player.Mask()
	if c.subject == mask {
		sig := ChangeSignal{
			Frame:                frame,
			LastEvaluated:        c.lastEvaluated,
			LastPopulationChange: e.clock.LastPopulationChange(),
			TeamsEnteredOrExited: e.teamEdges(player),
		}
		if v := Refresh(c.verdict, sig); v != VerdictUnknown {
			c.lastEvaluated = frame
			e.hits++
			e.ins.hit(c.Kind())
			return v.Bool()
		}
	}
	e.scans++
	e.ins.scan(c.Kind())
	result := scan()
	c.store(VerdictOf(result), frame, mask)
	return result
}

// teamEdges reports a recent team edge for player. The clock's global
// counter rules out the walk over the player's teams on quiet frames.
func (e *Evaluator) teamEdges(player *world.Player) bool {
	if !e.clock.Recent(e.clock.LastTeamEnterExit()) {
		return false
	}
	return player.DidAnyTeamEnterOrExit()
}

// countInArea counts objects in area passing extra, via the pooled
// spatial iterator.
func (e *Evaluator) countInArea(area *world.PolygonTrigger, extra ...partition.Filter) int {
	chain := append(partition.Chain{partition.Alive(), partition.InsideArea(area)}, extra...)
	it := e.space.IterateInRange(area.Center(), area.Radius(), chain)
	defer it.Close()
	n := 0
	for o := it.Next(); o != nil; o = it.Next() {
		n++
	}
	return n
}

func (e *Evaluator) anyInArea(area *world.PolygonTrigger, extra ...partition.Filter) bool {
	chain := append(partition.Chain{partition.Alive(), partition.InsideArea(area)}, extra...)
	it := e.space.IterateInRange(area.Center(), area.Radius(), chain)
	defer it.Close()
	return it.Next() != nil
}

func (e *Evaluator) dispatch(c *Condition, s Scope) bool {
	switch b := c.Body.(type) {
	// script engine state
	case *False:
		return false
	case *True:
		return true
	case *Counter:
		return b.Op.Int(e.events.Counter(b.Name), b.Value)
	case *Flag:
		return e.events.Flag(b.Name) == b.Value
	case *TimerExpired:
		return e.events.TimerExpired(b.Name)
	case *MissionAttempts:
		return b.Op.Int(e.events.MissionAttempts(), b.Value)
	case *CameraMovementFinished:
		return e.events.CameraMovementFinished()
	case *VideoFinished:
		return e.events.MediaFinished(event.MediaVideo, b.Name)
	case *SpeechFinished:
		return e.events.MediaFinished(event.MediaSpeech, b.Name)
	case *AudioFinished:
		return e.events.MediaFinished(event.MediaAudio, b.Name)
	case *MusicTrackCompleted:
		return e.events.MediaFinished(event.MediaMusic, b.Name)
	case *Lua:
		return e.lua(b, s)
	case *Expression:
		return e.expression(b, s)

	// player
	case *PlayerAllDestroyed:
		return e.playerAllDestroyed(b, s)
	case *PlayerAllBuildFacilitiesDestroyed:
		return e.playerAllBuildFacilitiesDestroyed(b, s)
	case *PlayerHasCredits:
		return e.playerHasCredits(b, s)
	case *PlayerHasNOrFewerBuildings:
		return e.playerHasNOrFewerBuildings(c, b, s)
	case *PlayerHasNOrFewerFactionBuildings:
		return e.playerHasNOrFewerFactionBuildings(c, b, s)
	case *PlayerHasPower:
		return e.playerHasPower(&b.Player, s)
	case *PlayerHasNoPower:
		p := e.facade.Player(&b.Player, s)
		return p != nil && !p.HasSufficientPower()
	case *PlayerPowerComparePercent:
		return e.playerPowerComparePercent(b, s)
	case *PlayerExcessPowerCompare:
		return e.playerExcessPowerCompare(b, s)
	case *PlayerHasObjectComparison:
		return e.playerHasObjectComparison(c, b, s)
	case *PlayerHasUnitTypeInArea:
		return e.playerHasUnitTypeInArea(c, b, s)
	case *PlayerHasUnitKindInArea:
		return e.playerHasUnitKindInArea(c, b, s)
	case *PlayerDestroyedNBuildingsOfPlayer:
		return e.playerDestroyedNBuildings(b, s)
	case *PlayerTriggeredSpecialPower:
		return e.specialPower(&b.SpecialPowerParams, false, event.PowerTriggered, s)
	case *PlayerTriggeredSpecialPowerFromNamed:
		return e.specialPower(&b.SpecialPowerParams, true, event.PowerTriggered, s)
	case *PlayerMidwaySpecialPower:
		return e.specialPower(&b.SpecialPowerParams, false, event.PowerMidway, s)
	case *PlayerMidwaySpecialPowerFromNamed:
		return e.specialPower(&b.SpecialPowerParams, true, event.PowerMidway, s)
	case *PlayerCompletedSpecialPower:
		return e.specialPower(&b.SpecialPowerParams, false, event.PowerCompleted, s)
	case *PlayerCompletedSpecialPowerFromNamed:
		return e.specialPower(&b.SpecialPowerParams, true, event.PowerCompleted, s)
	case *PlayerBuiltUpgrade:
		return e.builtUpgrade(&b.Player, b.Upgrade, "", false, s)
	case *PlayerBuiltUpgradeFromNamed:
		return e.builtUpgrade(&b.Player, b.Upgrade, b.Unit, true, s)
	case *PlayerAcquiredScience:
		p := e.facade.Player(&b.Player, s)
		return p != nil && p.HasScience(b.Science)
	case *PlayerHasSciencePurchasePoints:
		p := e.facade.Player(&b.Player, s)
		return p != nil && p.SciencePurchasePoints >= b.Points
	case *PlayerLostObjectType:
		p := e.facade.Player(&b.Player, s)
		return p != nil && p.HasLostTemplate(b.Template)
	case *BuiltByPlayer:
		p := e.facade.Player(&b.Player, s)
		return p != nil && p.HasBuiltTemplate(b.Template)
	case *BuildingEnteredByPlayer:
		return e.buildingEnteredByPlayer(b, s)
	case *EnemySighted:
		return e.enemySighted(b, s)
	case *TypeSighted:
		return e.typeSighted(b, s)
	case *MultiplayerAlliedVictory:
		return e.alliedVictory()
	case *MultiplayerAlliedDefeat:
		return e.alliedDefeat()
	case *MultiplayerPlayerDefeat:
		local := e.reg.LocalPlayer()
		return local != nil && local.IsDefeated()
	case *StartPositionIs:
		p := e.facade.Player(&b.Player, s)
		return p != nil && p.StartPosition == b.Position

	// team
	case *TeamDestroyed:
		t := e.facade.Team(b.Team, s)
		return t == nil || !t.HasAnyObjects()
	case *TeamHasUnits:
		t := e.facade.Team(b.Team, s)
		return t != nil && t.HasAnyUnits()
	case *TeamStateIs:
		t := e.facade.Team(b.Team, s)
		return t != nil && equalFold(t.State(), b.State)
	case *TeamStateIsNot:
		t := e.facade.Team(b.Team, s)
		return t != nil && !equalFold(t.State(), b.State)
	case *TeamInsideAreaPartially:
		return e.teamInsideAreaPartially(&b.TeamAreaParams, s)
	case *TeamInsideAreaEntirely:
		return e.teamInsideAreaEntirely(&b.TeamAreaParams, s)
	case *TeamOutsideAreaEntirely:
		return e.teamOutsideAreaEntirely(&b.TeamAreaParams, s)
	case *TeamEnteredAreaEntirely:
		return e.teamArea(&b.TeamAreaParams, s, (*world.Team).DidAllEnter)
	case *TeamEnteredAreaPartially:
		return e.teamArea(&b.TeamAreaParams, s, (*world.Team).DidPartialEnter)
	case *TeamExitedAreaEntirely:
		return e.teamArea(&b.TeamAreaParams, s, (*world.Team).DidAllExit)
	case *TeamExitedAreaPartially:
		return e.teamArea(&b.TeamAreaParams, s, (*world.Team).DidPartialExit)
	case *TeamAttackedByType:
		return e.teamAttackedByType(b, s)
	case *TeamAttackedByPlayer:
		return e.teamAttackedByPlayer(b, s)
	case *TeamCreated:
		t := e.facade.Team(b.Team, s)
		return t != nil && t.IsCreated()
	case *TeamDiscovered:
		return e.teamDiscovered(b, s)
	case *TeamOwnedByPlayer:
		t := e.facade.Team(b.Team, s)
		p := e.facade.Player(&b.Player, s)
		return t != nil && p != nil && t.Owner() == p
	case *TeamReachedWaypointsEnd:
		return e.teamReachedWaypointsEnd(b, s)
	case *TeamAllHaveStatus:
		return e.teamStatus(b.Team, b.Status, true, s)
	case *TeamSomeHaveStatus:
		return e.teamStatus(b.Team, b.Status, false, s)

	// named unit
	case *NamedInsideArea:
		return e.namedInsideArea(b.Unit, b.Area)
	case *NamedOutsideArea:
		return !e.namedInsideArea(b.Unit, b.Area)
	case *NamedDestroyed:
		return e.namedDestroyed(b)
	case *NamedNotDestroyed:
		o := e.facade.Unit(b.Unit)
		return o != nil && !o.IsEffectivelyDead()
	case *NamedDying:
		o := e.facade.Unit(b.Unit)
		return o != nil && o.IsEffectivelyDead()
	case *NamedTotallyDead:
		return e.reg.ObjectExistedHistorically(b.Unit) && e.facade.Unit(b.Unit) == nil
	case *NamedCreated:
		return e.facade.Unit(b.Unit) != nil || e.reg.ObjectExistedHistorically(b.Unit)
	case *NamedAttackedByType:
		return e.namedAttackedByType(b)
	case *NamedAttackedByPlayer:
		return e.namedAttackedByPlayer(b, s)
	case *NamedDiscovered:
		o := e.facade.Unit(b.Unit)
		p := e.facade.Player(&b.Player, s)
		return o != nil && p != nil && discoveredBy(o, p)
	case *NamedOwnedByPlayer:
		o := e.facade.Unit(b.Unit)
		p := e.facade.Player(&b.Player, s)
		return o != nil && p != nil && o.Owner() == p
	case *NamedReachedWaypointsEnd:
		o := e.facade.Unit(b.Unit)
		path := e.facade.Path(b.Path)
		return o != nil && path != nil && o.ReachedPathEnd(path.Name())
	case *NamedEnteredArea:
		o, area := e.facade.Unit(b.Unit), e.facade.Area(b.Area)
		return o != nil && area != nil && o.DidEnter(area)
	case *NamedExitedArea:
		o, area := e.facade.Unit(b.Unit), e.facade.Area(b.Area)
		return o != nil && area != nil && o.DidExit(area)
	case *UnitHealth:
		o := e.facade.Unit(b.Unit)
		return o != nil && b.Op.Float(o.HealthPercent(), float64(b.Percent))
	case *UnitHasObjectStatus:
		o := e.facade.Unit(b.Unit)
		return o != nil && b.Status != 0 && o.Status().Has(b.Status)
	case *UnitEmptied:
		o := e.facade.Unit(b.Unit)
		return o != nil && o.EmptiedThisFrame()
	case *NamedBuildingIsEmpty:
		o := e.facade.Unit(b.Unit)
		return o != nil && o.Contain() != nil && o.Contain().Count() == 0
	case *NamedHasFreeContainerSlots:
		o := e.facade.Unit(b.Unit)
		return o != nil && o.Contain() != nil && o.Contain().FreeSlots() > 0

	// skirmish
	case *SkirmishPlayerHasUnitsInArea:
		return e.skirmishUnitsInArea(c, &b.Player, b.Area, true, s)
	case *SkirmishPlayerIsOutsideArea:
		return e.skirmishUnitsInArea(c, &b.Player, b.Area, false, s)
	case *SkirmishNamedAreaExists:
		return e.facade.Area(b.Area) != nil
	case *SkirmishPlayerFaction:
		p := e.facade.Player(&b.Player, s)
		return p != nil && equalFold(p.Side(), b.Side)
	case *SkirmishPlayerHasBeenAttackedByPlayer:
		p := e.facade.Player(&b.Player, s)
		a := e.facade.Player(&b.Attacker, s)
		return p != nil && a != nil && p.WasAttackedBy(a.Mask())
	case *SkirmishPlayerHasDiscoveredPlayer:
		return e.skirmishDiscoveredPlayer(b, s)
	case *SkirmishValueInArea:
		return e.skirmishValueInArea(c, b, s)
	case *SkirmishTechBuildingWithinDistance:
		return e.skirmishTechBuilding(b, s)
	case *SkirmishSuppliesValueWithinDistance:
		return e.skirmishSupplies(b, s)
	case *SkirmishPlayerHasComparisonGarrisoned:
		p := e.facade.Player(&b.Player, s)
		return p != nil && b.Op.Int(p.CountGarrisoned(), b.Count)
	case *SkirmishPlayerHasComparisonCapturedUnits:
		p := e.facade.Player(&b.Player, s)
		return p != nil && b.Op.Int(p.CountCaptured(), b.Count)
	}
	return e.fail(c, "unknown condition body %T", c.Body)
}
