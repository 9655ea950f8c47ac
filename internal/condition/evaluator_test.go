package condition

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/world"
)

type bogusBody struct{}

func (*bogusBody) Kind() Kind { return KindInvalid }
func (*bogusBody) sealed()    {}

type fakePredicates struct {
	result bool
	err    error
	panics bool
	calls  []string
}

func (p *fakePredicates) Call(fn string, frame uint32, owner string, args []string) (bool, error) {
	if p.panics {
		panic("boom")
	}
	p.calls = append(p.calls, fmt.Sprintf("%s@%d:%s:%v", fn, frame, owner, args))
	return p.result, p.err
}

func TestEvaluate_TeamAreaPartition(t *testing.T) {
	layouts := []struct {
		name      string
		positions []world.Coord
	}{
		{"all inside", []world.Coord{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}}},
		{"two in one out", []world.Coord{{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 500, Y: 500}}},
		{"all outside", []world.Coord{{X: 500, Y: 10}, {X: 600, Y: 20}}},
		{"on the edge", []world.Coord{{X: 100, Y: 50}, {X: 0, Y: 0}}},
		{"empty team", nil},
	}
	for _, l := range layouts {
		for _, kind := range []world.KindOf{0, world.KindVehicle, world.KindInfantry, world.KindStructure} {
			t.Run(fmt.Sprintf("%s/%s", l.name, kind), func(t *testing.T) {
				f := newFixture(t)
				f.area(t, "A", 0, 0, 100, 100)
				team, err := f.st.NewTeam("Strike", f.usa)
				require.NoError(t, err)
				for i, p := range l.positions {
					tmpl := tankTmpl
					if i%2 == 1 {
						tmpl = rangerTmpl
					}
					f.spawn(t, tmpl, team, p.X, p.Y, "")
				}
				params := TeamAreaParams{Team: "Strike", Area: "A", KindOf: kind}
				in := f.evalBody(&TeamInsideAreaEntirely{params})
				part := f.evalBody(&TeamInsideAreaPartially{params})
				out := f.evalBody(&TeamOutsideAreaEntirely{params})

				n := 0
				for _, v := range []bool{in, part, out} {
					if v {
						n++
					}
				}
				assert.Equal(t, 1, n, "entirely=%v partially=%v outside=%v", in, part, out)
			})
		}
	}
}

func TestEvaluate_TwoInOneOut(t *testing.T) {
	f := newFixture(t)
	f.area(t, "A", 0, 0, 100, 100)
	team := f.usa.DefaultTeam()
	f.spawn(t, tankTmpl, team, 10, 10, "")
	f.spawn(t, tankTmpl, team, 20, 20, "")
	f.spawn(t, tankTmpl, team, 300, 300, "")
	params := TeamAreaParams{Team: "teamUSA", Area: "A"}

	assert.True(t, f.evalBody(&TeamInsideAreaPartially{params}))
	assert.False(t, f.evalBody(&TeamInsideAreaEntirely{params}))
	assert.False(t, f.evalBody(&TeamOutsideAreaEntirely{params}))
}

func TestEvaluate_StalenessIdempotentThenRescansOnce(t *testing.T) {
	f := newFixture(t)
	c := New(&PlayerHasNOrFewerBuildings{Player: NewPlayerRef("USA"), Count: 0})
	f.advance(3)

	require.True(t, f.eval(c), "no buildings yet")
	scans := f.ev.Scans()
	require.Equal(t, uint64(1), scans)

	for i := 0; i < 10; i++ {
		f.advance(1)
		assert.True(t, f.eval(c))
	}
	assert.Equal(t, scans, f.ev.Scans(), "quiet frames must not rescan")
	assert.Equal(t, uint64(10), f.ev.CacheHits())

	f.advance(1)
	f.spawn(t, barracksTmpl, f.usa.DefaultTeam(), 0, 0, "")
	f.advance(1)

	assert.False(t, f.eval(c), "building constructed")
	assert.Equal(t, scans+1, f.ev.Scans())

	f.advance(1)
	assert.False(t, f.eval(c))
	assert.Equal(t, scans+1, f.ev.Scans(), "exactly one rescan after the change")
}

func TestEvaluate_StalenessBoundedToOneFrame(t *testing.T) {
	f := newFixture(t)
	c := New(&PlayerHasObjectComparison{Player: NewPlayerRef("USA"), Op: GreaterEqual, Count: 1, Template: tankTmpl.Name})
	f.advance(5)
	require.False(t, f.eval(c))
	scans := f.ev.Scans()

	// A change later in the same frame is seen by the very next call.
	f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 0, 0, "")
	assert.True(t, f.eval(c))
	assert.Equal(t, scans+1, f.ev.Scans())
	f.advance(1)
	assert.True(t, f.eval(c))
}

func TestEvaluate_SameFrameBuildingRescans(t *testing.T) {
	f := newFixture(t)
	c := New(&PlayerHasNOrFewerBuildings{Player: NewPlayerRef("USA"), Count: 0})
	f.advance(3)
	require.True(t, f.eval(c))
	f.advance(1)
	require.True(t, f.eval(c))
	f.advance(1)
	require.True(t, f.eval(c))
	scans := f.ev.Scans()

	f.spawn(t, barracksTmpl, f.usa.DefaultTeam(), 0, 0, "")
	assert.Equal(t, f.clock.Frame(), f.clock.LastPopulationChange())
	assert.False(t, f.eval(c))
	assert.Equal(t, scans+1, f.ev.Scans())
}

func TestEvaluate_ContainmentInvalidatesAreaCounts(t *testing.T) {
	f := newFixture(t)
	f.area(t, "Base", 0, 0, 200, 200)
	team := f.usa.DefaultTeam()
	ranger := f.spawn(t, rangerTmpl, team, 10, 10, "")
	bunker := f.spawn(t, barracksTmpl, team, 50, 50, "Bunker")
	c := New(&PlayerHasUnitKindInArea{Player: NewPlayerRef("USA"), Op: Equal, Count: 1, KindOf: world.KindInfantry, Area: "Base"})

	f.advance(3)
	require.True(t, f.eval(c))
	f.advance(1)
	require.True(t, f.eval(c))
	f.advance(1)
	require.True(t, f.eval(c))
	scans := f.ev.Scans()

	require.NoError(t, f.st.Enter(bunker, ranger))
	f.advance(1)
	assert.False(t, f.eval(c), "garrisoned infantry leaves the area count")
	assert.Equal(t, scans+1, f.ev.Scans())
	for i := 0; i < 5; i++ {
		f.advance(1)
		assert.False(t, f.eval(c))
	}

	f.advance(1)
	assert.Equal(t, 1, f.st.Evacuate(bunker))
	assert.True(t, f.eval(c), "evacuated infantry counts again")
	f.advance(1)
	assert.True(t, f.eval(c))
}

func TestEvaluate_OtherPlayersTeamEdgeKeepsCache(t *testing.T) {
	f := newFixture(t)
	f.area(t, "Zone", 0, 0, 100, 100)
	f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 50, 50, "")
	rebel := f.spawn(t, rebelTmpl, f.gla.DefaultTeam(), -50, -50, "")
	c := New(&PlayerHasUnitTypeInArea{Player: NewPlayerRef("USA"), Op: GreaterEqual, Count: 1, Template: tankTmpl.Name, Area: "Zone"})

	f.advance(3)
	f.st.UpdateTriggerAreas()
	require.True(t, f.eval(c))
	f.advance(1)
	f.st.UpdateTriggerAreas()
	require.True(t, f.eval(c))
	scans, hits := f.ev.Scans(), f.ev.CacheHits()

	f.advance(1)
	f.st.Move(rebel, world.Coord{X: 20, Y: 20})
	f.st.UpdateTriggerAreas()
	require.Equal(t, f.clock.Frame(), f.clock.LastTeamEnterExit())
	assert.True(t, f.eval(c))
	assert.Equal(t, scans, f.ev.Scans(), "a GLA edge leaves the USA verdict alone")
	assert.Equal(t, hits+1, f.ev.CacheHits())
}

func TestEvaluate_StalenessSkippedFrames(t *testing.T) {
	f := newFixture(t)
	c := New(&PlayerHasNOrFewerBuildings{Player: NewPlayerRef("USA"), Count: 0})
	f.advance(3)
	require.True(t, f.eval(c))
	scans := f.ev.Scans()

	f.advance(5)
	f.eval(c)
	assert.Equal(t, scans+1, f.ev.Scans(), "a verdict several frames old is rescanned")
}

func TestEvaluate_TeamEdgeInvalidatesCache(t *testing.T) {
	f := newFixture(t)
	f.area(t, "Zone", 0, 0, 100, 100)
	tank := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), -50, -50, "")
	c := New(&PlayerHasUnitTypeInArea{Player: NewPlayerRef("USA"), Op: GreaterEqual, Count: 1, Template: tankTmpl.Name, Area: "Zone"})

	f.advance(3)
	f.st.UpdateTriggerAreas()
	require.False(t, f.eval(c))
	f.advance(1)
	f.st.UpdateTriggerAreas()
	require.False(t, f.eval(c))
	scans := f.ev.Scans()

	f.advance(1)
	f.st.Move(tank, world.Coord{X: 50, Y: 50})
	f.st.UpdateTriggerAreas()
	assert.True(t, f.eval(c))
	assert.Equal(t, scans+1, f.ev.Scans())
}

func TestEvaluate_VolatileSubjectRescans(t *testing.T) {
	f := newFixture(t)
	f.spawn(t, glaHQTmpl, f.gla.DefaultTeam(), 0, 0, "")
	c := New(&PlayerHasNOrFewerBuildings{Player: NewPlayerRef(ThisPlayerEnemy), Count: 0})
	f.advance(3)

	assert.False(t, f.eval(c), "GLA has a building")
	f.advance(1)
	f.usa.SetEnemy(f.civ)
	assert.True(t, f.eval(c), "civilians have none")
}

func TestEvaluate_NullDefaults(t *testing.T) {
	f := newFixture(t)
	assert.True(t, f.evalBody(&TeamDestroyed{Team: "Foo"}))
	assert.False(t, f.evalBody(&TeamHasUnits{Team: "Foo"}))
	assert.False(t, f.evalBody(&TeamStateIs{Team: "Foo", State: "Attack"}))
	assert.False(t, f.evalBody(&TeamStateIsNot{Team: "Foo", State: "Attack"}))
	assert.False(t, f.evalBody(&PlayerAllDestroyed{Player: NewPlayerRef("Nobody")}))
	assert.False(t, f.evalBody(&PlayerHasNOrFewerBuildings{Player: NewPlayerRef("Nobody"), Count: 5}))
	assert.False(t, f.evalBody(&NamedNotDestroyed{Unit: "Ghost"}))
	assert.False(t, f.evalBody(&NamedDestroyed{Unit: "Ghost"}), "never existed")
	assert.False(t, f.evalBody(&NamedInsideArea{Unit: "Ghost", Area: "Nowhere"}))
	assert.True(t, f.evalBody(&NamedOutsideArea{Unit: "Ghost", Area: "Nowhere"}))
	assert.False(t, f.evalBody(&UnitHealth{Unit: "Ghost", Op: LessThan, Percent: 100}))
	assert.False(t, f.evalBody(&SkirmishNamedAreaExists{Area: "Nowhere"}))
}

func TestEvaluate_NamedLifecycle(t *testing.T) {
	f := newFixture(t)
	hero := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 0, 0, "Hero")

	assert.True(t, f.evalBody(&NamedCreated{Unit: "Hero"}))
	assert.True(t, f.evalBody(&NamedNotDestroyed{Unit: "hero"}))
	assert.False(t, f.evalBody(&NamedDestroyed{Unit: "Hero"}))
	assert.False(t, f.evalBody(&NamedDying{Unit: "Hero"}))

	f.st.Kill(hero, nil)
	assert.True(t, f.evalBody(&NamedDying{Unit: "Hero"}))
	assert.True(t, f.evalBody(&NamedDestroyed{Unit: "Hero"}))
	assert.False(t, f.evalBody(&NamedTotallyDead{Unit: "Hero"}))

	f.st.FlushDestroyed()
	assert.True(t, f.evalBody(&NamedDestroyed{Unit: "Hero"}))
	assert.True(t, f.evalBody(&NamedTotallyDead{Unit: "Hero"}))
	assert.False(t, f.evalBody(&NamedDying{Unit: "Hero"}))
	assert.True(t, f.evalBody(&NamedCreated{Unit: "Hero"}))
}

func TestEvaluate_AttackedByTypeSourceGone(t *testing.T) {
	f := newFixture(t)
	victim := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 0, 0, "Victim")
	rebel := f.spawn(t, rebelTmpl, f.gla.DefaultTeam(), 10, 0, "")
	f.st.Damage(victim, rebel, 10)

	byType := &NamedAttackedByType{Unit: "Victim", Template: rebelTmpl.Name}
	byTeamType := &TeamAttackedByType{Team: "teamUSA", Template: rebelTmpl.Name}
	assert.True(t, f.evalBody(byType))
	assert.True(t, f.evalBody(byTeamType))
	assert.True(t, f.evalBody(&NamedAttackedByPlayer{Unit: "Victim", Player: NewPlayerRef("GLA")}))
	assert.True(t, f.evalBody(&TeamAttackedByPlayer{Team: "teamUSA", Player: NewPlayerRef("GLA")}))
	assert.True(t, f.evalBody(&SkirmishPlayerHasBeenAttackedByPlayer{Player: NewPlayerRef("USA"), Attacker: NewPlayerRef("GLA")}))

	f.st.Kill(rebel, nil)
	f.st.FlushDestroyed()
	// Reuse the freed slot so a stale id would alias a live object.
	f.spawn(t, rebelTmpl, f.gla.DefaultTeam(), 500, 500, "")

	assert.NotPanics(t, func() {
		assert.False(t, f.evalBody(byType))
		assert.False(t, f.evalBody(byTeamType))
	})
	assert.True(t, f.evalBody(&NamedAttackedByPlayer{Unit: "Victim", Player: NewPlayerRef("GLA")}))
}

func TestEvaluate_UnknownBody(t *testing.T) {
	strict := newFixture(t)
	assert.Panics(t, func() { strict.eval(New(&bogusBody{})) })

	release := newFixture(t, func(o *Options) { o.Strict = false })
	assert.False(t, release.eval(New(&bogusBody{})))
	assert.False(t, release.eval(New(nil)))
}

func TestEvaluate_ReleaseRecoversPanics(t *testing.T) {
	preds := &fakePredicates{panics: true}
	f := newFixture(t, func(o *Options) {
		o.Strict = false
		o.Predicates = preds
	})
	assert.False(t, f.evalBody(&Lua{Function: "explode"}))
	assert.True(t, f.evalBody(&True{}), "later conditions still evaluate")
}

func TestEvaluate_Lua(t *testing.T) {
	preds := &fakePredicates{result: true}
	f := newFixture(t, func(o *Options) { o.Predicates = preds })
	f.advance(2)

	assert.True(t, f.evalBody(&Lua{Function: "ready", Args: []string{"x"}}))
	assert.Equal(t, []string{"ready@2:USA:[x]"}, preds.calls)

	preds.err = errors.New("bad")
	assert.False(t, f.evalBody(&Lua{Function: "ready"}))

	noVM := newFixture(t)
	assert.False(t, noVM.evalBody(&Lua{Function: "ready"}))
}

func TestEvaluate_Expression(t *testing.T) {
	f := newFixture(t)
	f.events.counters["waves"] = 3
	f.events.flags["alarm"] = true
	f.usa.Credits = 5000
	f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 0, 0, "")

	x := &Expression{Source: `Counter("waves") >= 3 && Flag("alarm") && Credits("USA") > 1000 && TeamSize("teamUSA") == 1`}
	require.NoError(t, Prepare(x))
	assert.True(t, f.evalBody(x))

	f.events.counters["waves"] = 2
	assert.False(t, f.evalBody(x))

	assert.Error(t, Prepare(&Expression{Source: `Counter("a") +`}))
	assert.Error(t, Prepare(&Expression{Source: `Counter("a")`}), "must be boolean")
}

func TestEvaluate_ScriptState(t *testing.T) {
	f := newFixture(t)
	f.events.counters["kills"] = 4
	f.events.timers["t1"] = true
	f.events.attempts = 2
	f.events.camera = true
	f.events.media[fmt.Sprintf("%d/%s", event.MediaSpeech, "Intro")] = true

	assert.False(t, f.evalBody(&False{}))
	assert.True(t, f.evalBody(&True{}))
	assert.True(t, f.evalBody(&Counter{Name: "kills", Op: Equal, Value: 4}))
	assert.True(t, f.evalBody(&Flag{Name: "unset", Value: false}))
	assert.False(t, f.evalBody(&Flag{Name: "unset", Value: true}))
	assert.True(t, f.evalBody(&TimerExpired{Name: "t1"}))
	assert.True(t, f.evalBody(&MissionAttempts{Op: Greater, Value: 1}))
	assert.True(t, f.evalBody(&CameraMovementFinished{}))
	assert.True(t, f.evalBody(&SpeechFinished{Name: "Intro"}))
	assert.False(t, f.evalBody(&VideoFinished{Name: "Intro"}))
	assert.False(t, f.evalBody(&AudioFinished{Name: "Intro"}))
	assert.False(t, f.evalBody(&MusicTrackCompleted{Name: "Intro"}))
}

func TestEvaluate_SpecialPowersAndUpgrades(t *testing.T) {
	f := newFixture(t)
	src := f.spawn(t, barracksTmpl, f.usa.DefaultTeam(), 0, 0, "Strategy")
	other := f.spawn(t, barracksTmpl, f.usa.DefaultTeam(), 50, 0, "Other")
	f.events.powers[powerKey(f.usa.Index(), "SpectreGunship", event.PowerMidway)] = src.ID()
	f.events.upgrades[fmt.Sprintf("%d/%s", f.usa.Index(), "Upgrade_AmericaTOWMissile")] = src.ID()
	params := SpecialPowerParams{Player: NewPlayerRef("USA"), Power: "SpectreGunship"}

	assert.True(t, f.evalBody(&PlayerMidwaySpecialPower{params}))
	assert.False(t, f.evalBody(&PlayerTriggeredSpecialPower{params}))
	assert.False(t, f.evalBody(&PlayerCompletedSpecialPower{params}))

	named := params
	named.Unit = "Strategy"
	assert.True(t, f.evalBody(&PlayerMidwaySpecialPowerFromNamed{named}))
	named.Unit = "Other"
	assert.False(t, f.evalBody(&PlayerMidwaySpecialPowerFromNamed{named}))
	named.Unit = "Missing"
	assert.False(t, f.evalBody(&PlayerMidwaySpecialPowerFromNamed{named}))

	assert.True(t, f.evalBody(&PlayerBuiltUpgrade{Player: NewPlayerRef("USA"), Upgrade: "Upgrade_AmericaTOWMissile"}))
	assert.True(t, f.evalBody(&PlayerBuiltUpgradeFromNamed{Player: NewPlayerRef("USA"), Upgrade: "Upgrade_AmericaTOWMissile", Unit: "Strategy"}))
	assert.False(t, f.evalBody(&PlayerBuiltUpgradeFromNamed{Player: NewPlayerRef("USA"), Upgrade: "Upgrade_AmericaTOWMissile", Unit: other.Name()}))
}

func TestEvaluate_PlayerState(t *testing.T) {
	f := newFixture(t)
	usa := NewPlayerRef("USA")

	assert.True(t, f.evalBody(&PlayerAllDestroyed{Player: usa}))
	assert.True(t, f.evalBody(&PlayerAllBuildFacilitiesDestroyed{Player: usa}))
	f.spawn(t, barracksTmpl, f.usa.DefaultTeam(), 0, 0, "")
	assert.False(t, f.evalBody(&PlayerAllDestroyed{Player: usa}))
	assert.False(t, f.evalBody(&PlayerAllBuildFacilitiesDestroyed{Player: usa}))

	f.usa.ExtraProduction = 10
	f.usa.ExtraConsumption = 5
	assert.True(t, f.evalBody(&PlayerHasPower{Player: usa}))
	assert.False(t, f.evalBody(&PlayerHasNoPower{Player: usa}))
	assert.True(t, f.evalBody(&PlayerPowerComparePercent{Player: usa, Op: Equal, Percent: 200}))
	assert.True(t, f.evalBody(&PlayerExcessPowerCompare{Player: usa, Op: GreaterEqual, Value: 5}))

	f.usa.GrantScience("SCIENCE_PaladinTank")
	f.usa.SciencePurchasePoints = 3
	f.usa.StartPosition = 2
	assert.True(t, f.evalBody(&PlayerAcquiredScience{Player: usa, Science: "science_paladintank"}))
	assert.True(t, f.evalBody(&PlayerHasSciencePurchasePoints{Player: usa, Points: 3}))
	assert.False(t, f.evalBody(&PlayerHasSciencePurchasePoints{Player: usa, Points: 4}))
	assert.True(t, f.evalBody(&StartPositionIs{Player: usa, Position: 2}))
	assert.True(t, f.evalBody(&SkirmishPlayerFaction{Player: usa, Side: "america"}))
}

func TestEvaluate_BuildingHistory(t *testing.T) {
	f := newFixture(t)
	hq := f.spawn(t, glaHQTmpl, f.gla.DefaultTeam(), 0, 0, "")
	tank := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 10, 0, "")
	_, err := f.st.Spawn(world.SpawnSpec{Template: barracksTmpl, Team: f.usa.DefaultTeam(), Built: true})
	require.NoError(t, err)

	f.st.Damage(hq, tank, 1e6)
	assert.True(t, f.evalBody(&PlayerDestroyedNBuildingsOfPlayer{Player: NewPlayerRef("USA"), Count: 1, Victim: NewPlayerRef("GLA")}))
	assert.False(t, f.evalBody(&PlayerDestroyedNBuildingsOfPlayer{Player: NewPlayerRef("USA"), Count: 2, Victim: NewPlayerRef("GLA")}))
	assert.True(t, f.evalBody(&PlayerLostObjectType{Player: NewPlayerRef("GLA"), Template: glaHQTmpl.Name}))
	assert.True(t, f.evalBody(&BuiltByPlayer{Player: NewPlayerRef("USA"), Template: barracksTmpl.Name}))
	assert.False(t, f.evalBody(&BuiltByPlayer{Player: NewPlayerRef("USA"), Template: tankTmpl.Name}))
}

func TestEvaluate_AreaCounts(t *testing.T) {
	f := newFixture(t)
	f.area(t, "Base", 0, 0, 200, 200)
	team := f.usa.DefaultTeam()
	f.spawn(t, tankTmpl, team, 10, 10, "")
	f.spawn(t, tankTmpl, team, 20, 10, "")
	f.spawn(t, rangerTmpl, team, 30, 10, "")
	f.spawn(t, tankTmpl, team, 900, 900, "")
	f.spawn(t, barracksTmpl, team, 100, 100, "")

	usa := NewPlayerRef("USA")
	assert.True(t, f.evalBody(&PlayerHasUnitTypeInArea{Player: usa, Op: Equal, Count: 2, Template: tankTmpl.Name, Area: "Base"}))
	assert.True(t, f.evalBody(&PlayerHasUnitKindInArea{Player: usa, Op: Equal, Count: 1, KindOf: world.KindInfantry, Area: "Base"}))
	assert.True(t, f.evalBody(&PlayerHasObjectComparison{Player: usa, Op: Equal, Count: 3, Template: tankTmpl.Name}))
	assert.True(t, f.evalBody(&SkirmishValueInArea{Player: usa, Op: Equal, Value: 900*2 + 225 + 500, Area: "Base"}))
	assert.True(t, f.evalBody(&SkirmishPlayerHasUnitsInArea{Player: usa, Area: "Base"}))
	assert.False(t, f.evalBody(&SkirmishPlayerIsOutsideArea{Player: usa, Area: "Base"}))
	assert.False(t, f.evalBody(&SkirmishPlayerHasUnitsInArea{Player: NewPlayerRef("GLA"), Area: "Base"}))
	assert.True(t, f.evalBody(&SkirmishPlayerIsOutsideArea{Player: NewPlayerRef("GLA"), Area: "Base"}))
	assert.True(t, f.evalBody(&PlayerHasNOrFewerFactionBuildings{Player: usa, Count: 1}))
	assert.Equal(t, 0, f.space.InUse(), "iterators released")
}

func TestEvaluate_Sighting(t *testing.T) {
	f := newFixture(t)
	f.spawn(t, rangerTmpl, f.usa.DefaultTeam(), 0, 0, "Scout")
	rebel := f.spawn(t, rebelTmpl, f.gla.DefaultTeam(), 80, 0, "")
	f.spawn(t, rebelTmpl, f.civ.DefaultTeam(), 20, 0, "")

	enemy := &EnemySighted{Unit: "Scout", Relation: world.Enemies, Player: NewPlayerRef("GLA")}
	assert.True(t, f.evalBody(enemy))
	assert.False(t, f.evalBody(&EnemySighted{Unit: "Scout", Relation: world.Enemies, Player: NewPlayerRef("Civilian")}))
	assert.True(t, f.evalBody(&EnemySighted{Unit: "Scout", Relation: world.Neutral, Player: NewPlayerRef("Civilian")}))
	assert.True(t, f.evalBody(&TypeSighted{Unit: "Scout", Template: rebelTmpl.Name, Player: NewPlayerRef("GLA")}))

	f.st.SetStatus(rebel, world.StatusStealthed, 0)
	assert.False(t, f.evalBody(enemy))
	f.st.SetStatus(rebel, world.StatusDetected, 0)
	f.st.Move(rebel, world.Coord{X: 150})
	assert.False(t, f.evalBody(enemy), "outside vision range")
	assert.Equal(t, 0, f.space.InUse())
}

func TestEvaluate_TeamQueries(t *testing.T) {
	f := newFixture(t)
	team, err := f.st.NewTeam("Convoy", f.usa)
	require.NoError(t, err)
	path := world.NewWaypointPath("Route", []world.Coord{{X: 0}, {X: 100}})
	require.NoError(t, f.st.AddWaypointPath(path))

	assert.False(t, f.evalBody(&TeamCreated{Team: "Convoy"}))
	assert.True(t, f.evalBody(&TeamDestroyed{Team: "Convoy"}))
	a := f.spawn(t, tankTmpl, team, 0, 0, "")
	b := f.spawn(t, tankTmpl, team, 5, 0, "")
	assert.True(t, f.evalBody(&TeamCreated{Team: "Convoy"}))
	assert.True(t, f.evalBody(&TeamHasUnits{Team: "Convoy"}))
	assert.True(t, f.evalBody(&TeamOwnedByPlayer{Team: "Convoy", Player: NewPlayerRef("USA")}))
	assert.False(t, f.evalBody(&TeamOwnedByPlayer{Team: "Convoy", Player: NewPlayerRef("GLA")}))

	f.st.SetTeamState(team, "Moving")
	assert.True(t, f.evalBody(&TeamStateIs{Team: "Convoy", State: "moving"}))
	assert.False(t, f.evalBody(&TeamStateIsNot{Team: "Convoy", State: "Moving"}))

	f.st.SetStatus(a, world.StatusDisabledEMP, 0)
	assert.True(t, f.evalBody(&TeamSomeHaveStatus{Team: "Convoy", Status: world.StatusDisabledEMP}))
	assert.False(t, f.evalBody(&TeamAllHaveStatus{Team: "Convoy", Status: world.StatusDisabledEMP}))
	f.st.SetStatus(b, world.StatusDisabledEMP, 0)
	assert.True(t, f.evalBody(&TeamAllHaveStatus{Team: "Convoy", Status: world.StatusDisabledEMP}))

	assert.False(t, f.evalBody(&TeamReachedWaypointsEnd{Team: "Convoy", Path: "route"}))
	f.st.ReachPathEnd(b, "Route")
	assert.True(t, f.evalBody(&TeamReachedWaypointsEnd{Team: "Convoy", Path: "route"}))

	assert.False(t, f.evalBody(&TeamDiscovered{Team: "Convoy", Player: NewPlayerRef("GLA")}))
	f.st.Reveal(a, f.gla, true)
	assert.True(t, f.evalBody(&TeamDiscovered{Team: "Convoy", Player: NewPlayerRef("GLA")}))
	assert.True(t, f.evalBody(&SkirmishPlayerHasDiscoveredPlayer{Player: NewPlayerRef("GLA"), Other: NewPlayerRef("USA")}))
	f.st.Reveal(a, f.gla, false)
	assert.False(t, f.evalBody(&NamedDiscovered{Unit: "nobody", Player: NewPlayerRef("GLA")}))
	assert.True(t, f.evalBody(&SkirmishPlayerHasDiscoveredPlayer{Player: NewPlayerRef("GLA"), Other: NewPlayerRef("USA")}), "fogged still counts as discovered")

	f.st.Kill(a, nil)
	f.st.Kill(b, nil)
	assert.True(t, f.evalBody(&TeamDestroyed{Team: "Convoy"}))
	assert.False(t, f.evalBody(&TeamHasUnits{Team: "Convoy"}))
}

func TestEvaluate_TeamEnterExitEdges(t *testing.T) {
	f := newFixture(t)
	f.area(t, "Gate", 0, 0, 100, 100)
	a := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), -10, 50, "Lead")
	params := TeamAreaParams{Team: "teamUSA", Area: "Gate"}

	f.advance(1)
	f.st.UpdateTriggerAreas()
	f.advance(1)
	f.st.Move(a, world.Coord{X: 10, Y: 50})
	f.st.UpdateTriggerAreas()
	assert.True(t, f.evalBody(&TeamEnteredAreaEntirely{params}))
	assert.True(t, f.evalBody(&TeamEnteredAreaPartially{params}))
	assert.True(t, f.evalBody(&NamedEnteredArea{Unit: "Lead", Area: "Gate"}))
	assert.False(t, f.evalBody(&TeamExitedAreaPartially{params}))

	f.advance(1)
	f.st.Move(a, world.Coord{X: -10, Y: 50})
	f.st.UpdateTriggerAreas()
	assert.True(t, f.evalBody(&TeamExitedAreaEntirely{params}))
	assert.True(t, f.evalBody(&TeamExitedAreaPartially{params}))
	assert.True(t, f.evalBody(&NamedExitedArea{Unit: "Lead", Area: "Gate"}))
	assert.False(t, f.evalBody(&NamedEnteredArea{Unit: "Lead", Area: "Gate"}))
}

func TestEvaluate_Containers(t *testing.T) {
	f := newFixture(t)
	bunker := f.spawn(t, barracksTmpl, f.usa.DefaultTeam(), 0, 0, "Bunker")
	rebel := f.spawn(t, rebelTmpl, f.gla.DefaultTeam(), 5, 0, "")

	assert.True(t, f.evalBody(&NamedBuildingIsEmpty{Unit: "Bunker"}))
	assert.True(t, f.evalBody(&NamedHasFreeContainerSlots{Unit: "Bunker"}))
	assert.False(t, f.evalBody(&NamedBuildingIsEmpty{Unit: "Ghost"}))

	require.NoError(t, f.st.Enter(bunker, rebel))
	assert.False(t, f.evalBody(&NamedBuildingIsEmpty{Unit: "Bunker"}))
	assert.True(t, f.evalBody(&BuildingEnteredByPlayer{Player: NewPlayerRef("GLA"), Unit: "Bunker"}))
	assert.False(t, f.evalBody(&BuildingEnteredByPlayer{Player: NewPlayerRef("USA"), Unit: "Bunker"}))
	assert.True(t, f.evalBody(&SkirmishPlayerHasComparisonGarrisoned{Player: NewPlayerRef("USA"), Op: Equal, Count: 1}))

	f.advance(1)
	f.st.Evacuate(bunker)
	assert.True(t, f.evalBody(&UnitEmptied{Unit: "Bunker"}))
	f.advance(1)
	assert.False(t, f.evalBody(&UnitEmptied{Unit: "Bunker"}))
}

func TestEvaluate_UnitState(t *testing.T) {
	f := newFixture(t)
	hero := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 0, 0, "Hero")
	f.area(t, "Pad", -5, -5, 5, 5)
	path := world.NewWaypointPath("Exit", nil)
	require.NoError(t, f.st.AddWaypointPath(path))

	assert.True(t, f.evalBody(&NamedInsideArea{Unit: "Hero", Area: "Pad"}))
	assert.False(t, f.evalBody(&NamedOutsideArea{Unit: "Hero", Area: "Pad"}))
	assert.True(t, f.evalBody(&NamedOwnedByPlayer{Unit: "Hero", Player: NewPlayerRef("USA")}))

	f.st.Damage(hero, nil, 240)
	assert.True(t, f.evalBody(&UnitHealth{Unit: "Hero", Op: Equal, Percent: 50}))
	assert.True(t, f.evalBody(&UnitHealth{Unit: "Hero", Op: LessThan, Percent: 51}))

	f.st.SetStatus(hero, world.StatusStealthed, 0)
	assert.True(t, f.evalBody(&UnitHasObjectStatus{Unit: "Hero", Status: world.StatusStealthed}))

	assert.False(t, f.evalBody(&NamedReachedWaypointsEnd{Unit: "Hero", Path: "Exit"}))
	f.st.ReachPathEnd(hero, "exit")
	assert.True(t, f.evalBody(&NamedReachedWaypointsEnd{Unit: "Hero", Path: "Exit"}))

	f.st.Reveal(hero, f.gla, true)
	assert.False(t, f.evalBody(&NamedDiscovered{Unit: "Hero", Player: NewPlayerRef("GLA")}), "stealthed")
	f.st.SetStatus(hero, 0, world.StatusStealthed)
	assert.True(t, f.evalBody(&NamedDiscovered{Unit: "Hero", Player: NewPlayerRef("GLA")}))
}

func TestEvaluate_SkirmishEconomy(t *testing.T) {
	f := newFixture(t)
	f.area(t, "Start", 0, 0, 50, 50)
	oil := f.spawn(t, oilTmpl, f.civ.DefaultTeam(), 120, 25, "")
	f.spawn(t, supplyTmpl, f.civ.DefaultTeam(), 60, 25, "")
	usa := NewPlayerRef("USA")

	assert.True(t, f.evalBody(&SkirmishTechBuildingWithinDistance{Player: usa, Distance: 100, Area: "Start"}))
	assert.False(t, f.evalBody(&SkirmishTechBuildingWithinDistance{Player: usa, Distance: 50, Area: "Start"}))
	assert.True(t, f.evalBody(&SkirmishSuppliesValueWithinDistance{Player: usa, Distance: 50, Area: "Start", Value: 20000}))
	assert.False(t, f.evalBody(&SkirmishSuppliesValueWithinDistance{Player: usa, Distance: 50, Area: "Start", Value: 40000}))

	f.st.Transfer(oil, f.usa.DefaultTeam())
	assert.False(t, f.evalBody(&SkirmishTechBuildingWithinDistance{Player: usa, Distance: 100, Area: "Start"}), "own tech buildings do not count")
	assert.True(t, f.evalBody(&SkirmishPlayerHasComparisonCapturedUnits{Player: usa, Op: Equal, Count: 1}))
	assert.Equal(t, 0, f.space.InUse())
}

func TestEvaluate_Multiplayer(t *testing.T) {
	f := newFixture(t)
	mine := f.spawn(t, tankTmpl, f.usa.DefaultTeam(), 0, 0, "")
	theirs := f.spawn(t, rebelTmpl, f.gla.DefaultTeam(), 100, 0, "")

	assert.False(t, f.evalBody(&MultiplayerAlliedVictory{}))
	assert.False(t, f.evalBody(&MultiplayerAlliedDefeat{}))
	assert.False(t, f.evalBody(&MultiplayerPlayerDefeat{}))

	f.st.Kill(theirs, nil)
	assert.True(t, f.evalBody(&MultiplayerAlliedVictory{}))

	f.st.Kill(mine, nil)
	assert.True(t, f.evalBody(&MultiplayerAlliedDefeat{}))
	assert.True(t, f.evalBody(&MultiplayerPlayerDefeat{}))
	assert.False(t, f.evalBody(&MultiplayerAlliedVictory{}))
}
