package condition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/partition"
	"github.com/zerohour/missiond/internal/world"
)

var (
	tankTmpl     = &world.Template{Name: "AmericaTankCrusader", Side: "America", KindOf: world.KindVehicle, BuildCost: 900, MaxHealth: 480, VisionRange: 150}
	rangerTmpl   = &world.Template{Name: "AmericaInfantryRanger", Side: "America", KindOf: world.KindInfantry, BuildCost: 225, MaxHealth: 180, VisionRange: 100}
	rebelTmpl    = &world.Template{Name: "GLAInfantryRebel", Side: "GLA", KindOf: world.KindInfantry, BuildCost: 150, MaxHealth: 120, VisionRange: 100}
	barracksTmpl = &world.Template{Name: "AmericaBarracks", Side: "America", KindOf: world.KindStructure | world.KindFactory, BuildCost: 500, MaxHealth: 1000, ContainCapacity: 2}
	glaHQTmpl    = &world.Template{Name: "GLACommandCenter", Side: "GLA", KindOf: world.KindStructure | world.KindCommandCenter, BuildCost: 2000, MaxHealth: 5000}
	oilTmpl      = &world.Template{Name: "TechOilDerrick", Side: "Civilian", KindOf: world.KindStructure | world.KindTechBuilding, MaxHealth: 1000}
	supplyTmpl   = &world.Template{Name: "SupplyPile", Side: "Civilian", KindOf: world.KindSupplySource | world.KindInert, MaxHealth: 1, Supplies: 30000}
)

// countingRegistry counts name lookups on top of the real world state.
type countingRegistry struct {
	*world.State
	playerByName int
}

func (r *countingRegistry) PlayerByName(name string) *world.Player {
	r.playerByName++
	return r.State.PlayerByName(name)
}

type fakeEvents struct {
	counters map[string]int
	flags    map[string]bool
	timers   map[string]bool
	attempts int
	camera   bool
	media    map[string]bool
	powers   map[string]ecs.EntityID
	upgrades map[string]ecs.EntityID
}

func newFakeEvents() *fakeEvents {
	return &fakeEvents{
		counters: make(map[string]int),
		flags:    make(map[string]bool),
		timers:   make(map[string]bool),
		media:    make(map[string]bool),
		powers:   make(map[string]ecs.EntityID),
		upgrades: make(map[string]ecs.EntityID),
	}
}

func (f *fakeEvents) Counter(name string) int       { return f.counters[name] }
func (f *fakeEvents) Flag(name string) bool         { return f.flags[name] }
func (f *fakeEvents) TimerExpired(name string) bool { return f.timers[name] }
func (f *fakeEvents) MissionAttempts() int          { return f.attempts }
func (f *fakeEvents) CameraMovementFinished() bool  { return f.camera }

func (f *fakeEvents) MediaFinished(kind event.MediaKind, name string) bool {
	return f.media[fmt.Sprintf("%d/%s", kind, name)]
}

func powerKey(player int, power string, stage event.PowerStage) string {
	return fmt.Sprintf("%d/%s/%d", player, power, stage)
}

func (f *fakeEvents) SpecialPowerUsed(player int, power string, source ecs.EntityID, stage event.PowerStage) bool {
	src, ok := f.powers[powerKey(player, power, stage)]
	return ok && (source.IsZero() || source == src)
}

func (f *fakeEvents) UpgradeCompleted(player int, upgrade string, source ecs.EntityID) bool {
	src, ok := f.upgrades[fmt.Sprintf("%d/%s", player, upgrade)]
	return ok && (source.IsZero() || source == src)
}

type fixture struct {
	st     *world.State
	clock  *world.Clock
	reg    *countingRegistry
	events *fakeEvents
	space  *partition.Manager
	ev     *Evaluator

	usa *world.Player
	gla *world.Player
	civ *world.Player
}

func newFixture(t *testing.T, tweak ...func(*Options)) *fixture {
	t.Helper()
	clock := &world.Clock{}
	st := world.NewState(clock, 32)
	for _, tmpl := range []*world.Template{tankTmpl, rangerTmpl, rebelTmpl, barracksTmpl, glaHQTmpl, oilTmpl, supplyTmpl} {
		require.NoError(t, st.AddTemplate(tmpl))
	}
	f := &fixture{st: st, clock: clock, reg: &countingRegistry{State: st}, events: newFakeEvents()}
	var err error
	f.usa, err = st.AddPlayer("USA", "America")
	require.NoError(t, err)
	f.gla, err = st.AddPlayer("GLA", "GLA")
	require.NoError(t, err)
	f.civ, err = st.AddPlayer("Civilian", "Civilian")
	require.NoError(t, err)
	f.usa.SetRelationship(f.gla, world.Enemies)
	f.gla.SetRelationship(f.usa, world.Enemies)
	f.usa.SetEnemy(f.gla)
	st.SetLocalPlayer(f.usa)

	f.space = partition.NewManager(st, 4, true, zap.NewNop())
	opts := Options{
		Registry: f.reg,
		Clock:    clock,
		Space:    f.space,
		Events:   f.events,
		Strict:   true,
		Log:      zap.NewNop(),
	}
	for _, fn := range tweak {
		fn(&opts)
	}
	f.ev, err = NewEvaluator(opts)
	require.NoError(t, err)
	return f
}

func (f *fixture) spawn(t *testing.T, tmpl *world.Template, team *world.Team, x, y float64, name string) *world.Object {
	t.Helper()
	o, err := f.st.Spawn(world.SpawnSpec{Template: tmpl, Team: team, Pos: world.Coord{X: x, Y: y}, Name: name})
	require.NoError(t, err)
	return o
}

func (f *fixture) area(t *testing.T, name string, x0, y0, x1, y1 float64) *world.PolygonTrigger {
	t.Helper()
	a := world.NewPolygonTrigger(name, []world.Coord{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	require.NoError(t, f.st.AddTrigger(a))
	return a
}

func (f *fixture) advance(n int) {
	for i := 0; i < n; i++ {
		f.clock.Advance()
	}
}

func (f *fixture) eval(c *Condition) bool {
	return f.ev.Evaluate(c, Scope{Owner: f.usa})
}

func (f *fixture) evalBody(b Body) bool {
	return f.eval(New(b))
}
