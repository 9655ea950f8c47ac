package condition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_StaticPlayerResolvedOnce(t *testing.T) {
	f := newFixture(t)
	fc := f.ev.Facade()
	ref := NewPlayerRef("usa")

	first := fc.Player(&ref, Scope{})
	require.NotNil(t, first)
	assert.Equal(t, 1, f.reg.playerByName)
	mask, ok := ref.Resolved()
	require.True(t, ok)
	assert.Equal(t, first.Mask(), mask)

	second := fc.Player(&ref, Scope{})
	assert.Equal(t, first.Mask(), second.Mask())
	assert.Equal(t, 1, f.reg.playerByName, "second resolution must not hit the name index")
}

func TestFacade_ConditionResolvesPlayerOnce(t *testing.T) {
	f := newFixture(t)
	f.usa.Credits = 100
	c := New(&PlayerHasCredits{Player: NewPlayerRef("USA"), Op: GreaterEqual, Value: 50})

	assert.True(t, f.eval(c))
	assert.True(t, f.eval(c))
	assert.Equal(t, 1, f.reg.playerByName)
}

func TestFacade_EnemySentinelNeverCached(t *testing.T) {
	f := newFixture(t)
	fc := f.ev.Facade()
	ref := NewPlayerRef(ThisPlayerEnemy)
	scope := Scope{Owner: f.usa}

	f.usa.SetEnemy(f.gla)
	got := fc.Player(&ref, scope)
	require.NotNil(t, got)
	assert.Equal(t, f.gla.Mask(), got.Mask())

	f.usa.SetEnemy(f.civ)
	got = fc.Player(&ref, scope)
	require.NotNil(t, got)
	assert.Equal(t, f.civ.Mask(), got.Mask())

	_, ok := ref.Resolved()
	assert.False(t, ok)
}

func TestFacade_ThisPlayerFollowsScope(t *testing.T) {
	f := newFixture(t)
	fc := f.ev.Facade()
	ref := NewPlayerRef(ThisPlayer)

	assert.Same(t, f.usa, fc.Player(&ref, Scope{Owner: f.usa}))
	assert.Same(t, f.gla, fc.Player(&ref, Scope{Owner: f.gla}))
	assert.Nil(t, fc.Player(&ref, Scope{}))
}

func TestFacade_LocalPlayerAndMissing(t *testing.T) {
	f := newFixture(t)
	fc := f.ev.Facade()
	local := NewPlayerRef(LocalPlayer)
	assert.Same(t, f.usa, fc.Player(&local, Scope{}))

	missing := NewPlayerRef("Nobody")
	assert.Nil(t, fc.Player(&missing, Scope{}))
	_, ok := missing.Resolved()
	assert.False(t, ok, "misses are not stored")
}

func TestFacade_ThisTeamAndLookups(t *testing.T) {
	f := newFixture(t)
	fc := f.ev.Facade()
	team := f.usa.DefaultTeam()
	f.area(t, "Base", 0, 0, 10, 10)

	assert.Same(t, team, fc.Team(ThisTeam, Scope{Team: team}))
	assert.Same(t, team, fc.Team("TEAMUSA", Scope{}))
	assert.Nil(t, fc.Team("Foo", Scope{}))
	assert.NotNil(t, fc.Area("base"))
	assert.Nil(t, fc.Unit("ghost"))
	assert.Nil(t, fc.Path("nowhere"))
}

func TestCondition_ResetForgetsMasks(t *testing.T) {
	f := newFixture(t)
	c := New(&PlayerHasNOrFewerBuildings{Player: NewPlayerRef("USA"), Count: 3})
	f.advance(3)
	require.True(t, f.eval(c))
	assert.Equal(t, VerdictTrue, c.Verdict())

	c.Reset()
	assert.Equal(t, VerdictUnknown, c.Verdict())
	_, ok := c.Body.(*PlayerHasNOrFewerBuildings).Player.Resolved()
	assert.False(t, ok)
}
