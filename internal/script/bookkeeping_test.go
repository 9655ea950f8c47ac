package script

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/world"
)

func TestBookkeeping_CountersAndFlags(t *testing.T) {
	b := NewBookkeeping(&world.Clock{})
	b.SetCounter("Waves", 2)
	assert.Equal(t, 5, b.AddCounter("waves", 3))
	assert.Equal(t, 5, b.Counter("WAVES"))
	assert.Equal(t, 0, b.Counter("missing"))

	assert.False(t, b.Flag("Alarm"))
	b.SetFlag("alarm", true)
	assert.True(t, b.Flag("ALARM"))
}

func TestBookkeeping_Timers(t *testing.T) {
	clock := &world.Clock{}
	b := NewBookkeeping(clock)
	assert.False(t, b.TimerExpired("t"), "never started")

	b.StartTimer("t", 2)
	clock.Advance()
	assert.False(t, b.TimerExpired("t"))
	clock.Advance()
	assert.True(t, b.TimerExpired("T"))

	b.StopTimer("t")
	assert.False(t, b.TimerExpired("t"))
}

func TestBookkeeping_EdgesLastOneFrame(t *testing.T) {
	clock := &world.Clock{}
	bus := event.NewBus()
	b := NewBookkeeping(clock)
	b.Subscribe(bus)
	src := ecs.EntityID(7)

	event.Emit(bus, event.SpecialPowerUsed{PlayerIndex: 1, Power: "Spectre", SourceID: src, Stage: event.PowerCompleted})
	event.Emit(bus, event.UpgradeCompleted{PlayerIndex: 1, Upgrade: "Radar", SourceID: src})
	event.Emit(bus, event.MediaFinished{Kind: event.MediaVideo, Name: "Intro"})
	event.Emit(bus, event.CameraMovementFinished{})

	clock.Advance()
	bus.SwapBuffers()
	bus.DispatchAll()

	assert.True(t, b.SpecialPowerUsed(1, "spectre", ecs.InvalidID, event.PowerCompleted))
	assert.True(t, b.SpecialPowerUsed(1, "spectre", src, event.PowerCompleted))
	assert.False(t, b.SpecialPowerUsed(1, "spectre", ecs.EntityID(8), event.PowerCompleted))
	assert.False(t, b.SpecialPowerUsed(1, "spectre", src, event.PowerTriggered))
	assert.False(t, b.SpecialPowerUsed(0, "spectre", src, event.PowerCompleted))
	assert.True(t, b.UpgradeCompleted(1, "RADAR", src))
	assert.True(t, b.MediaFinished(event.MediaVideo, "intro"))
	assert.False(t, b.MediaFinished(event.MediaSpeech, "intro"))
	assert.True(t, b.CameraMovementFinished())

	clock.Advance()
	assert.False(t, b.SpecialPowerUsed(1, "spectre", ecs.InvalidID, event.PowerCompleted))
	assert.False(t, b.MediaFinished(event.MediaVideo, "intro"))
	assert.False(t, b.CameraMovementFinished())
	assert.True(t, b.UpgradeCompleted(1, "Radar", ecs.InvalidID), "upgrades persist")
}

func TestBookkeeping_SnapshotRestore(t *testing.T) {
	clock := &world.Clock{}
	b := NewBookkeeping(clock)
	b.SetCounter("kills", 4)
	b.SetFlag("done", true)
	b.IncrementAttempts()
	clock.Advance()
	b.StartTimer("reinforce", 10)
	clock.Advance()

	snap := b.Snapshot()
	assert.Equal(t, uint32(9), snap.Timers["reinforce"])

	other := &world.Clock{}
	restored := NewBookkeeping(other)
	restored.SetCounter("stale", 1)
	restored.Restore(snap)

	assert.Equal(t, 4, restored.Counter("kills"))
	assert.Equal(t, 0, restored.Counter("stale"))
	assert.True(t, restored.Flag("done"))
	assert.Equal(t, 1, restored.MissionAttempts())
	for i := 0; i < 8; i++ {
		other.Advance()
	}
	assert.False(t, restored.TimerExpired("reinforce"))
	other.Advance()
	assert.True(t, restored.TimerExpired("reinforce"))
}
