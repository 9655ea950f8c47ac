// Package script runs mission scripts: it keeps the engine's counters,
// flags, timers and edge-triggered events, and evaluates each script's
// condition clauses once per frame.
package script

import (
	"golang.org/x/text/cases"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/core/event"
	"github.com/zerohour/missiond/internal/world"
)

type powerKey struct {
	player int
	power  string
	stage  event.PowerStage
}

type upgradeKey struct {
	player  int
	upgrade string
}

type mediaKey struct {
	kind event.MediaKind
	name string
}

// Bookkeeping is the script engine's mutable state. Names are case-folded.
// Edge events are stamped with the frame they were delivered on and read
// as true only during that frame; completed upgrades stay true.
type Bookkeeping struct {
	clock *world.Clock
	caser cases.Caser

	counters map[string]int
	flags    map[string]bool
	timers   map[string]uint32
	attempts int

	camera    uint32
	cameraSet bool
	media     map[mediaKey]uint32
	powers    map[powerKey][]stamped
	upgrades  map[upgradeKey][]ecs.EntityID
}

type stamped struct {
	source ecs.EntityID
	frame  uint32
}

func NewBookkeeping(clock *world.Clock) *Bookkeeping {
	return &Bookkeeping{
		clock:    clock,
		caser:    cases.Fold(),
		counters: make(map[string]int),
		flags:    make(map[string]bool),
		timers:   make(map[string]uint32),
		media:    make(map[mediaKey]uint32),
		powers:   make(map[powerKey][]stamped),
		upgrades: make(map[upgradeKey][]ecs.EntityID),
	}
}

func (b *Bookkeeping) fold(s string) string { return b.caser.String(s) }

// ==================== counters, flags, timers ====================

func (b *Bookkeeping) Counter(name string) int { return b.counters[b.fold(name)] }

func (b *Bookkeeping) SetCounter(name string, v int) { b.counters[b.fold(name)] = v }

func (b *Bookkeeping) AddCounter(name string, delta int) int {
	key := b.fold(name)
	b.counters[key] += delta
	return b.counters[key]
}

func (b *Bookkeeping) Flag(name string) bool { return b.flags[b.fold(name)] }

func (b *Bookkeeping) SetFlag(name string, v bool) { b.flags[b.fold(name)] = v }

// StartTimer (re)arms a timer to expire frames from now.
func (b *Bookkeeping) StartTimer(name string, frames uint32) {
	b.timers[b.fold(name)] = b.clock.Frame() + frames
}

func (b *Bookkeeping) StopTimer(name string) { delete(b.timers, b.fold(name)) }

// TimerExpired is false for timers never started.
func (b *Bookkeeping) TimerExpired(name string) bool {
	deadline, ok := b.timers[b.fold(name)]
	return ok && b.clock.Frame() >= deadline
}

func (b *Bookkeeping) MissionAttempts() int { return b.attempts }

func (b *Bookkeeping) IncrementAttempts() int {
	b.attempts++
	return b.attempts
}

// ==================== edge events ====================

func (b *Bookkeeping) now(frame uint32) bool { return frame == b.clock.Frame() }

func (b *Bookkeeping) CameraMovementFinished() bool { return b.cameraSet && b.now(b.camera) }

func (b *Bookkeeping) MediaFinished(kind event.MediaKind, name string) bool {
	f, ok := b.media[mediaKey{kind, b.fold(name)}]
	return ok && b.now(f)
}

func (b *Bookkeeping) SpecialPowerUsed(player int, power string, source ecs.EntityID, stage event.PowerStage) bool {
	for _, s := range b.powers[powerKey{player, b.fold(power), stage}] {
		if b.now(s.frame) && (source.IsZero() || s.source == source) {
			return true
		}
	}
	return false
}

func (b *Bookkeeping) UpgradeCompleted(player int, upgrade string, source ecs.EntityID) bool {
	for _, src := range b.upgrades[upgradeKey{player, b.fold(upgrade)}] {
		if source.IsZero() || src == source {
			return true
		}
	}
	return false
}

func (b *Bookkeeping) onSpecialPower(ev event.SpecialPowerUsed) {
	key := powerKey{ev.PlayerIndex, b.fold(ev.Power), ev.Stage}
	frame := b.clock.Frame()
	uses := b.powers[key][:0:0]
	for _, s := range b.powers[key] {
		if s.frame == frame {
			uses = append(uses, s)
		}
	}
	b.powers[key] = append(uses, stamped{source: ev.SourceID, frame: frame})
}

func (b *Bookkeeping) onUpgrade(ev event.UpgradeCompleted) {
	key := upgradeKey{ev.PlayerIndex, b.fold(ev.Upgrade)}
	b.upgrades[key] = append(b.upgrades[key], ev.SourceID)
}

func (b *Bookkeeping) onMedia(ev event.MediaFinished) {
	b.media[mediaKey{ev.Kind, b.fold(ev.Name)}] = b.clock.Frame()
}

func (b *Bookkeeping) onCamera(event.CameraMovementFinished) {
	b.camera, b.cameraSet = b.clock.Frame(), true
}

// Subscribe routes the bus's simulation events into the bookkeeping.
func (b *Bookkeeping) Subscribe(bus *event.Bus) {
	event.Subscribe(bus, b.onSpecialPower)
	event.Subscribe(bus, b.onUpgrade)
	event.Subscribe(bus, b.onMedia)
	event.Subscribe(bus, b.onCamera)
}

// ==================== snapshot ====================

// Snapshot is the persistent part of the bookkeeping. Timers are stored as
// frames remaining so a restored session resumes them relative to its own
// clock.
type Snapshot struct {
	Counters map[string]int    `json:"counters"`
	Flags    map[string]bool   `json:"flags"`
	Timers   map[string]uint32 `json:"timers"`
	Attempts int               `json:"attempts"`
}

func (b *Bookkeeping) Snapshot() Snapshot {
	s := Snapshot{
		Counters: make(map[string]int, len(b.counters)),
		Flags:    make(map[string]bool, len(b.flags)),
		Timers:   make(map[string]uint32, len(b.timers)),
		Attempts: b.attempts,
	}
	for k, v := range b.counters {
		s.Counters[k] = v
	}
	for k, v := range b.flags {
		s.Flags[k] = v
	}
	now := b.clock.Frame()
	for k, deadline := range b.timers {
		var left uint32
		if deadline > now {
			left = deadline - now
		}
		s.Timers[k] = left
	}
	return s
}

// Restore replaces counters, flags, timers and the attempt count.
func (b *Bookkeeping) Restore(s Snapshot) {
	clear(b.counters)
	clear(b.flags)
	clear(b.timers)
	for k, v := range s.Counters {
		b.counters[b.fold(k)] = v
	}
	for k, v := range s.Flags {
		b.flags[b.fold(k)] = v
	}
	now := b.clock.Frame()
	for k, left := range s.Timers {
		b.timers[b.fold(k)] = now + left
	}
	b.attempts = s.Attempts
}
