package system

import (
	"context"
	"time"

	"go.uber.org/zap"

	coresys "github.com/zerohour/missiond/internal/core/system"
	"github.com/zerohour/missiond/internal/persist"
	"github.com/zerohour/missiond/internal/script"
	"github.com/zerohour/missiond/internal/world"
)

// StateStore saves mission bookkeeping. Implemented by persist.MissionStateRepo.
type StateStore interface {
	Save(ctx context.Context, st *persist.MissionState) error
}

// FiringWriter appends script firings. Implemented by persist.FiringLogRepo.
type FiringWriter interface {
	Write(ctx context.Context, entries []persist.Firing) error
}

// PersistenceSystem periodically saves the mission bookkeeping and the
// script firings recorded since the last save. Phase 4 (Persist).
type PersistenceSystem struct {
	world     *world.State
	book      *script.Bookkeeping
	store     StateStore
	firings   FiringWriter
	mission   string
	log       *zap.Logger
	tickCount int
	interval  int // save every N ticks
	pending   []persist.Firing
}

func NewPersistenceSystem(ws *world.State, book *script.Bookkeeping, store StateStore, firings FiringWriter, mission string, log *zap.Logger, intervalTicks int) *PersistenceSystem {
	if intervalTicks < 1 {
		intervalTicks = 1
	}
	return &PersistenceSystem{
		world:    ws,
		book:     book,
		store:    store,
		firings:  firings,
		mission:  mission,
		log:      log,
		interval: intervalTicks,
	}
}

func (s *PersistenceSystem) Phase() coresys.Phase { return coresys.PhasePersist }

func (s *PersistenceSystem) Update(_ time.Duration) {
	s.tickCount++
	if s.tickCount < s.interval {
		return
	}
	s.tickCount = 0
	s.Save()
}

// Record queues a firing for the next save. Suitable as script.Engine.OnFire.
func (s *PersistenceSystem) Record(sc *script.Script, frame uint32) {
	s.pending = append(s.pending, persist.Firing{Mission: s.mission, Script: sc.Name, Frame: frame})
}

// Pending is the number of firings not yet written.
func (s *PersistenceSystem) Pending() int { return len(s.pending) }

// Save writes everything immediately. Called on shutdown as well.
func (s *PersistenceSystem) Save() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	st := &persist.MissionState{
		Mission: s.mission,
		Frame:   s.world.Clock().Frame(),
		Book:    s.book.Snapshot(),
		Names:   s.world.HistoricalNames(),
	}
	if err := s.store.Save(ctx, st); err != nil {
		s.log.Error("save mission state failed", zap.String("mission", s.mission), zap.Error(err))
		return false
	}
	if s.firings != nil && len(s.pending) > 0 {
		if err := s.firings.Write(ctx, s.pending); err != nil {
			s.log.Error("write firing log failed", zap.Int("entries", len(s.pending)), zap.Error(err))
			return false
		}
		s.pending = s.pending[:0]
	}
	s.log.Debug("mission state saved", zap.Uint32("frame", st.Frame))
	return true
}
