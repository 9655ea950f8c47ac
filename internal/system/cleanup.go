package system

import (
	"time"

	coresys "github.com/zerohour/missiond/internal/core/system"
	"github.com/zerohour/missiond/internal/world"
)

// CleanupSystem flushes objects killed this frame at tick end.
// Phase 5 (Cleanup).
type CleanupSystem struct {
	world   *world.State
	flushed int
}

func NewCleanupSystem(ws *world.State) *CleanupSystem {
	return &CleanupSystem{world: ws}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	if s.world.PendingDestroy() == 0 {
		return
	}
	s.flushed += s.world.FlushDestroyed()
}

// Flushed is the number of objects removed so far.
func (s *CleanupSystem) Flushed() int { return s.flushed }
