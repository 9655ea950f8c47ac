package system

import (
	"time"

	coresys "github.com/zerohour/missiond/internal/core/system"
	"github.com/zerohour/missiond/internal/script"
)

// ScriptSystem evaluates the mission scripts once per frame.
// Phase 3 (Script).
type ScriptSystem struct {
	engine *script.Engine
	fired  int
}

func NewScriptSystem(engine *script.Engine) *ScriptSystem {
	return &ScriptSystem{engine: engine}
}

func (s *ScriptSystem) Phase() coresys.Phase { return coresys.PhaseScript }

func (s *ScriptSystem) Update(_ time.Duration) {
	s.fired += s.engine.Tick()
}

// Fired is the total number of script firings so far.
func (s *ScriptSystem) Fired() int { return s.fired }
