package system

import (
	"time"

	"github.com/zerohour/missiond/internal/core/event"
	coresys "github.com/zerohour/missiond/internal/core/system"
)

// EventDispatchSystem swaps the bus buffers and delivers the queued events.
// Phase 1 (PreUpdate).
type EventDispatchSystem struct {
	bus *event.Bus
}

func NewEventDispatchSystem(bus *event.Bus) *EventDispatchSystem {
	return &EventDispatchSystem{bus: bus}
}

func (s *EventDispatchSystem) Phase() coresys.Phase { return coresys.PhasePreUpdate }

func (s *EventDispatchSystem) Update(_ time.Duration) {
	s.bus.SwapBuffers()
	s.bus.DispatchAll()
}

// TriggerSystem recomputes trigger-area membership edges.
// Phase 2 (Update).
type TriggerSystem struct {
	world interface{ UpdateTriggerAreas() int }
}

func NewTriggerSystem(ws interface{ UpdateTriggerAreas() int }) *TriggerSystem {
	return &TriggerSystem{world: ws}
}

func (s *TriggerSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *TriggerSystem) Update(_ time.Duration) {
	s.world.UpdateTriggerAreas()
}
