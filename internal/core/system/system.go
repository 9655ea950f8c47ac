package system

import "time"

// Phase defines execution ordering within a single frame.
type Phase int

const (
	PhaseInput     Phase = iota // 0: apply scheduled world mutations
	PhasePreUpdate              // 1: deliver events queued since the last swap
	PhaseUpdate                 // 2: world bookkeeping (trigger-area edges)
	PhaseScript                 // 3: evaluate mission scripts
	PhasePersist                // 4: save script bookkeeping
	PhaseCleanup                // 5: destroy queued objects
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhasePreUpdate:
		return "pre-update"
	case PhaseUpdate:
		return "update"
	case PhaseScript:
		return "script"
	case PhasePersist:
		return "persist"
	case PhaseCleanup:
		return "cleanup"
	}
	return "unknown"
}

// System is the interface every frame system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
