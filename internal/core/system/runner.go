package system

import (
	"fmt"
	"time"
)

const phaseCount = int(PhaseCleanup) + 1

// Runner executes systems phase by phase each frame. Systems registered in
// the same phase run in registration order.
type Runner struct {
	phases [phaseCount][]System
}

func NewRunner() *Runner {
	return &Runner{}
}

// Register panics on a phase outside the known range; that is a wiring bug.
func (r *Runner) Register(s System) {
	p := s.Phase()
	if p < 0 || int(p) >= phaseCount {
		panic(fmt.Sprintf("system: register %T in unknown phase %d", s, int(p)))
	}
	r.phases[p] = append(r.phases[p], s)
}

// Len is the number of registered systems.
func (r *Runner) Len() int {
	n := 0
	for _, ss := range r.phases {
		n += len(ss)
	}
	return n
}

func (r *Runner) Tick(dt time.Duration) {
	for _, ss := range r.phases {
		for _, s := range ss {
			s.Update(dt)
		}
	}
}

// TickPhase runs only the systems of one phase.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	if phase < 0 || int(phase) >= phaseCount {
		return
	}
	for _, s := range r.phases[phase] {
		s.Update(dt)
	}
}
