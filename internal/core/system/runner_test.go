package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordSystem struct {
	name  string
	phase Phase
	log   *[]string
}

func (s recordSystem) Phase() Phase { return s.phase }
func (s recordSystem) Update(time.Duration) {
	*s.log = append(*s.log, s.name)
}

func TestRunner_PhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recordSystem{"cleanup", PhaseCleanup, &log})
	r.Register(recordSystem{"scripts", PhaseScript, &log})
	r.Register(recordSystem{"timeline", PhaseInput, &log})
	r.Register(recordSystem{"triggers", PhaseUpdate, &log})
	r.Register(recordSystem{"scripts-late", PhaseScript, &log})

	r.Tick(time.Millisecond)
	assert.Equal(t, []string{"timeline", "triggers", "scripts", "scripts-late", "cleanup"}, log)

	log = log[:0]
	r.TickPhase(PhaseScript, time.Millisecond)
	assert.Equal(t, []string{"scripts", "scripts-late"}, log)
	assert.Equal(t, 5, r.Len())

	assert.Panics(t, func() { r.Register(recordSystem{"bogus", Phase(42), &log}) })
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "script", PhaseScript.String())
	assert.Equal(t, "unknown", Phase(99).String())
}
