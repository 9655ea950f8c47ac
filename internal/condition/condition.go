// Package condition evaluates mission script conditions against the world.
//
// A Condition pairs a typed Body with a small memo used by the counting
// kinds: the last verdict, the frame it was confirmed and the player it
// was computed for. Evaluator.Evaluate dispatches on the body type; every
// lookup goes through Facade and every spatial scan through a pooled
// partition iterator.
package condition

import "github.com/zerohour/missiond/internal/world"

type Condition struct {
	Body Body

	verdict       CachedVerdict
	lastEvaluated uint32
	subject       world.PlayerMask
}

func New(b Body) *Condition { return &Condition{Body: b} }

func (c *Condition) Kind() Kind {
	if c.Body == nil {
		return KindInvalid
	}
	return c.Body.Kind()
}

// Verdict is the memoised verdict, VerdictUnknown when none is held.
func (c *Condition) Verdict() CachedVerdict { return c.verdict }

// Reset drops the memoised verdict and every stored player mask.
func (c *Condition) Reset() {
	c.verdict = VerdictUnknown
	c.lastEvaluated = 0
	c.subject = 0
	if c.Body != nil {
		for _, r := range playerRefs(c.Body) {
			r.Forget()
		}
	}
}

func (c *Condition) store(v CachedVerdict, frame uint32, subject world.PlayerMask) {
	c.verdict = v
	c.lastEvaluated = frame
	c.subject = subject
}
