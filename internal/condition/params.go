package condition

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zerohour/missiond/internal/world"
)

// Comparison is a relational operator applied as "actual OP threshold".
type Comparison int

const (
	LessThan Comparison = iota
	LessEqual
	Equal
	GreaterEqual
	Greater
	NotEqual
)

var comparisonSymbols = [...]string{"<", "<=", "==", ">=", ">", "!="}

func (c Comparison) String() string {
	if c < 0 || int(c) >= len(comparisonSymbols) {
		return fmt.Sprintf("comparison(%d)", int(c))
	}
	return comparisonSymbols[c]
}

func ParseComparison(s string) (Comparison, error) {
	switch strings.TrimSpace(s) {
	case "<", "less_than":
		return LessThan, nil
	case "<=", "less_equal":
		return LessEqual, nil
	case "==", "=", "equal":
		return Equal, nil
	case ">=", "greater_equal":
		return GreaterEqual, nil
	case ">", "greater_than":
		return Greater, nil
	case "!=", "<>", "not_equal":
		return NotEqual, nil
	}
	return 0, fmt.Errorf("unknown comparison %q", s)
}

func (c *Comparison) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseComparison(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*c = v
	return nil
}

// Int applies the operator to integers.
func (c Comparison) Int(actual, threshold int) bool {
	switch c {
	case LessThan:
		return actual < threshold
	case LessEqual:
		return actual <= threshold
	case Equal:
		return actual == threshold
	case GreaterEqual:
		return actual >= threshold
	case Greater:
		return actual > threshold
	case NotEqual:
		return actual != threshold
	}
	return false
}

// Float applies the operator to floats.
func (c Comparison) Float(actual, threshold float64) bool {
	switch c {
	case LessThan:
		return actual < threshold
	case LessEqual:
		return actual <= threshold
	case Equal:
		return actual == threshold
	case GreaterEqual:
		return actual >= threshold
	case Greater:
		return actual > threshold
	case NotEqual:
		return actual != threshold
	}
	return false
}

// Player and team sentinels recognised in references.
const (
	ThisPlayer      = "<This Player>"
	ThisPlayerEnemy = "<This Player's Enemy>"
	LocalPlayer     = "<Local Player>"
	ThisTeam        = "<This Team>"
)

// PlayerRef names a player. The first successful lookup stores the
// player's mask so later lookups skip the name index; volatile refs, whose
// referent depends on the evaluating script, never store it.
type PlayerRef struct {
	Name     string
	Volatile bool

	mask     world.PlayerMask
	resolved bool
}

// NewPlayerRef marks the this-player sentinels volatile.
func NewPlayerRef(name string) PlayerRef {
	return PlayerRef{
		Name:     name,
		Volatile: strings.EqualFold(name, ThisPlayer) || strings.EqualFold(name, ThisPlayerEnemy),
	}
}

// Resolved returns the stored mask, if any.
func (r *PlayerRef) Resolved() (world.PlayerMask, bool) { return r.mask, r.resolved }

func (r *PlayerRef) store(mask world.PlayerMask) {
	r.mask, r.resolved = mask, true
}

// Forget drops a stored mask.
func (r *PlayerRef) Forget() { r.mask, r.resolved = 0, false }

func (r *PlayerRef) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: player reference must be a name", n.Line)
	}
	*r = NewPlayerRef(n.Value)
	return nil
}

func (r PlayerRef) String() string { return r.Name }
