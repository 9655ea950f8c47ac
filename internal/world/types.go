package world

import (
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// Coord is a position on the ground plane, in world units.
type Coord struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (c Coord) DistanceTo(o Coord) float64 {
	return math.Hypot(c.X-o.X, c.Y-o.Y)
}

// PlayerMask has one bit per player index.
type PlayerMask uint32

// MaxPlayers bounds player indices so a mask fits in PlayerMask.
const MaxPlayers = 16

func (m PlayerMask) Has(index int) bool {
	return index >= 0 && index < MaxPlayers && m&(1<<uint(index)) != 0
}

// KindOf is a bitmask over the fixed "kind of thing" vocabulary.
type KindOf uint64

const (
	KindStructure KindOf = 1 << iota
	KindInfantry
	KindVehicle
	KindAircraft
	KindCrate
	KindInert
	KindProjectile
	KindCommandCenter
	KindFactory
	KindBaseDefense
	KindPowerPlant
	KindSupplyCenter
	KindTechBuilding
	KindSupplySource
	KindHarvester
	KindDozer
	KindCountForVictory
	KindGarrisonable
	KindTransport
)

var kindNames = []struct {
	name string
	kind KindOf
}{
	{"structure", KindStructure},
	{"infantry", KindInfantry},
	{"vehicle", KindVehicle},
	{"aircraft", KindAircraft},
	{"crate", KindCrate},
	{"inert", KindInert},
	{"projectile", KindProjectile},
	{"command_center", KindCommandCenter},
	{"factory", KindFactory},
	{"base_defense", KindBaseDefense},
	{"power_plant", KindPowerPlant},
	{"supply_center", KindSupplyCenter},
	{"tech_building", KindTechBuilding},
	{"supply_source", KindSupplySource},
	{"harvester", KindHarvester},
	{"dozer", KindDozer},
	{"count_for_victory", KindCountForVictory},
	{"garrisonable", KindGarrisonable},
	{"transport", KindTransport},
}

// Any reports whether k shares at least one bit with mask. A zero mask
// matches everything.
func (k KindOf) Any(mask KindOf) bool { return mask == 0 || k&mask != 0 }

// Multi is the set/clear test used by partition filters.
func (k KindOf) Multi(mustBeSet, mustBeClear KindOf) bool {
	return k&mustBeSet == mustBeSet && k&mustBeClear == 0
}

func (k KindOf) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	for _, kn := range kindNames {
		if k&kn.kind != 0 {
			parts = append(parts, kn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseKindOf accepts a single name or a '|' separated list.
func ParseKindOf(s string) (KindOf, error) {
	var k KindOf
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		found := false
		for _, kn := range kindNames {
			if kn.name == part {
				k |= kn.kind
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown kind-of %q", part)
		}
	}
	return k, nil
}

// UnmarshalYAML accepts either "a|b" or a sequence of names.
func (k *KindOf) UnmarshalYAML(n *yaml.Node) error {
	var names []string
	switch n.Kind {
	case yaml.ScalarNode:
		names = []string{n.Value}
	case yaml.SequenceNode:
		if err := n.Decode(&names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: kind-of must be a name or a list", n.Line)
	}
	var out KindOf
	for _, s := range names {
		v, err := ParseKindOf(s)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		out |= v
	}
	*k = out
	return nil
}

// ObjectStatus is a bitmask of transient object states.
type ObjectStatus uint32

const (
	StatusDestroyed ObjectStatus = 1 << iota
	StatusUnderConstruction
	StatusStealthed
	StatusDetected
	StatusDisabledEMP
	StatusDisabledHacked
	StatusDisabledUnmanned
	StatusSold
	StatusRepairing
	StatusAirborne
	StatusUnselectable
)

var statusNames = []struct {
	name   string
	status ObjectStatus
}{
	{"destroyed", StatusDestroyed},
	{"under_construction", StatusUnderConstruction},
	{"stealthed", StatusStealthed},
	{"detected", StatusDetected},
	{"disabled_emp", StatusDisabledEMP},
	{"disabled_hacked", StatusDisabledHacked},
	{"disabled_unmanned", StatusDisabledUnmanned},
	{"sold", StatusSold},
	{"repairing", StatusRepairing},
	{"airborne", StatusAirborne},
	{"unselectable", StatusUnselectable},
}

func (s ObjectStatus) Has(bits ObjectStatus) bool { return s&bits == bits }

// ParseObjectStatus accepts a single name or a '|' separated list.
func ParseObjectStatus(s string) (ObjectStatus, error) {
	var out ObjectStatus
	for _, part := range strings.Split(s, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		found := false
		for _, sn := range statusNames {
			if sn.name == part {
				out |= sn.status
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown object status %q", part)
		}
	}
	return out, nil
}

func (s *ObjectStatus) UnmarshalYAML(n *yaml.Node) error {
	var names []string
	switch n.Kind {
	case yaml.ScalarNode:
		names = []string{n.Value}
	case yaml.SequenceNode:
		if err := n.Decode(&names); err != nil {
			return err
		}
	default:
		return fmt.Errorf("line %d: status must be a name or a list", n.Line)
	}
	var out ObjectStatus
	for _, name := range names {
		v, err := ParseObjectStatus(name)
		if err != nil {
			return fmt.Errorf("line %d: %w", n.Line, err)
		}
		out |= v
	}
	*s = out
	return nil
}

// Relationship is how one player regards another.
type Relationship int

const (
	Enemies Relationship = iota
	Neutral
	Allies
)

func (r Relationship) String() string {
	switch r {
	case Enemies:
		return "enemies"
	case Neutral:
		return "neutral"
	case Allies:
		return "allies"
	}
	return fmt.Sprintf("relationship(%d)", int(r))
}

func ParseRelationship(s string) (Relationship, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enemies", "enemy":
		return Enemies, nil
	case "neutral":
		return Neutral, nil
	case "allies", "ally", "friend", "friends":
		return Allies, nil
	}
	return 0, fmt.Errorf("unknown relationship %q", s)
}

func (r *Relationship) UnmarshalYAML(n *yaml.Node) error {
	v, err := ParseRelationship(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*r = v
	return nil
}

// Shroud is an object's visibility to one player.
type Shroud int

const (
	ShroudClear Shroud = iota
	ShroudFogged
	ShroudShrouded
)
