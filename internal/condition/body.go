package condition

import (
	"github.com/expr-lang/expr/vm"

	"github.com/zerohour/missiond/internal/world"
)

// Body is the typed payload of one condition kind. The set of bodies is
// closed; Evaluator dispatches on the concrete type.
type Body interface {
	Kind() Kind
	sealed()
}

// ==================== script engine state ====================

type False struct{}
type True struct{}

type Counter struct {
	Name  string     `yaml:"name"`
	Op    Comparison `yaml:"op"`
	Value int        `yaml:"value"`
}

type Flag struct {
	Name  string `yaml:"name"`
	Value bool   `yaml:"value"`
}

type TimerExpired struct {
	Name string `yaml:"name"`
}

type MissionAttempts struct {
	Op    Comparison `yaml:"op"`
	Value int        `yaml:"value"`
}

type CameraMovementFinished struct{}

type VideoFinished struct {
	Name string `yaml:"name"`
}

type SpeechFinished struct {
	Name string `yaml:"name"`
}

type AudioFinished struct {
	Name string `yaml:"name"`
}

type MusicTrackCompleted struct {
	Name string `yaml:"name"`
}

// Lua calls a predicate function loaded into the scripting VM.
type Lua struct {
	Function string   `yaml:"function"`
	Args     []string `yaml:"args,omitempty"`
}

// Expression is an expr-lang program over ExprEnv, compiled at load.
type Expression struct {
	Source string `yaml:"source"`

	program *vm.Program
}

// ==================== player ====================

type PlayerAllDestroyed struct {
	Player PlayerRef `yaml:"player"`
}

type PlayerAllBuildFacilitiesDestroyed struct {
	Player PlayerRef `yaml:"player"`
}

type PlayerHasCredits struct {
	Player PlayerRef  `yaml:"player"`
	Op     Comparison `yaml:"op"`
	Value  int        `yaml:"value"`
}

type PlayerHasNOrFewerBuildings struct {
	Player PlayerRef `yaml:"player"`
	Count  int       `yaml:"count"`
}

type PlayerHasNOrFewerFactionBuildings struct {
	Player PlayerRef `yaml:"player"`
	Count  int       `yaml:"count"`
}

type PlayerHasPower struct {
	Player PlayerRef `yaml:"player"`
}

type PlayerHasNoPower struct {
	Player PlayerRef `yaml:"player"`
}

type PlayerPowerComparePercent struct {
	Player  PlayerRef  `yaml:"player"`
	Op      Comparison `yaml:"op"`
	Percent int        `yaml:"percent"`
}

type PlayerExcessPowerCompare struct {
	Player PlayerRef  `yaml:"player"`
	Op     Comparison `yaml:"op"`
	Value  int        `yaml:"value"`
}

type PlayerHasObjectComparison struct {
	Player   PlayerRef  `yaml:"player"`
	Op       Comparison `yaml:"op"`
	Count    int        `yaml:"count"`
	Template string     `yaml:"template"`
}

type PlayerHasUnitTypeInArea struct {
	Player   PlayerRef  `yaml:"player"`
	Op       Comparison `yaml:"op"`
	Count    int        `yaml:"count"`
	Template string     `yaml:"template"`
	Area     string     `yaml:"area"`
}

type PlayerHasUnitKindInArea struct {
	Player PlayerRef    `yaml:"player"`
	Op     Comparison   `yaml:"op"`
	Count  int          `yaml:"count"`
	KindOf world.KindOf `yaml:"kind_of"`
	Area   string       `yaml:"area"`
}

type PlayerDestroyedNBuildingsOfPlayer struct {
	Player PlayerRef `yaml:"player"`
	Count  int       `yaml:"count"`
	Victim PlayerRef `yaml:"victim"`
}

// SpecialPowerParams is shared by the special power kinds; Unit is only
// set by the _from_named variants.
type SpecialPowerParams struct {
	Player PlayerRef `yaml:"player"`
	Power  string    `yaml:"power"`
	Unit   string    `yaml:"unit,omitempty"`
}

type PlayerTriggeredSpecialPower struct {
	SpecialPowerParams `yaml:",inline"`
}

type PlayerTriggeredSpecialPowerFromNamed struct {
	SpecialPowerParams `yaml:",inline"`
}

type PlayerMidwaySpecialPower struct {
	SpecialPowerParams `yaml:",inline"`
}

type PlayerMidwaySpecialPowerFromNamed struct {
	SpecialPowerParams `yaml:",inline"`
}

type PlayerCompletedSpecialPower struct {
	SpecialPowerParams `yaml:",inline"`
}

type PlayerCompletedSpecialPowerFromNamed struct {
	SpecialPowerParams `yaml:",inline"`
}

type PlayerBuiltUpgrade struct {
	Player  PlayerRef `yaml:"player"`
	Upgrade string    `yaml:"upgrade"`
}

type PlayerBuiltUpgradeFromNamed struct {
	Player  PlayerRef `yaml:"player"`
	Upgrade string    `yaml:"upgrade"`
	Unit    string    `yaml:"unit"`
}

type PlayerAcquiredScience struct {
	Player  PlayerRef `yaml:"player"`
	Science string    `yaml:"science"`
}

type PlayerHasSciencePurchasePoints struct {
	Player PlayerRef `yaml:"player"`
	Points int       `yaml:"points"`
}

type PlayerLostObjectType struct {
	Player   PlayerRef `yaml:"player"`
	Template string    `yaml:"template"`
}

type BuiltByPlayer struct {
	Template string    `yaml:"template"`
	Player   PlayerRef `yaml:"player"`
}

type BuildingEnteredByPlayer struct {
	Player PlayerRef `yaml:"player"`
	Unit   string    `yaml:"unit"`
}

// EnemySighted: Unit sees a live object of Player that Unit's owner
// regards with Relation.
type EnemySighted struct {
	Unit     string             `yaml:"unit"`
	Relation world.Relationship `yaml:"relation"`
	Player   PlayerRef          `yaml:"player"`
}

type TypeSighted struct {
	Unit     string    `yaml:"unit"`
	Template string    `yaml:"template"`
	Player   PlayerRef `yaml:"player"`
}

type MultiplayerAlliedVictory struct{}
type MultiplayerAlliedDefeat struct{}
type MultiplayerPlayerDefeat struct{}

type StartPositionIs struct {
	Player   PlayerRef `yaml:"player"`
	Position int       `yaml:"position"`
}

// ==================== team ====================

type TeamDestroyed struct {
	Team string `yaml:"team"`
}

type TeamHasUnits struct {
	Team string `yaml:"team"`
}

type TeamStateIs struct {
	Team  string `yaml:"team"`
	State string `yaml:"state"`
}

type TeamStateIsNot struct {
	Team  string `yaml:"team"`
	State string `yaml:"state"`
}

// TeamAreaParams is shared by the team/area kinds. A zero KindOf considers
// every member.
type TeamAreaParams struct {
	Team   string       `yaml:"team"`
	Area   string       `yaml:"area"`
	KindOf world.KindOf `yaml:"kind_of,omitempty"`
}

type TeamInsideAreaPartially struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamInsideAreaEntirely struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamOutsideAreaEntirely struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamEnteredAreaEntirely struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamEnteredAreaPartially struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamExitedAreaEntirely struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamExitedAreaPartially struct {
	TeamAreaParams `yaml:",inline"`
}

type TeamAttackedByType struct {
	Team     string `yaml:"team"`
	Template string `yaml:"template"`
}

type TeamAttackedByPlayer struct {
	Team   string    `yaml:"team"`
	Player PlayerRef `yaml:"player"`
}

type TeamCreated struct {
	Team string `yaml:"team"`
}

type TeamDiscovered struct {
	Team   string    `yaml:"team"`
	Player PlayerRef `yaml:"player"`
}

type TeamOwnedByPlayer struct {
	Team   string    `yaml:"team"`
	Player PlayerRef `yaml:"player"`
}

type TeamReachedWaypointsEnd struct {
	Team string `yaml:"team"`
	Path string `yaml:"path"`
}

type TeamAllHaveStatus struct {
	Team   string             `yaml:"team"`
	Status world.ObjectStatus `yaml:"status"`
}

type TeamSomeHaveStatus struct {
	Team   string             `yaml:"team"`
	Status world.ObjectStatus `yaml:"status"`
}

// ==================== named unit ====================

type NamedInsideArea struct {
	Unit string `yaml:"unit"`
	Area string `yaml:"area"`
}

type NamedOutsideArea struct {
	Unit string `yaml:"unit"`
	Area string `yaml:"area"`
}

type NamedDestroyed struct {
	Unit string `yaml:"unit"`
}

type NamedNotDestroyed struct {
	Unit string `yaml:"unit"`
}

type NamedDying struct {
	Unit string `yaml:"unit"`
}

type NamedTotallyDead struct {
	Unit string `yaml:"unit"`
}

type NamedCreated struct {
	Unit string `yaml:"unit"`
}

type NamedAttackedByType struct {
	Unit     string `yaml:"unit"`
	Template string `yaml:"template"`
}

type NamedAttackedByPlayer struct {
	Unit   string    `yaml:"unit"`
	Player PlayerRef `yaml:"player"`
}

type NamedDiscovered struct {
	Unit   string    `yaml:"unit"`
	Player PlayerRef `yaml:"player"`
}

type NamedOwnedByPlayer struct {
	Unit   string    `yaml:"unit"`
	Player PlayerRef `yaml:"player"`
}

type NamedReachedWaypointsEnd struct {
	Unit string `yaml:"unit"`
	Path string `yaml:"path"`
}

type NamedEnteredArea struct {
	Unit string `yaml:"unit"`
	Area string `yaml:"area"`
}

type NamedExitedArea struct {
	Unit string `yaml:"unit"`
	Area string `yaml:"area"`
}

type UnitHealth struct {
	Unit    string     `yaml:"unit"`
	Op      Comparison `yaml:"op"`
	Percent int        `yaml:"percent"`
}

type UnitHasObjectStatus struct {
	Unit   string             `yaml:"unit"`
	Status world.ObjectStatus `yaml:"status"`
}

type UnitEmptied struct {
	Unit string `yaml:"unit"`
}

type NamedBuildingIsEmpty struct {
	Unit string `yaml:"unit"`
}

type NamedHasFreeContainerSlots struct {
	Unit string `yaml:"unit"`
}

// ==================== skirmish ====================

type SkirmishPlayerHasUnitsInArea struct {
	Player PlayerRef `yaml:"player"`
	Area   string    `yaml:"area"`
}

type SkirmishPlayerIsOutsideArea struct {
	Player PlayerRef `yaml:"player"`
	Area   string    `yaml:"area"`
}

type SkirmishNamedAreaExists struct {
	Area string `yaml:"area"`
}

type SkirmishPlayerFaction struct {
	Player PlayerRef `yaml:"player"`
	Side   string    `yaml:"side"`
}

type SkirmishPlayerHasBeenAttackedByPlayer struct {
	Player   PlayerRef `yaml:"player"`
	Attacker PlayerRef `yaml:"attacker"`
}

type SkirmishPlayerHasDiscoveredPlayer struct {
	Player PlayerRef `yaml:"player"`
	Other  PlayerRef `yaml:"other"`
}

type SkirmishValueInArea struct {
	Player PlayerRef  `yaml:"player"`
	Op     Comparison `yaml:"op"`
	Value  int        `yaml:"value"`
	Area   string     `yaml:"area"`
}

type SkirmishTechBuildingWithinDistance struct {
	Player   PlayerRef `yaml:"player"`
	Distance float64   `yaml:"distance"`
	Area     string    `yaml:"area"`
}

type SkirmishSuppliesValueWithinDistance struct {
	Player   PlayerRef `yaml:"player"`
	Distance float64   `yaml:"distance"`
	Area     string    `yaml:"area"`
	Value    int       `yaml:"value"`
}

type SkirmishPlayerHasComparisonGarrisoned struct {
	Player PlayerRef  `yaml:"player"`
	Op     Comparison `yaml:"op"`
	Count  int        `yaml:"count"`
}

type SkirmishPlayerHasComparisonCapturedUnits struct {
	Player PlayerRef  `yaml:"player"`
	Op     Comparison `yaml:"op"`
	Count  int        `yaml:"count"`
}
