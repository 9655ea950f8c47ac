package condition

import (
	"fmt"
	"strings"
)

// Kind identifies a condition body type.
type Kind int

const (
	KindInvalid Kind = iota
	KindFalse
	KindTrue
	KindCounter
	KindFlag
	KindTimerExpired
	KindMissionAttempts
	KindCameraMovementFinished
	KindVideoFinished
	KindSpeechFinished
	KindAudioFinished
	KindMusicTrackCompleted
	KindLua
	KindExpression
	KindPlayerAllDestroyed
	KindPlayerAllBuildFacilitiesDestroyed
	KindPlayerHasCredits
	KindPlayerHasNOrFewerBuildings
	KindPlayerHasNOrFewerFactionBuildings
	KindPlayerHasPower
	KindPlayerHasNoPower
	KindPlayerPowerComparePercent
	KindPlayerExcessPowerCompare
	KindPlayerHasObjectComparison
	KindPlayerHasUnitTypeInArea
	KindPlayerHasUnitKindInArea
	KindPlayerDestroyedNBuildingsOfPlayer
	KindPlayerTriggeredSpecialPower
	KindPlayerTriggeredSpecialPowerFromNamed
	KindPlayerMidwaySpecialPower
	KindPlayerMidwaySpecialPowerFromNamed
	KindPlayerCompletedSpecialPower
	KindPlayerCompletedSpecialPowerFromNamed
	KindPlayerBuiltUpgrade
	KindPlayerBuiltUpgradeFromNamed
	KindPlayerAcquiredScience
	KindPlayerHasSciencePurchasePoints
	KindPlayerLostObjectType
	KindBuiltByPlayer
	KindBuildingEnteredByPlayer
	KindEnemySighted
	KindTypeSighted
	KindMultiplayerAlliedVictory
	KindMultiplayerAlliedDefeat
	KindMultiplayerPlayerDefeat
	KindStartPositionIs
	KindTeamDestroyed
	KindTeamHasUnits
	KindTeamStateIs
	KindTeamStateIsNot
	KindTeamInsideAreaPartially
	KindTeamInsideAreaEntirely
	KindTeamOutsideAreaEntirely
	KindTeamEnteredAreaEntirely
	KindTeamEnteredAreaPartially
	KindTeamExitedAreaEntirely
	KindTeamExitedAreaPartially
	KindTeamAttackedByType
	KindTeamAttackedByPlayer
	KindTeamCreated
	KindTeamDiscovered
	KindTeamOwnedByPlayer
	KindTeamReachedWaypointsEnd
	KindTeamAllHaveStatus
	KindTeamSomeHaveStatus
	KindNamedInsideArea
	KindNamedOutsideArea
	KindNamedDestroyed
	KindNamedNotDestroyed
	KindNamedDying
	KindNamedTotallyDead
	KindNamedCreated
	KindNamedAttackedByType
	KindNamedAttackedByPlayer
	KindNamedDiscovered
	KindNamedOwnedByPlayer
	KindNamedReachedWaypointsEnd
	KindNamedEnteredArea
	KindNamedExitedArea
	KindUnitHealth
	KindUnitHasObjectStatus
	KindUnitEmptied
	KindNamedBuildingIsEmpty
	KindNamedHasFreeContainerSlots
	KindSkirmishPlayerHasUnitsInArea
	KindSkirmishPlayerIsOutsideArea
	KindSkirmishNamedAreaExists
	KindSkirmishPlayerFaction
	KindSkirmishPlayerHasBeenAttackedByPlayer
	KindSkirmishPlayerHasDiscoveredPlayer
	KindSkirmishValueInArea
	KindSkirmishTechBuildingWithinDistance
	KindSkirmishSuppliesValueWithinDistance
	KindSkirmishPlayerHasComparisonGarrisoned
	KindSkirmishPlayerHasComparisonCapturedUnits
	kindCount
)

var kindTable = [kindCount]struct {
	name string
	new  func() Body
}{
	KindFalse:                                    {"false", func() Body { return &False{} }},
	KindTrue:                                     {"true", func() Body { return &True{} }},
	KindCounter:                                  {"counter", func() Body { return &Counter{} }},
	KindFlag:                                     {"flag", func() Body { return &Flag{} }},
	KindTimerExpired:                             {"timer_expired", func() Body { return &TimerExpired{} }},
	KindMissionAttempts:                          {"mission_attempts", func() Body { return &MissionAttempts{} }},
	KindCameraMovementFinished:                   {"camera_movement_finished", func() Body { return &CameraMovementFinished{} }},
	KindVideoFinished:                            {"video_finished", func() Body { return &VideoFinished{} }},
	KindSpeechFinished:                           {"speech_finished", func() Body { return &SpeechFinished{} }},
	KindAudioFinished:                            {"audio_finished", func() Body { return &AudioFinished{} }},
	KindMusicTrackCompleted:                      {"music_track_completed", func() Body { return &MusicTrackCompleted{} }},
	KindLua:                                      {"lua", func() Body { return &Lua{} }},
	KindExpression:                               {"expression", func() Body { return &Expression{} }},
	KindPlayerAllDestroyed:                       {"player_all_destroyed", func() Body { return &PlayerAllDestroyed{} }},
	KindPlayerAllBuildFacilitiesDestroyed:        {"player_all_build_facilities_destroyed", func() Body { return &PlayerAllBuildFacilitiesDestroyed{} }},
	KindPlayerHasCredits:                         {"player_has_credits", func() Body { return &PlayerHasCredits{} }},
	KindPlayerHasNOrFewerBuildings:               {"player_has_n_or_fewer_buildings", func() Body { return &PlayerHasNOrFewerBuildings{} }},
	KindPlayerHasNOrFewerFactionBuildings:        {"player_has_n_or_fewer_faction_buildings", func() Body { return &PlayerHasNOrFewerFactionBuildings{} }},
	KindPlayerHasPower:                           {"player_has_power", func() Body { return &PlayerHasPower{} }},
	KindPlayerHasNoPower:                         {"player_has_no_power", func() Body { return &PlayerHasNoPower{} }},
	KindPlayerPowerComparePercent:                {"player_power_compare_percent", func() Body { return &PlayerPowerComparePercent{} }},
	KindPlayerExcessPowerCompare:                 {"player_excess_power_compare", func() Body { return &PlayerExcessPowerCompare{} }},
	KindPlayerHasObjectComparison:                {"player_has_object_comparison", func() Body { return &PlayerHasObjectComparison{} }},
	KindPlayerHasUnitTypeInArea:                  {"player_has_unit_type_in_area", func() Body { return &PlayerHasUnitTypeInArea{} }},
	KindPlayerHasUnitKindInArea:                  {"player_has_unit_kind_in_area", func() Body { return &PlayerHasUnitKindInArea{} }},
	KindPlayerDestroyedNBuildingsOfPlayer:        {"player_destroyed_n_buildings_of_player", func() Body { return &PlayerDestroyedNBuildingsOfPlayer{} }},
	KindPlayerTriggeredSpecialPower:              {"player_triggered_special_power", func() Body { return &PlayerTriggeredSpecialPower{} }},
	KindPlayerTriggeredSpecialPowerFromNamed:     {"player_triggered_special_power_from_named", func() Body { return &PlayerTriggeredSpecialPowerFromNamed{} }},
	KindPlayerMidwaySpecialPower:                 {"player_midway_special_power", func() Body { return &PlayerMidwaySpecialPower{} }},
	KindPlayerMidwaySpecialPowerFromNamed:        {"player_midway_special_power_from_named", func() Body { return &PlayerMidwaySpecialPowerFromNamed{} }},
	KindPlayerCompletedSpecialPower:              {"player_completed_special_power", func() Body { return &PlayerCompletedSpecialPower{} }},
	KindPlayerCompletedSpecialPowerFromNamed:     {"player_completed_special_power_from_named", func() Body { return &PlayerCompletedSpecialPowerFromNamed{} }},
	KindPlayerBuiltUpgrade:                       {"player_built_upgrade", func() Body { return &PlayerBuiltUpgrade{} }},
	KindPlayerBuiltUpgradeFromNamed:              {"player_built_upgrade_from_named", func() Body { return &PlayerBuiltUpgradeFromNamed{} }},
	KindPlayerAcquiredScience:                    {"player_acquired_science", func() Body { return &PlayerAcquiredScience{} }},
	KindPlayerHasSciencePurchasePoints:           {"player_has_science_purchase_points", func() Body { return &PlayerHasSciencePurchasePoints{} }},
	KindPlayerLostObjectType:                     {"player_lost_object_type", func() Body { return &PlayerLostObjectType{} }},
	KindBuiltByPlayer:                            {"built_by_player", func() Body { return &BuiltByPlayer{} }},
	KindBuildingEnteredByPlayer:                  {"building_entered_by_player", func() Body { return &BuildingEnteredByPlayer{} }},
	KindEnemySighted:                             {"enemy_sighted", func() Body { return &EnemySighted{} }},
	KindTypeSighted:                              {"type_sighted", func() Body { return &TypeSighted{} }},
	KindMultiplayerAlliedVictory:                 {"multiplayer_allied_victory", func() Body { return &MultiplayerAlliedVictory{} }},
	KindMultiplayerAlliedDefeat:                  {"multiplayer_allied_defeat", func() Body { return &MultiplayerAlliedDefeat{} }},
	KindMultiplayerPlayerDefeat:                  {"multiplayer_player_defeat", func() Body { return &MultiplayerPlayerDefeat{} }},
	KindStartPositionIs:                          {"start_position_is", func() Body { return &StartPositionIs{} }},
	KindTeamDestroyed:                            {"team_destroyed", func() Body { return &TeamDestroyed{} }},
	KindTeamHasUnits:                             {"team_has_units", func() Body { return &TeamHasUnits{} }},
	KindTeamStateIs:                              {"team_state_is", func() Body { return &TeamStateIs{} }},
	KindTeamStateIsNot:                           {"team_state_is_not", func() Body { return &TeamStateIsNot{} }},
	KindTeamInsideAreaPartially:                  {"team_inside_area_partially", func() Body { return &TeamInsideAreaPartially{} }},
	KindTeamInsideAreaEntirely:                   {"team_inside_area_entirely", func() Body { return &TeamInsideAreaEntirely{} }},
	KindTeamOutsideAreaEntirely:                  {"team_outside_area_entirely", func() Body { return &TeamOutsideAreaEntirely{} }},
	KindTeamEnteredAreaEntirely:                  {"team_entered_area_entirely", func() Body { return &TeamEnteredAreaEntirely{} }},
	KindTeamEnteredAreaPartially:                 {"team_entered_area_partially", func() Body { return &TeamEnteredAreaPartially{} }},
	KindTeamExitedAreaEntirely:                   {"team_exited_area_entirely", func() Body { return &TeamExitedAreaEntirely{} }},
	KindTeamExitedAreaPartially:                  {"team_exited_area_partially", func() Body { return &TeamExitedAreaPartially{} }},
	KindTeamAttackedByType:                       {"team_attacked_by_type", func() Body { return &TeamAttackedByType{} }},
	KindTeamAttackedByPlayer:                     {"team_attacked_by_player", func() Body { return &TeamAttackedByPlayer{} }},
	KindTeamCreated:                              {"team_created", func() Body { return &TeamCreated{} }},
	KindTeamDiscovered:                           {"team_discovered", func() Body { return &TeamDiscovered{} }},
	KindTeamOwnedByPlayer:                        {"team_owned_by_player", func() Body { return &TeamOwnedByPlayer{} }},
	KindTeamReachedWaypointsEnd:                  {"team_reached_waypoints_end", func() Body { return &TeamReachedWaypointsEnd{} }},
	KindTeamAllHaveStatus:                        {"team_all_have_status", func() Body { return &TeamAllHaveStatus{} }},
	KindTeamSomeHaveStatus:                       {"team_some_have_status", func() Body { return &TeamSomeHaveStatus{} }},
	KindNamedInsideArea:                          {"named_inside_area", func() Body { return &NamedInsideArea{} }},
	KindNamedOutsideArea:                         {"named_outside_area", func() Body { return &NamedOutsideArea{} }},
	KindNamedDestroyed:                           {"named_destroyed", func() Body { return &NamedDestroyed{} }},
	KindNamedNotDestroyed:                        {"named_not_destroyed", func() Body { return &NamedNotDestroyed{} }},
	KindNamedDying:                               {"named_dying", func() Body { return &NamedDying{} }},
	KindNamedTotallyDead:                         {"named_totally_dead", func() Body { return &NamedTotallyDead{} }},
	KindNamedCreated:                             {"named_created", func() Body { return &NamedCreated{} }},
	KindNamedAttackedByType:                      {"named_attacked_by_type", func() Body { return &NamedAttackedByType{} }},
	KindNamedAttackedByPlayer:                    {"named_attacked_by_player", func() Body { return &NamedAttackedByPlayer{} }},
	KindNamedDiscovered:                          {"named_discovered", func() Body { return &NamedDiscovered{} }},
	KindNamedOwnedByPlayer:                       {"named_owned_by_player", func() Body { return &NamedOwnedByPlayer{} }},
	KindNamedReachedWaypointsEnd:                 {"named_reached_waypoints_end", func() Body { return &NamedReachedWaypointsEnd{} }},
	KindNamedEnteredArea:                         {"named_entered_area", func() Body { return &NamedEnteredArea{} }},
	KindNamedExitedArea:                          {"named_exited_area", func() Body { return &NamedExitedArea{} }},
	KindUnitHealth:                               {"unit_health", func() Body { return &UnitHealth{} }},
	KindUnitHasObjectStatus:                      {"unit_has_object_status", func() Body { return &UnitHasObjectStatus{} }},
	KindUnitEmptied:                              {"unit_emptied", func() Body { return &UnitEmptied{} }},
	KindNamedBuildingIsEmpty:                     {"named_building_is_empty", func() Body { return &NamedBuildingIsEmpty{} }},
	KindNamedHasFreeContainerSlots:               {"named_has_free_container_slots", func() Body { return &NamedHasFreeContainerSlots{} }},
	KindSkirmishPlayerHasUnitsInArea:             {"skirmish_player_has_units_in_area", func() Body { return &SkirmishPlayerHasUnitsInArea{} }},
	KindSkirmishPlayerIsOutsideArea:              {"skirmish_player_is_outside_area", func() Body { return &SkirmishPlayerIsOutsideArea{} }},
	KindSkirmishNamedAreaExists:                  {"skirmish_named_area_exists", func() Body { return &SkirmishNamedAreaExists{} }},
	KindSkirmishPlayerFaction:                    {"skirmish_player_faction", func() Body { return &SkirmishPlayerFaction{} }},
	KindSkirmishPlayerHasBeenAttackedByPlayer:    {"skirmish_player_has_been_attacked_by_player", func() Body { return &SkirmishPlayerHasBeenAttackedByPlayer{} }},
	KindSkirmishPlayerHasDiscoveredPlayer:        {"skirmish_player_has_discovered_player", func() Body { return &SkirmishPlayerHasDiscoveredPlayer{} }},
	KindSkirmishValueInArea:                      {"skirmish_value_in_area", func() Body { return &SkirmishValueInArea{} }},
	KindSkirmishTechBuildingWithinDistance:       {"skirmish_tech_building_within_distance", func() Body { return &SkirmishTechBuildingWithinDistance{} }},
	KindSkirmishSuppliesValueWithinDistance:      {"skirmish_supplies_value_within_distance", func() Body { return &SkirmishSuppliesValueWithinDistance{} }},
	KindSkirmishPlayerHasComparisonGarrisoned:    {"skirmish_player_has_comparison_garrisoned", func() Body { return &SkirmishPlayerHasComparisonGarrisoned{} }},
	KindSkirmishPlayerHasComparisonCapturedUnits: {"skirmish_player_has_comparison_captured_units", func() Body { return &SkirmishPlayerHasComparisonCapturedUnits{} }},
}

func (k Kind) String() string {
	if k <= KindInvalid || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTable[k].name
}

// ParseKind looks a kind up by its snake_case name.
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KindInvalid, fmt.Errorf("unknown condition kind %q", name)
	}
	return k, nil
}

// NewBody returns a pointer to a zero body of kind k, ready to decode into.
func NewBody(k Kind) (Body, error) {
	if k <= KindInvalid || k >= kindCount {
		return nil, fmt.Errorf("unknown condition kind %d", int(k))
	}
	return kindTable[k].new(), nil
}

// Kinds lists every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindInvalid + 1; k < kindCount; k++ {
		m[kindTable[k].name] = k
	}
	return m
}()

func (*False) Kind() Kind                             { return KindFalse }
func (*True) Kind() Kind                              { return KindTrue }
func (*Counter) Kind() Kind                           { return KindCounter }
func (*Flag) Kind() Kind                              { return KindFlag }
func (*TimerExpired) Kind() Kind                      { return KindTimerExpired }
func (*MissionAttempts) Kind() Kind                   { return KindMissionAttempts }
func (*CameraMovementFinished) Kind() Kind            { return KindCameraMovementFinished }
func (*VideoFinished) Kind() Kind                     { return KindVideoFinished }
func (*SpeechFinished) Kind() Kind                    { return KindSpeechFinished }
func (*AudioFinished) Kind() Kind                     { return KindAudioFinished }
func (*MusicTrackCompleted) Kind() Kind               { return KindMusicTrackCompleted }
func (*Lua) Kind() Kind                               { return KindLua }
func (*Expression) Kind() Kind                        { return KindExpression }
func (*PlayerAllDestroyed) Kind() Kind                { return KindPlayerAllDestroyed }
func (*PlayerAllBuildFacilitiesDestroyed) Kind() Kind { return KindPlayerAllBuildFacilitiesDestroyed }
func (*PlayerHasCredits) Kind() Kind                  { return KindPlayerHasCredits }
func (*PlayerHasNOrFewerBuildings) Kind() Kind        { return KindPlayerHasNOrFewerBuildings }
func (*PlayerHasNOrFewerFactionBuildings) Kind() Kind { return KindPlayerHasNOrFewerFactionBuildings }
func (*PlayerHasPower) Kind() Kind                    { return KindPlayerHasPower }
func (*PlayerHasNoPower) Kind() Kind                  { return KindPlayerHasNoPower }
func (*PlayerPowerComparePercent) Kind() Kind         { return KindPlayerPowerComparePercent }
func (*PlayerExcessPowerCompare) Kind() Kind          { return KindPlayerExcessPowerCompare }
func (*PlayerHasObjectComparison) Kind() Kind         { return KindPlayerHasObjectComparison }
func (*PlayerHasUnitTypeInArea) Kind() Kind           { return KindPlayerHasUnitTypeInArea }
func (*PlayerHasUnitKindInArea) Kind() Kind           { return KindPlayerHasUnitKindInArea }
func (*PlayerDestroyedNBuildingsOfPlayer) Kind() Kind { return KindPlayerDestroyedNBuildingsOfPlayer }
func (*PlayerTriggeredSpecialPower) Kind() Kind       { return KindPlayerTriggeredSpecialPower }
func (*PlayerTriggeredSpecialPowerFromNamed) Kind() Kind {
	return KindPlayerTriggeredSpecialPowerFromNamed
}
func (*PlayerMidwaySpecialPower) Kind() Kind          { return KindPlayerMidwaySpecialPower }
func (*PlayerMidwaySpecialPowerFromNamed) Kind() Kind { return KindPlayerMidwaySpecialPowerFromNamed }
func (*PlayerCompletedSpecialPower) Kind() Kind       { return KindPlayerCompletedSpecialPower }
func (*PlayerCompletedSpecialPowerFromNamed) Kind() Kind {
	return KindPlayerCompletedSpecialPowerFromNamed
}
func (*PlayerBuiltUpgrade) Kind() Kind             { return KindPlayerBuiltUpgrade }
func (*PlayerBuiltUpgradeFromNamed) Kind() Kind    { return KindPlayerBuiltUpgradeFromNamed }
func (*PlayerAcquiredScience) Kind() Kind          { return KindPlayerAcquiredScience }
func (*PlayerHasSciencePurchasePoints) Kind() Kind { return KindPlayerHasSciencePurchasePoints }
func (*PlayerLostObjectType) Kind() Kind           { return KindPlayerLostObjectType }
func (*BuiltByPlayer) Kind() Kind                  { return KindBuiltByPlayer }
func (*BuildingEnteredByPlayer) Kind() Kind        { return KindBuildingEnteredByPlayer }
func (*EnemySighted) Kind() Kind                   { return KindEnemySighted }
func (*TypeSighted) Kind() Kind                    { return KindTypeSighted }
func (*MultiplayerAlliedVictory) Kind() Kind       { return KindMultiplayerAlliedVictory }
func (*MultiplayerAlliedDefeat) Kind() Kind        { return KindMultiplayerAlliedDefeat }
func (*MultiplayerPlayerDefeat) Kind() Kind        { return KindMultiplayerPlayerDefeat }
func (*StartPositionIs) Kind() Kind                { return KindStartPositionIs }
func (*TeamDestroyed) Kind() Kind                  { return KindTeamDestroyed }
func (*TeamHasUnits) Kind() Kind                   { return KindTeamHasUnits }
func (*TeamStateIs) Kind() Kind                    { return KindTeamStateIs }
func (*TeamStateIsNot) Kind() Kind                 { return KindTeamStateIsNot }
func (*TeamInsideAreaPartially) Kind() Kind        { return KindTeamInsideAreaPartially }
func (*TeamInsideAreaEntirely) Kind() Kind         { return KindTeamInsideAreaEntirely }
func (*TeamOutsideAreaEntirely) Kind() Kind        { return KindTeamOutsideAreaEntirely }
func (*TeamEnteredAreaEntirely) Kind() Kind        { return KindTeamEnteredAreaEntirely }
func (*TeamEnteredAreaPartially) Kind() Kind       { return KindTeamEnteredAreaPartially }
func (*TeamExitedAreaEntirely) Kind() Kind         { return KindTeamExitedAreaEntirely }
func (*TeamExitedAreaPartially) Kind() Kind        { return KindTeamExitedAreaPartially }
func (*TeamAttackedByType) Kind() Kind             { return KindTeamAttackedByType }
func (*TeamAttackedByPlayer) Kind() Kind           { return KindTeamAttackedByPlayer }
func (*TeamCreated) Kind() Kind                    { return KindTeamCreated }
func (*TeamDiscovered) Kind() Kind                 { return KindTeamDiscovered }
func (*TeamOwnedByPlayer) Kind() Kind              { return KindTeamOwnedByPlayer }
func (*TeamReachedWaypointsEnd) Kind() Kind        { return KindTeamReachedWaypointsEnd }
func (*TeamAllHaveStatus) Kind() Kind              { return KindTeamAllHaveStatus }
func (*TeamSomeHaveStatus) Kind() Kind             { return KindTeamSomeHaveStatus }
func (*NamedInsideArea) Kind() Kind                { return KindNamedInsideArea }
func (*NamedOutsideArea) Kind() Kind               { return KindNamedOutsideArea }
func (*NamedDestroyed) Kind() Kind                 { return KindNamedDestroyed }
func (*NamedNotDestroyed) Kind() Kind              { return KindNamedNotDestroyed }
func (*NamedDying) Kind() Kind                     { return KindNamedDying }
func (*NamedTotallyDead) Kind() Kind               { return KindNamedTotallyDead }
func (*NamedCreated) Kind() Kind                   { return KindNamedCreated }
func (*NamedAttackedByType) Kind() Kind            { return KindNamedAttackedByType }
func (*NamedAttackedByPlayer) Kind() Kind          { return KindNamedAttackedByPlayer }
func (*NamedDiscovered) Kind() Kind                { return KindNamedDiscovered }
func (*NamedOwnedByPlayer) Kind() Kind             { return KindNamedOwnedByPlayer }
func (*NamedReachedWaypointsEnd) Kind() Kind       { return KindNamedReachedWaypointsEnd }
func (*NamedEnteredArea) Kind() Kind               { return KindNamedEnteredArea }
func (*NamedExitedArea) Kind() Kind                { return KindNamedExitedArea }
func (*UnitHealth) Kind() Kind                     { return KindUnitHealth }
func (*UnitHasObjectStatus) Kind() Kind            { return KindUnitHasObjectStatus }
func (*UnitEmptied) Kind() Kind                    { return KindUnitEmptied }
func (*NamedBuildingIsEmpty) Kind() Kind           { return KindNamedBuildingIsEmpty }
func (*NamedHasFreeContainerSlots) Kind() Kind     { return KindNamedHasFreeContainerSlots }
func (*SkirmishPlayerHasUnitsInArea) Kind() Kind   { return KindSkirmishPlayerHasUnitsInArea }
func (*SkirmishPlayerIsOutsideArea) Kind() Kind    { return KindSkirmishPlayerIsOutsideArea }
func (*SkirmishNamedAreaExists) Kind() Kind        { return KindSkirmishNamedAreaExists }
func (*SkirmishPlayerFaction) Kind() Kind          { return KindSkirmishPlayerFaction }
func (*SkirmishPlayerHasBeenAttackedByPlayer) Kind() Kind {
	return KindSkirmishPlayerHasBeenAttackedByPlayer
}
func (*SkirmishPlayerHasDiscoveredPlayer) Kind() Kind  { return KindSkirmishPlayerHasDiscoveredPlayer }
func (*SkirmishValueInArea) Kind() Kind                { return KindSkirmishValueInArea }
func (*SkirmishTechBuildingWithinDistance) Kind() Kind { return KindSkirmishTechBuildingWithinDistance }
func (*SkirmishSuppliesValueWithinDistance) Kind() Kind {
	return KindSkirmishSuppliesValueWithinDistance
}
func (*SkirmishPlayerHasComparisonGarrisoned) Kind() Kind {
	return KindSkirmishPlayerHasComparisonGarrisoned
}
func (*SkirmishPlayerHasComparisonCapturedUnits) Kind() Kind {
	return KindSkirmishPlayerHasComparisonCapturedUnits
}

func (*False) sealed()                                    {}
func (*True) sealed()                                     {}
func (*Counter) sealed()                                  {}
func (*Flag) sealed()                                     {}
func (*TimerExpired) sealed()                             {}
func (*MissionAttempts) sealed()                          {}
func (*CameraMovementFinished) sealed()                   {}
func (*VideoFinished) sealed()                            {}
func (*SpeechFinished) sealed()                           {}
func (*AudioFinished) sealed()                            {}
func (*MusicTrackCompleted) sealed()                      {}
func (*Lua) sealed()                                      {}
func (*Expression) sealed()                               {}
func (*PlayerAllDestroyed) sealed()                       {}
func (*PlayerAllBuildFacilitiesDestroyed) sealed()        {}
func (*PlayerHasCredits) sealed()                         {}
func (*PlayerHasNOrFewerBuildings) sealed()               {}
func (*PlayerHasNOrFewerFactionBuildings) sealed()        {}
func (*PlayerHasPower) sealed()                           {}
func (*PlayerHasNoPower) sealed()                         {}
func (*PlayerPowerComparePercent) sealed()                {}
func (*PlayerExcessPowerCompare) sealed()                 {}
func (*PlayerHasObjectComparison) sealed()                {}
func (*PlayerHasUnitTypeInArea) sealed()                  {}
func (*PlayerHasUnitKindInArea) sealed()                  {}
func (*PlayerDestroyedNBuildingsOfPlayer) sealed()        {}
func (*PlayerTriggeredSpecialPower) sealed()              {}
func (*PlayerTriggeredSpecialPowerFromNamed) sealed()     {}
func (*PlayerMidwaySpecialPower) sealed()                 {}
func (*PlayerMidwaySpecialPowerFromNamed) sealed()        {}
func (*PlayerCompletedSpecialPower) sealed()              {}
func (*PlayerCompletedSpecialPowerFromNamed) sealed()     {}
func (*PlayerBuiltUpgrade) sealed()                       {}
func (*PlayerBuiltUpgradeFromNamed) sealed()              {}
func (*PlayerAcquiredScience) sealed()                    {}
func (*PlayerHasSciencePurchasePoints) sealed()           {}
func (*PlayerLostObjectType) sealed()                     {}
func (*BuiltByPlayer) sealed()                            {}
func (*BuildingEnteredByPlayer) sealed()                  {}
func (*EnemySighted) sealed()                             {}
func (*TypeSighted) sealed()                              {}
func (*MultiplayerAlliedVictory) sealed()                 {}
func (*MultiplayerAlliedDefeat) sealed()                  {}
func (*MultiplayerPlayerDefeat) sealed()                  {}
func (*StartPositionIs) sealed()                          {}
func (*TeamDestroyed) sealed()                            {}
func (*TeamHasUnits) sealed()                             {}
func (*TeamStateIs) sealed()                              {}
func (*TeamStateIsNot) sealed()                           {}
func (*TeamInsideAreaPartially) sealed()                  {}
func (*TeamInsideAreaEntirely) sealed()                   {}
func (*TeamOutsideAreaEntirely) sealed()                  {}
func (*TeamEnteredAreaEntirely) sealed()                  {}
func (*TeamEnteredAreaPartially) sealed()                 {}
func (*TeamExitedAreaEntirely) sealed()                   {}
func (*TeamExitedAreaPartially) sealed()                  {}
func (*TeamAttackedByType) sealed()                       {}
func (*TeamAttackedByPlayer) sealed()                     {}
func (*TeamCreated) sealed()                              {}
func (*TeamDiscovered) sealed()                           {}
func (*TeamOwnedByPlayer) sealed()                        {}
func (*TeamReachedWaypointsEnd) sealed()                  {}
func (*TeamAllHaveStatus) sealed()                        {}
func (*TeamSomeHaveStatus) sealed()                       {}
func (*NamedInsideArea) sealed()                          {}
func (*NamedOutsideArea) sealed()                         {}
func (*NamedDestroyed) sealed()                           {}
func (*NamedNotDestroyed) sealed()                        {}
func (*NamedDying) sealed()                               {}
func (*NamedTotallyDead) sealed()                         {}
func (*NamedCreated) sealed()                             {}
func (*NamedAttackedByType) sealed()                      {}
func (*NamedAttackedByPlayer) sealed()                    {}
func (*NamedDiscovered) sealed()                          {}
func (*NamedOwnedByPlayer) sealed()                       {}
func (*NamedReachedWaypointsEnd) sealed()                 {}
func (*NamedEnteredArea) sealed()                         {}
func (*NamedExitedArea) sealed()                          {}
func (*UnitHealth) sealed()                               {}
func (*UnitHasObjectStatus) sealed()                      {}
func (*UnitEmptied) sealed()                              {}
func (*NamedBuildingIsEmpty) sealed()                     {}
func (*NamedHasFreeContainerSlots) sealed()               {}
func (*SkirmishPlayerHasUnitsInArea) sealed()             {}
func (*SkirmishPlayerIsOutsideArea) sealed()              {}
func (*SkirmishNamedAreaExists) sealed()                  {}
func (*SkirmishPlayerFaction) sealed()                    {}
func (*SkirmishPlayerHasBeenAttackedByPlayer) sealed()    {}
func (*SkirmishPlayerHasDiscoveredPlayer) sealed()        {}
func (*SkirmishValueInArea) sealed()                      {}
func (*SkirmishTechBuildingWithinDistance) sealed()       {}
func (*SkirmishSuppliesValueWithinDistance) sealed()      {}
func (*SkirmishPlayerHasComparisonGarrisoned) sealed()    {}
func (*SkirmishPlayerHasComparisonCapturedUnits) sealed() {}
