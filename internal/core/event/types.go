package event

import "github.com/zerohour/missiond/internal/core/ecs"

// Events the simulation reports to the script engine. They are edges: the
// bookkeeping stamps them with the frame they are delivered on.

// PowerStage is how far a special power has progressed.
type PowerStage int

const (
	PowerTriggered PowerStage = iota
	PowerMidway
	PowerCompleted
)

type SpecialPowerUsed struct {
	PlayerIndex int
	Power       string
	SourceID    ecs.EntityID
	Stage       PowerStage
}

type UpgradeCompleted struct {
	PlayerIndex int
	Upgrade     string
	SourceID    ecs.EntityID
}

// MediaKind distinguishes the presentation channels a script can wait on.
type MediaKind int

const (
	MediaVideo MediaKind = iota
	MediaSpeech
	MediaAudio
	MediaMusic
)

type MediaFinished struct {
	Kind MediaKind
	Name string
}

type CameraMovementFinished struct{}
