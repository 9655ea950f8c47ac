package system

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/zerohour/missiond/internal/core/ecs"
	"github.com/zerohour/missiond/internal/core/event"
	coresys "github.com/zerohour/missiond/internal/core/system"
	"github.com/zerohour/missiond/internal/data"
	"github.com/zerohour/missiond/internal/world"
)

var errNoTarget = errors.New("no such object")

// TimelineSystem applies the scenario steps due this frame to the world and
// queues the matching bus events. A failing step is logged and skipped.
// Phase 0 (Input).
type TimelineSystem struct {
	world    *world.State
	bus      *event.Bus
	timeline *data.Timeline
	log      *zap.Logger
	applied  int
}

func NewTimelineSystem(ws *world.State, bus *event.Bus, tl *data.Timeline, log *zap.Logger) *TimelineSystem {
	return &TimelineSystem{world: ws, bus: bus, timeline: tl, log: log}
}

func (s *TimelineSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *TimelineSystem) Update(_ time.Duration) {
	frame := s.world.Clock().Frame()
	for _, step := range s.timeline.Due(frame) {
		if err := s.apply(step); err != nil {
			s.log.Warn("timeline step failed",
				zap.Uint32("frame", frame),
				zap.Stringer("do", step.Do),
				zap.Error(err))
			continue
		}
		s.applied++
	}
}

// Done reports whether every step has been handed out.
func (s *TimelineSystem) Done() bool { return s.timeline.Remaining() == 0 }

// Applied is the number of steps that took effect.
func (s *TimelineSystem) Applied() int { return s.applied }

func (s *TimelineSystem) object(name string) (*world.Object, error) {
	if o := s.world.ObjectByName(name); o != nil {
		return o, nil
	}
	return nil, fmt.Errorf("%q: %w", name, errNoTarget)
}

// optional resolves a name that may be empty.
func (s *TimelineSystem) optional(name string) *world.Object {
	if name == "" {
		return nil
	}
	return s.world.ObjectByName(name)
}

func (s *TimelineSystem) player(name string) (*world.Player, error) {
	if p := s.world.PlayerByName(name); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("unknown player %q", name)
}

func sourceID(o *world.Object) ecs.EntityID {
	if o == nil {
		return ecs.InvalidID
	}
	return o.ID()
}

func (s *TimelineSystem) apply(st data.Step) error {
	ws := s.world

	// Steps that need no target object.
	switch st.Do {
	case data.StepSpawn:
		if st.Object == nil {
			return errors.New("spawn without object")
		}
		_, err := data.Spawn(ws, st.Object)
		return err
	case data.StepCredits, data.StepPower, data.StepScience, data.StepSetEnemy,
		data.StepSpecialPower, data.StepUpgrade:
		p, err := s.player(st.Player)
		if err != nil {
			return err
		}
		switch st.Do {
		case data.StepCredits:
			p.Credits = st.Value
		case data.StepPower:
			p.ExtraProduction = st.Value
			p.ExtraConsumption = int(st.Amount)
		case data.StepScience:
			p.GrantScience(st.Subject)
		case data.StepSetEnemy:
			enemy, err := s.player(st.Subject)
			if err != nil {
				return err
			}
			p.SetEnemy(enemy)
		case data.StepSpecialPower:
			event.Emit(s.bus, event.SpecialPowerUsed{
				PlayerIndex: p.Index(),
				Power:       st.Subject,
				SourceID:    sourceID(s.optional(st.Source)),
				Stage:       event.PowerStage(st.Stage),
			})
		case data.StepUpgrade:
			event.Emit(s.bus, event.UpgradeCompleted{
				PlayerIndex: p.Index(),
				Upgrade:     st.Subject,
				SourceID:    sourceID(s.optional(st.Source)),
			})
		}
		return nil
	case data.StepTeamState:
		t := ws.TeamByName(st.Team)
		if t == nil {
			return fmt.Errorf("unknown team %q", st.Team)
		}
		ws.SetTeamState(t, st.Subject)
		return nil
	case data.StepVideo:
		event.Emit(s.bus, event.MediaFinished{Kind: event.MediaVideo, Name: st.Subject})
		return nil
	case data.StepSpeech:
		event.Emit(s.bus, event.MediaFinished{Kind: event.MediaSpeech, Name: st.Subject})
		return nil
	case data.StepAudio:
		event.Emit(s.bus, event.MediaFinished{Kind: event.MediaAudio, Name: st.Subject})
		return nil
	case data.StepMusic:
		event.Emit(s.bus, event.MediaFinished{Kind: event.MediaMusic, Name: st.Subject})
		return nil
	case data.StepCamera:
		event.Emit(s.bus, event.CameraMovementFinished{})
		return nil
	}

	target, err := s.object(st.Target)
	if err != nil {
		return err
	}
	switch st.Do {
	case data.StepDestroy:
		ws.Kill(target, s.optional(st.Source))
	case data.StepMove:
		ws.Move(target, st.Pos)
	case data.StepDamage:
		ws.Damage(target, s.optional(st.Source), st.Amount)
	case data.StepStatus:
		if st.Clear {
			ws.SetStatus(target, 0, st.Status)
		} else {
			ws.SetStatus(target, st.Status, 0)
		}
	case data.StepReveal:
		p, err := s.player(st.Player)
		if err != nil {
			return err
		}
		ws.Reveal(target, p, st.Visible)
	case data.StepEnter:
		passenger, err := s.object(st.Source)
		if err != nil {
			return err
		}
		return ws.Enter(target, passenger)
	case data.StepEvacuate:
		ws.Evacuate(target)
	case data.StepCapture:
		var team *world.Team
		if st.Team != "" {
			team = ws.TeamByName(st.Team)
		} else if p := ws.PlayerByName(st.Player); p != nil {
			team = p.DefaultTeam()
		}
		if team == nil {
			return fmt.Errorf("capture %q: no team (team=%q player=%q)", st.Target, st.Team, st.Player)
		}
		ws.Transfer(target, team)
	case data.StepReachPath:
		ws.ReachPathEnd(target, st.Subject)
	case data.StepOffMap:
		ws.SetOffMap(target, !st.Clear)
	default:
		return fmt.Errorf("unhandled step %s", st.Do)
	}
	return nil
}
