package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zerohour/missiond/internal/world"
)

type PlayerSpec struct {
	Name             string                        `yaml:"name"`
	Side             string                        `yaml:"side"`
	Credits          int                           `yaml:"credits"`
	SciencePoints    int                           `yaml:"science_points"`
	StartPosition    int                           `yaml:"start_position"`
	PowerProduction  int                           `yaml:"power_production"`
	PowerConsumption int                           `yaml:"power_consumption"`
	Enemy            string                        `yaml:"enemy"`
	Relations        map[string]world.Relationship `yaml:"relations"`
	Sciences         []string                      `yaml:"sciences"`
}

type TeamSpec struct {
	Name  string `yaml:"name"`
	Owner string `yaml:"owner"`
	State string `yaml:"state"`
}

// ObjectSpec places an object. Team wins over Player; with only Player
// the object joins that player's default team.
type ObjectSpec struct {
	Template string             `yaml:"template"`
	Team     string             `yaml:"team"`
	Player   string             `yaml:"player"`
	Name     string             `yaml:"name"`
	Pos      world.Coord        `yaml:"pos"`
	Health   float64            `yaml:"health"`
	Status   world.ObjectStatus `yaml:"status"`
	Supplies int                `yaml:"supplies"`
	Built    bool               `yaml:"built"`
}

type ShapeSpec struct {
	Name   string        `yaml:"name"`
	Points []world.Coord `yaml:"points"`
}

// Scenario is a map: its players, teams, starting objects, trigger areas,
// waypoint paths and the scheduled timeline.
type Scenario struct {
	LocalPlayer string       `yaml:"local_player"`
	Players     []PlayerSpec `yaml:"players"`
	Teams       []TeamSpec   `yaml:"teams"`
	Objects     []ObjectSpec `yaml:"objects"`
	Triggers    []ShapeSpec  `yaml:"triggers"`
	Paths       []ShapeSpec  `yaml:"paths"`
	Timeline    []Step       `yaml:"timeline"`
}

// LoadScenario loads scenario.yaml.
func LoadScenario(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(raw)
}

func ParseScenario(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(sc.Players) == 0 {
		return nil, fmt.Errorf("parse scenario: no players")
	}
	return &sc, nil
}

// Build populates st. Templates must already be registered.
func (sc *Scenario) Build(st *world.State) error {
	for _, ps := range sc.Players {
		p, err := st.AddPlayer(ps.Name, ps.Side)
		if err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
		p.Credits = ps.Credits
		p.SciencePurchasePoints = ps.SciencePoints
		p.StartPosition = ps.StartPosition
		p.ExtraProduction = ps.PowerProduction
		p.ExtraConsumption = ps.PowerConsumption
		for _, s := range ps.Sciences {
			p.GrantScience(s)
		}
	}
	for _, ps := range sc.Players {
		p := st.PlayerByName(ps.Name)
		if ps.Enemy != "" {
			e := st.PlayerByName(ps.Enemy)
			if e == nil {
				return fmt.Errorf("build scenario: player %s: unknown enemy %q", ps.Name, ps.Enemy)
			}
			p.SetEnemy(e)
		}
		for name, rel := range ps.Relations {
			o := st.PlayerByName(name)
			if o == nil {
				return fmt.Errorf("build scenario: player %s: unknown player %q in relations", ps.Name, name)
			}
			p.SetRelationship(o, rel)
		}
	}
	if sc.LocalPlayer != "" {
		p := st.PlayerByName(sc.LocalPlayer)
		if p == nil {
			return fmt.Errorf("build scenario: unknown local player %q", sc.LocalPlayer)
		}
		st.SetLocalPlayer(p)
	}

	for _, ts := range sc.Teams {
		owner := st.PlayerByName(ts.Owner)
		if owner == nil {
			return fmt.Errorf("build scenario: team %s: unknown owner %q", ts.Name, ts.Owner)
		}
		t, err := st.NewTeam(ts.Name, owner)
		if err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
		st.SetTeamState(t, ts.State)
	}
	for _, ss := range sc.Triggers {
		if err := st.AddTrigger(world.NewPolygonTrigger(ss.Name, ss.Points)); err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
	}
	for _, ss := range sc.Paths {
		if err := st.AddWaypointPath(world.NewWaypointPath(ss.Name, ss.Points)); err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
	}
	for i := range sc.Objects {
		if _, err := Spawn(st, &sc.Objects[i]); err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
	}
	return nil
}

// Spawn resolves spec against st and creates the object.
func Spawn(st *world.State, spec *ObjectSpec) (*world.Object, error) {
	tmpl := st.TemplateByName(spec.Template)
	if tmpl == nil {
		return nil, fmt.Errorf("object %q: unknown template %q", spec.Name, spec.Template)
	}
	var team *world.Team
	switch {
	case spec.Team != "":
		team = st.TeamByName(spec.Team)
	case spec.Player != "":
		if p := st.PlayerByName(spec.Player); p != nil {
			team = p.DefaultTeam()
		}
	}
	if team == nil {
		return nil, fmt.Errorf("object %q: no team (team=%q player=%q)", spec.Name, spec.Team, spec.Player)
	}
	return st.Spawn(world.SpawnSpec{
		Template: tmpl,
		Team:     team,
		Pos:      spec.Pos,
		Name:     spec.Name,
		Health:   spec.Health,
		Status:   spec.Status,
		Supplies: spec.Supplies,
		Built:    spec.Built,
	})
}
