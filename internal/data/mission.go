package data

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/zerohour/missiond/internal/condition"
	"github.com/zerohour/missiond/internal/script"
	"github.com/zerohour/missiond/internal/world"
)

//go:embed mission.schema.json
var missionSchemaJSON []byte

const missionSchemaURL = "mission.schema.json"

var missionSchema = func() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(missionSchemaURL, bytes.NewReader(missionSchemaJSON)); err != nil {
		panic(fmt.Sprintf("mission schema: %v", err))
	}
	return c.MustCompile(missionSchemaURL)
}()

type missionDoc struct {
	Name    string      `yaml:"name"`
	Scripts []scriptDoc `yaml:"scripts"`
}

type scriptDoc struct {
	Name       string          `yaml:"name"`
	Owner      string          `yaml:"owner"`
	Team       string          `yaml:"team"`
	Active     *bool           `yaml:"active"`
	OneShot    bool            `yaml:"one_shot"`
	Delay      uint32          `yaml:"delay"`
	Conditions [][]yaml.Node   `yaml:"conditions"`
	Actions    []script.Action `yaml:"actions"`
}

// Mission is a loaded script file.
type Mission struct {
	Name    string
	Scripts []*script.Script
}

// LoadMission loads a mission script file and resolves script owners and
// teams against st.
func LoadMission(path string, st *world.State) (*Mission, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mission: %w", err)
	}
	return ParseMission(raw, st)
}

// ParseMission validates raw against the mission schema, decodes every
// condition body by kind and prepares it.
func ParseMission(raw []byte, st *world.State) (*Mission, error) {
	if err := validateMission(raw); err != nil {
		return nil, err
	}
	var doc missionDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse mission: %w", err)
	}
	m := &Mission{Name: doc.Name, Scripts: make([]*script.Script, 0, len(doc.Scripts))}
	for i := range doc.Scripts {
		s, err := buildScript(&doc.Scripts[i], st)
		if err != nil {
			return nil, fmt.Errorf("parse mission: script %q: %w", doc.Scripts[i].Name, err)
		}
		m.Scripts = append(m.Scripts, s)
	}
	return m, nil
}

func validateMission(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse mission: %w", err)
	}
	// Round-trip through JSON so the validator sees JSON value types.
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("parse mission: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("parse mission: %w", err)
	}
	if err := missionSchema.Validate(v); err != nil {
		return fmt.Errorf("validate mission: %w", err)
	}
	return nil
}

func buildScript(d *scriptDoc, st *world.State) (*script.Script, error) {
	s := &script.Script{
		Name:    d.Name,
		Active:  d.Active == nil || *d.Active,
		OneShot: d.OneShot,
		Delay:   d.Delay,
		Actions: d.Actions,
	}
	if d.Owner != "" {
		if s.Owner = st.PlayerByName(d.Owner); s.Owner == nil {
			return nil, fmt.Errorf("unknown owner %q", d.Owner)
		}
	}
	if d.Team != "" {
		if s.Team = st.TeamByName(d.Team); s.Team == nil {
			return nil, fmt.Errorf("unknown team %q", d.Team)
		}
		if s.Owner == nil {
			s.Owner = s.Team.Owner()
		}
	}
	for ci, clause := range d.Conditions {
		conds := make([]*condition.Condition, 0, len(clause))
		for i := range clause {
			b, err := decodeCondition(&clause[i])
			if err != nil {
				return nil, fmt.Errorf("clause %d: %w", ci, err)
			}
			conds = append(conds, condition.New(b))
		}
		s.Clauses = append(s.Clauses, conds)
	}
	return s, nil
}

// decodeCondition reads the kind tag, decodes the rest of the mapping into
// that kind's body and checks it.
func decodeCondition(n *yaml.Node) (condition.Body, error) {
	var head struct {
		Kind string `yaml:"kind"`
	}
	if err := n.Decode(&head); err != nil {
		return nil, err
	}
	k, err := condition.ParseKind(head.Kind)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	b, err := condition.NewBody(k)
	if err != nil {
		return nil, err
	}
	if err := n.Decode(b); err != nil {
		return nil, fmt.Errorf("line %d: %s: %w", n.Line, k, err)
	}
	if err := condition.Prepare(b); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return b, nil
}
