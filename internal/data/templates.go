package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zerohour/missiond/internal/world"
)

// LoadTemplates loads an object template list (templates.yaml).
func LoadTemplates(path string) ([]*world.Template, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return ParseTemplates(raw)
}

func ParseTemplates(raw []byte) ([]*world.Template, error) {
	var list []*world.Template
	if err := yaml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for i, t := range list {
		if t == nil || t.Name == "" {
			return nil, fmt.Errorf("template #%d: missing name", i)
		}
		if t.MaxHealth <= 0 {
			t.MaxHealth = 1
		}
	}
	return list, nil
}

// RegisterTemplates adds every template to st.
func RegisterTemplates(st *world.State, list []*world.Template) error {
	for _, t := range list {
		if err := st.AddTemplate(t); err != nil {
			return err
		}
	}
	return nil
}
