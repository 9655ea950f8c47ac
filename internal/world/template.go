package world

// Template is the static description shared by every object built from it.
type Template struct {
	Name            string  `yaml:"name"`
	Side            string  `yaml:"side"`
	KindOf          KindOf  `yaml:"kind_of"`
	BuildCost       int     `yaml:"build_cost"`
	MaxHealth       float64 `yaml:"max_health"`
	VisionRange     float64 `yaml:"vision_range"`
	Energy          int     `yaml:"energy"` // >0 produces power, <0 consumes it
	ContainCapacity int     `yaml:"contain_capacity"`
	Supplies        int     `yaml:"supplies"`
}

func (t *Template) IsKindOf(k KindOf) bool { return t.KindOf&k != 0 }
