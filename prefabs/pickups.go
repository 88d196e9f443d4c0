package prefabs

import (
	"fmt"

	"github.com/milk9111/skirmish/component"
)

// PickupSpec is one collectible: touching it adds Amount to Stat.
type PickupSpec struct {
	Name   string             `yaml:"name"`
	Stat   component.StatKind `yaml:"stat"`
	Amount float64            `yaml:"amount"`
	Glyph  string             `yaml:"glyph"`
	Color  *YAMLColor         `yaml:"color"`
}

// PickupTable maps pickup names to their effect.
type PickupTable struct {
	Pickups []PickupSpec `yaml:"pickups"`
}

// Lookup finds a pickup by name.
func (t PickupTable) Lookup(name string) (PickupSpec, bool) {
	for _, p := range t.Pickups {
		if p.Name == name {
			return p, true
		}
	}
	return PickupSpec{}, false
}

// LoadPickups reads pickups.yaml.
func LoadPickups() (PickupTable, error) {
	return LoadPickupsFrom("pickups.yaml")
}

// LoadPickupsFrom reads a pickup table from filename.
func LoadPickupsFrom(filename string) (PickupTable, error) {
	table, err := LoadSpec[PickupTable](filename)
	if err != nil {
		return PickupTable{}, err
	}
	seen := make(map[string]bool, len(table.Pickups))
	for _, p := range table.Pickups {
		if p.Name == "" {
			return PickupTable{}, fmt.Errorf("prefabs: %s: pickup without name", filename)
		}
		if seen[p.Name] {
			return PickupTable{}, fmt.Errorf("prefabs: %s: duplicate pickup %q", filename, p.Name)
		}
		seen[p.Name] = true
	}
	return table, nil
}
