package component

import (
	"fmt"
	"strings"
)

// StatKind identifies a character stat for pickups and stat-bar updates.
type StatKind int

const (
	LifePoints StatKind = iota
	Shield
	CharacterSpeed
	AttackSpeed
	JournalEntry
)

var statKindNames = map[StatKind]string{
	LifePoints:     "life_points",
	Shield:         "shield",
	CharacterSpeed: "character_speed",
	AttackSpeed:    "attack_speed",
	JournalEntry:   "journal_entry",
}

func (k StatKind) String() string {
	if name, ok := statKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("stat(%d)", int(k))
}

// ParseStatKind maps a prefab name such as "shield" or "attack_speed" to a
// StatKind. Matching ignores case, dashes and underscores.
func ParseStatKind(s string) (StatKind, error) {
	norm := normalizeStatName(s)
	for k, name := range statKindNames {
		if normalizeStatName(name) == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("component: unknown stat kind %q", s)
}

// UnmarshalYAML lets prefab files spell stat kinds by name.
func (k *StatKind) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseStatKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

func normalizeStatName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, "-", "")
}
