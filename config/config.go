package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Game holds the arena layout and front-end settings.
type Game struct {
	// Simulation
	TPS         int   `yaml:"tps"`
	Arena       Arena `yaml:"arena"`
	StartPaused bool  `yaml:"start_paused"`

	// Pickups are collected when an actor's box comes within this radius.
	PickupRadius float64 `yaml:"pickup_radius"`

	// Spawns
	Player  Spawn             `yaml:"player"`
	Enemies []Spawn           `yaml:"enemies"`
	Pickups []PickupPlacement `yaml:"pickups"`

	// Scene shown while fighting; victory and defeat names live in the
	// player prefab.
	StartScene string `yaml:"start_scene"`

	// Front end
	Muted     bool   `yaml:"muted"`
	PrefabDir string `yaml:"prefab_dir"`
	HotReload bool   `yaml:"hot_reload"`
}

// Arena is the playable rectangle in world units.
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Spawn places one actor prefab.
type Spawn struct {
	Prefab string  `yaml:"prefab"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// PickupPlacement places one pickup from the pickup table.
type PickupPlacement struct {
	Name string  `yaml:"name"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Default returns a small arena with one player, three enemies and one of
// each pickup.
func Default() Game {
	return Game{
		TPS:          60,
		Arena:        Arena{Width: 640, Height: 480},
		PickupRadius: 12,
		Player:       Spawn{Prefab: "player", X: 320, Y: 240},
		Enemies: []Spawn{
			{Prefab: "grunt", X: 80, Y: 80},
			{Prefab: "grunt", X: 560, Y: 400},
			{Prefab: "stalker", X: 560, Y: 80},
		},
		Pickups: []PickupPlacement{
			{Name: "medkit", X: 120, Y: 400},
			{Name: "battery", X: 320, Y: 60},
			{Name: "boots", X: 500, Y: 240},
			{Name: "trigger", X: 140, Y: 240},
			{Name: "journal", X: 320, Y: 420},
		},
		StartScene: "Arena",
		PrefabDir:  "prefabs",
		HotReload:  true,
	}
}

// Load reads config from a YAML file on top of Default.
// If the file doesn't exist, returns defaults.
func Load(path string) (Game, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects layouts the arena cannot run.
func (g Game) Validate() error {
	if g.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", g.TPS)
	}
	if g.Arena.Width <= 0 || g.Arena.Height <= 0 {
		return fmt.Errorf("arena must have a positive size, got %gx%g", g.Arena.Width, g.Arena.Height)
	}
	if g.Player.Prefab == "" {
		return fmt.Errorf("player prefab is required")
	}
	return nil
}

// TickSeconds is the simulation step for one frame.
func (g Game) TickSeconds() float64 {
	if g.TPS <= 0 {
		return 1.0 / 60
	}
	return 1 / float64(g.TPS)
}
