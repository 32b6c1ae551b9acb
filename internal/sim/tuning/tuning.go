package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning carries the knobs a session is built from: world dimensions, the
// generation seed and ore distribution, and the drone roster size.
type Tuning struct {
	World      WorldTuning `yaml:"world"`
	Generation GenTuning   `yaml:"generation"`
	Drones     int         `yaml:"drones"`
}

type WorldTuning struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Levels int `yaml:"levels"`
}

type GenTuning struct {
	Seed int64 `yaml:"seed"`
	// Cut points for the per-cell uniform draw: below IronBelow is iron,
	// below StoneBelow is stone, the rest stays air.
	IronBelow  float64 `yaml:"iron_below"`
	StoneBelow float64 `yaml:"stone_below"`
}

func Default() Tuning {
	return Tuning{
		World:      WorldTuning{Width: 64, Height: 64, Levels: 4},
		Generation: GenTuning{Seed: 1337, IronBelow: 0.10, StoneBelow: 0.55},
		Drones:     3,
	}
}

// Load reads a tuning document; absent fields keep their defaults. An empty
// path returns the defaults untouched.
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if t.World.Width <= 0 || t.World.Height <= 0 || t.World.Levels <= 0 {
		return fmt.Errorf("tuning: world dimensions must be positive, got %dx%dx%d",
			t.World.Width, t.World.Height, t.World.Levels)
	}
	g := t.Generation
	if g.IronBelow < 0 || g.StoneBelow > 1 || g.IronBelow > g.StoneBelow {
		return fmt.Errorf("tuning: cut points must satisfy 0 <= iron_below <= stone_below <= 1, got %v/%v",
			g.IronBelow, g.StoneBelow)
	}
	if t.Drones < 0 {
		return fmt.Errorf("tuning: drones must be non-negative, got %d", t.Drones)
	}
	return nil
}
