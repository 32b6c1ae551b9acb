package engine

import (
	"dronespire.ai/internal/sim/tuning"
	"dronespire.ai/internal/sim/world"
)

// NewSession builds a ready-to-run engine from a tuning document: a seeded
// world and a roster of idle drones.
func NewSession(t tuning.Tuning) (*Engine, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	w := world.Generate(t.World.Width, t.World.Height, t.World.Levels, world.GenParams{
		Seed:       t.Generation.Seed,
		IronBelow:  t.Generation.IronBelow,
		StoneBelow: t.Generation.StoneBelow,
	})
	drones := make([]Drone, t.Drones)
	for i := range drones {
		drones[i] = NewDrone(uint32(i + 1))
	}
	return New(w, drones), nil
}
