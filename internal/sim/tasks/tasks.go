package tasks

import (
	"fmt"

	"dronespire.ai/internal/sim/coords"
	"dronespire.ai/internal/sim/world"
)

type Kind string

const (
	KindMineBox Kind = "MINE_BOX"
)

// Task is a unit of drone work. It is a comparable value so the manager can
// match entries by equality.
type Task struct {
	Kind Kind
	Box  coords.TileBox3
}

func MineBox(b coords.TileBox3) Task {
	return Task{Kind: KindMineBox, Box: b}
}

func (t Task) Description() string {
	switch t.Kind {
	case KindMineBox:
		return fmt.Sprintf("Mine box ((%d,%d,%d)->(%d,%d,%d))",
			t.Box.Min.X, t.Box.Min.Y, t.Box.Min.Z,
			t.Box.Max.X, t.Box.Max.Y, t.Box.Max.Z)
	default:
		return fmt.Sprintf("Unknown task %q", string(t.Kind))
	}
}

// Apply executes the task against the world and returns the number of tiles
// successfully mined.
func Apply(w *world.World, t Task) uint32 {
	switch t.Kind {
	case KindMineBox:
		var mined uint32
		for _, c := range t.Box.Tiles() {
			if _, ok := w.MineTile(c); ok {
				mined++
			}
		}
		return mined
	default:
		return 0
	}
}
