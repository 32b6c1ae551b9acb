package world

import "dronespire.ai/internal/sim/coords"

const defaultCoreHP = 100

// World owns the dense tile grid, the resource ledger and the colony core
// health. It is mutated only through SetTile/MineTile and is owned by a
// single engine for the lifetime of a session.
type World struct {
	width  int
	height int
	levels int
	tiles  []TileKind

	Resources Resources

	coreHP    uint32
	coreHPMax uint32
}

// New allocates a width*height*levels grid filled with a single kind.
func New(width, height, levels int, fill TileKind) *World {
	tiles := make([]TileKind, width*height*levels)
	if fill != Air {
		for i := range tiles {
			tiles[i] = fill
		}
	}
	return &World{
		width:     width,
		height:    height,
		levels:    levels,
		tiles:     tiles,
		coreHP:    defaultCoreHP,
		coreHPMax: defaultCoreHP,
	}
}

func (w *World) Width() int  { return w.width }
func (w *World) Height() int { return w.height }
func (w *World) Levels() int { return w.levels }

// CoreHP returns the core's current and maximum health.
func (w *World) CoreHP() (uint32, uint32) {
	return w.coreHP, w.coreHPMax
}

// index maps a coordinate to its slot in the dense grid. All bounds checks
// funnel through here; out-of-range coordinates return false.
func (w *World) index(c coords.TileCoord3) (int, bool) {
	if c.X < 0 || c.Y < 0 || c.Z < 0 || c.X >= w.width || c.Y >= w.height || c.Z >= w.levels {
		return 0, false
	}
	return (c.Z*w.height+c.Y)*w.width + c.X, true
}

// GetTile returns the tile at c, or false when c is out of bounds. Probing
// outside the world is legitimate for selection code and is never an error.
func (w *World) GetTile(c coords.TileCoord3) (TileKind, bool) {
	i, ok := w.index(c)
	if !ok {
		return Air, false
	}
	return w.tiles[i], true
}

// SetTile writes the tile at c. Out-of-bounds writes are silent no-ops; the
// grid never grows.
func (w *World) SetTile(c coords.TileCoord3, k TileKind) {
	if i, ok := w.index(c); ok {
		w.tiles[i] = k
	}
}

// MineTile replaces a mineable tile with Air, credits its yield to the
// resource ledger and returns the yield. Mining a non-mineable or
// out-of-bounds cell changes nothing and returns false.
func (w *World) MineTile(c coords.TileCoord3) (Yield, bool) {
	i, ok := w.index(c)
	if !ok {
		return Yield{}, false
	}
	y, ok := w.tiles[i].MinedYield()
	if !ok {
		return Yield{}, false
	}
	w.tiles[i] = Air
	switch y.Resource {
	case YieldStone:
		w.Resources.AddStone(y.Amount)
	case YieldIron:
		w.Resources.AddIron(y.Amount)
	}
	return y, true
}
