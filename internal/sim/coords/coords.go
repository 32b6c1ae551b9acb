package coords

import "fmt"

// TileCoord3 is a point in the 3D tile grid.
type TileCoord3 struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

func New(x, y, z int) TileCoord3 {
	return TileCoord3{X: x, Y: y, Z: z}
}

// TileBox3 is an axis-aligned box of tiles, inclusive on both ends.
type TileBox3 struct {
	Min TileCoord3 `json:"min"`
	Max TileCoord3 `json:"max"`
}

// NewTileBox3 rejects inverted bounds instead of swapping them.
func NewTileBox3(min, max TileCoord3) (TileBox3, error) {
	if min.X > max.X || min.Y > max.Y || min.Z > max.Z {
		return TileBox3{}, fmt.Errorf("invalid box bounds: min (%d,%d,%d) > max (%d,%d,%d)",
			min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	}
	return TileBox3{Min: min, Max: max}, nil
}

func (b TileBox3) Contains(c TileCoord3) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X &&
		c.Y >= b.Min.Y && c.Y <= b.Max.Y &&
		c.Z >= b.Min.Z && c.Z <= b.Max.Z
}

func (b TileBox3) Width() int  { return b.Max.X - b.Min.X + 1 }
func (b TileBox3) Height() int { return b.Max.Y - b.Min.Y + 1 }
func (b TileBox3) Levels() int { return b.Max.Z - b.Min.Z + 1 }

// Tiles returns every contained coordinate exactly once, z-major, then y,
// then x.
func (b TileBox3) Tiles() []TileCoord3 {
	out := make([]TileCoord3, 0, b.Width()*b.Height()*b.Levels())
	for z := b.Min.Z; z <= b.Max.Z; z++ {
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for x := b.Min.X; x <= b.Max.X; x++ {
				out = append(out, TileCoord3{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}

// BorderTiles returns the tiles lying on a bounding face of any axis with
// nonzero thickness. A flat axis (min==max) never gates inclusion, so a
// one-level slab does not degenerate into "everything is border".
func (b TileBox3) BorderTiles() []TileCoord3 {
	thickX := b.Min.X != b.Max.X
	thickY := b.Min.Y != b.Max.Y
	thickZ := b.Min.Z != b.Max.Z
	var out []TileCoord3
	for _, c := range b.Tiles() {
		if (thickX && (c.X == b.Min.X || c.X == b.Max.X)) ||
			(thickY && (c.Y == b.Min.Y || c.Y == b.Max.Y)) ||
			(thickZ && (c.Z == b.Min.Z || c.Z == b.Max.Z)) {
			out = append(out, c)
		}
	}
	return out
}
