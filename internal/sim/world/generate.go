package world

import "dronespire.ai/internal/sim/coords"

// Default ore distribution: draw < ironBelow is iron, draw < stoneBelow is
// stone, the rest stays air.
const (
	DefaultIronBelow  = 0.10
	DefaultStoneBelow = 0.55
)

// GenParams controls seeded world generation.
type GenParams struct {
	Seed       int64
	IronBelow  float64
	StoneBelow float64
}

// FromSeed generates a world with the default ore distribution. Identical
// seeds produce identical worlds.
func FromSeed(width, height, levels int, seed int64) *World {
	return Generate(width, height, levels, GenParams{
		Seed:       seed,
		IronBelow:  DefaultIronBelow,
		StoneBelow: DefaultStoneBelow,
	})
}

// Generate fills a world cell by cell, one uniform draw per cell in z,y,x
// order. The draw stream is splitmix64 so generation is bit-stable across
// Go releases.
func Generate(width, height, levels int, p GenParams) *World {
	w := New(width, height, levels, Air)
	rng := newSplitMix64(uint64(p.Seed))
	for z := 0; z < levels; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				roll := rng.float64()
				kind := Air
				switch {
				case roll < p.IronBelow:
					kind = Iron
				case roll < p.StoneBelow:
					kind = Stone
				}
				w.SetTile(coords.TileCoord3{X: x, Y: y, Z: z}, kind)
			}
		}
	}
	return w
}

type splitMix64 struct {
	state uint64
}

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// float64 returns a uniform draw in [0,1) using the high 53 bits.
func (s *splitMix64) float64() float64 {
	return float64(s.next()>>11) / (1 << 53)
}
