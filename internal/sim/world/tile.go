package world

// TileKind is the closed set of tile kinds a world cell can hold.
type TileKind uint8

const (
	Air TileKind = iota
	Stone
	Iron
	Wall
	Floor
)

func (k TileKind) String() string {
	switch k {
	case Air:
		return "AIR"
	case Stone:
		return "STONE"
	case Iron:
		return "IRON"
	case Wall:
		return "WALL"
	case Floor:
		return "FLOOR"
	default:
		return "UNKNOWN"
	}
}

func (k TileKind) IsMineable() bool {
	return k == Stone || k == Iron
}

// YieldResource names the material a mined tile produces.
type YieldResource uint8

const (
	YieldStone YieldResource = iota
	YieldIron
)

// Yield is the result of mining one tile.
type Yield struct {
	Resource YieldResource
	Amount   uint32
}

// MinedYield reports what mining this tile produces, or false for tiles
// that cannot be mined.
func (k TileKind) MinedYield() (Yield, bool) {
	switch k {
	case Stone:
		return Yield{Resource: YieldStone, Amount: 1}, true
	case Iron:
		return Yield{Resource: YieldIron, Amount: 1}, true
	default:
		return Yield{}, false
	}
}
