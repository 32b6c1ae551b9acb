package world

import "math"

// Resources is the ledger of harvested materials. Counters only ever grow
// and clamp at MaxUint32 instead of wrapping.
type Resources struct {
	Stone uint32
	Iron  uint32
}

func (r *Resources) AddStone(amount uint32) {
	r.Stone = satAdd(r.Stone, amount)
}

func (r *Resources) AddIron(amount uint32) {
	r.Iron = satAdd(r.Iron, amount)
}

func satAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}
