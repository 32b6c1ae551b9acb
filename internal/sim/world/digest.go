package world

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Digest hashes the full observable world state: tiles, resources and core
// health. Two worlds with equal digests are indistinguishable to the engine.
func (w *World) Digest() string {
	h := sha256.New()
	var dims [12]byte
	binary.LittleEndian.PutUint32(dims[0:4], uint32(w.width))
	binary.LittleEndian.PutUint32(dims[4:8], uint32(w.height))
	binary.LittleEndian.PutUint32(dims[8:12], uint32(w.levels))
	h.Write(dims[:])
	for _, k := range w.tiles {
		h.Write([]byte{byte(k)})
	}
	var tail [16]byte
	binary.LittleEndian.PutUint32(tail[0:4], w.Resources.Stone)
	binary.LittleEndian.PutUint32(tail[4:8], w.Resources.Iron)
	binary.LittleEndian.PutUint32(tail[8:12], w.coreHP)
	binary.LittleEndian.PutUint32(tail[12:16], w.coreHPMax)
	h.Write(tail[:])
	return hex.EncodeToString(h.Sum(nil))
}
