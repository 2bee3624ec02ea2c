package bravebook

import (
	"encoding/binary"
	"encoding/hex"
	"hash"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of the dataset contents, hex encoded.
// Datasets built from the same sheets have the same fingerprint.
func (d *Dataset) Fingerprint() string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// Only a key longer than 64 bytes makes New256 fail.
		panic(err)
	}

	for _, id := range d.ids {
		book := d.books[id]
		writeUint32(h, id)
		writeString(h, book.Name)
		for _, kind := range []TargetKind{KindEnemy, KindDungeon, KindFate, KindLeve} {
			targets := book.Targets(kind)
			writeUint32(h, uint32(len(targets)))
			for _, t := range targets {
				writeTarget(h, t)
			}
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

func writeTarget(h hash.Hash, t Target) {
	writeString(h, t.Name)
	writeString(h, t.ZoneName)
	writeUint32(h, t.ZoneID)
	writeString(h, t.LocationName)
	writeUint32(h, t.Position.TerritoryType)
	writeUint32(h, t.Position.MapID)
	writeUint32(h, math.Float32bits(t.Position.X))
	writeUint32(h, math.Float32bits(t.Position.Y))
	writeUint32(h, t.ContentFinderConditionID)
	writeString(h, t.Issuer)
}

func writeUint32(h hash.Hash, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	h.Write(buf[:])
}

// writeString is length-prefixed so that field boundaries stay unambiguous.
func writeString(h hash.Hash, s string) {
	writeUint32(h, uint32(len(s)))
	h.Write([]byte(s))
}
