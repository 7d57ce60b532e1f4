// Package gameid names hands with sortable, 26-character identifiers: a
// UUIDv7 encoded in Crockford's base32.
package gameid

import (
	"crypto/rand"
	"fmt"
	mrand "math/rand/v2"
	"strings"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	idLength = 26
)

// Generator issues hand IDs. Timestamps come from the clock; the random
// part comes from rng, or crypto/rand when rng is nil.
type Generator struct {
	clock quartz.Clock
	rng   *mrand.Rand
}

// NewGenerator creates a generator. A nil clock means the real one.
func NewGenerator(clock quartz.Clock, rng *mrand.Rand) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rng: rng}
}

// Next returns a fresh ID. IDs from later milliseconds sort after earlier
// ones.
func (g *Generator) Next() string {
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var id [16]byte

	ms := g.clock.Now().UnixMilli()
	for i := range 6 {
		id[i] = byte(ms >> (40 - 8*i))
	}

	if g.rng != nil {
		for i := 6; i < 16; i++ {
			id[i] = byte(g.rng.UintN(256))
		}
	} else if _, err := rand.Read(id[6:]); err != nil {
		panic("gameid: reading random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10
	return id
}

// encode writes the 128 bits as 26 five-bit digits, the last digit padded
// with two zero bits.
func encode(data [16]byte) string {
	out := make([]byte, idLength)
	for i := range out {
		bit := i * 5
		byteIdx, shift := bit/8, bit%8

		v := uint16(data[byteIdx]) << 8
		if byteIdx+1 < len(data) {
			v |= uint16(data[byteIdx+1])
		}
		out[i] = alphabet[(v>>(11-shift))&0x1f]
	}
	return string(out)
}

// Validate checks id has the shape Next produces
func Validate(id string) error {
	if len(id) != idLength {
		return fmt.Errorf("hand ID must be exactly %d characters, got %d", idLength, len(id))
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	if strings.IndexByte(alphabet, id[idLength-1])%4 != 0 {
		return fmt.Errorf("hand ID last character %c carries padding bits", id[idLength-1])
	}
	return nil
}
