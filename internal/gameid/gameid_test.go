package gameid

import (
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/asciiholdem/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIsValid(t *testing.T) {
	g := NewGenerator(nil, nil)
	for range 50 {
		id := g.Next()
		assert.Len(t, id, idLength)
		assert.NoError(t, Validate(id), id)
	}
}

func TestNextUnique(t *testing.T) {
	g := NewGenerator(nil, nil)
	seen := make(map[string]bool)
	for range 100 {
		id := g.Next()
		require.False(t, seen[id], "duplicate ID %s", id)
		seen[id] = true
	}
}

func TestNextSortsByTime(t *testing.T) {
	clock := quartz.NewMock(t)
	g := NewGenerator(clock, randutil.New(3))

	var ids []string
	for range 10 {
		ids = append(ids, g.Next())
		clock.Advance(time.Millisecond)
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestNextDeterministicWithSeed(t *testing.T) {
	clock := quartz.NewMock(t)
	a := NewGenerator(clock, randutil.New(9)).Next()
	b := NewGenerator(clock, randutil.New(9)).Next()
	assert.Equal(t, a, b)
}

func TestEncodeKnownValue(t *testing.T) {
	var zero [16]byte
	assert.Equal(t, "00000000000000000000000000", encode(zero))

	var ones [16]byte
	for i := range ones {
		ones[i] = 0xff
	}
	assert.Equal(t, "zzzzzzzzzzzzzzzzzzzzzzzzzw", encode(ones))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"valid", "01h5n0et5q6mt3v7ms1234abc0", false},
		{"too short", "01h5n0et5q6mt3v7ms123", true},
		{"too long", "01h5n0et5q6mt3v7ms1234abcdef", true},
		{"excluded letter", "01h5n0et5q6mt3v7ms1234abu0", true},
		{"padding bits set", "01h5n0et5q6mt3v7ms1234abc1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
