package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreflopSpots(t *testing.T) {
	d := newTestDealer(t)
	spots, err := d.PreflopSpots(3)
	require.NoError(t, err)

	classes := len(d.Abstraction().PreflopClasses())
	require.NotEmpty(t, spots)
	assert.Zero(t, len(spots)%classes, "every history appears for every class")

	assert.Equal(t, []string{Fold, Call, Raise}, spots["pre_flop|AKs|"])
	// seat 0 completes, seat 1 faces no bet
	assert.Equal(t, []string{Call, Raise}, spots["pre_flop|AKs|cc"])
	// three raises close the betting
	assert.Equal(t, []string{Fold, Call}, spots["pre_flop|TT|rrr"])

	for key := range spots {
		assert.True(t, strings.HasPrefix(key, "pre_flop|"), key)
		assert.NotContains(t, key, "/")
	}
}

func TestPreflopSpotsMatchLiveInfoSets(t *testing.T) {
	d := newTestDealer(t)
	spots, err := d.PreflopSpots(3)
	require.NoError(t, err)

	s, err := d.NewGame(3)
	require.NoError(t, err)
	for _, a := range []string{Raise, Call, Raise} {
		legal, ok := spots[s.InfoSet()]
		require.True(t, ok, s.InfoSet())
		assert.Equal(t, s.LegalActions(), legal)
		s, err = s.Apply(a)
		require.NoError(t, err)
	}
}
