package policy

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/asciiholdem/internal/randutil"
	"github.com/lox/asciiholdem/internal/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draws = 60000

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func frequencies(r Resolver, legal []string, infoSet string) map[string]float64 {
	counts := make(map[string]int)
	for range draws {
		counts[r.Resolve(legal, infoSet)]++
	}
	freq := make(map[string]float64, len(counts))
	for a, n := range counts {
		freq[a] = float64(n) / draws
	}
	return freq
}

func testTable() *strategy.Table {
	table := strategy.New("test")
	table.Strategies["flop|b3|c/"] = strategy.Distribution{"fold": 0.1, "call": 0.6, "raise": 0.3}
	table.Strategies["river|b1|c/c/c/"] = strategy.Distribution{"call": 0.5, "check": 0.5}
	return table
}

func TestUniformConverges(t *testing.T) {
	legal := []string{"fold", "call", "raise"}
	freq := frequencies(NewUniform(randutil.New(1)), legal, "ignored")

	require.Len(t, freq, 3)
	for _, a := range legal {
		assert.InDelta(t, 1.0/3.0, freq[a], 0.01, a)
	}
}

func TestWeightedFollowsTable(t *testing.T) {
	r := NewWeighted(testTable(), randutil.New(2), quietLogger())
	freq := frequencies(r, []string{"fold", "call", "raise"}, "flop|b3|c/")

	assert.InDelta(t, 0.1, freq["fold"], 0.01)
	assert.InDelta(t, 0.6, freq["call"], 0.01)
	assert.InDelta(t, 0.3, freq["raise"], 0.01)
}

func TestWeightedFallsBackToLegalActions(t *testing.T) {
	r := NewWeighted(testTable(), randutil.New(3), quietLogger())
	legal := []string{"call", "raise"}
	freq := frequencies(r, legal, "turn|b0|missing")

	require.Len(t, freq, 2)
	assert.InDelta(t, 0.5, freq["call"], 0.01)
	assert.InDelta(t, 0.5, freq["raise"], 0.01)
}

// A stale table entry is sampled as given, even when it names actions that
// are not currently legal.
func TestWeightedUsesTableActionUniverse(t *testing.T) {
	r := NewWeighted(testTable(), randutil.New(4), quietLogger())

	actions, weights := r.Distribution([]string{"call", "raise"}, "river|b1|c/c/c/")
	assert.Equal(t, []string{"call", "check"}, actions)
	assert.Equal(t, []float64{0.5, 0.5}, weights)

	freq := frequencies(r, []string{"call", "raise"}, "river|b1|c/c/c/")
	assert.Contains(t, freq, "check")
	assert.NotContains(t, freq, "raise")
}

func TestWeightedIsDeterministicForSeed(t *testing.T) {
	a := NewWeighted(testTable(), randutil.New(5), quietLogger())
	b := NewWeighted(testTable(), randutil.New(5), quietLogger())
	legal := []string{"fold", "call", "raise"}
	for range 100 {
		assert.Equal(t, a.Resolve(legal, "flop|b3|c/"), b.Resolve(legal, "flop|b3|c/"))
	}
}

func TestSampleSkipsZeroWeights(t *testing.T) {
	rng := randutil.New(6)
	for range 1000 {
		got := sample(rng, []string{"a", "b", "c"}, []float64{0, 1, 0})
		assert.Equal(t, "b", got)
	}
}

func TestResolveRequiresActions(t *testing.T) {
	assert.Panics(t, func() { NewUniform(randutil.New(1)).Resolve(nil, "") })
	assert.Panics(t, func() {
		NewWeighted(testTable(), randutil.New(1), quietLogger()).Resolve([]string{}, "flop|b3|c/")
	})
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"uniform", ModeUniform},
		{"random", ModeUniform},
		{"table", ModeTable},
		{" Offline ", ModeTable},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseMode("online")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	r, err := New(ModeUniform, nil, randutil.New(1), quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &Uniform{}, r)

	r, err = New(ModeTable, testTable(), randutil.New(1), quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &Weighted{}, r)

	_, err = New(ModeTable, nil, randutil.New(1), quietLogger())
	assert.Error(t, err)

	_, err = New(Mode("bogus"), nil, randutil.New(1), quietLogger())
	assert.Error(t, err)
}
