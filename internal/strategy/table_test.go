package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"strategy.json", "strategy.json.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			table := New("test")
			table.Strategies["pre_flop|AKs|"] = Distribution{"call": 0.25, "raise": 0.75}
			require.NoError(t, table.Save(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 1, loaded.Len())

			d, ok := loaded.Lookup("pre_flop|AKs|")
			require.True(t, ok)
			assert.InDelta(t, 0.75, d["raise"], 1e-9)

			_, ok = loaded.Lookup("missing")
			assert.False(t, ok)

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary files must not remain")
		})
	}
}

func TestLoadDetectsGzipByContent(t *testing.T) {
	dir := t.TempDir()
	gz := filepath.Join(dir, "table.json.gz")
	table := New("test")
	table.Strategies["k"] = Even([]string{"call", "fold"})
	require.NoError(t, table.Save(gz))

	renamed := filepath.Join(dir, "table.bin")
	require.NoError(t, os.Rename(gz, renamed))

	loaded, err := Load(renamed)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Len())
}

func TestLoadFailures(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("corrupted", func(t *testing.T) {
		path := filepath.Join(dir, "corrupted.json")
		require.NoError(t, os.WriteFile(path, []byte("{not-json"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("version mismatch", func(t *testing.T) {
		path := filepath.Join(dir, "version.json")
		table := New("test")
		table.Version = fileVersion + 1
		require.NoError(t, table.Save(path))
		_, err := Load(path)
		assert.ErrorContains(t, err, "version")
	})

	t.Run("bad distribution", func(t *testing.T) {
		path := filepath.Join(dir, "sum.json")
		table := New("test")
		table.Strategies["k"] = Distribution{"call": 0.5, "raise": 0.2}
		require.NoError(t, table.Save(path))
		_, err := Load(path)
		assert.ErrorContains(t, err, `"k"`)
	})
}

func TestDistributionValidate(t *testing.T) {
	assert.NoError(t, Distribution{"a": 0.3333, "b": 0.3333, "c": 0.3334}.Validate())
	assert.NoError(t, Distribution{"a": 0.5, "b": 0.5004}.Validate(), "within tolerance")
	assert.Error(t, Distribution{}.Validate())
	assert.Error(t, Distribution{"a": -0.5, "b": 1.5}.Validate())
	assert.Error(t, Distribution{"a": 0.9}.Validate())
}

func TestDistributionActionsSorted(t *testing.T) {
	d := Distribution{"raise": 0.2, "call": 0.5, "fold": 0.3}
	assert.Equal(t, []string{"call", "fold", "raise"}, d.Actions())
}

func TestEvenKeepsEachKeysOwnActions(t *testing.T) {
	table := New("even")
	table.Strategies["opening"] = Even([]string{"fold", "call", "raise"})
	table.Strategies["checked"] = Even([]string{"call", "raise"})
	require.NoError(t, table.Validate())

	d, ok := table.Lookup("opening")
	require.True(t, ok)
	assert.InDelta(t, 1.0/3, d["fold"], 1e-9)

	d, ok = table.Lookup("checked")
	require.True(t, ok)
	assert.Equal(t, []string{"call", "raise"}, d.Actions())
	assert.NotContains(t, d, "fold")
}

func TestNilTable(t *testing.T) {
	var table *Table
	_, ok := table.Lookup("k")
	assert.False(t, ok)
	assert.Zero(t, table.Len())
	assert.Error(t, table.Validate())
	assert.Error(t, table.Save(filepath.Join(t.TempDir(), "x.json")))
}

func TestEven(t *testing.T) {
	d := Even([]string{"call", "raise"})
	assert.Equal(t, Distribution{"call": 0.5, "raise": 0.5}, d)
	assert.NoError(t, d.Validate())
	assert.Empty(t, Even(nil))
}
