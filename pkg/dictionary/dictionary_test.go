package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	candidates := []WordFrequency{
		{Word: "cut", Frequency: 10},
		{Word: "cup", Frequency: 30},
		{Word: "cub", Frequency: 30},
		{Word: "cute", Frequency: 50},
	}

	assert.Equal(t, []WordFrequency{
		{Word: "cute", Frequency: 50},
		{Word: "cub", Frequency: 30},
		{Word: "cup", Frequency: 30},
	}, Rank(candidates, MaxSuggestions))

	assert.Len(t, Rank(candidates, 0), 4)

	empty := Rank(nil, MaxSuggestions)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, WordFrequency{Word: "a", Frequency: 0}.Validate())
	assert.NoError(t, WordFrequency{Word: "café", Frequency: 1}.Validate())
	assert.ErrorIs(t, WordFrequency{Word: "caf\xe9", Frequency: 1}.Validate(), ErrInvalidUTF8)
	assert.ErrorIs(t, WordFrequency{Word: "", Frequency: 1}.Validate(), ErrEmptyInput)
	assert.ErrorIs(t, WordFrequency{Word: "a", Frequency: -1}.Validate(), ErrNegativeFrequency)
}

func TestListKeepsInsertionOrderOnDelete(t *testing.T) {
	d := NewListDictionary()
	d.Build([]WordFrequency{{Word: "a", Frequency: 1}, {Word: "b", Frequency: 2}, {Word: "c", Frequency: 3}})

	require.NoError(t, d.DeleteWord("b"))
	assert.Equal(t, []WordFrequency{{Word: "a", Frequency: 1}, {Word: "c", Frequency: 3}}, d.entries)
}

func TestHashTableBuild(t *testing.T) {
	d := NewHashTableDictionary()
	added := d.Build([]WordFrequency{
		{Word: "a", Frequency: 1},
		{Word: "a", Frequency: 5},
		{Word: "", Frequency: 5},
		{Word: "b", Frequency: 2},
	})
	assert.Equal(t, 2, added)
	assert.Equal(t, 2, d.Len())

	freq, err := d.Search("a")
	require.NoError(t, err)
	assert.Equal(t, 1, freq)
}

func TestParseText(t *testing.T) {
	input := strings.Join([]string{
		"cut 10",
		"",
		"  cute\t50  ",
		"broken",
		"cup thirty",
		"neg -4",
		"too many fields",
		"cup 30",
		"cut 99",
	}, "\n")

	pairs, stats, err := ParseText(strings.NewReader(input), 0)
	require.NoError(t, err)
	assert.Equal(t, []WordFrequency{
		{Word: "cut", Frequency: 10},
		{Word: "cute", Frequency: 50},
		{Word: "cup", Frequency: 30},
	}, pairs)
	assert.Equal(t, LoadStats{Lines: 9, Loaded: 3, Skipped: 5, MaxFrequency: 50}, stats)
}

func TestParseTextMaxWords(t *testing.T) {
	pairs, stats, err := ParseText(strings.NewReader("a 1\nb 2\nc 3\n"), 2)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
	assert.Equal(t, 2, stats.Loaded)
}

func TestLoadTextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("app 20\nfarm 40\n"), 0644))

	pairs, _, err := LoadTextFile(path, 0)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)

	_, _, err = LoadTextFile(filepath.Join(dir, "missing.txt"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
