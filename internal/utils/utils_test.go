package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidInput(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"cu", true},
		{"don't", true},
		{"café", true},
		{"", false},
		{"123", false},
		{"a+b", false},
		{"aaa", false},
		{"aa", true},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.valid, IsValidInput(tc.input), tc.input)
	}
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "0", FormatWithCommas(0))
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "1,234,567", FormatWithCommas(1234567))
	assert.Equal(t, "-12,345", FormatWithCommas(-12345))
}

func TestTOMLHelpers(t *testing.T) {
	type section struct {
		Name  string `toml:"name"`
		Count int    `toml:"count"`
		On    bool   `toml:"on"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "nested", "doc.toml")
	require.NoError(t, SaveTOMLFile(doc{Main: section{Name: "tst", Count: 3, On: true}}, path))
	assert.True(t, FileExists(path))

	var decoded doc
	require.NoError(t, LoadTOMLFile(path, &decoded))
	assert.Equal(t, 3, decoded.Main.Count)

	raw, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)
	sec, ok := ExtractSection(raw, "main")
	require.True(t, ok)

	name, ok := ExtractString(sec, "name")
	assert.True(t, ok)
	assert.Equal(t, "tst", name)
	count, ok := ExtractInt64(sec, "count")
	assert.True(t, ok)
	assert.Equal(t, 3, count)
	on, ok := ExtractBool(sec, "on")
	assert.True(t, ok)
	assert.True(t, on)

	_, ok = ExtractInt64(sec, "name")
	assert.False(t, ok)
}

func TestResolveDataFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("a 1\n"), 0644))

	resolved, err := ResolveDataFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)

	_, err = ResolveDataFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ResolveDataFile("")
	assert.Error(t, err)
}
