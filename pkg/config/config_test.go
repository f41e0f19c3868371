package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "tst", cfg.Dict.Approach)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dict.Approach = "btree"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Dict.MaxWords = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.MinPrefix = 5
	cfg.Server.MaxPrefix = 2
	assert.Error(t, cfg.Validate())
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordtree", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[dict]
approach = "hashtable"
data_file = "/tmp/words.txt"

[server]
max_prefix = 32
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hashtable", cfg.Dict.Approach)
	assert.Equal(t, "/tmp/words.txt", cfg.Dict.DataFile)
	assert.Equal(t, 32, cfg.Server.MaxPrefix)
	assert.Equal(t, 1, cfg.Server.MinPrefix, "unset values keep defaults")
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[dict]
approach = "list"
max_words = "many"

[cli]
default_max_len = 12
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "list", cfg.Dict.Approach)
	assert.Equal(t, 0, cfg.Dict.MaxWords)
	assert.Equal(t, 12, cfg.CLI.DefaultMaxLen)
}

func TestLoadConfigUnparsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[dict\napproach = "), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Dict.Approach = "patricia"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "patricia", loaded.Dict.Approach)
}
