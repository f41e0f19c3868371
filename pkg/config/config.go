/*
Package config manages TOML config for wordtree services.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bastiangx/wordtree/internal/utils"
	"github.com/bastiangx/wordtree/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Dict   DictConfig   `toml:"dict"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	EnableFilter bool `toml:"enable_filter"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Approach string `toml:"approach"`
	DataFile string `toml:"data_file"`
	MaxWords int    `toml:"max_words"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultMinLen   int  `toml:"default_min_len"`
	DefaultMaxLen   int  `toml:"default_max_len"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "wordtree")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordtree/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MinPrefix:    1,
			MaxPrefix:    60,
			EnableFilter: true,
		},
		Dict: DictConfig{
			Approach: string(suggest.ApproachTST),
			DataFile: "data/words.txt",
			MaxWords: 0,
		},
		CLI: CliConfig{
			DefaultMinLen:   1,
			DefaultMaxLen:   24,
			DefaultNoFilter: false,
		},
	}
}

// Validate checks values that would otherwise fail later at startup.
func (c *Config) Validate() error {
	if _, err := suggest.ParseApproach(c.Dict.Approach); err != nil {
		return fmt.Errorf("dict.approach: %w", err)
	}
	if c.Dict.MaxWords < 0 {
		return fmt.Errorf("dict.max_words must not be negative, got %d", c.Dict.MaxWords)
	}
	if c.Server.MinPrefix < 1 || c.Server.MaxPrefix < c.Server.MinPrefix {
		return fmt.Errorf("server prefix bounds invalid: min=%d max=%d", c.Server.MinPrefix, c.Server.MaxPrefix)
	}
	return nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed value of a file that failed to decode
// into Config and falls back to defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if dictSection, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(dictSection, &config.Dict)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractString(data, "approach"); ok {
		dict.Approach = val
	}
	if val, ok := utils.ExtractString(data, "data_file"); ok {
		dict.DataFile = val
	}
	if val, ok := utils.ExtractInt64(data, "max_words"); ok {
		dict.MaxWords = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_min_len"); ok {
		cli.DefaultMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_len"); ok {
		cli.DefaultMaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
