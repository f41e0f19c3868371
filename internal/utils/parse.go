package utils

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes configPath into config. Keys the struct does not
// know about are logged and otherwise ignored.
func LoadTOMLFile(configPath string, config any) error {
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		log.Warnf("TOML parsing error in config file %s: %v. Attempting partial recovery...", configPath, err)
		return fmt.Errorf("decode %s: %w", configPath, err)
	}
	for _, key := range meta.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), configPath)
	}
	return nil
}

// ParseTOMLWithRecovery decodes configPath into a generic map so values can be
// picked out one by one when the typed decode failed.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	tempConfig := make(map[string]any)
	if _, err := toml.DecodeFile(configPath, &tempConfig); err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v", configPath, err)
		return nil, err
	}
	return tempConfig, nil
}

// ExtractSection returns the table named sectionName.
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// ExtractInt64 returns an integer value; TOML integers decode as int64.
func ExtractInt64(data map[string]any, key string) (int, bool) {
	if val, ok := data[key].(int64); ok {
		return int(val), true
	}
	return 0, false
}

// ExtractBool safely extracts a bool value from a map
func ExtractBool(data map[string]any, key string) (bool, bool) {
	if val, ok := data[key].(bool); ok {
		return val, true
	}
	return false, false
}

// ExtractString safely extracts a string value from a map
func ExtractString(data map[string]any, key string) (string, bool) {
	if val, ok := data[key].(string); ok {
		return val, true
	}
	return "", false
}
