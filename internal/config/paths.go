package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ConfigFileName is the name of the configuration file inside the ccline home
const ConfigFileName = "config.toml"

// GetHome returns CCLINE_HOME or ~/.claude/ccline
func GetHome() string {
	home := os.Getenv("CCLINE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".claude", "ccline")
		}
		return filepath.Join(homeDir, ".claude", "ccline")
	}
	return ExpandPath(home)
}

// GetConfigPath returns $CCLINE_HOME/config.toml
func GetConfigPath() string {
	return filepath.Join(GetHome(), ConfigFileName)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// AbbreviateHome replaces the home directory prefix of path with ~
func AbbreviateHome(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	if path == homeDir {
		return "~"
	}
	rel, err := filepath.Rel(homeDir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join("~", rel)
}
