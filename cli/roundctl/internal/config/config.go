package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultTool is the viewer invoked when nothing overrides it.
const DefaultTool = "show_seqs"

// Config is the optional per-user configuration. Everything has a working
// default; the file only exists for people who renamed the viewer or want
// standing viewer flags.
type Config struct {
	Tool     string   `yaml:"tool"`
	ToolArgs []string `yaml:"tool_args"`
	LogLevel string   `yaml:"log_level"`
}

// Path resolves the config file location: the explicit flag value wins, then
// the ROUNDCTL_CONFIG environment variable, then the per-user default.
func Path(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	if p := strings.TrimSpace(os.Getenv("ROUNDCTL_CONFIG")); p != "" {
		return p
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "roundctl", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "roundctl", "config.yaml")
	}
	return ""
}

// Read loads the config at path. A missing file is not an error; the zero
// config is returned.
func Read(path string) (Config, error) {
	var cfg Config
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ResolveTool applies the viewer override precedence: the --tool flag, the
// ROUNDCTL_TOOL environment variable, the config file, then DefaultTool.
func (c Config) ResolveTool(flag string) string {
	if v := strings.TrimSpace(flag); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv("ROUNDCTL_TOOL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Tool); v != "" {
		return v
	}
	return DefaultTool
}

// ResolveLogLevel applies ROUNDCTL_LOG_LEVEL over the config file value.
// The default is warning so normal runs print nothing of their own.
func (c Config) ResolveLogLevel() string {
	if v := strings.TrimSpace(os.Getenv("ROUNDCTL_LOG_LEVEL")); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.LogLevel); v != "" {
		return v
	}
	return "warning"
}
