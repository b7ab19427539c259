package aocenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultBaseURL = "https://adventofcode.com"
	defaultUA      = "aocenv workspace tool (+https://github.com/aocenv/aocenv)"
)

// Config holds the workspace configuration stored in config.json. The
// auto_* settings control what happens after a correct submission; see
// (*Env).Bind.
type Config struct {
	Session   string `json:"session,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`

	AutoBind         bool `json:"auto_bind"`
	AutoFormatOnBind bool `json:"auto_format_on_bind"`
	AutoCommitOnBind bool `json:"auto_commit_on_bind"`
	AutoClearOnBind  bool `json:"auto_clear_on_bind"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:          defaultBaseURL,
		UserAgent:        defaultUA,
		AutoBind:         true,
		AutoFormatOnBind: true,
	}
}

// LoadConfig loads configuration from the specified path. A missing file
// yields the defaults without error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Session = strings.TrimSpace(cfg.Session)
	cfg.BaseURL = strings.TrimSpace(cfg.BaseURL)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}
	return cfg, nil
}

// SaveConfig writes configuration to the specified path.
func SaveConfig(path string, cfg Config) error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}

	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace config: %w", err)
	}
	return nil
}
