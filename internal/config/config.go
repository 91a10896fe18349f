package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the fields bulletin needs at startup.
type Config struct {
	APIBaseURL string
	DataDir    string
}

const (
	defaultConfigPath = "~/.config/bulletin/config.toml"
	defaultAPIBaseURL = "https://jsonplaceholder.typicode.com"
	defaultDataDir    = "~/.local/share/bulletin"
)

// Load locates and parses the bulletin config, falling back to defaults
// when missing. A .env file in the working directory is read first;
// BULLETIN_API_BASE and BULLETIN_DATA_DIR override file values.
func Load(path string) (Config, error) {
	_ = godotenv.Load(".env")

	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{APIBaseURL: defaultAPIBaseURL, DataDir: defaultDataDir}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg.withOverrides()
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL string `toml:"api_base_url"`
		DataDir    string `toml:"data_dir"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBaseURL); base != "" {
		cfg.APIBaseURL = base
	}
	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = dir
	}

	return cfg.withOverrides()
}

// LocalStorePath returns the directory holding the persistent local cache.
func (c Config) LocalStorePath() string {
	return filepath.Join(c.DataDir, "localstore")
}

func (c Config) withOverrides() (Config, error) {
	if base := strings.TrimSpace(os.Getenv("BULLETIN_API_BASE")); base != "" {
		c.APIBaseURL = base
	}
	if dir := strings.TrimSpace(os.Getenv("BULLETIN_DATA_DIR")); dir != "" {
		c.DataDir = dir
	}
	dir, err := expandPath(c.DataDir)
	if err != nil {
		return Config{}, err
	}
	c.DataDir = dir
	return c, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
