package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"

	// DefaultSecret guards delete and reset unless configured otherwise.
	DefaultSecret = "jonas"
	DefaultAddr   = ":8080"
)

// Config holds the settings of a mealweek installation.
type Config struct {
	DataDir       string `json:"data_dir"`
	Backend       string `json:"backend"`
	SQLitePath    string `json:"sqlite_path,omitempty"`
	Secret        string `json:"secret"`
	StartFromPlan bool   `json:"start_from_plan"`
	Addr          string `json:"addr"`
	LogLevel      string `json:"log_level"`
}

// envKeys maps environment variables onto config keys.
var envKeys = map[string]string{
	"MEALWEEK_DATA_DIR":        "data_dir",
	"MEALWEEK_BACKEND":         "backend",
	"MEALWEEK_SQLITE_PATH":     "sqlite_path",
	"MEALWEEK_SECRET":          "secret",
	"MEALWEEK_START_FROM_PLAN": "start_from_plan",
	"MEALWEEK_ADDR":            "addr",
	"MEALWEEK_LOG_LEVEL":       "log_level",
}

// Dir returns the global mealweek directory.
func Dir(homeDir string) string {
	return filepath.Join(homeDir, ".mealweek")
}

// Path returns the path to the global config.json.
func Path(homeDir string) string {
	return filepath.Join(Dir(homeDir), "config.json")
}

// Default returns the configuration used when nothing is set.
func Default(homeDir string) Config {
	return Config{
		DataDir:       Dir(homeDir),
		Backend:       BackendFile,
		Secret:        DefaultSecret,
		StartFromPlan: true,
		Addr:          DefaultAddr,
		LogLevel:      "info",
	}
}

// Read reads the global config file on top of the defaults.
// Returns the defaults if the file does not exist.
func Read(homeDir string) (Config, error) {
	cfg := Default(homeDir)

	data, err := os.ReadFile(Path(homeDir))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", Path(homeDir), err)
	}
	return cfg, nil
}

// Write writes the global config file, creating the directory if needed.
func Write(homeDir string, cfg Config) error {
	if err := os.MkdirAll(Dir(homeDir), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(Path(homeDir), data, 0644)
}

// Load reads the config file and applies overrides from the given .env
// files and the process environment, in that order of precedence (the
// environment wins). Missing .env files are skipped.
func Load(homeDir string, dotenvFiles ...string) (Config, error) {
	cfg, err := Read(homeDir)
	if err != nil {
		return cfg, err
	}

	dotenv := map[string]string{}
	for _, f := range dotenvFiles {
		vals, err := godotenv.Read(f)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("reading %s: %w", f, err)
		}
		for k, v := range vals {
			dotenv[k] = v
		}
	}

	envNames := make([]string, 0, len(envKeys))
	for name := range envKeys {
		envNames = append(envNames, name)
	}
	sort.Strings(envNames)

	for _, name := range envNames {
		v, ok := os.LookupEnv(name)
		if !ok {
			v, ok = dotenv[name]
		}
		if !ok {
			continue
		}
		if err := cfg.Set(envKeys[name], v); err != nil {
			return cfg, fmt.Errorf("%s: %w", name, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Keys lists the settable config keys.
func Keys() []string {
	return []string{"data_dir", "backend", "sqlite_path", "secret", "start_from_plan", "addr", "log_level"}
}

// Set assigns a single key from its string form.
func (c *Config) Set(key, value string) error {
	switch key {
	case "data_dir":
		c.DataDir = value
	case "backend":
		c.Backend = strings.ToLower(strings.TrimSpace(value))
	case "sqlite_path":
		c.SQLitePath = value
	case "secret":
		c.Secret = value
	case "start_from_plan":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected true or false", value, key)
		}
		c.StartFromPlan = b
	case "addr":
		c.Addr = value
	case "log_level":
		c.LogLevel = strings.ToLower(strings.TrimSpace(value))
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Get returns the string form of a single key.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "data_dir":
		return c.DataDir, nil
	case "backend":
		return c.Backend, nil
	case "sqlite_path":
		return c.SQLitePath, nil
	case "secret":
		return c.Secret, nil
	case "start_from_plan":
		return strconv.FormatBool(c.StartFromPlan), nil
	case "addr":
		return c.Addr, nil
	case "log_level":
		return c.LogLevel, nil
	}
	return "", fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
}

// Validate checks values that would otherwise fail later at startup.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unsupported backend %q (valid: %s, %s)", c.Backend, BackendFile, BackendSQLite)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	if c.Secret == "" {
		return fmt.Errorf("secret must not be empty")
	}
	return nil
}

// DatabasePath returns the SQLite file used by the sqlite backend.
func (c Config) DatabasePath() string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	return filepath.Join(c.DataDir, "mealweek.db")
}
