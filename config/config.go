package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/capital/internal/logging"
)

// Config represents the complete game configuration
type Config struct {
	Store   StoreConfig   `json:"store" yaml:"store" toml:"store"`
	Journal JournalConfig `json:"journal" yaml:"journal" toml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log" toml:"log"`
	Game    GameConfig    `json:"game" yaml:"game" toml:"game"`
}

// StoreConfig selects where the game snapshot is kept
type StoreConfig struct {
	Type          string `json:"type" yaml:"type" toml:"type"` // "sqlite", "redis" or "memory"
	DBPath        string `json:"db_path,omitempty" yaml:"db_path,omitempty" toml:"db_path,omitempty"`
	RedisAddr     string `json:"redis_addr,omitempty" yaml:"redis_addr,omitempty" toml:"redis_addr,omitempty"`
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty" toml:"redis_password,omitempty"`
	RedisDB       int    `json:"redis_db,omitempty" yaml:"redis_db,omitempty" toml:"redis_db,omitempty"`
	Key           string `json:"key" yaml:"key" toml:"key"`
}

// JournalConfig contains ledger parameters
type JournalConfig struct {
	Type      string `json:"type" yaml:"type" toml:"type"` // "none", "csv" or "sqlite"
	LoansFile string `json:"loans_file,omitempty" yaml:"loans_file,omitempty" toml:"loans_file,omitempty"`
	DaysFile  string `json:"days_file,omitempty" yaml:"days_file,omitempty" toml:"days_file,omitempty"`
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty" toml:"db_path,omitempty"`
}

type LogConfig struct {
	Level       string `json:"level" yaml:"level" toml:"level"`
	Development bool   `json:"development" yaml:"development" toml:"development"`
}

// GameConfig seeds the job generator; 0 picks a random seed each run
type GameConfig struct {
	Seed int64 `json:"seed" yaml:"seed" toml:"seed"`
}

// Environment overrides applied by ApplyEnv
const (
	EnvStore         = "CAPITAL_STORE"
	EnvDBPath        = "CAPITAL_DB_PATH"
	EnvRedisAddr     = "CAPITAL_REDIS_ADDR"
	EnvRedisPassword = "CAPITAL_REDIS_PASSWORD"
	EnvRedisDB       = "CAPITAL_REDIS_DB"
	EnvLogLevel      = "CAPITAL_LOG_LEVEL"
)

// LoadFromFile loads configuration from a file. TOML is chosen by the
// .toml extension; anything else is tried as YAML and then JSON.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse config (toml): %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file, formatted by extension
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch {
	case isTOML(path):
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(c)
		data = buf.Bytes()
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func isTOML(path string) bool {
	return strings.HasSuffix(path, ".toml")
}

// ApplyEnv overrides fields from CAPITAL_* environment variables
func (c *Config) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvStore); ok {
		c.Store.Type = v
	}
	if v, ok := os.LookupEnv(EnvDBPath); ok {
		c.Store.DBPath = v
	}
	if v, ok := os.LookupEnv(EnvRedisAddr); ok {
		c.Store.RedisAddr = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		c.Store.RedisPassword = v
	}
	if v, ok := os.LookupEnv(EnvRedisDB); ok {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRedisDB, err)
		}
		c.Store.RedisDB = db
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Log.Level = v
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch c.Store.Type {
	case "sqlite":
		if c.Store.DBPath == "" {
			return fmt.Errorf("store.db_path required for sqlite store")
		}
	case "redis":
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store.redis_addr required for redis store")
		}
		if c.Store.RedisDB < 0 {
			return fmt.Errorf("store.redis_db must not be negative")
		}
	case "memory":
	default:
		return fmt.Errorf("store.type must be 'sqlite', 'redis' or 'memory'")
	}
	if c.Store.Key == "" {
		return fmt.Errorf("store.key is required")
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.LoansFile == "" || c.Journal.DaysFile == "" {
			return fmt.Errorf("journal loans_file and days_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// DataDir is where the game keeps its files: $XDG_DATA_HOME/capital, or
// ~/.local/share/capital when XDG_DATA_HOME is unset.
func DataDir() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "capital")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "capital"
	}
	return filepath.Join(home, ".local", "share", "capital")
}

// DefaultPath is the config file read when --config is not given.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "capital", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "capital", "config.yaml")
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	dbPath := filepath.Join(DataDir(), "capital.db")
	return &Config{
		Store: StoreConfig{
			Type:   "sqlite",
			DBPath: dbPath,
			Key:    "state",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: dbPath,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
