package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string        `yaml:"addr"`
	APITimeout     time.Duration `yaml:"timeout"`
	DatabasePath   string        `yaml:"database_path"`
	APIPrefix      string        `yaml:"api_prefix"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
	SeedOnStart    bool          `yaml:"seed_on_start"`
	MaxBodyBytes   int64         `yaml:"max_body_bytes"`
	LogLevel       string        `yaml:"log_level"`
}

// LoadConfig builds the configuration from defaults, an optional .env file,
// PORTFOLIO_* environment variables and finally the YAML file at path, in
// increasing order of precedence. The .env file is read from
// PORTFOLIO_ENV_FILE when set. Variables already in the environment win
// over the file.
func LoadConfig(path string) (*Config, error) {
	envFile := getEnv("PORTFOLIO_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	cfg := &Config{
		Addr:           getEnv("PORTFOLIO_ADDR", ":8000"),
		APITimeout:     15 * time.Second,
		DatabasePath:   getEnv("PORTFOLIO_DATABASE_PATH", "portfolio.db"),
		APIPrefix:      getEnv("PORTFOLIO_API_PREFIX", "/api"),
		MigrateOnStart: true,
		MaxBodyBytes:   1 << 20,
		LogLevel:       getEnv("PORTFOLIO_LOG_LEVEL", "info"),
	}

	var err error
	if cfg.APITimeout, err = getEnvDuration("PORTFOLIO_TIMEOUT", cfg.APITimeout); err != nil {
		return nil, err
	}
	if cfg.MigrateOnStart, err = getEnvBool("PORTFOLIO_MIGRATE_ON_START", cfg.MigrateOnStart); err != nil {
		return nil, err
	}
	if cfg.SeedOnStart, err = getEnvBool("PORTFOLIO_SEED_ON_START", cfg.SeedOnStart); err != nil {
		return nil, err
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, errors.New("database_path must not be empty"))
	}
	if c.APITimeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("max_body_bytes must be positive"))
	}
	if c.APIPrefix != "" && (!strings.HasPrefix(c.APIPrefix, "/") || strings.HasSuffix(c.APIPrefix, "/")) {
		errs = append(errs, fmt.Errorf("api_prefix %q must start with / and not end with /", c.APIPrefix))
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getEnvDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
