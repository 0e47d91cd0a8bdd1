package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/viper"
)

// Config is the project-level extraction configuration, loaded from
// .codeatlas.yaml in the project root with CODEATLAS_* env overrides.
type Config struct {
	Include []string `mapstructure:"include"`
	Exclude []string `mapstructure:"exclude"`
	Workers int      `mapstructure:"workers"`
	Format  string   `mapstructure:"format"`
	Output  string   `mapstructure:"output"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Include: []string{},
		Exclude: []string{
			".git/**",
			"node_modules/**",
			"vendor/**",
			"dist/**",
			"build/**",
			"target/**",
			"__pycache__/**",
		},
		Workers: runtime.NumCPU(),
		Format:  "json",
		Output:  "",
	}
}

// Load reads .codeatlas.yaml from rootDir. A missing file yields defaults;
// a malformed file is an error.
func Load(rootDir string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".codeatlas")
	v.SetConfigType("yaml")
	v.AddConfigPath(rootDir)
	v.SetEnvPrefix("CODEATLAS")
	v.AutomaticEnv()

	cfg := Default()
	v.SetDefault("include", cfg.Include)
	v.SetDefault("exclude", cfg.Exclude)
	v.SetDefault("workers", cfg.Workers)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("output", cfg.Output)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values and normalizes the output path.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unknown format %q (want json or text)", c.Format)
	}
	if c.Output != "" {
		c.Output = filepath.Clean(c.Output)
	}
	return nil
}
