package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/hostwick/iisfixture/internal/launch"
	"github.com/hostwick/iisfixture/pkg/logger"
)

const (
	// FileName is the optional settings file looked up in the working directory.
	FileName = "iisfixture.yaml"

	// envPrefix namespaces the environment variables consulted during Load
	// (IISFIXTURE_EXE_PATH, IISFIXTURE_ENVIRONMENT, ...).
	envPrefix = "IISFIXTURE"
)

// Logging configures optional file logging.
type Logging struct {
	FileEnabled *bool  `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	Dir         string `mapstructure:"dir" yaml:"dir,omitempty"`
	MaxSizeMB   int    `mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxAgeDays  int    `mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups,omitempty"`
}

// Settings holds ambient defaults for fixtures: values a test author does
// not want to repeat per launch. Launch-required fields (config path,
// site, app pool, launcher path) deliberately have no place here.
type Settings struct {
	ExePath      string        `mapstructure:"exe_path"`
	Environment  string        `mapstructure:"environment"`
	ReadyTimeout time.Duration `mapstructure:"ready_timeout"`
	Logging      Logging       `mapstructure:"logging"`
}

// settingsFile is the on-disk shape of Settings. The ready timeout is
// stored as a duration string ("30s") so saved files stay as readable as
// hand-written ones; yaml would otherwise render time.Duration as raw
// nanoseconds.
type settingsFile struct {
	ExePath      string  `yaml:"exe_path,omitempty"`
	Environment  string  `yaml:"environment,omitempty"`
	ReadyTimeout string  `yaml:"ready_timeout,omitempty"`
	Logging      Logging `yaml:"logging,omitempty"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		ReadyTimeout: 30 * time.Second,
	}
}

// Load resolves settings for workDir. Precedence, highest first:
// IISFIXTURE_* environment variables, an optional iisfixture.yaml in
// workDir, built-in defaults. A missing file is not an error.
func Load(workDir string) (*Settings, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("exe_path", defaults.ExePath)
	v.SetDefault("environment", defaults.Environment)
	v.SetDefault("ready_timeout", defaults.ReadyTimeout)
	v.SetDefault("logging.dir", defaults.Logging.Dir)
	v.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := filepath.Join(workDir, FileName)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
		logger.Debug().Str("path", path).Msg("loaded settings file")
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}

// Save writes the settings to path, creating the parent directory if
// needed. The resulting file is readable by Load.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	out := settingsFile{
		ExePath:     s.ExePath,
		Environment: s.Environment,
		Logging:     s.Logging,
	}
	if s.ReadyTimeout > 0 {
		out.ReadyTimeout = s.ReadyTimeout.String()
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	return nil
}

// Apply fills the optional launch fields that cfg leaves empty. Explicit
// per-launch values always win over ambient settings.
func (s *Settings) Apply(cfg launch.Config) launch.Config {
	if cfg.ExePath == "" {
		cfg.ExePath = s.ExePath
	}
	if cfg.Environment == "" {
		cfg.Environment = s.Environment
	}
	return cfg
}

// LoggerConfig converts the logging block into the logger package's
// config type.
func (s *Settings) LoggerConfig() *logger.LoggingConfig {
	return &logger.LoggingConfig{
		FileEnabled: s.Logging.FileEnabled,
		MaxSizeMB:   s.Logging.MaxSizeMB,
		MaxAgeDays:  s.Logging.MaxAgeDays,
		MaxBackups:  s.Logging.MaxBackups,
	}
}
