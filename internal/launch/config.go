package launch

import "fmt"

const (
	// DefaultExePath is the well-known IIS Express installation path, used
	// when Config.ExePath is not set.
	DefaultExePath = `C:\Program Files\IIS Express\iisexpress.exe`

	// DefaultEnvironment is the environment name handed to the hosted
	// application when Config.Environment is not set.
	DefaultEnvironment = "Development"
)

// Config describes one launch of the host process. It is constructed once
// per start attempt, rendered into arguments and environment, then discarded.
type Config struct {
	// ConfigPath is the applicationhost.config path handed to the host. Required.
	ConfigPath string
	// Site is the site name inside the config file. Required.
	Site string
	// AppPool is the application pool name. Required.
	AppPool string
	// LauncherPath is the launcher path, relative to the site root, exported
	// to the hosted application via LAUNCHER_PATH. Required.
	LauncherPath string

	// ExePath overrides the host executable location. Defaults to DefaultExePath.
	ExePath string
	// Environment overrides the hosting environment name. Defaults to DefaultEnvironment.
	Environment string
}

// ValidationError reports a required configuration value that is missing.
// It indicates a caller programming error, not a runtime-environment failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that every required field is set. It returns the first
// missing field as a *ValidationError, so a caller sees exactly one error
// naming the offending field.
func (c Config) Validate() error {
	required := []struct {
		field string
		value string
	}{
		{"config_path", c.ConfigPath},
		{"site", c.Site},
		{"apppool", c.AppPool},
		{"launcher_path", c.LauncherPath},
	}
	for _, r := range required {
		if r.value == "" {
			return &ValidationError{Field: r.field, Message: "is required"}
		}
	}
	return nil
}

// WithDefaults returns a copy of c with the optional fields filled in.
func (c Config) WithDefaults() Config {
	if c.ExePath == "" {
		c.ExePath = DefaultExePath
	}
	if c.Environment == "" {
		c.Environment = DefaultEnvironment
	}
	return c
}
