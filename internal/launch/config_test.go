package launch

import (
	"errors"
	"testing"
)

func validConfig() Config {
	return Config{
		ConfigPath:   `C:\x\applicationhost.config`,
		Site:         "S1",
		AppPool:      "P1",
		LauncherPath: `bin\app.exe`,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"all required set", func(c *Config) {}, ""},
		{"missing config path", func(c *Config) { c.ConfigPath = "" }, "config_path"},
		{"missing site", func(c *Config) { c.Site = "" }, "site"},
		{"missing apppool", func(c *Config) { c.AppPool = "" }, "apppool"},
		{"missing launcher path", func(c *Config) { c.LauncherPath = "" }, "launcher_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", verr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateOptionalFieldsNotRequired(t *testing.T) {
	cfg := validConfig()
	cfg.ExePath = ""
	cfg.Environment = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, optional fields must not be required", err)
	}
}

func TestWithDefaults(t *testing.T) {
	cfg := validConfig().WithDefaults()

	if cfg.ExePath != DefaultExePath {
		t.Errorf("ExePath = %q, want %q", cfg.ExePath, DefaultExePath)
	}
	if cfg.Environment != DefaultEnvironment {
		t.Errorf("Environment = %q, want %q", cfg.Environment, DefaultEnvironment)
	}
}

func TestWithDefaultsKeepsOverrides(t *testing.T) {
	cfg := validConfig()
	cfg.ExePath = `D:\iis\iisexpress.exe`
	cfg.Environment = "Staging"

	got := cfg.WithDefaults()
	if got.ExePath != cfg.ExePath {
		t.Errorf("ExePath = %q, want override kept", got.ExePath)
	}
	if got.Environment != "Staging" {
		t.Errorf("Environment = %q, want override kept", got.Environment)
	}
}
