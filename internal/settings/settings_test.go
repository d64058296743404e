package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hostwick/iisfixture/internal/launch"
	"github.com/hostwick/iisfixture/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init(false)
	os.Exit(m.Run())
}

func TestLoadDefaults(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.ReadyTimeout != 30*time.Second {
		t.Errorf("ReadyTimeout = %v, want 30s", s.ReadyTimeout)
	}
	if s.ExePath != "" {
		t.Errorf("ExePath = %q, want empty default", s.ExePath)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`exe_path: D:\iis\iisexpress.exe
environment: Staging
ready_timeout: 10s
logging:
  max_size_mb: 5
`)
	if err := os.WriteFile(filepath.Join(dir, FileName), content, 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.ExePath != `D:\iis\iisexpress.exe` {
		t.Errorf("ExePath = %q", s.ExePath)
	}
	if s.Environment != "Staging" {
		t.Errorf("Environment = %q, want Staging", s.Environment)
	}
	if s.ReadyTimeout != 10*time.Second {
		t.Errorf("ReadyTimeout = %v, want 10s", s.ReadyTimeout)
	}
	if s.Logging.MaxSizeMB != 5 {
		t.Errorf("Logging.MaxSizeMB = %d, want 5", s.Logging.MaxSizeMB)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("{ broken"), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load() should fail on a malformed settings file")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("environment: Staging\n"), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
	t.Setenv("IISFIXTURE_ENVIRONMENT", "Production")

	s, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Environment != "Production" {
		t.Errorf("Environment = %q, want env var to win over file", s.Environment)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	in := Default()
	in.Environment = "Staging"
	in.Logging.MaxBackups = 9

	if err := in.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	if !strings.Contains(string(raw), "ready_timeout: 30s") {
		t.Errorf("saved file should render the timeout as a duration string, got:\n%s", raw)
	}

	s, err := Load(filepath.Dir(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Environment != "Staging" {
		t.Errorf("Environment = %q after round trip", s.Environment)
	}
	if s.ReadyTimeout != 30*time.Second {
		t.Errorf("ReadyTimeout = %v after round trip, want 30s", s.ReadyTimeout)
	}
	if s.Logging.MaxBackups != 9 {
		t.Errorf("Logging.MaxBackups = %d after round trip", s.Logging.MaxBackups)
	}
}

func TestApply(t *testing.T) {
	s := &Settings{ExePath: `D:\iis\iisexpress.exe`, Environment: "Staging"}

	tests := []struct {
		name    string
		cfg     launch.Config
		wantExe string
		wantEnv string
	}{
		{
			"fills empty optionals",
			launch.Config{Site: "S1"},
			`D:\iis\iisexpress.exe`,
			"Staging",
		},
		{
			"explicit values win",
			launch.Config{Site: "S1", ExePath: `E:\other.exe`, Environment: "Production"},
			`E:\other.exe`,
			"Production",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Apply(tt.cfg)
			if got.ExePath != tt.wantExe {
				t.Errorf("ExePath = %q, want %q", got.ExePath, tt.wantExe)
			}
			if got.Environment != tt.wantEnv {
				t.Errorf("Environment = %q, want %q", got.Environment, tt.wantEnv)
			}
		})
	}
}
