package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestInit(t *testing.T) {
	Init(false)

	if Log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("Log level should be Info when debug=false, got %v", Log.GetLevel())
	}

	Init(true)

	if Log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("Log level should be Debug when debug=true, got %v", Log.GetLevel())
	}
}

func TestLogFunctions(t *testing.T) {
	Init(true)

	if Debug() == nil {
		t.Error("Debug() should return non-nil event")
	}
	if Info() == nil {
		t.Error("Info() should return non-nil event")
	}
	if Warn() == nil {
		t.Error("Warn() should return non-nil event")
	}
	if Error() == nil {
		t.Error("Error() should return non-nil event")
	}
	// Note: Don't test Fatal() as it would exit
}

func TestInitWithFile(t *testing.T) {
	logsDir := t.TempDir()

	if err := InitWithFile(false, logsDir, &LoggingConfig{}); err != nil {
		t.Fatalf("InitWithFile() error = %v", err)
	}
	defer CloseFileWriter()

	if GetLogFilePath() == "" {
		t.Error("GetLogFilePath() should return a path when file logging is enabled")
	}

	Info().Str("check", "file").Msg("file logging smoke test")

	if err := CloseFileWriter(); err != nil {
		t.Errorf("CloseFileWriter() error = %v", err)
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath() should be empty after close")
	}
}

func TestInitWithFileDisabled(t *testing.T) {
	disabled := false
	cfg := &LoggingConfig{FileEnabled: &disabled}

	if err := InitWithFile(false, t.TempDir(), cfg); err != nil {
		t.Fatalf("InitWithFile() error = %v", err)
	}

	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath() should be empty when file logging is disabled")
	}
}

func TestContext(t *testing.T) {
	Init(true)

	SetContext("Site1", "Pool1")
	defer ClearContext()

	if got := getContext(); got.Site != "Site1" || got.AppPool != "Pool1" {
		t.Errorf("getContext() = %+v, want Site1/Pool1", got)
	}

	ClearContext()
	if got := getContext(); got.Site != "" || got.AppPool != "" {
		t.Errorf("getContext() after clear = %+v, want empty", got)
	}
}

func TestWithField(t *testing.T) {
	Init(false)

	logger := WithField("test_key", "test_value")

	if logger.GetLevel() == zerolog.Disabled {
		t.Error("WithField should return a valid logger")
	}
}
