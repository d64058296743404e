package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostwick/iisfixture/internal/settings"
)

func TestInitCommandWritesSettingsFile(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	_, err := execute(t, "init", "--environment", "Staging", "--exe", `D:\iis\iisexpress.exe`)
	require.NoError(t, err)

	s, err := settings.Load(workDir)
	require.NoError(t, err)
	assert.Equal(t, "Staging", s.Environment)
	assert.Equal(t, `D:\iis\iisexpress.exe`, s.ExePath)
	assert.Equal(t, 30*time.Second, s.ReadyTimeout)
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	_, err := execute(t, "init")
	require.NoError(t, err)

	_, err = execute(t, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
