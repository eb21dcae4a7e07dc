package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "gavel.yaml")
	configContent := `version: "1"
log_level: error
repositories:
  releases:
    backend: fs
    path: releases
grants:
  - identity: ci
    paths: ["**"]
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "version",
			args:         []string{"gavel", "version"},
			expectedExit: 0,
		},
		{
			name:         "publish",
			args:         []string{"gavel", "-c", configPath, "publish", "-i", "ci", "com.example", "lib", "1.0"},
			expectedExit: 0,
		},
		{
			name:         "missing config",
			args:         []string{"gavel", "-c", filepath.Join(tmpDir, "absent.yaml"), "latest", "com.example:lib"},
			expectedExit: 1,
		},
		{
			name:         "unknown command",
			args:         []string{"gavel", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			assert.Equal(t, tt.expectedExit, run())
		})
	}

	_, err := os.Stat(filepath.Join(tmpDir, "releases", "com", "example", "lib", "maven-metadata.xml"))
	assert.NoError(t, err)
}
