package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	dir := t.TempDir()
	configPath := filepath.Join(dir, "assetimport.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
service:
  endpoint: http://127.0.0.1:1
catalog:
  path: transformations.yaml
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transformations.yaml"), []byte(`
sources:
  - contentType: article
    context: web
    assets:
      - location: body/hero
        transformations:
          - name: original
`), 0o600))

	tests := []struct {
		name         string
		args         []string
		expectedExit int
		stdout       string
		stderr       string
	}{
		{
			name:         "Version",
			args:         []string{"version"},
			expectedExit: 0,
			stdout:       "assetimport version dev",
		},
		{
			name:         "Catalog",
			args:         []string{"--config", configPath, "catalog", "--json"},
			expectedExit: 0,
			stdout:       `"location": "body/hero"`,
		},
		{
			name:         "Missing config",
			args:         []string{"--config", filepath.Join(dir, "nope.yaml"), "catalog"},
			expectedExit: 1,
			stderr:       "failed to read config file",
		},
		{
			name:         "Missing required flags",
			args:         []string{"import", "--context", "web"},
			expectedExit: 1,
			stderr:       "required flag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			exitCode := run(t.Context(), tt.args, &stdout, &stderr)
			assert.Equal(t, tt.expectedExit, exitCode, stderr.String())
			assert.Contains(t, stdout.String(), tt.stdout)
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}
