package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIBaseURL, EnvLanguage, EnvRequestTimeout, EnvOpenLocation} {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadBootstrap_MissingFilesUseDefaults(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	b, err := LoadBootstrap(filepath.Join(dir, "nope.yaml"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBootstrap(), b)
}

func TestLoadBootstrap_YAMLFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "storefront.yaml", `
api_base_url: https://floraverde.example/api/
language: en
request_timeout: 15s
open: catalog?category=Cactus
`)

	b, err := LoadBootstrap(path, "")
	require.NoError(t, err)
	assert.Equal(t, "https://floraverde.example/api", b.APIBaseURL)
	assert.Equal(t, "en", b.Language)
	assert.Equal(t, 15*time.Second, b.RequestTimeout)
	assert.Equal(t, "catalog?category=Cactus", b.OpenLocation)
}

func TestLoadBootstrap_InvalidYAML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "storefront.yaml", "api_base_url: [unclosed")

	_, err := LoadBootstrap(path, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadBootstrap_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	configPath := writeFile(t, dir, "storefront.yaml", "api_base_url: http://from-file/api\nlanguage: en\n")
	envPath := writeFile(t, dir, ".env", "FLORAVERDE_API_URL=http://from-dotenv/api\nFLORAVERDE_TIMEOUT=20\n")

	b, err := LoadBootstrap(configPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "http://from-dotenv/api", b.APIBaseURL)
	assert.Equal(t, "en", b.Language)
	assert.Equal(t, 20*time.Second, b.RequestTimeout)

	// Process environment wins over .env
	t.Setenv(EnvAPIBaseURL, "http://from-process/api")
	b, err = LoadBootstrap(configPath, envPath)
	require.NoError(t, err)
	assert.Equal(t, "http://from-process/api", b.APIBaseURL)
}

func TestLoadBootstrap_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvRequestTimeout, "soon")

	_, err := LoadBootstrap("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvRequestTimeout)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		value    string
		expected time.Duration
		wantErr  bool
	}{
		{"5", 5 * time.Second, false},
		{"250ms", 250 * time.Millisecond, false},
		{"1m", time.Minute, false},
		{"0", 0, true},
		{"-3s", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := parseTimeout(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
