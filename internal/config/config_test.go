package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.Equal(t, "ko", cfg.Locale)
	assert.Equal(t, 5, cfg.DashboardJobs)
	assert.Equal(t, 3, cfg.DashboardFeedbacks)
	require.Len(t, cfg.Platforms, 6)
	assert.Equal(t, "linkedin", cfg.Platforms[0].ID)
	assert.Equal(t, "/crawl", cfg.Platforms[0].Endpoint)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
api_base_url: http://tracker.internal:9000/api
request_timeout: 15s
locale: en
platforms:
  - id: linkedin
    label: LinkedIn
  - id: remember
    endpoint: /crawl/remember
    list_id: remember-list
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://tracker.internal:9000/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "en", cfg.Locale)
	require.Len(t, cfg.Platforms, 2)
	assert.Equal(t, "remember", cfg.Platforms[1].ID)
	assert.Equal(t, "/crawl/remember", cfg.Platforms[1].Endpoint)
	assert.Equal(t, "remember-list", cfg.Platforms[1].ListID)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("JOBDESK_API_BASE_URL", "http://env-host/api")
	t.Setenv("JOBDESK_LOCALE", "en")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://env-host/api", cfg.APIBaseURL)
	assert.Equal(t, "en", cfg.Locale)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "relative base url", body: "api_base_url: /api\n"},
		{name: "negative timeout", body: "request_timeout: -1s\n"},
		{name: "zero dashboard limit", body: "dashboard_jobs: 0\n"},
		{name: "missing platform id", body: "platforms:\n  - label: Nameless\n"},
		{name: "duplicate platform", body: "platforms:\n  - id: wanted\n  - id: wanted\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestCreateDefaultConfigIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, ensureDefaultConfig(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Platforms, 6)
}
