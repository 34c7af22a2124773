package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError string
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com/42"
server:
  host: 127.0.0.1
  port: 9000
  read_timeout: 5
threekit:
  environment: preview
  org_id: org-123
  token: tok-456
  page_size: 50
  http_timeout: "15s"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com/42", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9000, cfg.Server.Port)
				assert.Equal(t, 5, cfg.Server.ReadTimeout)
				assert.Equal(t, "preview", cfg.Threekit.Environment)
				assert.Equal(t, "org-123", cfg.Threekit.OrgID)
				assert.Equal(t, "tok-456", cfg.Threekit.Token)
				assert.Equal(t, 50, cfg.Threekit.PageSize)
				assert.Equal(t, 15*time.Second, cfg.Threekit.HTTPTimeout)
			},
		},
		{
			name: "defaults applied",
			configFile: `
threekit:
  environment: admin
  org_id: org-123
  token: tok-456
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 5000, cfg.Server.Port)
				assert.Equal(t, 120, cfg.Server.IdleTimeout)
				assert.Equal(t, 100, cfg.Threekit.PageSize)
				assert.Equal(t, 30*time.Second, cfg.Threekit.HTTPTimeout)
			},
		},
		{
			name: "missing environment",
			configFile: `
threekit:
  org_id: org-123
  token: tok-456
`,
			expectError: "threekit.environment is required",
		},
		{
			name: "missing org id",
			configFile: `
threekit:
  environment: preview
  token: tok-456
`,
			expectError: "threekit.org_id is required",
		},
		{
			name: "missing token",
			configFile: `
threekit:
  environment: preview
  org_id: org-123
`,
			expectError: "threekit.token is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.configFile)

			cfg, err := LoadAPIConfig(path, t.TempDir())
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}

			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadAPIConfig_EnvOverride(t *testing.T) {
	t.Setenv("CONFIGURATOR_THREEKIT_ENVIRONMENT", "production")
	t.Setenv("CONFIGURATOR_THREEKIT_ORG_ID", "org-env")
	t.Setenv("CONFIGURATOR_THREEKIT_TOKEN", "tok-env")
	t.Setenv("CONFIGURATOR_SERVER_PORT", "8088")

	cfg, err := LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Threekit.Environment)
	assert.Equal(t, "org-env", cfg.Threekit.OrgID)
	assert.Equal(t, "tok-env", cfg.Threekit.Token)
	assert.Equal(t, 8088, cfg.Server.Port)
}

func TestThreekitConfig_BaseURL(t *testing.T) {
	cfg := ThreekitConfig{Environment: "preview"}
	assert.Equal(t, "https://preview.threekit.com/api", cfg.BaseURL())
}
