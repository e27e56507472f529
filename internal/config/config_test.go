package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `session_key: "0123456789abcdef0123456789abcdef"`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 86400, cfg.SessionMaxAge)
	assert.Equal(t, "./data/blog_database.db", cfg.Database.Path)
	assert.True(t, cfg.Gravatar.Enabled)
	assert.Equal(t, 120, cfg.Gravatar.Size)
	assert.False(t, cfg.Email.Enabled)
}

func TestLoad_OverridesAndSanitize(t *testing.T) {
	path := writeConfig(t, `
listen: " 127.0.0.1:8080/ "
log_level: DEBUG
server_url: "https://blog.example.com/"
session_key: "0123456789abcdef0123456789abcdef"
database:
  path: " /tmp/blog.db "
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://blog.example.com", cfg.ServerURL)
	assert.Equal(t, "/tmp/blog.db", cfg.Database.Path)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `session_key: "from-file-0123456789abcdef0123456789"`)
	t.Setenv("ARTICLEAPP_SESSION_KEY", "from-env-0123456789abcdef0123456789")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env-0123456789abcdef0123456789", cfg.SessionKey)
}

func TestLoad_MissingSessionKey(t *testing.T) {
	path := writeConfig(t, `listen: ":5000"`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session key")
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Listen:        ":5000",
			SessionKey:    "0123456789abcdef0123456789abcdef",
			SessionMaxAge: 3600,
			Database:      &DatabaseConfig{Path: "blog.db"},
			Gravatar:      &GravatarConfig{Enabled: true, Size: 80},
			Email:         &EmailConfig{},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing database", mutate: func(c *Config) { c.Database = nil }, wantErr: "database path"},
		{name: "zero max age", mutate: func(c *Config) { c.SessionMaxAge = 0 }, wantErr: "session max age"},
		{name: "gravatar size too big", mutate: func(c *Config) { c.Gravatar.Size = 4096 }, wantErr: "gravatar size"},
		{
			name:    "email without host",
			mutate:  func(c *Config) { c.Email = &EmailConfig{Enabled: true, FromEmail: "a@b.c"} },
			wantErr: "SMTP host",
		},
		{
			name: "email tls and ssl",
			mutate: func(c *Config) {
				c.Email = &EmailConfig{Enabled: true, SMTPHost: "smtp", FromEmail: "a@b.c", UseTLS: true, UseSSL: true}
			},
			wantErr: "mutually exclusive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validateConfig(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
