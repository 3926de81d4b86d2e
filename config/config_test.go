package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, testSecret, cfg.JWT.SecretKey)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "accessToken", cfg.Cookie.AccessName)
	assert.Equal(t, "refreshToken", cfg.Cookie.RefreshName)
	assert.False(t, cfg.Cookie.Secure)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.UserCacheTTL)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.AccessControl.AllowRoleOnRegister)
}

func TestLoadRequiresSecret(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt.secret_key is required")
}

func TestLoadRejectsShortSecret(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoadProductionCookies(t *testing.T) {
	resetViper(t)
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("NODE_ENV", "production")
	t.Setenv("JWT_EXPIRE", "2d")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Environment.IsProduction())
	assert.True(t, cfg.Cookie.Secure)
	assert.Equal(t, 48*time.Hour, cfg.JWT.RefreshTTL)
}

func TestParseLifetime(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "7d", want: 7 * 24 * time.Hour},
		{in: "1d", want: 24 * time.Hour},
		{in: "90m", want: 90 * time.Minute},
		{in: "168h", want: 168 * time.Hour},
		{in: "", wantErr: true},
		{in: "0d", wantErr: true},
		{in: "xd", wantErr: true},
		{in: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLifetime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExampleConfigLoads(t *testing.T) {
	example, err := os.ReadFile("inventory-config.example.yaml")
	require.NoError(t, err)

	resetViper(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", "inventory-config.yaml"), example, 0o600))
	t.Setenv("JWT_SECRET_KEY", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.HTTPServer.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.False(t, cfg.AccessControl.AllowRoleOnRegister)
	assert.Contains(t, string(example), "UPDATE users SET role = 'MANAGER'")
}
