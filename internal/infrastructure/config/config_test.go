package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"DATABASE_DSN": "user:pw@tcp(localhost:3306)/crm",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, DriverMySQL, cfg.Store.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "sha256", cfg.Auth.PasswordScheme)
	assert.Equal(t, ".secret_key", cfg.Auth.SecretKeyFile)
	assert.Equal(t, []string{"http://localhost:4200"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Login.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Login.AttemptWindow)
	assert.Equal(t, 10*time.Minute, cfg.Login.LockDuration)
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":                 "9000",
		"ENV":                  "production",
		"STORE_DRIVER":         "mongo",
		"MONGO_URI":            "mongodb://mongo:27017",
		"TOKEN_TTL":            "30m",
		"PASSWORD_SCHEME":      "argon2id",
		"REDIS_ADDR":           "redis:6379",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, DriverMongo, cfg.Store.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "argon2id", cfg.Auth.PasswordScheme)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing dsn", map[string]string{}},
		{"unknown driver", map[string]string{"STORE_DRIVER": "sqlite", "DATABASE_DSN": "x"}},
		{"unknown scheme", map[string]string{"DATABASE_DSN": "x", "PASSWORD_SCHEME": "md5"}},
		{"zero ttl", map[string]string{"DATABASE_DSN": "x", "TOKEN_TTL": "0s"}},
		{"bad attempts", map[string]string{"DATABASE_DSN": "x", "LOGIN_MAX_ATTEMPTS": "0"}},
		{"unparsable ttl", map[string]string{"DATABASE_DSN": "x", "TOKEN_TTL": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(context.Background(), envconfig.MapLookuper(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestLoad_DotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_DSN=postgres://u:p@db/crm\nSTORE_DRIVER=postgres\n"), 0o600))

	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "")
	os.Unsetenv("DATABASE_DSN")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, "postgres://u:p@db/crm", cfg.Store.DSN)
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	t.Setenv("DATABASE_DSN", "x")

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
