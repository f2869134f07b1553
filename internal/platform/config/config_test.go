package config

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	// Empty variables are ignored by viper, so the defaults apply.
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8001", cfg.Port)
	assert.Equal(t, StorageMongo, cfg.StorageDriver)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "default_user", cfg.DefaultUserID)
	assert.Empty(t, cfg.JWTSecret)
	assert.True(t, cfg.AllowAllOrigins())
	assert.Equal(t, "100-M", cfg.RateLimit)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("PGSQL_URL", "postgres://u:p@localhost:5432/alsabqon?sslmode=disable")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowAllOrigins())
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.False(t, cfg.EnableMetrics)
	assert.Equal(t, "default_user", cfg.DefaultUserID)
}

func TestFromViper(t *testing.T) {
	base := func() *viper.Viper {
		v := viper.New()
		v.Set("STORAGE_DRIVER", "mongo")
		v.Set("MONGO_URL", "mongodb://localhost:27017")
		v.Set("LOG_LEVEL", "info")
		v.Set("CORS_ALLOWED_ORIGINS", "*")
		return v
	}

	testCases := []struct {
		name    string
		mutate  func(v *viper.Viper)
		wantErr string
	}{
		{name: "mongo ok", mutate: func(*viper.Viper) {}},
		{name: "unknown driver", mutate: func(v *viper.Viper) { v.Set("STORAGE_DRIVER", "sqlite") }, wantErr: "unsupported STORAGE_DRIVER"},
		{name: "mongo without url", mutate: func(v *viper.Viper) { v.Set("MONGO_URL", "") }, wantErr: "MONGO_URL is required"},
		{name: "postgres without url", mutate: func(v *viper.Viper) { v.Set("STORAGE_DRIVER", "postgres") }, wantErr: "PGSQL_URL is required"},
		{name: "bad log level", mutate: func(v *viper.Viper) { v.Set("LOG_LEVEL", "loud") }, wantErr: "invalid LOG_LEVEL"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := base()
			tc.mutate(v)
			cfg, err := fromViper(v)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, cfg.AllowAllOrigins())
			assert.Equal(t, "default_user", cfg.DefaultUserID)
		})
	}
}
