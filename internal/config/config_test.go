package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Env: "development"},
		Database: DatabaseConfig{Driver: "postgres", Host: "localhost", User: "app", DBName: "creatormatch"},
		JWT:      JWTConfig{AccessSecret: "0123456789abcdef0123456789abcdef"},
		Storage:  StorageConfig{Type: "local"},
		Matching: MatchingConfig{Concurrency: 4},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: "database host is required"},
		{name: "short secret", mutate: func(c *Config) { c.JWT.AccessSecret = "short" }, wantErr: "at least 32 characters"},
		{name: "memory driver", mutate: func(c *Config) { c.Database = DatabaseConfig{Driver: "memory"} }},
		{
			name: "memory driver in production",
			mutate: func(c *Config) {
				c.Database = DatabaseConfig{Driver: "memory"}
				c.Server.Env = "production"
			},
			wantErr: "not allowed in production",
		},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "unsupported database driver"},
		{name: "unknown storage", mutate: func(c *Config) { c.Storage.Type = "s3" }, wantErr: "unsupported storage type"},
		{name: "zero concurrency", mutate: func(c *Config) { c.Matching.Concurrency = 0 }, wantErr: "match concurrency"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "creatormatch")
	t.Setenv("JWT_ACCESS_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("MATCH_CONCURRENCY", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "db", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	require.Equal(t, 8, cfg.Matching.Concurrency)
	require.Equal(t, "local", cfg.Storage.Type)
	require.Equal(t, "host=db port=5432 user=app password= dbname=creatormatch sslmode=disable", cfg.Database.GetDSN())
}
