package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"erpauth/internal/errors"
)

const sampleYAML = `
env:
  env: test
  serviceName: erpauth
http:
  port: 8080
store:
  driver: sqlite
sqlite:
  path: ":memory:"
secretKey:
  access: yaml-secret
auth:
  maxLoginAttempts: 5
  lockDuration: 2h
  allowedDomains: ["University.EDU ", ""]
`

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(body), 0o600))

	return dir
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadWithEnv_YAMLAndEnvOverride(t *testing.T) {
	dir := writeConfig(t, "config", sampleYAML)
	chdir(t, dir)

	t.Setenv("AUTH_MAXLOGINATTEMPTS", "3")
	t.Setenv("SECRETKEY_ACCESS", "env-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 3, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 2*time.Hour, cfg.Auth.LockDuration)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.Env.ServiceName = "erpauth"
	cfg.Auth = &AuthConfig{AllowedDomains: []string{" Faculty.Example.EDU", "  "}}

	cfg.ApplyDefaults()

	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 5, cfg.Auth.MaxLoginAttempts)
	assert.Equal(t, 2*time.Hour, cfg.Auth.LockDuration)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "erpauth", cfg.Auth.Issuer)
	assert.Equal(t, []string{"faculty.example.edu"}, cfg.Auth.AllowedDomains)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.SecretKey.Access = "secret"
		cfg.Store.Driver = DriverSQLite
		cfg.SQLite = &SQLiteConfig{Path: ":memory:"}
		cfg.ApplyDefaults()

		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "missing secret", mutate: func(c *Config) { c.SecretKey.Access = "  " }},
		{name: "unknown driver", mutate: func(c *Config) { c.Store.Driver = "redis" }},
		{name: "postgres without section", mutate: func(c *Config) { c.Store.Driver = DriverPostgres }},
		{name: "mongo without uri", mutate: func(c *Config) { c.Store.Driver = DriverMongo }},
		{name: "bcrypt cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrConfigInvalid))
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1)
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
