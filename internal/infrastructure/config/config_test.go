package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the variables Load reads so host settings do not leak into tests
func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DATABASE_URL",
		"TIENDA_DATABASE_URL",
		"TIENDA_APP_NAME",
		"TIENDA_APP_ENV",
		"TIENDA_APP_PORT",
		"TIENDA_DATABASE_MAX_OPEN_CONNS",
		"TIENDA_DATABASE_MAX_IDLE_CONNS",
		"TIENDA_LOG_LEVEL",
		"TIENDA_LOG_FORMAT",
		"TIENDA_SCHEMA_ALLOWED_TABLES",
		"TIENDA_SWAGGER_ENABLED",
		"TIENDA_SWAGGER_ALLOWED_IPS",
		"TIENDA_TELEMETRY_DB_LOG_FULL_SQL",
		"TIENDA_TELEMETRY_SAMPLING_RATIO",
		"TIENDA_PROFILING_ENABLED",
		"TIENDA_PROFILING_SERVER_ADDRESS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "tienda-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "3000", cfg.App.Port)
		assert.Empty(t, cfg.Database.URL)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "console", cfg.Log.Format)
		assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
		assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowOrigins)
		assert.Equal(t, []string{"productos", "clientes", "ordenes", "categorias"}, cfg.Schema.AllowedTables)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, "tienda-backend", cfg.Telemetry.ServiceName)
	})

	t.Run("reads unprefixed DATABASE_URL", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DATABASE_URL", " postgres://tienda:secret@db:5432/tienda ")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "postgres://tienda:secret@db:5432/tienda", cfg.Database.URL)
		assert.Equal(t, cfg.Database.URL, cfg.Database.DSN())
		assert.NoError(t, cfg.Database.RequireDatabaseURL())
	})

	t.Run("prefixed variables override defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TIENDA_APP_PORT", "8081")
		t.Setenv("TIENDA_LOG_LEVEL", "debug")
		t.Setenv("TIENDA_DATABASE_MAX_OPEN_CONNS", "40")
		t.Setenv("TIENDA_DATABASE_MAX_IDLE_CONNS", "20")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "8081", cfg.App.Port)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, 40, cfg.Database.MaxOpenConns)
		assert.Equal(t, 20, cfg.Database.MaxIdleConns)
	})

	t.Run("rejects invalid log level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TIENDA_LOG_LEVEL", "verbose")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects idle pool larger than open pool", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TIENDA_DATABASE_MAX_OPEN_CONNS", "2")
		t.Setenv("TIENDA_DATABASE_MAX_IDLE_CONNS", "8")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("profiling requires a server address", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TIENDA_PROFILING_ENABLED", "true")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate_Production(t *testing.T) {
	base := func() *Config {
		cfg := &Config{App: AppConfig{Env: "production"}}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("accepts defaults", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("rejects full SQL logging", func(t *testing.T) {
		cfg := base()
		cfg.Telemetry.DBLogFullSQL = true
		assert.ErrorContains(t, cfg.validate(), "db_log_full_sql")
	})

	t.Run("rejects open swagger", func(t *testing.T) {
		cfg := base()
		cfg.Swagger.Enabled = true
		assert.ErrorContains(t, cfg.validate(), "swagger")

		cfg.Swagger.AllowedIPs = []string{"10.0.0.0/8"}
		assert.NoError(t, cfg.validate())
	})
}

func TestDatabaseConfig_RequireDatabaseURL(t *testing.T) {
	var d DatabaseConfig
	assert.ErrorIs(t, d.RequireDatabaseURL(), ErrMissingDatabaseURL)

	d.URL = "postgres://localhost/tienda"
	assert.NoError(t, d.RequireDatabaseURL())
}
