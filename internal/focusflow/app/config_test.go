package app

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/focusflow/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "DATABASE_DRIVER", "DATABASE_URL", "JWT_SECRET", "JWT_EXPIRE",
		"JWT_ISSUER", "CORS_ORIGINS", "RATELIMIT_STRICT_REQUESTS", "RATELIMIT_LENIENT_REQUESTS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	require.Equal(t, "focusflow.db", cfg.DatabaseURL)
	require.Equal(t, 24*time.Hour, cfg.JWTExpire)
	require.Equal(t, "focusflow", cfg.Issuer)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	require.Equal(t, httpx.StrictLimit, cfg.AuthLimit)
	require.Equal(t, httpx.LenientLimit, cfg.APILimit)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://focus:focus@db:5432/focus")
	t.Setenv("JWT_EXPIRE", "7d")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "3")

	cfg := LoadConfig()
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, DriverPostgres, cfg.DatabaseDriver)
	require.Equal(t, "postgres://focus:focus@db:5432/focus", cfg.DatabaseURL)
	require.Equal(t, 7*24*time.Hour, cfg.JWTExpire)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	require.Equal(t, 3, cfg.AuthLimit.RequestsPerWindow)
	require.NoError(t, cfg.Validate())
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Duration
		ok   bool
	}{
		{"90s", 90 * time.Second, true},
		{"12h", 12 * time.Hour, true},
		{"1d", 24 * time.Hour, true},
		{"30d", 30 * 24 * time.Hour, true},
		{"15", 15 * time.Minute, true},
		{"soon", 0, false},
		{"xd", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDuration(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	base := Config{
		Port:           5000,
		DatabaseDriver: DriverSQLite,
		DatabaseURL:    "focusflow.db",
		JWTExpire:      time.Hour,
	}
	require.NoError(t, base.Validate())

	pg := base
	pg.DatabaseDriver = DriverPostgres
	pg.DatabaseURL = ""
	require.ErrorContains(t, pg.Validate(), "DATABASE_URL")

	unknown := base
	unknown.DatabaseDriver = "redis"
	require.ErrorContains(t, unknown.Validate(), "unknown DATABASE_DRIVER")

	mongo := base
	mongo.DatabaseDriver = DriverMongo
	require.ErrorContains(t, mongo.Validate(), "MONGODB_URI")

	expiry := base
	expiry.JWTExpire = 0
	require.ErrorContains(t, expiry.Validate(), "JWT_EXPIRE")
}

func TestSQLiteDSN(t *testing.T) {
	t.Parallel()

	require.Equal(t, ":memory:", sqliteDSN(":memory:"))
	require.Equal(t, "file:x.db?mode=ro", sqliteDSN("file:x.db?mode=ro"))
	require.Equal(t,
		"file:/data/focusflow.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		sqliteDSN("/data/focusflow.db"),
	)
}
