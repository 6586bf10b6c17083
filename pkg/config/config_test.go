package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "SYSTEM", cfg.App.SystemUser)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, []string{"shipment", "outsourcing", "issue-slip"}, cfg.Ledger.AtomicOperations)
}

func TestLoad_AtomicOperationsFromEnv(t *testing.T) {
	t.Setenv("LEDGER_ATOMIC_OPERATIONS", " shipment , receive,,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"shipment", "receive"}, cfg.Ledger.AtomicOperations)
}

func TestLoad_AuthRequiredSinSecret(t *testing.T) {
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "mes", Password: "p@ss:w/rd", DBName: "mes", SSLMode: "disable"}
	assert.Equal(t, "postgres://mes:p%40ss%3Aw%2Frd@db:5432/mes?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestRedisConfig_GuardTTL(t *testing.T) {
	assert.Equal(t, 5, int(RedisConfig{}.GuardTTL().Seconds()))
	assert.Equal(t, 12, int(RedisConfig{GuardSeconds: 12}.GuardTTL().Seconds()))
}
