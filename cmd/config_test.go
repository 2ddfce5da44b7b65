package cmd

import (
	"os"
	"testing"
	"time"

	"printorders/internal/core/domain/model/stage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"HTTP_PORT", "ARTIFACT_UPLOAD_URL_TTL", "STATS_TIMEZONE", "STAGE_UNKNOWN_POLICY", "KAFKA_HOST"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8082", cfg.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.UploadURLTTL)
	assert.Equal(t, 60*time.Second, cfg.ViewURLTTL)
	assert.Equal(t, time.Hour, cfg.AuthRoleClaimMaxAge)
	assert.Equal(t, 3, cfg.StatsDueSoonDays)
	assert.Equal(t, "uploads", cfg.LocalUploadDir)
	assert.Empty(t, cfg.KafkaHost)

	loc, err := cfg.StatsLocation()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("KAFKA_HOST", "kafka-1:9092,kafka-2:9092")
	t.Setenv("STAGE_UNKNOWN_POLICY", "strict")
	t.Setenv("STATS_TIMEZONE", "Europe/Berlin")
	t.Setenv("ARTIFACT_VIEW_URL_TTL", "2m")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaHost)
	assert.Equal(t, 2*time.Minute, cfg.ViewURLTTL)

	policy, err := cfg.UnknownStagePolicy()
	require.NoError(t, err)
	assert.Equal(t, stage.Strict, policy)

	loc, err := cfg.StatsLocation()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoadConfig_Rejects(t *testing.T) {
	t.Run("unknown stage policy", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("STAGE_UNKNOWN_POLICY", "lenient")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("unknown timezone", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("STATS_TIMEZONE", "Mars/Olympus_Mons")

		_, err := LoadConfig()

		assert.Error(t, err)
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("ARTIFACT_UPLOAD_URL_TTL", "soon")

		_, err := LoadConfig()

		assert.Error(t, err)
	})
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBPort: "5432", DBUser: "u", DBPassword: "p", DBName: "orders", DBSslMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=orders sslmode=disable", cfg.DSN())
}
