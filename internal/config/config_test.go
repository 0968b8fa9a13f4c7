package config

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if v, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, v) })
			os.Unsetenv(key)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "PORT", "DATABASE_URL", "DATABASE_NAME", "REDIS_ADDR", "KAFKA_BROKER")

	cfg, err := Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.DatabaseName)
	assert.Empty(t, cfg.KafkaBroker)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "hrms_test")
	t.Setenv("REDIS_ADDR", "cache:6379")
	t.Setenv("KAFKA_BROKER", "broker:9092")

	cfg, err := Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.DatabaseURL)
	assert.Equal(t, "hrms_test", cfg.DatabaseName)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "broker:9092", cfg.KafkaBroker)
}

func TestMongoURI(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI())

	cfg.DatabaseURL = "mongodb://db:27017"
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI())
}

func TestMongoDatabase(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, "hrms", cfg.MongoDatabase())

	cfg.DatabaseName = "hrms_test"
	assert.Equal(t, "hrms_test", cfg.MongoDatabase())
}
