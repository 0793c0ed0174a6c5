package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDatabase_NeedsNoProviderCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_CLIENT_ID", "")
	t.Setenv("GOOGLE_CLIENT_SECRET", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "lingonote_staging")

	cfg, err := LoadDatabase()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, "lingonote_staging", cfg.Name)

	// The full loader still refuses to boot without the provider keys.
	_, err = Load()
	require.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		Name:     "lingonote",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=lingonote sslmode=disable",
		cfg.DSN())
}

func TestValidate_RejectsUnknownProvider(t *testing.T) {
	cfg := &Config{}
	cfg.AI.Provider = "bard"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI_PROVIDER")
}
