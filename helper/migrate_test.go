package helper

import (
	"testing"

	"careerday/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrateConfig() *config.Config {
	cfg := &config.Config{}
	cfg.DB.Postgres.Write = config.PostgresNode{Host: "db", Port: "5432", Username: "app", Password: "secret", Name: "careerday", SSLMode: "disable"}

	return cfg
}

func TestConnectionString(t *testing.T) {
	cfg := migrateConfig()
	assert.Equal(t, "postgres://app:secret@db:5432/careerday?sslmode=disable", connectionString(cfg))

	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "careerday_migrations"
	assert.Equal(t,
		"postgres://app:secret@db:5432/test_careerday?sslmode=disable&x-migrations-table=careerday_migrations",
		connectionString(cfg),
	)
}

func TestRunRejectsUnknownAction(t *testing.T) {
	err := Run(migrateConfig(), Action("sideways"))
	require.ErrorIs(t, err, ErrUnknownAction)
}
