package config

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "file", cfg.Model.Source)
	assert.Equal(t, "CarPrice.csv", cfg.Dataset.Path)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MODEL_SOURCE", "configmap")
	t.Setenv("MODEL_CONFIGMAP_NAME", "prices")
	t.Setenv("DATASET_SOURCE", "postgres")
	t.Setenv("DATABASE_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "configmap", cfg.Model.Source)
	assert.Equal(t, "prices", cfg.Model.ConfigMapName)
	assert.Equal(t, "postgres", cfg.Dataset.Source)
	assert.Equal(t, "postgres://postgres:postgres@db:5432/car_price?sslmode=disable", cfg.Database.DSN())
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Setenv("MODEL_SOURCE", "s3")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MODEL_SOURCE", "file")
	t.Setenv("DATASET_SOURCE", "sqlite")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_HTTPSource(t *testing.T) {
	t.Setenv("MODEL_SOURCE", "http")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("MODEL_URL", "http://registry/artifacts/model.json.zst")
	t.Setenv("MODEL_FETCH_TIMEOUT", "10s")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Model.FetchTimeout)
}

func TestDatabaseConfig_DSNEscapesCredentials(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "app", Password: "p@ss/w#rd?x=1",
		Name: "cars", SSLMode: "disable",
	}

	poolCfg, err := pgxpool.ParseConfig(d.DSN())
	require.NoError(t, err)

	conn := poolCfg.ConnConfig
	assert.Equal(t, "db", conn.Host)
	assert.Equal(t, uint16(5432), conn.Port)
	assert.Equal(t, "app", conn.User)
	assert.Equal(t, "p@ss/w#rd?x=1", conn.Password)
	assert.Equal(t, "cars", conn.Database)
}
