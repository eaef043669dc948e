package db

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/go-playground/assert/v2"
)

func TestPoolConfig_EnvDefaults(t *testing.T) {
	var cfg PoolConfig
	err := env.Parse(&cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 25, cfg.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, DefaultPoolConfig(), cfg)
}

func TestPoolConfig_EnvOverride(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30s")

	var cfg PoolConfig
	err := env.Parse(&cfg)

	assert.Equal(t, nil, err)
	assert.Equal(t, 5, cfg.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.ConnMaxLifetime)
}
