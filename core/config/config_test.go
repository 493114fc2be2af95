package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiesession/core/config"
)

type sessionTestConfig struct {
	Secret string        `env:"CFG_TEST_SECRET"`
	TTL    time.Duration `env:"CFG_TEST_TTL" envDefault:"10m"`
}

type requiredTestConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type cachedTestConfig struct {
	Name string `env:"CFG_TEST_CACHED" envDefault:"default"`
}

func TestLoad(t *testing.T) {
	t.Setenv("CFG_TEST_SECRET", "s3cret")

	var cfg sessionTestConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "s3cret", cfg.Secret)
	assert.Equal(t, 10*time.Minute, cfg.TTL)
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredTestConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParse)

	assert.Panics(t, func() {
		config.MustLoad(&requiredTestConfig{})
	})
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("CFG_TEST_CACHED", "first")

	var a cachedTestConfig
	config.MustLoad(&a)
	assert.Equal(t, "first", a.Name)

	t.Setenv("CFG_TEST_CACHED", "second")

	var b cachedTestConfig
	config.MustLoad(&b)
	assert.Equal(t, "first", b.Name)
}
