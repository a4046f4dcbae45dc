package config_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signup/pkg/config"
)

type defaultsConfig struct {
	Addr    string        `env:"CFG_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"CFG_TEST_TIMEOUT" envDefault:"5s"`
	Retries int           `env:"CFG_TEST_RETRIES" envDefault:"3"`
}

type overrideConfig struct {
	Name  string `env:"CFG_TEST_NAME" envDefault:"signup"`
	Debug bool   `env:"CFG_TEST_DEBUG"`
}

type cachedConfig struct {
	Value string `env:"CFG_TEST_CACHED" envDefault:"first"`
}

type requiredConfig struct {
	Secret string `env:"CFG_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		var cfg defaultsConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("CFG_TEST_NAME", "cards")
		t.Setenv("CFG_TEST_DEBUG", "true")

		var cfg overrideConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "cards", cfg.Name)
		assert.True(t, cfg.Debug)
	})

	t.Run("caches per type", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CFG_TEST_CACHED", "second")
		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)

		config.Reset()
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "second", again.Value)
	})

	t.Run("missing required value", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	})

	t.Run("concurrent loads agree", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]defaultsConfig, 20)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = config.Load(&results[i])
			}(i)
		}
		wg.Wait()
		for _, r := range results {
			assert.Equal(t, ":8080", r.Addr)
		}
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestParse(t *testing.T) {
	t.Setenv("CFG_TEST_NAME", "fresh")

	cfg, err := config.Parse[overrideConfig]()
	require.NoError(t, err)
	assert.Equal(t, "fresh", cfg.Name)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(file, []byte("CFG_TEST_FROM_FILE=hello\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CFG_TEST_FROM_FILE") })

	require.NoError(t, config.LoadEnv(file))
	assert.Equal(t, "hello", os.Getenv("CFG_TEST_FROM_FILE"))

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(dir, "missing.env")), config.ErrLoadingEnv)
}
