package config

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv 测试结束后由 t.Setenv 负责恢复原值
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		// Given: no SNAKE_* variables are set
		unsetEnv(t, "SNAKE_LOG_FILE", "SNAKE_LOG_LEVEL", "SNAKE_SEED")

		// When: the config is loaded
		conf, err := Load()

		// Then: the defaults apply
		require.NoError(t, err)
		assert.Equal(t, "snake.log", conf.LogFile)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, uint64(0), conf.Seed)
	})

	t.Run("Overrides", func(t *testing.T) {
		// Given: every variable is set
		t.Setenv("SNAKE_LOG_FILE", "/tmp/snake-test.log")
		t.Setenv("SNAKE_LOG_LEVEL", "debug")
		t.Setenv("SNAKE_SEED", "42")

		// When: the config is loaded
		conf, err := Load()

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "/tmp/snake-test.log", conf.LogFile)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, uint64(42), conf.Seed)
	})

	t.Run("Invalid seed", func(t *testing.T) {
		// Given: a seed that is not a number
		unsetEnv(t, "SNAKE_LOG_FILE", "SNAKE_LOG_LEVEL")
		t.Setenv("SNAKE_SEED", "not-a-number")

		// When: the config is loaded
		_, err := Load()

		// Then: an error is returned
		require.Error(t, err)
	})
}

func TestUsage(t *testing.T) {
	// Given: a buffer for the usage text
	var buf bytes.Buffer

	// When: usage is printed
	Usage(&buf, "snake")()

	// Then: every variable is described
	out := buf.String()
	assert.Contains(t, out, "SNAKE_LOG_FILE")
	assert.Contains(t, out, "SNAKE_LOG_LEVEL")
	assert.Contains(t, out, "SNAKE_SEED")
}
