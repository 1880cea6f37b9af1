package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mohamedali2285/Snakes/game"
)

func TestExecute(t *testing.T) {
	t.Cleanup(func() { game.Log = zap.NewNop().Sugar() })

	t.Run("Run failure exits 1 with the error logged", func(t *testing.T) {
		// Given: a log file in a temp dir and a terminal that cannot be opened
		logFile := filepath.Join(t.TempDir(), "snake.log")
		t.Setenv("SNAKE_LOG_FILE", logFile)
		t.Setenv("SNAKE_LOG_LEVEL", "info")
		t.Setenv("SNAKE_SEED", "1")
		noTTY := func() (tcell.Screen, error) { return nil, errors.New("no tty") }

		// When: the program runs
		code := execute(noTTY)

		// Then: it fails with exit code 1 and the log holds the cause
		require.Equal(t, 1, code)
		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "create screen: no tty")
	})

	t.Run("Invalid config is reported as exit code 1", func(t *testing.T) {
		// Given: an unparsable seed
		t.Setenv("SNAKE_SEED", "not-a-number")

		// When: the program runs
		code := execute(func() (tcell.Screen, error) {
			t.Fatal("screen must not be created")
			return nil, nil
		})

		// Then: the panic is recovered into an exit code
		assert.Equal(t, 1, code)
	})
}
