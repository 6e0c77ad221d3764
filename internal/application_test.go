package application

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
)

func TestRunApp(t *testing.T) {
	t.Run("Plays until the operator quits", func(t *testing.T) {
		// Given: an operator who tries cells in order and declines a second round
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		conf := &config.Config{Seed: 3, NoColor: true}
		input := strings.NewReader("1\n2\n3\n4\n5\n6\n7\n8\n9\nn\n")
		output := &bytes.Buffer{}

		// When: the app runs
		err := RunApp(logger, conf, input, output)

		// Then: a round was finished and the farewell printed
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(output.String(), "1|2|3\n-+-+-\n4|5|6\n-+-+-\n7|8|9\n"))
		assert.Contains(t, output.String(), "Do you want to play again? (y/n): ")
		assert.Contains(t, output.String(), "Thanks for playing!\n")
	})

	t.Run("Closed input is not an error", func(t *testing.T) {
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		conf := &config.Config{NoColor: true}

		err := RunApp(logger, conf, strings.NewReader(""), &bytes.Buffer{})

		require.NoError(t, err)
	})
}
