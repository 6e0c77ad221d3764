package suite

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Console reads the scripted input and writes plain text into Output.
	Console *console.Console
	Output  *bytes.Buffer
}

// New - builds a console fed with input, one answer per line.
func New(t *testing.T, input string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(strings.NewReader(input), output, false),
		Output:  output,
	}
}

// Script - joins answers into console input.
func Script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

type highestSource struct{}

func (highestSource) Uint64() uint64 {
	return math.MaxUint64
}

// HighestPickRand - returns a generator whose IntN(n) is always n-1,
// so the bot always takes the highest empty position.
func HighestPickRand() *rand.Rand {
	return rand.New(highestSource{})
}
