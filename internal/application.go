package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-cli/transport/rest"
)

// RunApp - runs the game session on in/out until the operator quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	collector := metrics.NewCollector()

	// run metrics server
	httpErrCh := make(chan error, 1)
	if conf.Metrics.Enabled() {
		go func() {
			addr := conf.Metrics.GetMetricsAddr()
			log.Info("Starting metrics server", "addr", addr)
			if httpErr := rest.Start(ctx, addr, rest.NewRouter(collector.Handler())); httpErr != nil {
				log.Error("metrics server error", "error", httpErr)
				httpErrCh <- httpErr
			}
		}()
	}

	engine := tictactoe.NewEngine(tictactoe.WithSeed(conf.Seed))
	term := console.New(in, out, !conf.NoColor)
	roundManager := usecase.NewRoundManager(logger, engine, term, collector)

	// run game session, the blocking read of a line cannot be interrupted
	sessionErrCh := make(chan error, 1)
	go func() {
		sessionErrCh <- roundManager.PlaySession(ctx)
	}()

	select {
	case err := <-sessionErrCh:
		if err != nil {
			return fmt.Errorf("game session error: %w", err)
		}
		log.Info("Session finished", "score", roundManager.Score())
		return nil
	case err := <-httpErrCh:
		return fmt.Errorf("metrics server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
