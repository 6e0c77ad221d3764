package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/metrics"
)

func TestRouter(t *testing.T) {
	collector := metrics.NewCollector()
	collector.RecordMove(entity.PlayerX)
	server := httptest.NewServer(NewRouter(collector.Handler()))
	t.Cleanup(server.Close)

	t.Run("Ping", func(t *testing.T) {
		// When: /ping is requested
		resp, err := http.Get(server.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()

		// Then: the server answers pong
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "pong", string(body))
	})

	t.Run("Metrics", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), `tictactoe_moves_total{mark="X"} 1`)
	})
}

func TestStart_StopsWithContext(t *testing.T) {
	// Given: a server on a free local port
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Start(ctx, "127.0.0.1:0", NewRouter(http.NotFoundHandler()))
	}()

	// When: the context is canceled
	time.Sleep(50 * time.Millisecond)
	cancel()

	// Then: Start returns without an error
	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
