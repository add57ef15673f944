package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ImperialKoi/Ultimate-TicTacToe/internal/service"
)

// NewRouter wires the polling API. Clients poll GET /api/rooms/{roomID}
// and re-render only when the returned version is strictly greater than
// the one they last applied.
func NewRouter(logger *slog.Logger, gamePlay service.GamePlayService) http.Handler {
	h := newHandlers(logger, gamePlay)

	r := chi.NewRouter()
	r.Get("/ping", h.ping)

	r.Route("/api", func(r chi.Router) {
		r.Post("/rooms", h.createRoom)
		r.Post("/bot", h.createBotRoom)

		r.Route("/rooms/{roomID}", func(r chi.Router) {
			r.Get("/", h.roomState)
			r.Post("/join", h.joinRoom)
			r.Post("/move", h.makeMove)
			r.Post("/reset", h.resetRoom)
			r.Post("/leave", h.leaveRoom)
		})
	})

	return r
}

// Start runs the HTTP server until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
