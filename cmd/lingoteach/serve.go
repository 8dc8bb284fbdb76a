// LingoTeach - language-teaching voice skill backend
// License: MIT

package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/lingoteach/lingoteach/pkg/alexa"
	"github.com/lingoteach/lingoteach/pkg/config"
	"github.com/lingoteach/lingoteach/pkg/logger"
	"github.com/lingoteach/lingoteach/pkg/router"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the skill endpoint over HTTP",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, cleanup, err := buildRouter(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), cfg.RequestsPerMinute)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /", skillHandler(rt, limiter))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := &http.Server{Addr: cfg.ListenAddr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.InfoCF("serve", "Listening", map[string]any{"addr": cfg.ListenAddr})
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func skillHandler(rt *router.Router, limiter *rate.Limiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		var env alexa.RequestEnvelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			http.Error(w, "malformed request envelope", http.StatusBadRequest)
			return
		}

		resp := rt.Route(r.Context(), &env)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.ErrorC("serve", "Encoding response: "+err.Error())
		}
	}
}
