package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	httpLayer "wealth-advisor/http"
	"wealth-advisor/repository"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				a.cfg.Server.Addr = addr
			}
			return a.serve()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func (a *app) newServer() (*http.Server, func()) {
	limiter := httpLayer.NewRateLimiter(a.cfg.RateLimit.Capacity, a.cfg.RateLimit.Window)

	pingers := map[string]httpLayer.Pinger{}
	if rc, ok := a.cache.(*repository.RedisCache); ok {
		pingers["redis"] = rc
	}

	router := httpLayer.NewRouter(httpLayer.Handlers{
		Calc:    httpLayer.NewCalcHandler(a.svc, a.defaults()),
		Tools:   httpLayer.NewToolHandler(a.registry),
		Info:    httpLayer.NewInfoHandler(a.catalog, a.persona, a.history, pingers),
		Limiter: limiter,
		Metrics: a.metrics,
		Logger:  a.logger,
	})

	server := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
	return server, limiter.Stop
}

func (a *app) serve() error {
	server, stopLimiter := a.newServer()
	defer stopLimiter()

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("advisor API listening",
			zap.String("addr", server.Addr),
			zap.String("persona", a.persona.Key),
			zap.String("cache", a.cfg.Cache.Driver),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		a.logger.Error("server failed", zap.Error(err))
		return err
	case <-quit:
		a.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		a.logger.Error("server shutdown", zap.Error(err))
		return err
	}

	a.logger.Info("server exited")
	return nil
}
