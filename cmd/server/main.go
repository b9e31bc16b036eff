package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"

	"github.com/Peculiar9/dojo/internal/config"
	"github.com/Peculiar9/dojo/internal/handler"
	"github.com/Peculiar9/dojo/internal/logger"
	"github.com/Peculiar9/dojo/internal/router"
	"github.com/Peculiar9/dojo/internal/runtime"
	"github.com/Peculiar9/dojo/internal/warrior"
	"github.com/Peculiar9/dojo/internal/weapon"
)

// ServerParams groups everything the server runner resolves from the container.
type ServerParams struct {
	dig.In

	Config *config.Config
	Engine *gin.Engine
}

func main() {
	ctx := context.Background()

	c := runtime.GetContainer()
	if err := runtime.Register(c,
		config.LoadConfig,
		weapon.NewKatana,
		weapon.NewShuriken,
		warrior.NewNinja,
		handler.NewWarriorHandler,
		router.NewRouter,
	); err != nil {
		logger.Errorf(ctx, "failed to register providers: %v", err)
		os.Exit(1)
	}

	if err := c.Invoke(run); err != nil {
		logger.Errorf(ctx, "server error: %v", err)
		os.Exit(1)
	}
}

// run starts the HTTP server and blocks until shutdown completes.
func run(params ServerParams) error {
	ctx := context.Background()
	cfg := params.Config

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      params.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Infof(ctx, "received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Infof(ctx, "server stopped")
	return nil
}
