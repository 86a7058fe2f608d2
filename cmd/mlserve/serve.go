package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"mlserve/internal/config"
	"mlserve/internal/docs"
	"mlserve/internal/httpapi"
	"mlserve/internal/manager"
)

const shutdownTimeout = 5 * time.Second

// serve loads the model, then accepts connections until ctx is done. The
// load completes before the listener opens, so handlers only ever observe
// the finished Manager.
func serve(ctx context.Context, cfg config.Config) error {
	logger, closeLog := newLogger(cfg, os.Stderr)
	defer closeLog()

	httpapi.SetLogger(logger)
	httpapi.SetDefaultLogLevel(httpapi.ParseLevel(cfg.LogLevel))
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins, cfg.CORSMethods, cfg.CORSHeaders)
	docs.SwaggerInfo.Version = cfg.ModelVersion

	mgr := manager.Load(managerConfig(cfg, logPublisher{log: logger}))
	if !mgr.Ready() {
		logger.Warn().Str("model_path", cfg.ModelPath).Msg("starting without a model; /predict will fail until restart")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(mgr),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Addr).Str("model_version", cfg.ModelVersion).Str("git_sha", cfg.GitSHA).Msg("mlserve listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	// Graceful shutdown (Ctrl+C / SIGTERM)
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	logger.Info().Msg("mlserve stopped")
	return nil
}
