package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsnanigans/textquote/internal/server"
	"github.com/jsnanigans/textquote/pkg/textquote"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve quote extraction and resolution over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			resolver := textquote.NewResolver(append(cfg.ResolverOptions(), textquote.WithLogger(logger))...)
			srv, err := server.New(resolver, logger, &server.Config{
				Host:          cfg.Server.Host,
				Port:          cfg.Server.Port,
				MaxDocuments:  cfg.Server.MaxDocuments,
				ContextLength: cfg.ContextLength,
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
				return err
			}
			return nil
		},
	}
}
