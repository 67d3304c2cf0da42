package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"livestock-records/internal/platform/logger"
	"livestock-records/internal/platform/metrics"
	"livestock-records/internal/router"

	"github.com/spf13/cobra"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Levanta la API HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.load(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					log.Warn("store close", logger.Fields{"err": err})
				}
			}()

			r := router.NewRouter(router.Options{
				Logger:  log,
				Metrics: metrics.New("livestock"),
				Store:   st,
			})

			srv := &http.Server{
				Addr:         cfg.Addr(),
				Handler:      r,
				ReadTimeout:  cfg.HTTP.ReadTimeout.Duration,
				WriteTimeout: cfg.HTTP.WriteTimeout.Duration,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Info("starting server", logger.Fields{"addr": cfg.Addr(), "store": cfg.Driver()})
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

			log.Info("shutting down", logger.Fields{"grace": cfg.HTTP.ShutdownGrace.String()})
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownGrace.Duration)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("port", "", "puerto HTTP (pisa PORT)")
	return cmd
}
