package main

import (
	"fmt"
	"time"

	"livestock-records/internal/platform/httpclient"
	"livestock-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// healthcheck consulta /health de una instancia en marcha; sale con error si no responde 2xx.
// Pensado para el HEALTHCHECK del contenedor.
func newHealthcheckCmd(g *globalFlags) *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Verifica que la API responda en /health",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.load(cmd)
			if err != nil {
				return err
			}
			if baseURL == "" {
				baseURL = "http://127.0.0.1" + cfg.Addr()
			}

			c, err := httpclient.New(baseURL, timeout)
			if err != nil {
				return err
			}
			if err := c.GetJSON(cmd.Context(), "/health", nil); err != nil {
				return fmt.Errorf("healthcheck %s: %w", baseURL, err)
			}
			log.Debug("healthy", logger.Fields{"url": baseURL})
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "", "URL base de la API (default: http://127.0.0.1:<port>)")
	cmd.Flags().DurationVar(&timeout, "timeout", httpclient.DefaultTimeout, "timeout del request")
	cmd.Flags().String("port", "", "puerto HTTP (pisa config/env)")
	return cmd
}
