package main

import (
	"livestock-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

func newMigrateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Crea las tablas del store SQL (idempotente)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := g.load(cmd)
			if err != nil {
				return err
			}

			s, err := openSQL(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Migrate(cmd.Context()); err != nil {
				return err
			}
			log.Info("schema applied", logger.Fields{"store": cfg.Driver()})
			return nil
		},
	}
}
