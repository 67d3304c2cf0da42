package main

import (
	"livestock-records/internal/config"
	"livestock-records/internal/platform/logger"

	"github.com/spf13/cobra"
)

// globalFlags son las flags persistentes; pisan archivo y entorno si se pasan.
type globalFlags struct {
	configPath string
	driver     string
	dsn        string
	sqlitePath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var g globalFlags

	root := &cobra.Command{
		Use:           "livestock",
		Short:         "API de registro de vacas y terneros",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "archivo YAML de configuración")
	pf.StringVar(&g.driver, "store", "", "store: memory | postgres | sqlite")
	pf.StringVar(&g.dsn, "dsn", "", "DSN de Postgres")
	pf.StringVar(&g.sqlitePath, "sqlite-path", "", "archivo SQLite")
	pf.StringVar(&g.logLevel, "log-level", "", "debug | info | warn | error")
	pf.StringVar(&g.logFormat, "log-format", "", "text | json")

	root.AddCommand(newServeCmd(&g), newMigrateCmd(&g), newHealthcheckCmd(&g))
	return root
}

// load resuelve la configuración final: defaults -> YAML -> env -> flags.
func (g *globalFlags) load(cmd *cobra.Command) (config.Config, logger.Logger, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.Store.Driver = g.driver
	}
	if flags.Changed("dsn") {
		cfg.Store.DSN = g.dsn
	}
	if flags.Changed("sqlite-path") {
		cfg.Store.SQLitePath = g.sqlitePath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = g.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = g.logFormat
	}
	if flags.Changed("port") {
		if p, err := flags.GetString("port"); err == nil {
			cfg.HTTP.Port = p
		}
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App,
		Out:    cmd.OutOrStdout(),
	})
	return cfg, log, nil
}
