package main

import (
	"dealTracker/internal/app"
	"dealTracker/internal/config"
	"dealTracker/internal/logger"
	"dealTracker/internal/repository/postgres"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "dealtracker",
		Short:         "Deal tracker - property deal lifecycle data service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file (default ./config.yml)")

	loadConfig := func() (*config.Config, error) {
		return config.Load(configPath)
	}

	root.AddCommand(newServeCmd(loadConfig), newMigrateCmd(loadConfig))
	return root
}

func newServeCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a := app.New(cfg)
			if err := a.Init(ctx); err != nil {
				return err
			}
			return a.Run(ctx)
		},
	}
}

func newMigrateCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		Long: `Apply or roll back the embedded schema migrations.

Subcommands:
  up      - apply pending migrations
  down    - roll back every migration
  status  - show the current schema version`,
	}

	databaseURL := func() (string, error) {
		cfg, err := loadConfig()
		if err != nil {
			return "", err
		}
		if cfg.Database.URL == "" {
			return "", errors.New("database.url is not configured (set it in config.yml or DEALS_DATABASE_URL)")
		}
		if err := logger.Init(cfg.Logging.Development, cfg.Logging.Level); err != nil {
			return "", fmt.Errorf("init logger: %w", err)
		}
		return cfg.Database.URL, nil
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return postgres.Migrate(url)
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back every migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return postgres.Down(url)
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			url, err := databaseURL()
			if err != nil {
				return err
			}
			defer logger.Sync()

			st, err := postgres.Status(url)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d\ndirty: %t\n", st.Version, st.Dirty)
			return nil
		},
	}

	migrateCmd.AddCommand(up, down, status)
	return migrateCmd
}

