// Command zapcont-api serves the Zapcont dashboard and chat-bot API and
// offers maintenance subcommands.
//
//	@title          zapcont-api
//	@version        1.0
//	@description    Dashboard, chat-bot data access and NFE.io invoice proxy for Zapcont.
//	@BasePath       /api
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/CathalystLTDA/zapcont-api/internal/config"
	"github.com/CathalystLTDA/zapcont-api/internal/sysutil"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "zapcont-api",
		Short:         "Zapcont dashboard, chat-bot data access and NFE.io proxy",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment (default .env when present, or $ENV_FILE)")

	root.AddCommand(serveCmd())
	root.AddCommand(migrateCmd())
	root.AddCommand(validateCmd())
	return root
}

// loadEnv reads a dotenv file without overriding variables already set. An
// explicit file must exist; the default .env is optional.
func loadEnv(flagValue string) error {
	path := sysutil.FirstNonEmpty(flagValue, os.Getenv("ENV_FILE"))
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// setupLogging loads the configuration and installs the process logger.
func setupLogging() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	log.Logger = sysutil.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogPretty)
	return cfg, nil
}
