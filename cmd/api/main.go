package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"realestate-backend/internal/config"
	"realestate-backend/internal/infrastructure/logger"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	serve := serveCmd()
	root := &cobra.Command{
		Use:           "realestate-api",
		Short:         "Real estate sales management API",
		SilenceUsage:  true,
		SilenceErrors: true,
		// bare invocation serves
		RunE: serve.RunE,
	}
	root.AddCommand(serve, migrateCmd(), seedCmd())
	return root
}

// bootstrap loads and validates config and builds the logger every command shares.
func bootstrap() (*config.Config, *logger.Logger, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}
