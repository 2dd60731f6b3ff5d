package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nicobailon/linear-tui/internal/config"
	"github.com/nicobailon/linear-tui/internal/linear"
	"github.com/nicobailon/linear-tui/internal/tui"
	"github.com/nicobailon/linear-tui/pkg/version"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "linear-tui",
	Short:         "Browse Linear teams, issues and comments from the terminal",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.Flags().String("api-key", "", "Linear API key (default $LINEAR_API_KEY)")
	rootCmd.Flags().String("api-url", "", "GraphQL endpoint (default "+linear.DefaultEndpoint+")")
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/linear-tui/config.yaml)")
	rootCmd.Flags().String("log-file", "", "write logs to this file")
	rootCmd.Flags().Bool("debug", false, "log at debug level")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog := configureRuntimeLogger(cfg)
	defer closeLog()

	client, err := linear.NewClient(linear.ClientConfig{
		APIKey:   cfg.APIKey,
		Endpoint: cfg.APIURL,
		Timeout:  cfg.RequestTimeout,
		Logger:   logger.With("component", "linear"),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "version", version.Version, "endpoint", cfg.APIURL)
	if err := tui.New(client, logger.With("component", "tui")).Run(ctx); err != nil {
		logger.Error("session aborted", "error", err)
		return err
	}
	return nil
}
