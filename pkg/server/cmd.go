package server

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/heathcliff26/brewbook/pkg/config"
	"github.com/heathcliff26/brewbook/pkg/seed"
	"github.com/heathcliff26/brewbook/pkg/version"
	"github.com/heathcliff26/brewbook/pkg/webhook"
	"github.com/spf13/cobra"
)

const (
	flagNameConfig   = "config"
	flagNameLogLevel = "log"
	flagNameEnv      = "env"
)

func Execute() {
	err := NewServerCmd().Execute()
	if err != nil {
		slog.Error("Failed to execute command", "err", err)
		os.Exit(1)
	}
}

func NewServerCmd() *cobra.Command {
	cobra.AddTemplateFunc(
		"ProgramName", func() string {
			return version.Name
		},
	)

	rootCmd := &cobra.Command{
		Use:   version.Name,
		Short: version.Name + " receives storyblok webhooks and seeds storyblok spaces",
		Run: func(cmd *cobra.Command, args []string) {
			err := run(cmd)
			if err != nil {
				fmt.Println("Fatal: " + err.Error())
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringP(flagNameConfig, "c", "", "Config file to use")
	rootCmd.PersistentFlags().String(flagNameLogLevel, "", "Override the log level given in the config file")
	rootCmd.PersistentFlags().Bool(flagNameEnv, false, "Expand enviroment variables in the config file")

	rootCmd.AddCommand(
		seed.NewCommand(loadConfig),
		version.NewCommand(),
	)

	return rootCmd
}

// Read the global flags and load the configuration
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := cmd.Flags().GetString(flagNameConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	logLevel, err := cmd.Flags().GetString(flagNameLogLevel)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get log level flag: %w", err)
	}
	env, err := cmd.Flags().GetBool(flagNameEnv)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get env flag: %w", err)
	}

	cfg, err := config.LoadConfig(configPath, env, logLevel)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func run(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	err = cfg.ValidateServer()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	verifier, err := webhook.NewVerifier(cfg.Storyblok.WebhookSecret)
	if err != nil {
		return fmt.Errorf("failed to create webhook verifier: %w", err)
	}

	server := NewServer(cfg.Server, verifier)

	return server.Run()
}
