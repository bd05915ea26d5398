package seed

import (
	"fmt"
	"os"

	"github.com/heathcliff26/brewbook/pkg/client"
	"github.com/heathcliff26/brewbook/pkg/config"
	"github.com/spf13/cobra"
)

const (
	flagNameData    = "data"
	flagNameFolders = "folders"
	flagNamePublish = "publish"
)

// Loads the configuration from the flags of the root command
type ConfigLoader func(cmd *cobra.Command) (config.Config, error)

// Create a new seed command
func NewCommand(loadConfig ConfigLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the brewbook components and demo stories in a storyblok space",
		Run: func(cmd *cobra.Command, args []string) {
			err := run(cmd, loadConfig)
			if err != nil {
				fmt.Println("Fatal: " + err.Error())
				os.Exit(1)
			}
		},
	}

	cmd.Flags().String(flagNameData, "", "Seed data file to use instead of the built-in demo data")
	cmd.Flags().Bool(flagNameFolders, false, "Create folders for cafes and events, requires a plan with folder support")
	cmd.Flags().Bool(flagNamePublish, true, "Publish the stories after writing them")

	return cmd
}

func run(cmd *cobra.Command, loadConfig ConfigLoader) error {
	dataPath, err := cmd.Flags().GetString(flagNameData)
	if err != nil {
		return fmt.Errorf("failed to get data flag: %w", err)
	}
	folders, err := cmd.Flags().GetBool(flagNameFolders)
	if err != nil {
		return fmt.Errorf("failed to get folders flag: %w", err)
	}
	publish, err := cmd.Flags().GetBool(flagNamePublish)
	if err != nil {
		return fmt.Errorf("failed to get publish flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	err = cfg.ValidateSeed()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := LoadData(dataPath)
	if err != nil {
		return err
	}

	storyblok := client.NewStoryblokClient(cfg.Storyblok)
	seeder := NewSeeder(storyblok, data, Options{
		Folders: folders,
		Publish: publish,
	})

	_, err = seeder.Run()
	return err
}
