package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/robgonnella/yunmon/internal/config"
	"github.com/robgonnella/yunmon/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// creates and returns the "config" command
func configCmd(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(configInit())
	cmd.AddCommand(configShow(props))

	return cmd
}

func configInit() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Writes the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			configFile := viper.GetString("config-file")

			if configFile == "" {
				return errors.New("failed to find config file path")
			}

			if _, err := os.Stat(configFile); err == nil && !force {
				return fmt.Errorf("config file already exists: %s", configFile)
			}

			if err := config.Write(*config.Default(), configFile); err != nil {
				return err
			}

			log.Info().Str("file", configFile).Msg("wrote default config")

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")

	return cmd
}

func configShow(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Prints the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)

			if err := encoder.Encode(props.Config); err != nil {
				return err
			}

			return encoder.Close()
		},
	}

	return cmd
}
