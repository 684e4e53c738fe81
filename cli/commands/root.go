package commands

import (
	"encoding/json"

	app_info "github.com/robgonnella/yunmon/internal/app-info"
	"github.com/robgonnella/yunmon/internal/config"
	"github.com/robgonnella/yunmon/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Config *config.Config
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var logToFile bool
	var configFile string

	cmd := &cobra.Command{
		Use:   app_info.NAME,
		Short: "Monitors the devices of a remote network device inventory",
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			if logToFile {
				if err := logger.GlobalSetLogFile(viper.GetString("log-file")); err != nil {
					return err
				}
			}

			if configFile != "" {
				viper.Set("config-file", configFile)
			}

			if props.Config != nil {
				return nil
			}

			conf, err := config.LoadOrDefault(viper.GetString("config-file"))

			if err != nil {
				return err
			}

			props.Config = conf

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd, props, true)
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")
	cmd.PersistentFlags().BoolVar(&logToFile, "log-to-file", false, "write logs to the log file instead of stderr")
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to yaml config file")

	cmd.AddCommand(serve(props))
	cmd.AddCommand(devices(props))
	cmd.AddCommand(wifi(props))
	cmd.AddCommand(history(props))
	cmd.AddCommand(configCmd(props))
	cmd.AddCommand(clean())
	cmd.AddCommand(version())

	return cmd
}

// writes v to the command's output as indented json
func printJSON(cmd *cobra.Command, v interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
