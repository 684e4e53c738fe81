package commands

import (
	"errors"
	"os"

	"github.com/robgonnella/yunmon/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// creates and returns the "clean" command
func clean() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes the history database and log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()

			files := []string{"database-file", "log-file"}

			if all {
				files = append(files, "config-file")
			}

			for _, key := range files {
				file := viper.GetString(key)

				if file == "" {
					continue
				}

				if err := os.Remove(file); err != nil {
					if errors.Is(err, os.ErrNotExist) {
						continue
					}
					return err
				}

				log.Info().Str("file", file).Msgf("removed %s", key)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "also remove the config file")

	return cmd
}
