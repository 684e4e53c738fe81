package commands

import (
	"context"

	"github.com/robgonnella/yunmon/internal/core"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "devices" command
func devices(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Runs a single discovery and prints the devices found",
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := core.CreateGateway(*props.Config)

			if err != nil {
				return err
			}

			defer gw.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), props.Config.Gateway.Timeout)
			defer cancel()

			snapshot, err := discovery.Discover(ctx, gw)

			if snapshot == nil {
				return err
			}

			if err != nil {
				logger.New().Warn().Err(err).Msg("malformed discovery result")
			}

			return printJSON(cmd, snapshot)
		},
	}

	return cmd
}
