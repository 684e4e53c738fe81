package commands

import (
	"context"

	"github.com/robgonnella/yunmon/internal/core"
	"github.com/robgonnella/yunmon/internal/discovery"
	"github.com/robgonnella/yunmon/internal/event"
	"github.com/spf13/cobra"
)

// creates and returns the "wifi" command
func wifi(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wifi",
		Short: "Prints the wifi status of the remote device",
		RunE: func(cmd *cobra.Command, args []string) error {
			gw, err := core.CreateGateway(*props.Config)

			if err != nil {
				return err
			}

			defer gw.Close()

			service := discovery.NewPollingService(
				gw,
				event.NewEventManager(),
				props.Config.PollInterval,
			)

			ctx, cancel := context.WithTimeout(cmd.Context(), props.Config.Gateway.Timeout)
			defer cancel()

			info, err := service.WifiStatus(ctx)

			if printErr := printJSON(cmd, info); printErr != nil {
				return printErr
			}

			return err
		},
	}

	return cmd
}
