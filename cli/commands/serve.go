package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/robgonnella/yunmon/internal/api"
	"github.com/robgonnella/yunmon/internal/core"
	"github.com/robgonnella/yunmon/internal/logger"
	"github.com/spf13/cobra"
)

// creates and returns the "serve" command
func serve(props *CommandProps) *cobra.Command {
	var noAPI bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Monitors the remote network and serves the device api",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDaemon(cmd, props, !noAPI)
		},
	}

	cmd.Flags().BoolVar(&noAPI, "no-api", false, "only monitor, do not start the api server")

	return cmd
}

// runs discovery until interrupted, optionally serving the api
func runDaemon(cmd *cobra.Command, props *CommandProps, withAPI bool) error {
	log := logger.New()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCore, err := core.CreateNewAppCore(*props.Config)

	if err != nil {
		return err
	}

	defer appCore.Stop()

	if err := appCore.Start(); err != nil {
		return err
	}

	errs := make(chan error, 1)

	var server *api.Server

	if withAPI {
		server = api.NewServer(props.Config.API.Listen, appCore)

		go func() {
			errs <- server.Start()
		}()
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err = <-errs:
		log.Error().Err(err).Msg("api server stopped")
	}

	if server != nil {
		if shutdownErr := server.Shutdown(cmd.Context()); shutdownErr != nil {
			log.Warn().Err(shutdownErr).Msg("failed to shutdown api server")
		}
	}

	return err
}
