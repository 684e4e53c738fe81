package commands

import (
	"github.com/robgonnella/yunmon/internal/api"
	"github.com/robgonnella/yunmon/internal/core"
	"github.com/robgonnella/yunmon/internal/device"
	"github.com/robgonnella/yunmon/internal/exception"
	"github.com/spf13/cobra"
)

// creates and returns the "history" command
func history(props *CommandProps) *cobra.Command {
	var targets []string
	var latest bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Prints the recorded device history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if props.Config.History.Disabled {
				return exception.ErrHistoryDisabled
			}

			service, closeDB, err := core.CreateHistoryService(*props.Config)

			if err != nil {
				return err
			}

			defer closeDB()

			if latest {
				snapshot, takenAt, err := service.LatestSnapshot()

				if err != nil {
					return err
				}

				return printJSON(cmd, api.SnapshotResponse{
					TakenAt: takenAt,
					Devices: snapshot,
				})
			}

			var records []*device.Record

			if len(targets) == 0 {
				records, err = service.GetAll()
			} else {
				records, err = service.GetAllInTargets(targets)
			}

			if err != nil {
				return err
			}

			return printJSON(cmd, records)
		},
	}

	cmd.Flags().StringSliceVarP(&targets, "target", "t", []string{}, "only show devices within these ips or cidr blocks")
	cmd.Flags().BoolVar(&latest, "latest", false, "print the most recently recorded snapshot")

	return cmd
}
