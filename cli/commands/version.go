package commands

import (
	"fmt"
	"runtime"

	app_info "github.com/robgonnella/yunmon/internal/app-info"
	"github.com/spf13/cobra"
)

func version() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s (%s %s/%s)\n",
				app_info.NAME,
				app_info.VERSION,
				runtime.Version(),
				runtime.GOOS,
				runtime.GOARCH,
			)
		},
	}

	return cmd
}
