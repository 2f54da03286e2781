package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version of the memdex toolkit.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "memdex %s %s/%s %s\n",
			Version, runtime.GOOS, runtime.GOARCH, runtime.Version())
	},
}
