package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version can be overridden at build time via:
// go build -ldflags "-X pagemind/internal/cli.version=1.2.3"
var version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pagemind version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("pagemind " + version)
	},
}
