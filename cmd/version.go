package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information.",
	Long: `Print the release version together with the commit, build date and
Go toolchain the binary was compiled with. Include this output when
reporting a problem.`,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("studentrisk %s (commit %s, built %s)\n", version, commit, date)
		cmd.Printf("%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	},
}
