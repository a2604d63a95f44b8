package neuromesh

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() { //nolint:gochecknoinits
	RootCmd.AddCommand(simulateCmd)
}

var RootCmd = &cobra.Command{
	Use:   "neuromesh",
	Short: "Decentralized compute subnet validator",
	Long:  `Sample peers on a decentralized compute subnet, query them, and score their responses.`,
}

func Execute(version string) {
	RootCmd.Version = version

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
