package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "arcfs",
	Short: "A virtual filesystem over archive containers",
	Long: `arcfs adapts archive containers (zip, 7z, ...) to a uniform
virtual-filesystem contract: list, extract, stream, add, persist.
Archive formats are discovered by file extension through registered
drivers.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	flagDebug  bool
	flagConfig string
)

func init() {
	RootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
	RootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a JSON config file")
}
