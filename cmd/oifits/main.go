package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/interferolib/oifits/cmd/oifits/commands"
	"github.com/interferolib/oifits/logger"
)

var rootCmd = &cobra.Command{
	Use:   "oifits",
	Short: "Inspect and copy OIFITS interferometry datasets",
	Long: `oifits — tools for OIFITS optical/infrared interferometry datasets.

Available commands:
  summary - Print a text report of a dataset's tables
  copy    - Read a dataset and write it to a new file
  version - Show build information

Examples:
  oifits summary night1.oifits
  oifits copy night1.oifits merged/night1.oifits
  oifits -v summary night1.oifits`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := commands.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity == 0 {
			verbosity = cfg.Verbosity
		}
		jsonOutput, _ := cmd.Flags().GetBool("json")

		if err := logger.Initialize(verbosity, jsonOutput); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		logger.SetQuiet(quiet || cfg.Quiet)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress lookup and I/O warnings")
	rootCmd.PersistentFlags().Bool("json", false, "Machine-readable log output")

	rootCmd.AddCommand(commands.SummaryCmd)
	rootCmd.AddCommand(commands.CopyCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
