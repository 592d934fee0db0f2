package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/interferolib/oifits"
	"github.com/interferolib/oifits/errors"
	"github.com/interferolib/oifits/tabfile"
)

// SummaryCmd prints a text report of a dataset's tables.
var SummaryCmd = &cobra.Command{
	Use:   "summary FILE",
	Short: "Print a text report of a dataset's tables",
	Long: `Read an OIFITS dataset and print its header fields plus a count and
one line per table instance: names, sizes, wavelength ranges, and
record/channel counts for the measurement tables.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds := oifits.NewDataset()
	if err := oifits.ReadFile(tabfile.New(), args[0], ds); err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	pterm.DefaultBasicText.Print(ds.Summary())

	nvis, nvis2, nt3 := ds.CountData()
	pterm.Printf("  %d visibility, %d squared-visibility, %d closure-triple records\n",
		nvis, nvis2, nt3)
	return nil
}
