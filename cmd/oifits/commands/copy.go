package commands

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/interferolib/oifits"
	"github.com/interferolib/oifits/errors"
	"github.com/interferolib/oifits/tabfile"
)

// CopyCmd reads a dataset and writes it to a new file.
var CopyCmd = &cobra.Command{
	Use:   "copy SRC DST",
	Short: "Read a dataset and write it to a new file",
	Long: `Read an OIFITS dataset and write every table to a new file in the
canonical order. The destination must not already exist. With output_dir
configured, a bare DST filename is placed there.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	src, dst := args[0], args[1]

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if cfg.OutputDir != "" && dst == filepath.Base(dst) {
		dst = filepath.Join(cfg.OutputDir, dst)
	}

	ds := oifits.NewDataset()
	if err := oifits.ReadFile(tabfile.New(), src, ds); err != nil {
		return errors.Wrapf(err, "failed to read %s", src)
	}
	if err := oifits.WriteFile(tabfile.New(), dst, ds); err != nil {
		if errors.IsExists(err) {
			return errors.Newf("%s already exists; refusing to overwrite", dst)
		}
		return errors.Wrapf(err, "failed to write %s", dst)
	}

	pterm.Success.Printfln("copied %s -> %s", src, dst)
	return nil
}
