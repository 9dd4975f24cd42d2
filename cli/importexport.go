package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/montrey/zd/store"
)

var importFormat string

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merge entries from another datafile",
	Long:  "Merge entries from a zd datafile, a classic z datafile, or a navi SQLite database. On collision the higher visit count and later access time win.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	var (
		entries []store.Entry
		err     error
	)
	switch importFormat {
	case "navi":
		entries, err = store.ReadNaviHistory(args[0])
		if err != nil {
			return err
		}
	case "z", "zd", "native":
		f, openErr := os.Open(args[0])
		if openErr != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], openErr)
		}
		entries, err = store.Decode(f)
		f.Close()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown import format %q", importFormat)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	n := st.Merge(entries)
	if err := st.Save(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "imported %d entries from %s\n", n, args[0])
	return nil
}

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the store to a datafile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := store.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		st, _, err := openStore()
		if err != nil {
			return err
		}
		if err := st.Export(args[0], format, epochNow()); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported %d entries to %s\n", st.Len(), args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "zd", "source format: zd, z, or navi")
	exportCmd.Flags().StringVar(&exportFormat, "format", "zd", "target format: zd or z")
}
