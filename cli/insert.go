package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/montrey/zd/store"
)

var insertCmd = &cobra.Command{
	Use:   "insert <path>",
	Short: "Record a visit to a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsert,
}

func runInsert(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", args[0], err)
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%s: %w", path, store.ErrInvalidPath)
	}

	st, _, err := openStore()
	if err != nil {
		return err
	}
	st.InsertOrUpdate(path, epochNow())
	return st.Save()
}

var deleteCmd = &cobra.Command{
	Use:   "delete <path>",
	Short: "Forget a tracked directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}
		st, _, err := openStore()
		if err != nil {
			return err
		}
		st.Delete(path)
		return st.Save()
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget all tracked directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore()
		if err != nil {
			return err
		}
		st.Clear()
		return st.Save()
	},
}
