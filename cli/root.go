// Package cli wires the zd subcommands. Each invocation loads the store,
// performs one operation, and persists before exit; the calling shell hook
// is what actually changes directory using the printed result.
package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/montrey/zd/config"
	"github.com/montrey/zd/store"
)

var rootCmd = &cobra.Command{
	Use:          "zd",
	Short:        "Jump to frequently used directories",
	Long:         "zd tracks the directories you visit and jumps to the best match for a keyword, ranked by frecency. Run `zd init --shell <shell>` to install the shell hook.",
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore loads the config and the datafile it points at.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, cfg, err
	}
	st, err := store.Open(cfg.Datafile, cfg.MaxAge, store.CompileExcludes(cfg.Exclude))
	return st, cfg, err
}

func epochNow() int64 {
	return time.Now().Unix()
}
