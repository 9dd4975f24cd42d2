package cli

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed scripts/zd.bash
var bashScript string

//go:embed scripts/zd.zsh
var zshScript string

var initShell string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Print the shell integration script",
	Long:  "Print the script defining the z and zi shell functions plus the hook that records directory changes. Add `eval \"$(zd init --shell bash)\"` to your shell rc file.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch initShell {
		case "bash":
			fmt.Print(bashScript)
		case "zsh":
			fmt.Print(zshScript)
		default:
			return fmt.Errorf("unsupported shell %q (want bash or zsh)", initShell)
		}
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initShell, "shell", "", "shell to emit the script for: bash or zsh")
	initCmd.MarkFlagRequired("shell")
}
