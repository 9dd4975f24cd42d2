package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/montrey/zd/search"
	"github.com/montrey/zd/store"
	"github.com/montrey/zd/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick [keyword]...",
	Short: "Pick a directory interactively",
	Long:  "Open a fuzzy picker over the tracked directories, ranked by frecency. The selection is printed on stdout so the shell wrapper can cd to it.",
	RunE:  runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	eng := search.New(st)
	results := eng.Ranked(args, epochNow())
	if len(results) == 0 {
		if saveErr := st.Save(); saveErr != nil {
			return saveErr
		}
		return store.ErrNotFound
	}

	paths := make([]string, len(results))
	for i, r := range results {
		paths[i] = r.Path
	}
	selected, err := ui.Pick(paths)
	if err != nil {
		return err
	}
	if selected == "" {
		// Picker dismissed without a choice.
		if saveErr := st.Save(); saveErr != nil {
			return saveErr
		}
		return store.ErrNotFound
	}
	fmt.Println(selected)
	return st.Save()
}
