package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/montrey/zd/search"
)

var queryCmd = &cobra.Command{
	Use:   "query <keyword>...",
	Short: "Print the best-matching directory for the keywords",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	st, _, err := openStore()
	if err != nil {
		return err
	}
	eng := search.New(st)
	best, err := eng.Query(args, epochNow())
	if err != nil {
		// Pruning may have dropped stale entries; persist that before
		// reporting no match.
		if saveErr := st.Save(); saveErr != nil {
			return saveErr
		}
		return err
	}
	fmt.Println(best)
	return st.Save()
}

var listRank bool

var listCmd = &cobra.Command{
	Use:   "list [keyword]...",
	Short: "List tracked directories by frecency",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore()
		if err != nil {
			return err
		}
		eng := search.New(st)
		for _, res := range eng.Ranked(args, epochNow()) {
			if listRank {
				fmt.Printf("%10.2f %s\n", res.Score, res.Path)
			} else {
				fmt.Println(res.Path)
			}
		}
		return st.Save()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listRank, "rank", false, "annotate each path with its score")
}
