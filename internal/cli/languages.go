package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/codeatlas-io/codeatlas/internal/extract"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	Run: func(cmd *cobra.Command, args []string) {
		ids := extract.Languages()
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Println(id)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
