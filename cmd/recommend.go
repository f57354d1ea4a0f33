package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/robdg22/jetshift/core/recommend"
)

var (
	recommendDays   int
	recommendOffset int
	recommendAges   []int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print the strategy comparison for a trip",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recommendDays, "days", 7, "days at destination")
	recommendCmd.Flags().IntVar(&recommendOffset, "offset", 0, "signed timezone offset in hours (east positive)")
	recommendCmd.Flags().IntSliceVar(&recommendAges, "ages", []int{30}, "traveler ages")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	rows := recommend.Compare(recommendDays, recommendOffset, recommendAges)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tRECOVERY\t\tEXPLANATION")
	for _, row := range rows {
		mark := ""
		if row.Recommended {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%dd\t%s\t%s\n", row.Strategy, row.RecoveryDays, mark, row.Explanation)
	}
	return w.Flush()
}
