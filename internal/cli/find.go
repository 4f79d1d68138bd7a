package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shiftlens/overlap-backend-go/internal/config"
	"github.com/shiftlens/overlap-backend-go/internal/domain/overlap"
	overlapService "github.com/shiftlens/overlap-backend-go/internal/service/overlap"
)

var (
	findNames  []string
	findQuorum int
	findOut    string
)

var findCmd = &cobra.Command{
	Use:   "find <schedule.pdf>",
	Short: "Find the days where the selected employees are on shift together",
	Args:  cobra.ExactArgs(1),
	RunE:  runFind,
}

func init() {
	findCmd.Flags().StringSliceVarP(&findNames, "names", "n", nil, "employee names, as listed by roster (minimum 3)")
	findCmd.Flags().IntVarP(&findQuorum, "quorum", "q", 0, "minimum employees that must overlap (default: all selected)")
	findCmd.Flags().StringVarP(&findOut, "out", "o", "", "write results to a CSV file")
	rootCmd.AddCommand(findCmd)
}

func runFind(cmd *cobra.Command, args []string) error {
	repo, summary, err := parseFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if summary.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", summary.Warning)
	}

	svc := overlapService.NewOverlapService(repo, config.DefaultMaxSelection)
	req := overlap.FindOverlapsRequest{
		ScheduleID: summary.ID,
		Names:      findNames,
		Quorum:     findQuorum,
	}

	if findOut != "" {
		data, err := svc.ExportCSV(cmd.Context(), req)
		if err != nil {
			return err
		}
		if err := os.WriteFile(findOut, data, 0o644); err != nil {
			return err
		}
		fmt.Println("results written to", findOut)
		return nil
	}

	result, err := svc.FindOverlaps(cmd.Context(), req)
	if err != nil {
		return err
	}
	if len(result.Rows) == 0 {
		fmt.Println("No qualifying days found.")
		return nil
	}
	for _, row := range result.Rows {
		fmt.Printf("%s  %s  %.2f hrs  %s\n",
			row.Date, row.CommonTime, row.DurationHours, strings.Join(row.Participants, ", "))
	}
	return nil
}
