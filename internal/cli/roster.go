package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rosterCmd = &cobra.Command{
	Use:   "roster <schedule.pdf>",
	Short: "List the employees found in a schedule PDF",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoster,
}

func init() {
	rootCmd.AddCommand(rosterCmd)
}

func runRoster(cmd *cobra.Command, args []string) error {
	repo, summary, err := parseFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if summary.Warning != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", summary.Warning)
	}

	parsed, err := repo.GetByID(cmd.Context(), summary.ID)
	if err != nil {
		return err
	}

	fmt.Printf("shifts: %d  dates: %d  employees: %d\n", summary.ShiftCount, summary.DateCount, summary.EmployeeCount)
	for _, name := range parsed.Roster {
		fmt.Println(name)
	}
	return nil
}
