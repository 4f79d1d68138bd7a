// Package cli implements overlapctl, a one-shot command-line frontend for
// the parsing and overlap services.
package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/pdftext"
	"github.com/shiftlens/overlap-backend-go/internal/repository/memory"
	scheduleService "github.com/shiftlens/overlap-backend-go/internal/service/schedule"
)

var profileName string

var rootCmd = &cobra.Command{
	Use:   "overlapctl",
	Short: "Parse shift schedule PDFs and find overlapping days",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", scheduleService.DefaultProfileName, "parse profile")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// parseFile parses one schedule PDF into a fresh in-memory repository and
// returns the repository along with the upload summary.
func parseFile(ctx context.Context, path string) (schedule.ScheduleRepository, schedule.ScheduleSummaryResponse, error) {
	profile, err := scheduleService.ProfileByName(profileName)
	if err != nil {
		return nil, schedule.ScheduleSummaryResponse{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, schedule.ScheduleSummaryResponse{}, err
	}

	repo := memory.NewScheduleRepository()
	svc := scheduleService.NewScheduleService(repo, pdftext.New(), profile)
	summary, err := svc.UploadSchedule(ctx, schedule.UploadScheduleRequest{
		FileName: filepath.Base(path),
		Data:     data,
	})
	if err != nil {
		return nil, schedule.ScheduleSummaryResponse{}, err
	}
	return repo, summary, nil
}
