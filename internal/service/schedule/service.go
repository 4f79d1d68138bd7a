package schedule

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/pdftext"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/timefmt"
)

const (
	warnNoText   = "document has no machine-readable text (may need image recognition)"
	warnNoShifts = "no shifts detected"
)

type scheduleServiceImpl struct {
	repo      schedule.ScheduleRepository
	extractor pdftext.Extractor
	profile   Profile
}

func NewScheduleService(repo schedule.ScheduleRepository, extractor pdftext.Extractor, profile Profile) schedule.ScheduleService {
	return &scheduleServiceImpl{
		repo:      repo,
		extractor: extractor,
		profile:   profile,
	}
}

// UploadSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) UploadSchedule(ctx context.Context, req schedule.UploadScheduleRequest) (schedule.ScheduleSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleSummaryResponse{}, err
	}

	sum := sha256.Sum256(req.Data)
	hash := hex.EncodeToString(sum[:])

	// Re-uploading identical bytes reuses the parsed schedule instead of
	// re-running extraction.
	if existing, err := s.repo.GetByContentHash(ctx, hash); err == nil {
		return summarize(existing), nil
	} else if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return schedule.ScheduleSummaryResponse{}, err
	}

	pages, err := s.extractor.Pages(req.Data)
	if err != nil {
		if errors.Is(err, pdftext.ErrUnreadable) {
			return schedule.ScheduleSummaryResponse{}, schedule.ErrDocumentUnreadable
		}
		return schedule.ScheduleSummaryResponse{}, err
	}

	var lines []string
	textPages := 0
	for _, page := range pages {
		if len(page) > 0 {
			textPages++
		}
		lines = append(lines, page...)
	}

	records := Extract(lines, s.profile)
	parsed := schedule.ParsedSchedule{
		ID:          uuid.Must(uuid.NewV7()).String(),
		ContentHash: hash,
		FileName:    req.FileName,
		Profile:     s.profile.Name(),
		UploadedAt:  time.Now().UTC(),
		PageCount:   len(pages),
		TextPages:   textPages,
		Records:     records,
		Windows:     BuildWindows(records),
		Roster:      Roster(records),
	}

	if err := s.repo.Save(ctx, parsed); err != nil {
		return schedule.ScheduleSummaryResponse{}, err
	}
	return summarize(parsed), nil
}

// GetSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetSchedule(ctx context.Context, id string) (schedule.ScheduleDetailResponse, error) {
	parsed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return schedule.ScheduleDetailResponse{}, err
	}

	rows := make([]schedule.ShiftRowResponse, 0, len(parsed.Records))
	sorted := append([]schedule.ShiftRecord(nil), parsed.Records...)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		if sorted[i].EmployeeName != sorted[j].EmployeeName {
			return sorted[i].EmployeeName < sorted[j].EmployeeName
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})
	for _, rec := range sorted {
		rows = append(rows, schedule.ShiftRowResponse{
			Date:     rec.Date.Format("2006-01-02"),
			Employee: rec.EmployeeName,
			Start:    timefmt.ShortStamp(rec.Start),
			End:      timefmt.ShortStamp(rec.End),
		})
	}

	return schedule.ScheduleDetailResponse{
		ScheduleSummaryResponse: summarize(parsed),
		Shifts:                  rows,
	}, nil
}

// GetRoster implements schedule.ScheduleService.
func (s *scheduleServiceImpl) GetRoster(ctx context.Context, id string) (schedule.RosterResponse, error) {
	parsed, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return schedule.RosterResponse{}, err
	}
	return schedule.RosterResponse{Employees: parsed.Roster}, nil
}

// DeleteSchedule implements schedule.ScheduleService.
func (s *scheduleServiceImpl) DeleteSchedule(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func summarize(parsed schedule.ParsedSchedule) schedule.ScheduleSummaryResponse {
	resp := schedule.ScheduleSummaryResponse{
		ID:            parsed.ID,
		FileName:      parsed.FileName,
		Profile:       parsed.Profile,
		UploadedAt:    parsed.UploadedAt.Format(time.RFC3339),
		PageCount:     parsed.PageCount,
		ShiftCount:    len(parsed.Records),
		DateCount:     len(parsed.Windows),
		EmployeeCount: len(parsed.Roster),
	}
	switch {
	case parsed.TextPages == 0:
		resp.Warning = warnNoText
	case len(parsed.Records) == 0:
		resp.Warning = warnNoShifts
	}
	return resp
}
