package schedule

import "context"

type ScheduleService interface {
	// UploadSchedule decodes and parses a schedule document. Parsing is
	// memoized by content hash: re-uploading identical bytes returns the
	// already-parsed schedule.
	UploadSchedule(ctx context.Context, req UploadScheduleRequest) (ScheduleSummaryResponse, error)
	GetSchedule(ctx context.Context, id string) (ScheduleDetailResponse, error)
	GetRoster(ctx context.Context, id string) (RosterResponse, error)
	DeleteSchedule(ctx context.Context, id string) error
}
