package schedule

import "context"

type ScheduleRepository interface {
	Save(ctx context.Context, parsed ParsedSchedule) error
	GetByID(ctx context.Context, id string) (ParsedSchedule, error)
	GetByContentHash(ctx context.Context, hash string) (ParsedSchedule, error)
	Delete(ctx context.Context, id string) error
}
