package overlap

import (
	"github.com/shiftlens/overlap-backend-go/internal/pkg/validator"
)

type FindOverlapsRequest struct {
	ScheduleID string `json:"-"`
	// Names is the raw selection, as chosen from the schedule's roster.
	Names []string `json:"names"`
	// Quorum is the minimum number of selected employees that must overlap
	// for a day to be reported. Zero means "all selected" (strict mode).
	Quorum int `json:"quorum"`
}

func (r *FindOverlapsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_id",
			Message: "schedule id is required",
		})
	}
	if len(r.Names) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "names",
			Message: "names are required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// OverlapRowResponse is one reported day. Days without a qualifying overlap
// are never emitted.
type OverlapRowResponse struct {
	Date          string   `json:"date"`
	CommonTime    string   `json:"common_time"`
	DurationHours float64  `json:"duration_hours"`
	Participants  []string `json:"participants"`
}

type FindOverlapsResponse struct {
	Quorum int                  `json:"quorum"`
	Names  []string             `json:"names"`
	Rows   []OverlapRowResponse `json:"rows"`
}
