package schedule

import (
	"github.com/shiftlens/overlap-backend-go/internal/pkg/validator"
)

type UploadScheduleRequest struct {
	FileName string
	Data     []byte
}

func (r *UploadScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FileName) {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file is required",
		})
	}
	if len(r.Data) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "file must not be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleSummaryResponse struct {
	ID            string `json:"id"`
	FileName      string `json:"file_name"`
	Profile       string `json:"profile"`
	UploadedAt    string `json:"uploaded_at"`
	PageCount     int    `json:"page_count"`
	ShiftCount    int    `json:"shift_count"`
	DateCount     int    `json:"date_count"`
	EmployeeCount int    `json:"employee_count"`
	// Warning surfaces the "nothing detected" conditions: a document with no
	// machine-readable text, or text that matched no shift pattern.
	Warning string `json:"warning,omitempty"`
}

// ShiftRowResponse is one extracted record in the debug listing,
// pre-formatted for display.
type ShiftRowResponse struct {
	Date     string `json:"date"`
	Employee string `json:"employee"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type ScheduleDetailResponse struct {
	ScheduleSummaryResponse
	Shifts []ShiftRowResponse `json:"shifts"`
}

// RosterResponse lists the distinct normalized employee names found in a
// schedule, ascending. It is derived from the records, not stored separately.
type RosterResponse struct {
	Employees []string `json:"employees"`
}
