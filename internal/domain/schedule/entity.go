package schedule

import "time"

// ShiftRecord is one employee's working interval on one date, parsed from a
// single document line. Records are never mutated after extraction; fragments
// for the same (date, employee) are reconciled into a DailyWindow.
type ShiftRecord struct {
	Date         time.Time // midnight UTC of the section header the line was found under
	EmployeeName string
	Start        time.Time
	End          time.Time // strictly after Start; overnight shifts roll into the next day
}

// DailyWindow is the governing interval for one employee on one date:
// earliest start and latest end across all of that day's fragment records.
type DailyWindow struct {
	Start time.Time
	End   time.Time
}

// ParsedSchedule is a fully extracted document held by the repository.
// Windows and Roster are pure functions of Records, rebuilt on every parse.
type ParsedSchedule struct {
	ID          string
	ContentHash string
	FileName    string
	Profile     string
	UploadedAt  time.Time
	PageCount   int
	TextPages   int
	Records     []ShiftRecord
	Windows     map[time.Time]map[string]DailyWindow
	Roster      []string
}
