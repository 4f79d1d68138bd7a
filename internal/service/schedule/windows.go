package schedule

import (
	"sort"
	"time"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
)

// BuildWindows collapses raw records into one governing interval per
// (date, employee): earliest start, latest end. A single logical shift is
// often reported as several line fragments (main shift, meal, skill blocks)
// and must not be counted as separate shifts.
func BuildWindows(records []schedule.ShiftRecord) map[time.Time]map[string]schedule.DailyWindow {
	windows := make(map[time.Time]map[string]schedule.DailyWindow)
	for _, rec := range records {
		perDay := windows[rec.Date]
		if perDay == nil {
			perDay = make(map[string]schedule.DailyWindow)
			windows[rec.Date] = perDay
		}
		w, ok := perDay[rec.EmployeeName]
		if !ok {
			perDay[rec.EmployeeName] = schedule.DailyWindow{Start: rec.Start, End: rec.End}
			continue
		}
		if rec.Start.Before(w.Start) {
			w.Start = rec.Start
		}
		if rec.End.After(w.End) {
			w.End = rec.End
		}
		perDay[rec.EmployeeName] = w
	}
	return windows
}

// Roster returns the distinct employee names across all records, ascending.
func Roster(records []schedule.ShiftRecord) []string {
	seen := make(map[string]bool)
	var names []string
	for _, rec := range records {
		if !seen[rec.EmployeeName] {
			seen[rec.EmployeeName] = true
			names = append(names, rec.EmployeeName)
		}
	}
	sort.Strings(names)
	return names
}
