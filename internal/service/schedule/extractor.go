package schedule

import (
	"strings"
	"time"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
)

const clockLayout = "3:04PM"

// parseState is the accumulator threaded through the line fold: the running
// date cursor set by the most recent date header.
type parseState struct {
	date     time.Time
	haveDate bool
}

// Extract runs the single-pass line classification over a document's text
// lines and returns the raw shift records. It is deterministic and never
// fails: malformed lines are dropped individually, never the whole document.
func Extract(lines []string, profile Profile) []schedule.ShiftRecord {
	var records []schedule.ShiftRecord
	var state parseState
	for _, line := range lines {
		var rec *schedule.ShiftRecord
		state, rec = step(state, line, profile)
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records
}

func step(state parseState, line string, profile Profile) (parseState, *schedule.ShiftRecord) {
	line = strings.TrimSpace(line)
	if line == "" {
		return state, nil
	}

	if d, ok := profile.MatchDate(line); ok {
		return parseState{date: d, haveDate: true}, nil
	}

	// Shift lines before the first date header have no day context.
	if !state.haveDate {
		return state, nil
	}

	token, prefix, ok := profile.FindShift(line)
	if !ok {
		return state, nil
	}

	name := profile.CleanName(prefix)
	if name == "" {
		return state, nil
	}

	start, err := time.Parse(clockLayout, token.Start)
	if err != nil {
		return state, nil
	}
	end, err := time.Parse(clockLayout, token.End)
	if err != nil {
		return state, nil
	}

	startDT := combine(state.date, start)
	endDT := combine(state.date, end)
	// Overnight shift: an end clock at or before the start clock means the
	// shift crosses midnight.
	if !endDT.After(startDT) {
		endDT = endDT.AddDate(0, 0, 1)
	}

	return state, &schedule.ShiftRecord{
		Date:         state.date,
		EmployeeName: name,
		Start:        startDT,
		End:          endDT,
	}
}

func combine(date, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
