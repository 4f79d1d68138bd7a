package overlap

import (
	"time"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
)

// intersection returns the common interval of a group of daily windows:
// latest start and earliest end. The group overlaps iff the returned start is
// strictly before the end; back-to-back windows touching at a boundary do
// not count as an overlap.
func intersection(windows []schedule.DailyWindow) (time.Time, time.Time) {
	latestStart, earliestEnd := windows[0].Start, windows[0].End
	for _, w := range windows[1:] {
		if w.Start.After(latestStart) {
			latestStart = w.Start
		}
		if w.End.Before(earliestEnd) {
			earliestEnd = w.End
		}
	}
	return latestStart, earliestEnd
}

// combinations enumerates every subset of size k, preserving the order of
// items within each subset and across the enumeration. Selections are capped
// well below the point where this becomes expensive.
func combinations(items []string, k int) [][]string {
	if k <= 0 || k > len(items) {
		return nil
	}
	var out [][]string
	group := make([]string, 0, k)
	var walk func(offset int)
	walk = func(offset int) {
		if len(group) == k {
			out = append(out, append([]string(nil), group...))
			return
		}
		// Not enough items left to complete the group.
		for i := offset; len(items)-i >= k-len(group); i++ {
			group = append(group, items[i])
			walk(i + 1)
			group = group[:len(group)-1]
		}
	}
	walk(0)
	return out
}
