package overlap

import (
	"context"
	"sort"
	"time"

	"github.com/shiftlens/overlap-backend-go/internal/domain/overlap"
	domainschedule "github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/timefmt"
	"github.com/shiftlens/overlap-backend-go/internal/service/schedule"
)

// MinSelection is the smallest meaningful group size: two-person overlap is a
// degenerate case the product does not support.
const MinSelection = 3

type overlapServiceImpl struct {
	repo         domainschedule.ScheduleRepository
	maxSelection int
}

func NewOverlapService(repo domainschedule.ScheduleRepository, maxSelection int) overlap.OverlapService {
	return &overlapServiceImpl{
		repo:         repo,
		maxSelection: maxSelection,
	}
}

// FindOverlaps implements overlap.OverlapService.
func (s *overlapServiceImpl) FindOverlaps(ctx context.Context, req overlap.FindOverlapsRequest) (overlap.FindOverlapsResponse, error) {
	if err := req.Validate(); err != nil {
		return overlap.FindOverlapsResponse{}, err
	}

	parsed, err := s.repo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return overlap.FindOverlapsResponse{}, err
	}

	names := dedupeNormalized(req.Names)
	resp := overlap.FindOverlapsResponse{
		Names: names,
		Rows:  []overlap.OverlapRowResponse{},
	}

	if len(names) > s.maxSelection {
		return overlap.FindOverlapsResponse{}, overlap.ErrSelectionTooLarge
	}
	// Too-small selections and out-of-range quorums yield "no qualifying
	// days", not an error.
	if len(names) < MinSelection {
		return resp, nil
	}

	quorum := req.Quorum
	if quorum == 0 {
		quorum = len(names)
	}
	resp.Quorum = quorum
	if quorum < 2 || quorum > len(names) {
		return resp, nil
	}

	for _, date := range sortedDates(parsed.Windows) {
		perDay := parsed.Windows[date]

		var present []string
		for _, name := range names {
			if _, ok := perDay[name]; ok {
				present = append(present, name)
			}
		}
		if len(present) < quorum {
			continue
		}

		var groups [][]string
		if quorum == len(names) {
			// Strict mode: the only candidate is the full selection.
			if len(present) != len(names) {
				continue
			}
			groups = [][]string{present}
		} else {
			groups = combinations(present, quorum)
		}

		var (
			bestGroup []string
			bestStart time.Time
			bestEnd   time.Time
			bestDur   time.Duration
		)
		for _, group := range groups {
			windows := make([]domainschedule.DailyWindow, len(group))
			for i, name := range group {
				windows[i] = perDay[name]
			}
			latestStart, earliestEnd := intersection(windows)
			if !latestStart.Before(earliestEnd) {
				continue
			}
			// Longest common duration wins; ties keep the first group found.
			if dur := earliestEnd.Sub(latestStart); dur > bestDur {
				bestGroup, bestStart, bestEnd, bestDur = group, latestStart, earliestEnd, dur
			}
		}
		if bestGroup == nil {
			continue
		}

		resp.Rows = append(resp.Rows, overlap.OverlapRowResponse{
			Date:          timefmt.DayLabel(date),
			CommonTime:    timefmt.ClockRange(bestStart, bestEnd),
			DurationHours: timefmt.RoundHours(bestDur),
			Participants:  bestGroup,
		})
	}

	return resp, nil
}

// dedupeNormalized normalizes the selection the same way extraction output is
// normalized and deduplicates it, preserving first-seen order.
func dedupeNormalized(raw []string) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range raw {
		name := schedule.Normalize(r)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

func sortedDates(windows map[time.Time]map[string]domainschedule.DailyWindow) []time.Time {
	dates := make([]time.Time, 0, len(windows))
	for d := range windows {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
