package overlap

import "context"

type OverlapService interface {
	// FindOverlaps reports, per calendar day in ascending order, the longest
	// common availability window of a qualifying subgroup of the selection.
	FindOverlaps(ctx context.Context, req FindOverlapsRequest) (FindOverlapsResponse, error)
	// ExportCSV renders the same result as a downloadable CSV document.
	ExportCSV(ctx context.Context, req FindOverlapsRequest) ([]byte, error)
}
