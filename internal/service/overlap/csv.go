package overlap

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/shiftlens/overlap-backend-go/internal/domain/overlap"
)

var csvHeader = []string{"Day/Date", "Common time", "Duration (hrs)", "Participants"}

// ExportCSV implements overlap.OverlapService.
func (s *overlapServiceImpl) ExportCSV(ctx context.Context, req overlap.FindOverlapsRequest) ([]byte, error) {
	result, err := s.FindOverlaps(ctx, req)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, row := range result.Rows {
		record := []string{
			row.Date,
			row.CommonTime,
			strconv.FormatFloat(row.DurationHours, 'f', 2, 64),
			strings.Join(row.Participants, "; "),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
