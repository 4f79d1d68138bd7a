package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftlens/overlap-backend-go/internal/domain/overlap"
	"github.com/shiftlens/overlap-backend-go/internal/handler/http/response"
)

type OverlapHandler interface {
	Find(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type overlapHandlerImpl struct {
	overlapService overlap.OverlapService
}

func NewOverlapHandler(overlapService overlap.OverlapService) OverlapHandler {
	return &overlapHandlerImpl{
		overlapService: overlapService,
	}
}

// Find implements OverlapHandler.
func (h *overlapHandlerImpl) Find(w http.ResponseWriter, r *http.Request) {
	var req overlap.FindOverlapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ScheduleID = chi.URLParam(r, "id")

	result, err := h.overlapService.FindOverlaps(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements OverlapHandler.
func (h *overlapHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var req overlap.FindOverlapsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ScheduleID = chi.URLParam(r, "id")

	data, err := h.overlapService.ExportCSV(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="overlap_results.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
