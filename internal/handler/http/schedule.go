package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
	"github.com/shiftlens/overlap-backend-go/internal/handler/http/response"
	"github.com/shiftlens/overlap-backend-go/internal/pkg/validator"
)

type ScheduleHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetRoster(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
	maxUploadBytes  int64
}

func NewScheduleHandler(scheduleService schedule.ScheduleService, maxUploadBytes int64) ScheduleHandler {
	return &scheduleHandlerImpl{
		scheduleService: scheduleService,
		maxUploadBytes:  maxUploadBytes,
	}
}

// Upload implements ScheduleHandler.
func (h *scheduleHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form or file too large", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "file", Message: "file is required"},
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(w, "Failed to read uploaded file", nil)
		return
	}

	result, err := h.scheduleService.UploadSchedule(r.Context(), schedule.UploadScheduleRequest{
		FileName: header.Filename,
		Data:     data,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule parsed successfully", result)
}

// Get implements ScheduleHandler.
func (h *scheduleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.scheduleService.GetSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetRoster implements ScheduleHandler.
func (h *scheduleHandlerImpl) GetRoster(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.scheduleService.GetRoster(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements ScheduleHandler.
func (h *scheduleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := h.scheduleService.DeleteSchedule(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule deleted successfully", nil)
}
