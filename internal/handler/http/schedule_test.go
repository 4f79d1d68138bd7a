package http

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiftlens/overlap-backend-go/internal/domain/schedule"
	"github.com/shiftlens/overlap-backend-go/internal/handler/http/response"
)

type fakeScheduleService struct {
	uploadResult schedule.ScheduleSummaryResponse
	uploadErr    error
	detailResult schedule.ScheduleDetailResponse
	detailErr    error
	rosterResult schedule.RosterResponse
	rosterErr    error
	deleteErr    error

	lastUpload schedule.UploadScheduleRequest
}

func (f *fakeScheduleService) UploadSchedule(ctx context.Context, req schedule.UploadScheduleRequest) (schedule.ScheduleSummaryResponse, error) {
	f.lastUpload = req
	return f.uploadResult, f.uploadErr
}

func (f *fakeScheduleService) GetSchedule(ctx context.Context, id string) (schedule.ScheduleDetailResponse, error) {
	return f.detailResult, f.detailErr
}

func (f *fakeScheduleService) GetRoster(ctx context.Context, id string) (schedule.RosterResponse, error) {
	return f.rosterResult, f.rosterErr
}

func (f *fakeScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	return f.deleteErr
}

func newScheduleRouter(svc schedule.ScheduleService) *chi.Mux {
	handler := NewScheduleHandler(svc, 10<<20)
	r := chi.NewRouter()
	r.Post("/schedules", handler.Upload)
	r.Get("/schedules/{id}", handler.Get)
	r.Get("/schedules/{id}/roster", handler.GetRoster)
	r.Delete("/schedules/{id}", handler.Delete)
	return r
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var env response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func TestScheduleUpload(t *testing.T) {
	svc := &fakeScheduleService{
		uploadResult: schedule.ScheduleSummaryResponse{ID: "id-1", FileName: "week.pdf", ShiftCount: 3},
	}
	router := newScheduleRouter(svc)

	body, contentType := multipartBody(t, "file", "week.pdf", []byte("%PDF-fake"))
	req := httptest.NewRequest(http.MethodPost, "/schedules", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "week.pdf", svc.lastUpload.FileName)
	assert.Equal(t, []byte("%PDF-fake"), svc.lastUpload.Data)
}

func TestScheduleUpload_MissingFile(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{})

	body, contentType := multipartBody(t, "attachment", "week.pdf", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/schedules", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
	assert.Contains(t, env.Error.Details, "file")
}

func TestScheduleUpload_UnreadableDocument(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{uploadErr: schedule.ErrDocumentUnreadable})

	body, contentType := multipartBody(t, "file", "bad.pdf", []byte("not a pdf"))
	req := httptest.NewRequest(http.MethodPost, "/schedules", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleGet_NotFound(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{detailErr: schedule.ErrScheduleNotFound})

	req := httptest.NewRequest(http.MethodGet, "/schedules/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestScheduleGetRoster(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{
		rosterResult: schedule.RosterResponse{Employees: []string{"ALEX L", "BROWN T"}},
	})

	req := httptest.NewRequest(http.MethodGet, "/schedules/id-1/roster", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
}

func TestScheduleDelete(t *testing.T) {
	router := newScheduleRouter(&fakeScheduleService{})

	req := httptest.NewRequest(http.MethodDelete, "/schedules/id-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "Schedule deleted successfully", env.Message)
}
