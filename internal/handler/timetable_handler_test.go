package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/timetable-api/internal/dto"
	"github.com/campuskit/timetable-api/internal/middleware"
	"github.com/campuskit/timetable-api/internal/models"
	appErrors "github.com/campuskit/timetable-api/pkg/errors"
)

type timetableServiceMock struct {
	generateResp *dto.GenerateTimetableResponse
	generateErr  error
	reschedResp  *dto.RescheduleResponse
	reschedErr   error
	listResp     []models.TimetableEntry
	listErr      error
	exportBytes  []byte
	exportType   string
	exportErr    error

	generateCalled bool
	reschedCalled  bool
	lastCreatedBy  string
	lastQuery      dto.TimetableQuery
	lastFormat     string
}

func (m *timetableServiceMock) Generate(ctx context.Context, req dto.GenerateTimetableRequest, createdBy string) (*dto.GenerateTimetableResponse, error) {
	m.generateCalled = true
	m.lastCreatedBy = createdBy
	return m.generateResp, m.generateErr
}

func (m *timetableServiceMock) Reschedule(ctx context.Context, req dto.RescheduleRequest, createdBy string) (*dto.RescheduleResponse, error) {
	m.reschedCalled = true
	m.lastCreatedBy = createdBy
	return m.reschedResp, m.reschedErr
}

func (m *timetableServiceMock) List(ctx context.Context, query dto.TimetableQuery) ([]models.TimetableEntry, error) {
	m.lastQuery = query
	return m.listResp, m.listErr
}

func (m *timetableServiceMock) Export(ctx context.Context, format string) ([]byte, string, error) {
	m.lastFormat = format
	return m.exportBytes, m.exportType, m.exportErr
}

func adminContext(t *testing.T, w *httptest.ResponseRecorder, method, target string, body []byte) *gin.Context {
	t.Helper()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{UserID: "admin-1", Role: models.RoleAdmin})
	return c
}

func TestTimetableHandlerGenerate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{
		generateResp: &dto.GenerateTimetableResponse{},
	}
	handler := NewTimetableHandler(mockSvc, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/timetable/generate", []byte(`{"departmentId":"dep-1"}`))

	handler.Generate(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.generateCalled)
	assert.Equal(t, "admin-1", mockSvc.lastCreatedBy)
}

func TestTimetableHandlerGenerateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{}
	handler := NewTimetableHandler(mockSvc, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/timetable/generate", []byte(`{`))

	handler.Generate(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.generateCalled)
}

func TestTimetableHandlerReschedule(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{
		reschedResp: &dto.RescheduleResponse{HolidayID: "hol-1"},
	}
	handler := NewTimetableHandler(mockSvc, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/timetable/reschedule",
		[]byte(`{"date":"2026-08-31","reason":"flooding","mode":"SHIFT_REMAINING"}`))

	handler.Reschedule(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockSvc.reschedCalled)
	assert.Contains(t, w.Body.String(), "hol-1")
}

func TestTimetableHandlerRescheduleServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{
		reschedErr: appErrors.Clone(appErrors.ErrValidation, "date is not a teaching day"),
	}
	handler := NewTimetableHandler(mockSvc, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/timetable/reschedule",
		[]byte(`{"date":"2026-08-30","reason":"storm","mode":"CANCEL_ALL"}`))

	handler.Reschedule(c)
	require.Equal(t, appErrors.ErrValidation.Status, w.Code)
}

func TestTimetableHandlerListParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{}
	handler := NewTimetableHandler(mockSvc, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/timetable?facultyId=fac-1&day=3", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fac-1", mockSvc.lastQuery.FacultyID)
	assert.Equal(t, 3, mockSvc.lastQuery.DayOfWeek)
}

func TestTimetableHandlerListRejectsBadDay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewTimetableHandler(&timetableServiceMock{}, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/timetable?day=abc", nil)

	handler.List(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimetableHandlerExport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{
		exportBytes: []byte("Day,Start\n"),
		exportType:  "text/csv",
	}
	handler := NewTimetableHandler(mockSvc, true)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/timetable/export?format=csv", nil)

	handler.Export(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "csv", mockSvc.lastFormat)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
}

func TestTimetableHandlerExportDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &timetableServiceMock{}
	handler := NewTimetableHandler(mockSvc, false)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/timetable/export", nil)

	handler.Export(c)
	require.Equal(t, appErrors.ErrForbidden.Status, w.Code)
	assert.Empty(t, mockSvc.lastFormat)
}
