package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/timetable-api/internal/dto"
	"github.com/campuskit/timetable-api/internal/models"
)

type holidayServiceMock struct {
	createResp *models.Holiday
	createErr  error
	listResp   []models.Holiday
	listErr    error

	createCalled bool
	lastQuery    dto.HolidayQuery
}

func (m *holidayServiceMock) Create(ctx context.Context, req dto.CreateHolidayRequest) (*models.Holiday, error) {
	m.createCalled = true
	return m.createResp, m.createErr
}

func (m *holidayServiceMock) List(ctx context.Context, query dto.HolidayQuery) ([]models.Holiday, error) {
	m.lastQuery = query
	return m.listResp, m.listErr
}

func TestHolidayHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &holidayServiceMock{
		createResp: &models.Holiday{ID: "hol-1", Name: "Founders Day", Date: time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)},
	}
	handler := NewHolidayHandler(mockSvc)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/holidays",
		[]byte(`{"name":"Founders Day","date":"2026-09-04"}`))

	handler.Create(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, mockSvc.createCalled)
	assert.Contains(t, w.Body.String(), "hol-1")
}

func TestHolidayHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &holidayServiceMock{}
	handler := NewHolidayHandler(mockSvc)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodPost, "/holidays", []byte(`{`))

	handler.Create(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, mockSvc.createCalled)
}

func TestHolidayHandlerListParsesQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &holidayServiceMock{
		listResp: []models.Holiday{{ID: "hol-1"}},
	}
	handler := NewHolidayHandler(mockSvc)

	w := httptest.NewRecorder()
	c := adminContext(t, w, http.MethodGet, "/holidays?from=2026-09-01&to=2026-09-30&type=EMERGENCY", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2026-09-01", mockSvc.lastQuery.From)
	assert.Equal(t, "2026-09-30", mockSvc.lastQuery.To)
	assert.Equal(t, "EMERGENCY", mockSvc.lastQuery.Type)
}
