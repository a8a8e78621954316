package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/timetable-api/internal/dto"
	"github.com/campuskit/timetable-api/internal/models"
	appErrors "github.com/campuskit/timetable-api/pkg/errors"
	"github.com/campuskit/timetable-api/pkg/response"
)

type timetableOrchestrator interface {
	Generate(ctx context.Context, req dto.GenerateTimetableRequest, createdBy string) (*dto.GenerateTimetableResponse, error)
	Reschedule(ctx context.Context, req dto.RescheduleRequest, createdBy string) (*dto.RescheduleResponse, error)
	List(ctx context.Context, query dto.TimetableQuery) ([]models.TimetableEntry, error)
	Export(ctx context.Context, format string) ([]byte, string, error)
}

// TimetableHandler exposes timetable generation, rescheduling, listing and
// export endpoints.
type TimetableHandler struct {
	service        timetableOrchestrator
	exportsEnabled bool
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc timetableOrchestrator, exportsEnabled bool) *TimetableHandler {
	return &TimetableHandler{service: svc, exportsEnabled: exportsEnabled}
}

// Generate godoc
// @Summary Generate the full weekly timetable
// @Description Discards the current timetable and rebuilds it from subject, faculty and classroom data. Partially placed subjects are reported as warnings.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Generation payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
		return
	}

	createdBy := ""
	if claims := claimsFromContext(c); claims != nil {
		createdBy = claims.UserID
	}

	result, err := h.service.Generate(c.Request.Context(), req, createdBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Reschedule godoc
// @Summary Emergency-reschedule a disrupted date
// @Description Records an emergency holiday for the date and relocates or cancels the affected sessions depending on mode.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.RescheduleRequest true "Reschedule payload"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /timetable/reschedule [post]
func (h *TimetableHandler) Reschedule(c *gin.Context) {
	var req dto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid reschedule payload"))
		return
	}

	createdBy := ""
	if claims := claimsFromContext(c); claims != nil {
		createdBy = claims.UserID
	}

	result, err := h.service.Reschedule(c.Request.Context(), req, createdBy)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// List godoc
// @Summary List timetable entries
// @Tags Timetable
// @Produce json
// @Param facultyId query string false "Filter by faculty ID"
// @Param day query int false "Filter by day of week (1=Monday .. 5=Friday)"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /timetable [get]
func (h *TimetableHandler) List(c *gin.Context) {
	query := dto.TimetableQuery{FacultyID: c.Query("facultyId")}
	if raw := c.Query("day"); raw != "" {
		day, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "day must be an integer"))
			return
		}
		query.DayOfWeek = day
	}

	entries, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Export godoc
// @Summary Export the timetable as CSV or PDF
// @Tags Timetable
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "Export format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Security BearerAuth
// @Router /timetable/export [get]
func (h *TimetableHandler) Export(c *gin.Context) {
	if !h.exportsEnabled {
		response.Error(c, appErrors.Clone(appErrors.ErrForbidden, "exports are disabled"))
		return
	}

	format := c.DefaultQuery("format", "csv")
	payload, contentType, err := h.service.Export(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("timetable-%s.%s", time.Now().UTC().Format("20060102"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
