package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/timetable-api/internal/dto"
	"github.com/campuskit/timetable-api/internal/models"
	appErrors "github.com/campuskit/timetable-api/pkg/errors"
	"github.com/campuskit/timetable-api/pkg/response"
)

type holidayManager interface {
	Create(ctx context.Context, req dto.CreateHolidayRequest) (*models.Holiday, error)
	List(ctx context.Context, query dto.HolidayQuery) ([]models.Holiday, error)
}

// HolidayHandler exposes the holiday calendar endpoints.
type HolidayHandler struct {
	service holidayManager
}

// NewHolidayHandler constructs the handler.
func NewHolidayHandler(svc holidayManager) *HolidayHandler {
	return &HolidayHandler{service: svc}
}

// Create godoc
// @Summary Register a holiday
// @Tags Holidays
// @Accept json
// @Produce json
// @Param payload body dto.CreateHolidayRequest true "Holiday payload"
// @Success 201 {object} response.Envelope
// @Security BearerAuth
// @Router /holidays [post]
func (h *HolidayHandler) Create(c *gin.Context) {
	var req dto.CreateHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid holiday payload"))
		return
	}

	holiday, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, holiday)
}

// List godoc
// @Summary List holidays
// @Tags Holidays
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param type query string false "Holiday type (PLANNED or EMERGENCY)"
// @Success 200 {object} response.Envelope
// @Security BearerAuth
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	query := dto.HolidayQuery{
		From: c.Query("from"),
		To:   c.Query("to"),
		Type: c.Query("type"),
	}

	holidays, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, holidays, nil)
}
