package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/timetable-api/internal/models"
)

func TestHolidayRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHolidayRepository(db)

	mock.ExpectExec("INSERT INTO holidays").
		WillReturnResult(sqlmock.NewResult(1, 1))

	holiday := &models.Holiday{
		Name:        "Emergency Holiday - flood",
		Date:        time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Type:        models.HolidayTypeEmergency,
		Description: "flood",
	}
	require.NoError(t, repo.Create(context.Background(), holiday))
	assert.NotEmpty(t, holiday.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHolidayRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewHolidayRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "date", "type", "description", "created_at", "updated_at"}).
		AddRow("h1", "Founders Day", now, "PLANNED", "", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM holidays WHERE 1=1 AND type = $1 ORDER BY date ASC")).
		WithArgs(models.HolidayTypePlanned).
		WillReturnRows(rows)

	holidays, err := repo.List(context.Background(), models.HolidayFilter{Type: models.HolidayTypePlanned})
	require.NoError(t, err)
	assert.Len(t, holidays, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
