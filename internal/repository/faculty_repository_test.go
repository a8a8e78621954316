package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacultyRepositoryListWithSubjects(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	now := time.Now()
	facultyRows := sqlmock.NewRows([]string{"id", "full_name", "email", "department_id", "created_at", "updated_at"}).
		AddRow("f1", "Dr. Rao", "rao@example.com", "d1", now, now).
		AddRow("f2", "Dr. Iyer", "iyer@example.com", "d1", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM faculty WHERE 1=1 AND department_id = $1 ORDER BY created_at ASC")).
		WithArgs("d1").
		WillReturnRows(facultyRows)

	qualRows := sqlmock.NewRows([]string{"faculty_id", "subject_id"}).
		AddRow("f1", "s1").
		AddRow("f1", "s2").
		AddRow("f2", "s3")
	mock.ExpectQuery(regexp.QuoteMeta("FROM faculty_subjects")).
		WillReturnRows(qualRows)

	faculty, err := repo.ListWithSubjects(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, faculty, 2)
	assert.Equal(t, []string{"s1", "s2"}, faculty[0].SubjectIDs)
	assert.Equal(t, []string{"s3"}, faculty[1].SubjectIDs)
	assert.True(t, faculty[0].QualifiedFor("s2"))
	assert.False(t, faculty[1].QualifiedFor("s2"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFacultyRepositoryListEmptySkipsJoin(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewFacultyRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM faculty WHERE 1=1 ORDER BY created_at ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "email", "department_id", "created_at", "updated_at"}))

	faculty, err := repo.ListWithSubjects(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, faculty)
	assert.NoError(t, mock.ExpectationsWereMet())
}
