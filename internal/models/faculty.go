package models

import "time"

// FacultyMember represents a teacher together with the subjects they are
// qualified to teach. SubjectIDs is hydrated from the qualification join table.
type FacultyMember struct {
	ID           string    `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"full_name"`
	Email        string    `db:"email" json:"email"`
	DepartmentID string    `db:"department_id" json:"department_id"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`

	SubjectIDs []string `db:"-" json:"subject_ids"`
}

// QualifiedFor reports whether the faculty member may teach the subject.
func (f FacultyMember) QualifiedFor(subjectID string) bool {
	for _, id := range f.SubjectIDs {
		if id == subjectID {
			return true
		}
	}
	return false
}
