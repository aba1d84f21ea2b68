// Package fixtures holds the static demo data served by the API.
//
// The store is built once at startup and never mutated afterwards. Accessors
// hand out copies so that callers cannot change the fixtures behind the
// repositories' backs.
package fixtures

import "github.com/noah-isme/school-admin-api/internal/models"

// Store is the immutable set of demo entities.
type Store struct {
	users       []models.User
	students    []models.Student
	teachers    []models.Teacher
	classes     []models.Class
	subjects    []models.Subject
	notes       []models.ClassNote
	assignments []models.Assignment
	fees        []models.Fee
	txns        []models.Transaction
	books       []models.Book
	issuances   []models.BookIssuance
	cards       []models.IDCard
	attendance  []models.AttendanceRecord
	scores      []models.Score
	notices     []models.Notice
}

// NewDemoStore builds the demo data set.
func NewDemoStore() *Store {
	return &Store{
		users:       demoUsers(),
		students:    demoStudents(),
		teachers:    demoTeachers(),
		classes:     demoClasses(),
		subjects:    demoSubjects(),
		notes:       demoClassNotes(),
		assignments: demoAssignments(),
		fees:        demoFees(),
		txns:        demoTransactions(),
		books:       demoBooks(),
		issuances:   demoIssuances(),
		cards:       demoIDCards(),
		attendance:  demoAttendance(),
		scores:      demoScores(),
		notices:     demoNotices(),
	}
}

func (s *Store) Users() []models.User { return clone(s.users) }
func (s *Store) Students() []models.Student { return clone(s.students) }
func (s *Store) Classes() []models.Class { return clone(s.classes) }
func (s *Store) Subjects() []models.Subject { return clone(s.subjects) }
func (s *Store) ClassNotes() []models.ClassNote { return clone(s.notes) }
func (s *Store) Assignments() []models.Assignment { return clone(s.assignments) }
func (s *Store) Fees() []models.Fee { return clone(s.fees) }
func (s *Store) Transactions() []models.Transaction { return clone(s.txns) }
func (s *Store) Books() []models.Book { return clone(s.books) }
func (s *Store) Issuances() []models.BookIssuance { return cloneIssuances(s.issuances) }
func (s *Store) IDCards() []models.IDCard { return clone(s.cards) }
func (s *Store) Attendance() []models.AttendanceRecord { return clone(s.attendance) }
func (s *Store) Scores() []models.Score { return clone(s.scores) }
func (s *Store) Notices() []models.Notice { return clone(s.notices) }

// Teachers returns the teachers with their subject lists copied.
func (s *Store) Teachers() []models.Teacher {
	out := clone(s.teachers)
	for i := range out {
		out[i].SubjectIDs = clone(out[i].SubjectIDs)
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func cloneIssuances(items []models.BookIssuance) []models.BookIssuance {
	out := clone(items)
	for i := range out {
		if out[i].ReturnedAt != nil {
			returned := *out[i].ReturnedAt
			out[i].ReturnedAt = &returned
		}
	}
	return out
}
