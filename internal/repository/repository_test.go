package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/fixtures"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestTeacherRepositoryFiltersBySubject(t *testing.T) {
	repo := NewTeacherRepository(fixtures.NewDemoStore().Teachers())

	result, err := repo.List(context.Background(), listquery.Criteria{}, "sub6")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Equal(t, "t2", result.Items[0].ID)

	result, err = repo.List(context.Background(), listquery.Criteria{Filters: map[string]string{"status": models.TeacherStatusOnLeave}}, "all")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	require.Equal(t, "t6", result.Items[0].ID)
}

func TestLibraryRepositoryAvailabilityFilter(t *testing.T) {
	store := fixtures.NewDemoStore()
	repo := NewLibraryRepository(store.Books(), store.Issuances())

	result, err := repo.ListBooks(context.Background(), listquery.Criteria{Filters: map[string]string{"availability": AvailabilityUnavailable}})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	for _, book := range result.Items {
		require.Zero(t, book.AvailableCopies)
	}

	result, err = repo.ListBooks(context.Background(), listquery.Criteria{
		Filters: map[string]string{"availability": AvailabilityAvailable, "category": "science"},
	})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
}

func TestFinanceRepositorySortsFeesByOutstanding(t *testing.T) {
	store := fixtures.NewDemoStore()
	repo := NewFinanceRepository(store.Fees(), store.Transactions())

	result, err := repo.ListFees(context.Background(), listquery.Criteria{Sort: "outstanding", Desc: true, PageSize: 3})
	require.NoError(t, err)
	require.Equal(t, 20, result.Total)
	require.Equal(t, 7, result.TotalPages)
	require.Equal(t, []string{"f4", "f8", "f14"}, feeIDs(result.Items))
}

func TestClassRepositoryFiltersByGrade(t *testing.T) {
	store := fixtures.NewDemoStore()
	repo := NewClassRepository(store.Classes(), store.Subjects(), store.ClassNotes())

	result, err := repo.List(context.Background(), listquery.Criteria{Filters: map[string]string{"grade": "7"}})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)

	subjects, err := repo.SubjectsByTeacher(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, subjects, 2)

	notes, err := repo.ListNotes(context.Background(), listquery.Criteria{Filters: map[string]string{"class_id": "c1", "subject_id": "sub2"}})
	require.NoError(t, err)
	require.Equal(t, 1, notes.Total)
	require.Equal(t, "Lab safety", notes.Items[0].Title)
}

func TestAttendanceRepositoryFiltersByDateAndStatus(t *testing.T) {
	repo := NewAttendanceRepository(fixtures.NewDemoStore().Attendance())

	result, err := repo.List(context.Background(), listquery.Criteria{Filters: map[string]string{"date": "2024-09-03", "status": models.AttendanceAbsent}})
	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	require.Equal(t, "s7", result.Items[0].StudentID)
	require.Equal(t, "s8", result.Items[1].StudentID)
}

func TestUserRepositoryFindByEmailIgnoresCase(t *testing.T) {
	repo := NewUserRepository(fixtures.NewDemoStore().Users())

	user, err := repo.FindByEmail(context.Background(), "  Alan.Turing@School.test ")
	require.NoError(t, err)
	require.Equal(t, models.RoleTeacher, user.Role)

	_, err = repo.FindByEmail(context.Background(), "nobody@school.test")
	require.ErrorIs(t, err, ErrNotFound)
}

func feeIDs(fees []models.Fee) []string {
	ids := make([]string, 0, len(fees))
	for _, fee := range fees {
		ids = append(ids, fee.ID)
	}
	return ids
}
