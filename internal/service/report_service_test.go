package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/fixtures"
	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestReportServiceStudent(t *testing.T) {
	env := newTestEnv()
	svc := NewReportService(env.repos, fixtures.Term, zerolog.Nop())

	report, err := svc.Student(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, "Grade 7 - A", report.Student.ClassName)
	require.Equal(t, fixtures.Term, report.Term)
	require.Equal(t, 3, report.DaysRecorded)
	require.Equal(t, 100.0, report.AttendanceRate)
	require.Equal(t, 91.5, report.AverageScore)
	require.Len(t, report.Scores, 2)
	require.Equal(t, "Mathematics", report.Scores[0].SubjectName)
	require.Zero(t, report.FeeBalance)
	require.Equal(t, 1, report.BooksOnLoan)

	owing, err := svc.Student(context.Background(), "s6")
	require.NoError(t, err)
	require.Equal(t, 150.0, owing.FeeBalance)

	_, err = svc.Student(context.Background(), "s404")
	require.ErrorIs(t, err, ErrStudentNotFound)
}

func TestReportServiceTeacher(t *testing.T) {
	env := newTestEnv()
	svc := NewReportService(env.repos, fixtures.Term, zerolog.Nop())

	report, err := svc.Teacher(context.Background(), "t1")
	require.NoError(t, err)
	require.Equal(t, []string{"Grade 7 - A"}, report.HomeroomClasses)
	require.Equal(t, []string{"Mathematics (MATH-7A)", "Mathematics (MATH-7B)"}, report.Subjects)
	require.Equal(t, 2, report.TotalAssignments)
	require.Equal(t, 1, report.AssignmentsByStatus[models.AssignmentStatusPublished])
	require.Equal(t, 1, report.AssignmentsByStatus[models.AssignmentStatusClosed])
	require.InDelta(t, 74.38, report.AverageScore, 0.011)

	_, err = svc.Teacher(context.Background(), "t404")
	require.ErrorIs(t, err, ErrTeacherNotFound)
}

func TestReportServiceLeaderboard(t *testing.T) {
	env := newTestEnv()
	svc := NewReportService(env.repos, fixtures.Term, zerolog.Nop())
	ctx := context.Background()

	top, err := svc.Leaderboard(ctx, "", 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	require.Equal(t, []string{"s11", "s16", "s9"}, []string{top[0].StudentID, top[1].StudentID, top[2].StudentID})
	require.Equal(t, 1, top[0].Rank)
	require.Equal(t, 95.0, top[0].AverageScore)

	class, err := svc.Leaderboard(ctx, "c1", 2)
	require.NoError(t, err)
	require.Equal(t, "s3", class[0].StudentID)
	require.Equal(t, "s1", class[1].StudentID)

	defaults, err := svc.Leaderboard(ctx, "all", 0)
	require.NoError(t, err)
	require.Len(t, defaults, defaultLeaderboardSize)

	_, err = svc.Leaderboard(ctx, "c9", 3)
	require.ErrorIs(t, err, ErrClassNotFound)
}
