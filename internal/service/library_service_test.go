package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

func newLibraryService(env testEnv, now time.Time) LibraryService {
	svc := NewLibraryService(env.repos.Library, env.repos.Students, env.validate, zerolog.Nop())
	svc.(*libraryService).now = fixedClock(now)
	return svc
}

func TestLibraryServiceIssue(t *testing.T) {
	now := time.Date(2024, time.September, 10, 9, 0, 0, 0, time.UTC)
	svc := newLibraryService(newTestEnv(), now)
	ctx := context.Background()

	receipt, err := svc.Issue(ctx, dto.IssueBookRequest{BookID: "b1", StudentID: "s2"})
	require.NoError(t, err)
	require.True(t, receipt.Simulated)
	require.Equal(t, 1, receipt.RemainingCopies)
	require.Equal(t, models.IssuanceStatusIssued, receipt.Issuance.Status)
	require.Equal(t, now.AddDate(0, 0, 14), receipt.Issuance.DueAt)

	custom, err := svc.Issue(ctx, dto.IssueBookRequest{BookID: "b8", StudentID: "s2", Days: 7})
	require.NoError(t, err)
	require.Equal(t, now.AddDate(0, 0, 7), custom.Issuance.DueAt)
}

func TestLibraryServiceIssueFailures(t *testing.T) {
	svc := newLibraryService(newTestEnv(), time.Now())
	ctx := context.Background()

	_, err := svc.Issue(ctx, dto.IssueBookRequest{BookID: "b3", StudentID: "s1"})
	require.ErrorIs(t, err, ErrBookUnavailable)

	_, err = svc.Issue(ctx, dto.IssueBookRequest{BookID: "b1", StudentID: "s8"})
	require.ErrorIs(t, err, ErrStudentInactive)

	_, err = svc.Issue(ctx, dto.IssueBookRequest{BookID: "b99", StudentID: "s1"})
	require.ErrorIs(t, err, ErrBookNotFound)

	_, err = svc.Issue(ctx, dto.IssueBookRequest{BookID: "b1", StudentID: "s99"})
	require.ErrorIs(t, err, ErrStudentNotFound)

	_, err = svc.Issue(ctx, dto.IssueBookRequest{BookID: "b1", StudentID: "s1", Days: 90})
	require.Error(t, err)
}

func TestLibraryServiceReturn(t *testing.T) {
	now := time.Date(2024, time.September, 5, 12, 0, 0, 0, time.UTC)
	svc := newLibraryService(newTestEnv(), now)
	ctx := context.Background()

	late, err := svc.Return(ctx, "i2")
	require.NoError(t, err)
	require.Equal(t, 3, late.LateDays)
	require.True(t, late.Simulated)

	onTime, err := svc.Return(ctx, "i1")
	require.NoError(t, err)
	require.Zero(t, onTime.LateDays)

	_, err = svc.Return(ctx, "i8")
	require.ErrorIs(t, err, ErrAlreadyReturned)

	_, err = svc.Return(ctx, "i99")
	require.ErrorIs(t, err, ErrIssuanceNotFound)
}

func TestLibraryServiceListBooksByAvailability(t *testing.T) {
	svc := newLibraryService(newTestEnv(), time.Now())

	list, err := svc.ListBooks(context.Background(), listquery.Criteria{
		Filters:  map[string]string{"availability": repository.AvailabilityUnavailable},
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Equal(t, 2, list.Pagination.TotalItems)
	for _, book := range list.Items {
		require.Zero(t, book.AvailableCopies)
	}
}
