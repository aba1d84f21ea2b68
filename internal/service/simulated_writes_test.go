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
)

// Every write endpoint must acknowledge the action without changing the data
// the repositories serve.
func TestSimulatedWritesLeaveDataUnchanged(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	feesBefore, err := env.repos.Finance.AllFees(ctx)
	require.NoError(t, err)
	booksBefore, err := env.repos.Library.AllBooks(ctx)
	require.NoError(t, err)
	issuancesBefore, err := env.repos.Library.ListIssuances(ctx, listquery.Criteria{})
	require.NoError(t, err)
	attendanceBefore, err := env.repos.Attendance.All(ctx)
	require.NoError(t, err)
	storeFees := env.store.Fees()
	storeBooks := env.store.Books()
	storeIssuances := env.store.Issuances()
	storeAttendance := env.store.Attendance()

	finance := NewFinanceService(env.repos.Finance, nil, time.Minute, env.validate, zerolog.Nop())
	_, err = finance.CollectFee(ctx, "f4", dto.CollectFeeRequest{Amount: 1200})
	require.NoError(t, err)

	library := NewLibraryService(env.repos.Library, env.repos.Students, env.validate, zerolog.Nop())
	_, err = library.Issue(ctx, dto.IssueBookRequest{BookID: "b5", StudentID: "s1"})
	require.NoError(t, err)
	_, err = library.Return(ctx, "i1")
	require.NoError(t, err)

	attendance := NewAttendanceService(env.repos.Attendance, env.repos.Students, env.repos.Classes, env.validate, zerolog.Nop())
	_, err = attendance.Mark(ctx, dto.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2024-09-02",
		Entries: []dto.AttendanceEntry{{StudentID: "s4", Status: models.AttendancePresent}},
	})
	require.NoError(t, err)

	feesAfter, err := env.repos.Finance.AllFees(ctx)
	require.NoError(t, err)
	require.Equal(t, feesBefore, feesAfter)

	booksAfter, err := env.repos.Library.AllBooks(ctx)
	require.NoError(t, err)
	require.Equal(t, booksBefore, booksAfter)

	issuancesAfter, err := env.repos.Library.ListIssuances(ctx, listquery.Criteria{})
	require.NoError(t, err)
	require.Equal(t, issuancesBefore, issuancesAfter)

	attendanceAfter, err := env.repos.Attendance.All(ctx)
	require.NoError(t, err)
	require.Equal(t, attendanceBefore, attendanceAfter)

	require.Equal(t, storeFees, env.store.Fees())
	require.Equal(t, storeBooks, env.store.Books())
	require.Equal(t, storeIssuances, env.store.Issuances())
	require.Equal(t, storeAttendance, env.store.Attendance())
}
