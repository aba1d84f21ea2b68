package service

import (
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/fixtures"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

type testEnv struct {
	store    *fixtures.Store
	repos    ReportRepositories
	users    repository.UserRepository
	cards    repository.IDCardRepository
	validate *validator.Validate
}

func newTestEnv() testEnv {
	store := fixtures.NewDemoStore()
	return testEnv{
		store: store,
		repos: ReportRepositories{
			Students:    repository.NewStudentRepository(store.Students()),
			Teachers:    repository.NewTeacherRepository(store.Teachers()),
			Classes:     repository.NewClassRepository(store.Classes(), store.Subjects(), store.ClassNotes()),
			Assignments: repository.NewAssignmentRepository(store.Assignments()),
			Attendance:  repository.NewAttendanceRepository(store.Attendance()),
			Scores:      repository.NewScoreRepository(store.Scores()),
			Finance:     repository.NewFinanceRepository(store.Fees(), store.Transactions()),
			Library:     repository.NewLibraryRepository(store.Books(), store.Issuances()),
		},
		users:    repository.NewUserRepository(store.Users()),
		cards:    repository.NewIDCardRepository(store.IDCards()),
		validate: validator.New(),
	}
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mini, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mini, client
}

func fixedClock(ts time.Time) func() time.Time {
	return func() time.Time { return ts }
}
