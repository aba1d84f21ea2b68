package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/fixtures"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/internal/service"
)

var testPaging = handler.Paging{DefaultPageSize: 5, MaxPageSize: 10}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Meta    json.RawMessage   `json:"meta"`
	Details map[string]string `json:"details"`
	Message string            `json:"message"`
}

type fixtureEnv struct {
	store       *fixtures.Store
	validate    *validator.Validate
	logger      zerolog.Logger
	students    repository.StudentRepository
	teachers    repository.TeacherRepository
	classes     repository.ClassRepository
	assignments repository.AssignmentRepository
	attendance  repository.AttendanceRepository
	scores      repository.ScoreRepository
	finance     repository.FinanceRepository
	library     repository.LibraryRepository
	cards       repository.IDCardRepository
}

func newFixtureEnv() fixtureEnv {
	store := fixtures.NewDemoStore()
	return fixtureEnv{
		store:       store,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      zerolog.New(io.Discard),
		students:    repository.NewStudentRepository(store.Students()),
		teachers:    repository.NewTeacherRepository(store.Teachers()),
		classes:     repository.NewClassRepository(store.Classes(), store.Subjects(), store.ClassNotes()),
		assignments: repository.NewAssignmentRepository(store.Assignments()),
		attendance:  repository.NewAttendanceRepository(store.Attendance()),
		scores:      repository.NewScoreRepository(store.Scores()),
		finance:     repository.NewFinanceRepository(store.Fees(), store.Transactions()),
		library:     repository.NewLibraryRepository(store.Books(), store.Issuances()),
		cards:       repository.NewIDCardRepository(store.IDCards()),
	}
}

func (e fixtureEnv) reportRepos() service.ReportRepositories {
	return service.ReportRepositories{
		Students:    e.students,
		Teachers:    e.teachers,
		Classes:     e.classes,
		Assignments: e.assignments,
		Attendance:  e.attendance,
		Scores:      e.scores,
		Finance:     e.finance,
		Library:     e.library,
	}
}

// asUser stands in for the JWT middleware.
func asUser(id, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", id)
		c.Locals("user_role", role)
		return c.Next()
	}
}

func perform(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	resp, err := app.Test(newJSONRequest(method, target, reader), -1)
	require.NoError(t, err)
	return resp
}

func newJSONRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

func decodeData(t *testing.T, env envelope, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func decodeMeta(t *testing.T, env envelope) dto.PaginationMeta {
	t.Helper()
	var meta dto.PaginationMeta
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	return meta
}
