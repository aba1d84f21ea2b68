package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
)

func newDirectoryApp() *fiber.App {
	env := newFixtureEnv()
	app := fiber.New()

	handler.NewStudentHandler(service.NewStudentService(env.students, env.classes, env.logger), testPaging, env.logger).
		Register(app.Group("/students"))
	handler.NewTeacherHandler(service.NewTeacherService(env.teachers, env.classes, env.logger), testPaging, env.logger).
		Register(app.Group("/teachers"))

	classes := handler.NewClassHandler(service.NewClassService(env.classes, env.teachers, env.students, env.logger), testPaging, env.logger)
	classes.Register(app.Group("/classes"))
	classes.RegisterSubjects(app.Group("/subjects"))

	handler.NewAssignmentHandler(service.NewAssignmentService(env.assignments, env.classes, env.logger), testPaging, env.logger).
		Register(app.Group("/assignments"))
	return app
}

func TestStudentHandlerListPaginates(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/students", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)
	require.Equal(t, dto.PaginationMeta{Page: 1, PageSize: 5, TotalItems: 16, TotalPages: 4}, decodeMeta(t, env))

	var students []dto.StudentResponse
	decodeData(t, env, &students)
	require.Len(t, students, 5)
	require.Equal(t, "s1", students[0].ID)
	require.Equal(t, "Grade 7 - A", students[0].ClassName)
}

func TestStudentHandlerFiltersSearchesAndSorts(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/students?gender=female&sort=name&order=desc&page_size=10", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	require.Equal(t, 8, decodeMeta(t, env).TotalItems)

	var students []dto.StudentResponse
	decodeData(t, env, &students)
	require.Equal(t, "Rosalind Franklin", students[0].Name)

	resp = perform(t, app, http.MethodGet, "/students?search=EULER&status=all", nil)
	env = decodeEnvelope(t, resp)
	decodeData(t, env, &students)
	require.Len(t, students, 1)
	require.Equal(t, "s12", students[0].ID)
}

func TestStudentHandlerPagePastEnd(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/students?page=9", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	meta := decodeMeta(t, env)
	require.Equal(t, 9, meta.Page)
	require.Equal(t, 16, meta.TotalItems)

	var students []dto.StudentResponse
	decodeData(t, env, &students)
	require.Empty(t, students)
}

func TestStudentHandlerHugePageReturnsEmptyPage(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/students?page=9223372036854775807&page_size=10", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	meta := decodeMeta(t, env)
	require.Equal(t, 16, meta.TotalItems)
	require.Equal(t, 2, meta.TotalPages)

	var students []dto.StudentResponse
	decodeData(t, env, &students)
	require.Empty(t, students)
}

func TestStudentHandlerRejectsBadQueries(t *testing.T) {
	app := newDirectoryApp()

	for _, target := range []string{"/students?sort=shoe_size", "/students?page=first", "/students?order=up"} {
		resp := perform(t, app, http.MethodGet, target, nil)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode, target)
		require.False(t, decodeEnvelope(t, resp).Success)
	}
}

func TestStudentHandlerGet(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/students/s16", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var student dto.StudentResponse
	decodeData(t, decodeEnvelope(t, resp), &student)
	require.Equal(t, "Rosalind Franklin", student.Name)

	resp = perform(t, app, http.MethodGet, "/students/nobody", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "student not found", decodeEnvelope(t, resp).Message)
}

func TestTeacherHandlerFiltersBySubject(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/teachers?subject_id=sub6", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var teachers []dto.TeacherResponse
	decodeData(t, decodeEnvelope(t, resp), &teachers)
	require.Len(t, teachers, 1)
	require.Equal(t, "Marie Curie", teachers[0].Name)

	resp = perform(t, app, http.MethodGet, "/teachers?status="+models.TeacherStatusOnLeave, nil)
	decodeData(t, decodeEnvelope(t, resp), &teachers)
	require.Len(t, teachers, 1)
	require.Equal(t, "t6", teachers[0].ID)
}

func TestClassHandlerDetailNotesAndSubjects(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/classes/c1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var detail dto.ClassDetailResponse
	decodeData(t, decodeEnvelope(t, resp), &detail)
	require.Equal(t, 4, detail.StudentCount)
	require.NotNil(t, detail.HomeroomTeacher)

	resp = perform(t, app, http.MethodGet, "/classes/c9/notes", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = perform(t, app, http.MethodGet, "/subjects?class_id=c1&page_size=20", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var subjects []models.Subject
	decodeData(t, decodeEnvelope(t, resp), &subjects)
	require.NotEmpty(t, subjects)
	for _, subject := range subjects {
		require.Equal(t, "c1", subject.ClassID)
	}
}

func TestAssignmentHandlerFilters(t *testing.T) {
	app := newDirectoryApp()

	resp := perform(t, app, http.MethodGet, "/assignments?status=draft&sort=due_date", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var assignments []service.AssignmentResponse
	decodeData(t, decodeEnvelope(t, resp), &assignments)
	require.Len(t, assignments, 2)
	require.Equal(t, "a3", assignments[0].ID)
	require.Equal(t, "a8", assignments[1].ID)
}
