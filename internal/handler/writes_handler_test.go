package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/fixtures"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
)

type writesApp struct {
	env   fixtureEnv
	board *service.NoticeBoard
	// one app per caller role
	apps map[string]*fiber.App
}

func newWritesApp() writesApp {
	env := newFixtureEnv()
	board := service.NewNoticeBoard(env.store.Notices(), env.validate, nil, "", env.logger)

	attendance := handler.NewAttendanceHandler(service.NewAttendanceService(env.attendance, env.students, env.classes, env.validate, env.logger), testPaging, env.logger)
	library := handler.NewLibraryHandler(service.NewLibraryService(env.library, env.students, env.validate, env.logger), testPaging, env.logger)
	notices := handler.NewNoticeHandler(board, testPaging, env.logger)

	apps := make(map[string]*fiber.App)
	for _, role := range []string{models.RoleAdmin, models.RoleTeacher, models.RoleStudent} {
		app := fiber.New()
		root := app.Group("", asUser("user-"+role, role))
		attendance.Register(root.Group("/attendance"))
		library.Register(root.Group("/library"))
		notices.Register(root.Group("/notices"))
		apps[role] = app
	}
	return writesApp{env: env, board: board, apps: apps}
}

func TestAttendanceHandlerSummaryAndList(t *testing.T) {
	app := newWritesApp().apps[models.RoleStudent]

	resp := perform(t, app, http.MethodGet, "/attendance/summary?class_id=c1&date=2024-09-02", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summary dto.AttendanceSummary
	decodeData(t, decodeEnvelope(t, resp), &summary)
	require.Equal(t, 4, summary.Total)
	require.Equal(t, 75.0, summary.Rate)

	resp = perform(t, app, http.MethodGet, "/attendance/summary?date=02-09-2024", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = perform(t, app, http.MethodGet, "/attendance?date=2024-09-04&status=absent", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 2, decodeMeta(t, decodeEnvelope(t, resp)).TotalItems)
}

func TestAttendanceHandlerMark(t *testing.T) {
	w := newWritesApp()
	batch := dto.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2024-09-06",
		Entries: []dto.AttendanceEntry{
			{StudentID: "s1", Status: models.AttendancePresent},
			{StudentID: "s2", Status: models.AttendanceAbsent},
		},
	}

	resp := perform(t, w.apps[models.RoleStudent], http.MethodPost, "/attendance", batch)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = perform(t, w.apps[models.RoleTeacher], http.MethodPost, "/attendance", batch)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var marked dto.MarkAttendanceResponse
	decodeData(t, decodeEnvelope(t, resp), &marked)
	require.True(t, marked.Simulated)
	require.Equal(t, 50.0, marked.Rate)

	batch.Entries = append(batch.Entries, dto.AttendanceEntry{StudentID: "s9", Status: models.AttendancePresent})
	resp = perform(t, w.apps[models.RoleAdmin], http.MethodPost, "/attendance", batch)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = perform(t, w.apps[models.RoleAdmin], http.MethodPost, "/attendance", dto.MarkAttendanceRequest{ClassID: "c1", Date: "tomorrow"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Contains(t, decodeEnvelope(t, resp).Details, "entries")
}

func TestAttendanceHandlerExport(t *testing.T) {
	app := newWritesApp().apps[models.RoleTeacher]

	resp := perform(t, app, http.MethodGet, "/attendance/export?class_id=c1", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "attendance-c1.xlsx")

	book, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer book.Close()
	require.Equal(t, []string{"Attendance", "Summary"}, book.GetSheetList())
}

func TestLibraryHandlerIssueAndReturn(t *testing.T) {
	w := newWritesApp()
	staff := w.apps[models.RoleTeacher]

	resp := perform(t, w.apps[models.RoleStudent], http.MethodPost, "/library/issuances", dto.IssueBookRequest{BookID: "b1", StudentID: "s2"})
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = perform(t, staff, http.MethodPost, "/library/issuances", dto.IssueBookRequest{BookID: "b1", StudentID: "s2"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var receipt dto.IssuanceReceipt
	decodeData(t, decodeEnvelope(t, resp), &receipt)
	require.True(t, receipt.Simulated)
	require.Equal(t, 1, receipt.RemainingCopies)

	cases := []struct {
		name    string
		payload dto.IssueBookRequest
		status  int
	}{
		{name: "no copies", payload: dto.IssueBookRequest{BookID: "b3", StudentID: "s2"}, status: fiber.StatusConflict},
		{name: "inactive student", payload: dto.IssueBookRequest{BookID: "b1", StudentID: "s8"}, status: fiber.StatusUnprocessableEntity},
		{name: "unknown book", payload: dto.IssueBookRequest{BookID: "b99", StudentID: "s2"}, status: fiber.StatusNotFound},
		{name: "loan too long", payload: dto.IssueBookRequest{BookID: "b1", StudentID: "s2", Days: 90}, status: fiber.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := perform(t, staff, http.MethodPost, "/library/issuances", tc.payload)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}

	resp = perform(t, staff, http.MethodPost, "/library/issuances/i1/return", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = perform(t, staff, http.MethodPost, "/library/issuances/i8/return", nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp = perform(t, staff, http.MethodPost, "/library/issuances/i99/return", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestLibraryHandlerBooksAvailability(t *testing.T) {
	app := newWritesApp().apps[models.RoleStudent]

	resp := perform(t, app, http.MethodGet, "/library/books?availability=unavailable", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var books []models.Book
	decodeData(t, decodeEnvelope(t, resp), &books)
	require.Len(t, books, 2)
	for _, book := range books {
		require.Zero(t, book.AvailableCopies)
	}
}

func TestNoticeHandlerLifecycle(t *testing.T) {
	w := newWritesApp()
	events, cancel := w.board.Subscribe()
	defer cancel()

	resp := perform(t, w.apps[models.RoleStudent], http.MethodGet, "/notices?audience=students", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var notices []models.Notice
	decodeData(t, decodeEnvelope(t, resp), &notices)
	require.Len(t, notices, 2)
	require.Equal(t, "notice-1", notices[0].ID, "pinned notices come first")

	request := dto.NoticeRequest{Title: "Library closed", Body: `<p onclick="x()">Closed <b>Monday</b></p>`, Audience: "students"}
	resp = perform(t, w.apps[models.RoleStudent], http.MethodPost, "/notices", request)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp = perform(t, w.apps[models.RoleTeacher], http.MethodPost, "/notices", request)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var posted models.Notice
	decodeData(t, decodeEnvelope(t, resp), &posted)
	require.NotContains(t, posted.Body, "onclick")
	require.Contains(t, posted.Body, "<b>Monday</b>")

	event := <-events
	require.Equal(t, service.NoticePosted, event.Type)
	require.Equal(t, posted.ID, event.Notice.ID)

	resp = perform(t, w.apps[models.RoleAdmin], http.MethodPost, "/notices", dto.NoticeRequest{Title: "x", Body: "<script>alert(1)</script>"})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	resp = perform(t, w.apps[models.RoleAdmin], http.MethodDelete, "/notices/"+posted.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, service.NoticeDismissed, (<-events).Type)

	resp = perform(t, w.apps[models.RoleAdmin], http.MethodDelete, "/notices/"+posted.ID, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestNoticeHandlerScopesAudienceToRole(t *testing.T) {
	w := newWritesApp()

	cases := []struct {
		role  string
		query string
		want  []string
	}{
		{role: models.RoleStudent, query: "?audience=teachers", want: []string{"notice-1", "notice-3"}},
		{role: models.RoleStudent, query: "", want: []string{"notice-1", "notice-3"}},
		{role: models.RoleTeacher, query: "?audience=students", want: []string{"notice-1", "notice-2"}},
		{role: models.RoleAdmin, query: "?audience=teachers", want: []string{"notice-1", "notice-2"}},
		{role: models.RoleAdmin, query: "", want: []string{"notice-1", "notice-3", "notice-2"}},
	}

	for _, tc := range cases {
		resp := perform(t, w.apps[tc.role], http.MethodGet, "/notices"+tc.query, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var notices []models.Notice
		decodeData(t, decodeEnvelope(t, resp), &notices)
		ids := make([]string, 0, len(notices))
		for _, notice := range notices {
			ids = append(ids, notice.ID)
		}
		require.Equal(t, tc.want, ids, "%s %s", tc.role, tc.query)
	}
}

func TestSimulatedWritesLeaveFixturesUntouched(t *testing.T) {
	w := newWritesApp()
	staff := w.apps[models.RoleAdmin]
	pristine := fixtures.NewDemoStore()

	perform(t, staff, http.MethodPost, "/attendance", dto.MarkAttendanceRequest{
		ClassID: "c1",
		Date:    "2024-09-02",
		Entries: []dto.AttendanceEntry{{StudentID: "s4", Status: models.AttendancePresent}},
	})
	perform(t, staff, http.MethodPost, "/library/issuances", dto.IssueBookRequest{BookID: "b8", StudentID: "s1"})
	perform(t, staff, http.MethodPost, "/library/issuances/i2/return", nil)

	require.Equal(t, pristine.Attendance(), w.env.store.Attendance())
	require.Equal(t, pristine.Books(), w.env.store.Books())
	require.Equal(t, pristine.Issuances(), w.env.store.Issuances())

	books, err := w.env.library.AllBooks(context.Background())
	require.NoError(t, err)
	require.Equal(t, pristine.Books(), books)

	resp := perform(t, staff, http.MethodGet, "/attendance/summary?class_id=c1&date=2024-09-02", nil)
	var summary dto.AttendanceSummary
	decodeData(t, decodeEnvelope(t, resp), &summary)
	require.Equal(t, 75.0, summary.Rate)
}
