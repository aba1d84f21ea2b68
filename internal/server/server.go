// Package server assembles the repositories, services and HTTP handlers of
// the API on top of a demo fixture store.
package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/fixtures"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/repository"
	"github.com/noah-isme/school-admin-api/internal/router"
	"github.com/noah-isme/school-admin-api/internal/service"
)

// Infra carries the optional external connections. Nil members disable the
// feature they back.
type Infra struct {
	Store     *fixtures.Store
	Redis     *redis.Client
	Publisher service.NoticePublisher
	// DisableMetrics skips the /metrics route, for tests that build many apps.
	DisableMetrics bool
	AccessLog      bool
}

// Server is a fully wired API.
type Server struct {
	App     *fiber.App
	Store   *fixtures.Store
	Notices *service.NoticeBoard
}

// New wires every component against infra.Store, or a fresh demo store.
func New(cfg config.Config, infra Infra, logger zerolog.Logger) *Server {
	store := infra.Store
	if store == nil {
		store = fixtures.NewDemoStore()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	paging := handler.Paging{DefaultPageSize: cfg.DefaultPageSize, MaxPageSize: cfg.MaxPageSize}

	studentRepo := repository.NewStudentRepository(store.Students())
	teacherRepo := repository.NewTeacherRepository(store.Teachers())
	classRepo := repository.NewClassRepository(store.Classes(), store.Subjects(), store.ClassNotes())
	assignmentRepo := repository.NewAssignmentRepository(store.Assignments())
	attendanceRepo := repository.NewAttendanceRepository(store.Attendance())
	scoreRepo := repository.NewScoreRepository(store.Scores())
	financeRepo := repository.NewFinanceRepository(store.Fees(), store.Transactions())
	libraryRepo := repository.NewLibraryRepository(store.Books(), store.Issuances())
	idCardRepo := repository.NewIDCardRepository(store.IDCards())
	userRepo := repository.NewUserRepository(store.Users())

	reportRepos := service.ReportRepositories{
		Students:    studentRepo,
		Teachers:    teacherRepo,
		Classes:     classRepo,
		Assignments: assignmentRepo,
		Attendance:  attendanceRepo,
		Scores:      scoreRepo,
		Finance:     financeRepo,
		Library:     libraryRepo,
	}

	notices := service.NewNoticeBoard(store.Notices(), validate, infra.Publisher, cfg.NoticeSubject, logger)

	authService := service.NewAuthService(userRepo, validate, cfg.JWTSecret, cfg.JWTTTL, logger)
	studentService := service.NewStudentService(studentRepo, classRepo, logger)
	teacherService := service.NewTeacherService(teacherRepo, classRepo, logger)
	classService := service.NewClassService(classRepo, teacherRepo, studentRepo, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, classRepo, logger)
	financeService := service.NewFinanceService(financeRepo, infra.Redis, cfg.CacheTTL, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, classRepo, validate, logger)
	libraryService := service.NewLibraryService(libraryRepo, studentRepo, validate, logger)
	idCardService := service.NewIDCardService(idCardRepo, studentRepo, teacherRepo, classRepo, cfg.SchoolName, logger)
	reportService := service.NewReportService(reportRepos, fixtures.Term, logger)
	dashboardService := service.NewDashboardService(reportRepos, notices, infra.Redis, cfg.CacheTTL, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AccessLog: infra.AccessLog})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:       handler.NewAuthHandler(authService, logger),
		StudentHandler:    handler.NewStudentHandler(studentService, paging, logger),
		TeacherHandler:    handler.NewTeacherHandler(teacherService, paging, logger),
		ClassHandler:      handler.NewClassHandler(classService, paging, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, paging, logger),
		FinanceHandler:    handler.NewFinanceHandler(financeService, paging, logger),
		AttendanceHandler: handler.NewAttendanceHandler(attendanceService, paging, logger),
		LibraryHandler:    handler.NewLibraryHandler(libraryService, paging, logger),
		IDCardHandler:     handler.NewIDCardHandler(idCardService, paging, logger),
		ReportHandler:     handler.NewReportHandler(reportService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		NoticeHandler:     handler.NewNoticeHandler(notices, paging, logger),
		JWTMiddleware:     middleware.JWTProtected(cfg.JWTSecret),
		LoginLimiter:      middleware.RateLimit("login", cfg.RateLimitMax, cfg.RateLimitWindow),
		DisableMetrics:    infra.DisableMetrics,
	})

	return &Server{App: app, Store: store, Notices: notices}
}
