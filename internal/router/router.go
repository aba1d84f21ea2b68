package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/school-admin-api/internal/config"
	"github.com/noah-isme/school-admin-api/internal/handler"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler       *handler.AuthHandler
	StudentHandler    *handler.StudentHandler
	TeacherHandler    *handler.TeacherHandler
	ClassHandler      *handler.ClassHandler
	AssignmentHandler *handler.AssignmentHandler
	FinanceHandler    *handler.FinanceHandler
	AttendanceHandler *handler.AttendanceHandler
	LibraryHandler    *handler.LibraryHandler
	IDCardHandler     *handler.IDCardHandler
	ReportHandler     *handler.ReportHandler
	DashboardHandler  *handler.DashboardHandler
	NoticeHandler     *handler.NoticeHandler
	JWTMiddleware     fiber.Handler
	LoginLimiter      fiber.Handler
	DisableMetrics    bool
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	if !deps.DisableMetrics {
		app.Get("/metrics", observability.MetricsHandler())
	}

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	// Use provided middlewares, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}
	loginLimiter := deps.LoginLimiter
	if loginLimiter == nil {
		loginLimiter = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(api.Group("/auth"), loginLimiter, jwtMiddleware)
	}

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api.Group("/dashboard", jwtMiddleware))
	}

	// Directory
	if deps.StudentHandler != nil {
		deps.StudentHandler.Register(api.Group("/students", jwtMiddleware))
	}
	if deps.TeacherHandler != nil {
		deps.TeacherHandler.Register(api.Group("/teachers", jwtMiddleware))
	}
	if deps.ClassHandler != nil {
		deps.ClassHandler.Register(api.Group("/classes", jwtMiddleware))
		deps.ClassHandler.RegisterSubjects(api.Group("/subjects", jwtMiddleware))
	}
	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(api.Group("/assignments", jwtMiddleware))
	}

	// Finance is admin only
	if deps.FinanceHandler != nil {
		deps.FinanceHandler.Register(api.Group("/finance", jwtMiddleware, middleware.RequireRole("admin")))
	}

	if deps.AttendanceHandler != nil {
		deps.AttendanceHandler.Register(api.Group("/attendance", jwtMiddleware))
	}
	if deps.LibraryHandler != nil {
		deps.LibraryHandler.Register(api.Group("/library", jwtMiddleware))
	}
	if deps.IDCardHandler != nil {
		deps.IDCardHandler.Register(api.Group("/id-cards", jwtMiddleware, middleware.RequireRole("admin", "teacher")))
	}
	if deps.ReportHandler != nil {
		deps.ReportHandler.Register(api.Group("/reports", jwtMiddleware))
	}
	if deps.NoticeHandler != nil {
		deps.NoticeHandler.Register(api.Group("/notices", jwtMiddleware))
	}
}
