package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

const dashboardCacheKey = "dashboard:overview"

// DashboardService produces the landing page overview.
type DashboardService interface {
	Overview(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	repos   ReportRepositories
	notices *NoticeBoard
	cache   jsonCache
	logger  zerolog.Logger
	now     func() time.Time
}

// NewDashboardService builds the dashboard aggregator. notices may be nil.
func NewDashboardService(repos ReportRepositories, notices *NoticeBoard, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) DashboardService {
	logger = logger.With().Str("component", "dashboard_service").Logger()
	return &dashboardService{
		repos:   repos,
		notices: notices,
		cache:   newJSONCache(cache, ttl, "dashboard", logger),
		logger:  logger,
		now:     time.Now,
	}
}

// Overview returns the cached overview when available. The pinned notice
// count is always read live from the board.
func (s *dashboardService) Overview(ctx context.Context) (dto.DashboardResponse, error) {
	tracer := otel.Tracer("github.com/noah-isme/school-admin-api/internal/service/dashboard")
	ctx, span := tracer.Start(ctx, "dashboard.aggregate")
	defer span.End()

	var response dto.DashboardResponse
	if s.cache.get(ctx, dashboardCacheKey, &response) {
		response.CacheHit = true
		span.SetAttributes(attribute.Bool("dashboard.cache_hit", true))
	} else {
		built, err := s.build(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "dashboard_aggregate_failed")
			return dto.DashboardResponse{}, err
		}
		response = built
		s.cache.set(ctx, dashboardCacheKey, response)
	}

	if s.notices != nil {
		response.PinnedNotices = s.notices.PinnedCount()
	}
	return response, nil
}

func (s *dashboardService) build(ctx context.Context) (dto.DashboardResponse, error) {
	response := dto.DashboardResponse{GeneratedAt: s.now().UTC()}

	students, err := s.repos.Students.All(ctx)
	if err != nil {
		return response, err
	}
	response.Students = len(students)
	response.ActiveStudents = listquery.CountBy(students, func(st models.Student) string { return st.Status })[models.StudentStatusActive]

	teachers, err := s.repos.Teachers.All(ctx)
	if err != nil {
		return response, err
	}
	response.Teachers = len(teachers)

	classes, err := s.repos.Classes.All(ctx)
	if err != nil {
		return response, err
	}
	response.Classes = len(classes)

	books, err := s.repos.Library.AllBooks(ctx)
	if err != nil {
		return response, err
	}
	response.Books = int(listquery.Sum(books, func(b models.Book) float64 { return float64(b.TotalCopies) }))
	response.BooksOnLoan = response.Books - int(listquery.Sum(books, func(b models.Book) float64 { return float64(b.AvailableCopies) }))

	records, err := s.repos.Attendance.All(ctx)
	if err != nil {
		return response, err
	}
	latest := ""
	for _, record := range records {
		if record.Date > latest {
			latest = record.Date
		}
	}
	if latest != "" {
		var day []models.AttendanceRecord
		for _, record := range records {
			if record.Date == latest {
				day = append(day, record)
			}
		}
		response.AttendanceDate = latest
		response.AttendanceRate = summarise(day).Rate
	}

	fees, err := s.repos.Finance.AllFees(ctx)
	if err != nil {
		return response, err
	}
	response.FeesBilled = round2(listquery.Sum(fees, func(f models.Fee) float64 { return f.Amount }))
	response.FeesCollected = round2(listquery.Sum(fees, func(f models.Fee) float64 { return f.PaidAmount }))
	response.FeesOutstanding = round2(listquery.Sum(fees, func(f models.Fee) float64 { return f.Outstanding() }))

	return response, nil
}
