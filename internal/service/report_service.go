package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/repository"
)

const (
	defaultLeaderboardSize = 5
	maxLeaderboardSize     = 50
)

// ReportRepositories groups the data sources the report service reads.
type ReportRepositories struct {
	Students    repository.StudentRepository
	Teachers    repository.TeacherRepository
	Classes     repository.ClassRepository
	Assignments repository.AssignmentRepository
	Attendance  repository.AttendanceRepository
	Scores      repository.ScoreRepository
	Finance     repository.FinanceRepository
	Library     repository.LibraryRepository
}

// ReportService builds per-student and per-teacher reports.
type ReportService interface {
	Student(ctx context.Context, studentID string) (dto.StudentReport, error)
	Teacher(ctx context.Context, teacherID string) (dto.TeacherReport, error)
	Leaderboard(ctx context.Context, classID string, limit int) ([]dto.LeaderboardEntry, error)
}

type reportService struct {
	repos  ReportRepositories
	term   string
	logger zerolog.Logger
}

// NewReportService constructs the report service for the given academic term.
func NewReportService(repos ReportRepositories, term string, logger zerolog.Logger) ReportService {
	return &reportService{
		repos:  repos,
		term:   term,
		logger: logger.With().Str("component", "report_service").Logger(),
	}
}

func (s *reportService) Student(ctx context.Context, studentID string) (dto.StudentReport, error) {
	student, err := s.repos.Students.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.StudentReport{}, ErrStudentNotFound
		}
		return dto.StudentReport{}, err
	}

	report := dto.StudentReport{
		Student: dto.StudentResponse{Student: student},
		Term:    s.term,
		Scores:  []dto.SubjectScore{},
	}
	if class, err := s.repos.Classes.GetByID(ctx, student.ClassID); err == nil {
		report.Student.ClassName = class.Name
	}

	records, err := s.repos.Attendance.ListByStudent(ctx, student.ID)
	if err != nil {
		return dto.StudentReport{}, err
	}
	report.DaysRecorded = len(records)
	report.AttendanceRate = summarise(records).Rate

	scores, err := s.repos.Scores.ListByStudent(ctx, student.ID)
	if err != nil {
		return dto.StudentReport{}, err
	}
	for _, score := range scores {
		name := score.SubjectID
		if subject, err := s.repos.Classes.GetSubject(ctx, score.SubjectID); err == nil {
			name = subject.Name
		}
		report.Scores = append(report.Scores, dto.SubjectScore{
			SubjectID:   score.SubjectID,
			SubjectName: name,
			Score:       score.Score,
			MaxScore:    score.MaxScore,
			Percent:     round2(score.Percent()),
		})
	}
	report.AverageScore = averagePercent(scores)

	fees, err := s.repos.Finance.FeesByStudent(ctx, student.ID)
	if err != nil {
		return dto.StudentReport{}, err
	}
	report.FeeBalance = round2(listquery.Sum(fees, func(f models.Fee) float64 { return f.Outstanding() }))

	loans, err := s.repos.Library.IssuancesByStudent(ctx, student.ID)
	if err != nil {
		return dto.StudentReport{}, err
	}
	for _, loan := range loans {
		if loan.Status != models.IssuanceStatusReturned {
			report.BooksOnLoan++
		}
	}

	return report, nil
}

func (s *reportService) Teacher(ctx context.Context, teacherID string) (dto.TeacherReport, error) {
	teacher, err := s.repos.Teachers.GetByID(ctx, teacherID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return dto.TeacherReport{}, ErrTeacherNotFound
		}
		return dto.TeacherReport{}, err
	}

	report := dto.TeacherReport{
		Teacher:         dto.TeacherSummary{ID: teacher.ID, Name: teacher.Name, Email: teacher.Email},
		Status:          teacher.Status,
		HomeroomClasses: []string{},
		Subjects:        []string{},
	}

	classes, err := s.repos.Classes.All(ctx)
	if err != nil {
		return dto.TeacherReport{}, err
	}
	for _, class := range classes {
		if class.TeacherID == teacher.ID {
			report.HomeroomClasses = append(report.HomeroomClasses, class.Name)
		}
	}

	subjects, err := s.repos.Classes.SubjectsByTeacher(ctx, teacher.ID)
	if err != nil {
		return dto.TeacherReport{}, err
	}
	subjectIDs := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		report.Subjects = append(report.Subjects, subject.Name+" ("+subject.Code+")")
		subjectIDs = append(subjectIDs, subject.ID)
	}

	assignments, err := s.repos.Assignments.ListByTeacher(ctx, teacher.ID)
	if err != nil {
		return dto.TeacherReport{}, err
	}
	report.TotalAssignments = len(assignments)
	report.AssignmentsByStatus = listquery.CountBy(assignments, func(a models.Assignment) string { return a.Status })

	scores, err := s.repos.Scores.ListBySubjects(ctx, subjectIDs)
	if err != nil {
		return dto.TeacherReport{}, err
	}
	report.AverageScore = averagePercent(scores)

	return report, nil
}

// Leaderboard ranks students by their average score. An empty or "all"
// classID ranks the whole school.
func (s *reportService) Leaderboard(ctx context.Context, classID string, limit int) ([]dto.LeaderboardEntry, error) {
	classID = strings.TrimSpace(classID)
	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if limit > maxLeaderboardSize {
		limit = maxLeaderboardSize
	}

	var (
		students []models.Student
		err      error
	)
	if isAll(classID) {
		students, err = s.repos.Students.All(ctx)
	} else {
		if _, lookupErr := s.repos.Classes.GetByID(ctx, classID); lookupErr != nil {
			if errors.Is(lookupErr, repository.ErrNotFound) {
				return nil, ErrClassNotFound
			}
			return nil, lookupErr
		}
		students, err = s.repos.Students.ListByClass(ctx, classID)
	}
	if err != nil {
		return nil, err
	}

	scores, err := s.repos.Scores.All(ctx)
	if err != nil {
		return nil, err
	}
	byStudent := make(map[string][]models.Score)
	for _, score := range scores {
		byStudent[score.StudentID] = append(byStudent[score.StudentID], score)
	}

	averages := make(map[string]float64, len(students))
	for _, student := range students {
		averages[student.ID] = averagePercent(byStudent[student.ID])
	}

	top := listquery.TopN(students, limit, func(st models.Student) float64 { return averages[st.ID] })
	entries := make([]dto.LeaderboardEntry, 0, len(top))
	for i, student := range top {
		entries = append(entries, dto.LeaderboardEntry{
			Rank:         i + 1,
			StudentID:    student.ID,
			StudentName:  student.Name,
			ClassID:      student.ClassID,
			AverageScore: averages[student.ID],
		})
	}
	return entries, nil
}

func averagePercent(scores []models.Score) float64 {
	if len(scores) == 0 {
		return 0
	}
	total := listquery.Sum(scores, func(s models.Score) float64 { return s.Percent() })
	return round2(total / float64(len(scores)))
}
