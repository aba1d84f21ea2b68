package repository

import (
	"context"

	"github.com/noah-isme/school-admin-api/internal/listquery"
	"github.com/noah-isme/school-admin-api/internal/models"
)

const (
	// AvailabilityAvailable matches books with at least one copy on the shelf.
	AvailabilityAvailable = "available"
	// AvailabilityUnavailable matches books with every copy issued.
	AvailabilityUnavailable = "unavailable"
)

var bookSchema = listquery.Schema[models.Book]{
	Text: map[string]func(models.Book) string{
		"title":  func(b models.Book) string { return b.Title },
		"author": func(b models.Book) string { return b.Author },
		"isbn":   func(b models.Book) string { return b.ISBN },
	},
	Fields: map[string]func(models.Book) string{
		"category": func(b models.Book) string { return b.Category },
		"availability": func(b models.Book) string {
			if b.Available() {
				return AvailabilityAvailable
			}
			return AvailabilityUnavailable
		},
	},
	Sorts: map[string]func(a, b models.Book) bool{
		"title":            func(a, b models.Book) bool { return a.Title < b.Title },
		"author":           func(a, b models.Book) bool { return a.Author < b.Author },
		"available_copies": func(a, b models.Book) bool { return a.AvailableCopies < b.AvailableCopies },
	},
}

var issuanceSchema = listquery.Schema[models.BookIssuance]{
	Text: map[string]func(models.BookIssuance) string{
		"id": func(i models.BookIssuance) string { return i.ID },
	},
	Fields: map[string]func(models.BookIssuance) string{
		"status":     func(i models.BookIssuance) string { return i.Status },
		"student_id": func(i models.BookIssuance) string { return i.StudentID },
		"book_id":    func(i models.BookIssuance) string { return i.BookID },
	},
	Sorts: map[string]func(a, b models.BookIssuance) bool{
		"issued_at": func(a, b models.BookIssuance) bool { return a.IssuedAt.Before(b.IssuedAt) },
		"due_at":    func(a, b models.BookIssuance) bool { return a.DueAt.Before(b.DueAt) },
	},
}

// LibraryRepository provides access to books and issuances.
type LibraryRepository interface {
	ListBooks(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Book], error)
	GetBook(ctx context.Context, id string) (models.Book, error)
	AllBooks(ctx context.Context) ([]models.Book, error)
	ListIssuances(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.BookIssuance], error)
	GetIssuance(ctx context.Context, id string) (models.BookIssuance, error)
	IssuancesByStudent(ctx context.Context, studentID string) ([]models.BookIssuance, error)
}

type libraryRepository struct {
	books     collection[models.Book]
	issuances collection[models.BookIssuance]
}

// NewLibraryRepository constructs the library repository.
func NewLibraryRepository(books []models.Book, issuances []models.BookIssuance) LibraryRepository {
	return &libraryRepository{
		books:     newCollection(books, func(b models.Book) string { return b.ID }, bookSchema),
		issuances: newCollection(issuances, func(i models.BookIssuance) string { return i.ID }, issuanceSchema),
	}
}

func (r *libraryRepository) ListBooks(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.Book], error) {
	return r.books.list(ctx, criteria)
}

func (r *libraryRepository) GetBook(ctx context.Context, id string) (models.Book, error) {
	return r.books.get(ctx, id)
}

func (r *libraryRepository) AllBooks(ctx context.Context) ([]models.Book, error) {
	return r.books.all(ctx)
}

func (r *libraryRepository) ListIssuances(ctx context.Context, criteria listquery.Criteria) (listquery.Result[models.BookIssuance], error) {
	return r.issuances.list(ctx, criteria)
}

func (r *libraryRepository) GetIssuance(ctx context.Context, id string) (models.BookIssuance, error) {
	return r.issuances.get(ctx, id)
}

func (r *libraryRepository) IssuancesByStudent(ctx context.Context, studentID string) ([]models.BookIssuance, error) {
	return r.issuances.where(ctx, func(i models.BookIssuance) bool { return i.StudentID == studentID })
}
