package dto

import "time"

// DashboardResponse is the landing page overview.
type DashboardResponse struct {
	Students        int       `json:"students"`
	ActiveStudents  int       `json:"active_students"`
	Teachers        int       `json:"teachers"`
	Classes         int       `json:"classes"`
	Books           int       `json:"books"`
	BooksOnLoan     int       `json:"books_on_loan"`
	AttendanceDate  string    `json:"attendance_date"`
	AttendanceRate  float64   `json:"attendance_rate"`
	FeesBilled      float64   `json:"fees_billed"`
	FeesCollected   float64   `json:"fees_collected"`
	FeesOutstanding float64   `json:"fees_outstanding"`
	PinnedNotices   int       `json:"pinned_notices"`
	GeneratedAt     time.Time `json:"generated_at"`
	CacheHit        bool      `json:"cache_hit"`
}
