package models

import "time"

// Notice is a message pinned to the admin notice board.
type Notice struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Audience  string    `json:"audience"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	NoticeAudienceAll      = "all"
	NoticeAudienceTeachers = "teachers"
	NoticeAudienceStudents = "students"
)
